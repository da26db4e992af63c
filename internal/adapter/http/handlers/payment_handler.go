package handlers

import (
	"errors"
	"log"
	"net/http"

	request "himmel_payments/internal/adapter/http/dto/request"
	response "himmel_payments/internal/adapter/http/dto/response"
	"himmel_payments/internal/domain/entities"
	"himmel_payments/internal/infrastructure/payments"
	"himmel_payments/internal/usecase"
	"himmel_payments/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for payment creation, the transaction
// read endpoints and the provider IPN callback.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment accepts a normalized payment request and responds with the
// gateway redirect URL as a plain string body.
//
// @Summary      Create a payment
// @Description  Builds a signed provider request and returns the redirect URL for the end user.
// @Tags         payments
// @Accept       json
// @Produce      plain
// @Param        payment  body  request.PaymentRequest  true  "Payment request"
// @Success      200  {string}  string  "redirect URL"
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /payment [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create bind failed err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payURL, err := h.usecase.CreatePayment(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[payment][handler] create failed user_id=%s err=%v", payload.OrderInfo.UserID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create success user_id=%s", payload.OrderInfo.UserID)
	c.String(http.StatusOK, payURL)
}

// GetTransactionByOrderID returns one transaction record.
//
// @Summary      Get a transaction by order id
// @Tags         payments
// @Produce      json
// @Param        order_id  path  string  true  "Order id (24-char hex)"
// @Success      200  {object}  response.TransactionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payment/{order_id} [get]
func (h *PaymentHandler) GetTransactionByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")

	tx, err := h.usecase.GetTransactionByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] get failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// ListUserTransactions returns a user's transactions, most recent first.
//
// @Summary      List a user's transactions
// @Tags         payments
// @Produce      json
// @Param        user_id  path  string  true  "User id (24-char hex)"
// @Success      200  {array}  response.TransactionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payment/user/{user_id} [get]
func (h *PaymentHandler) ListUserTransactions(c *gin.Context) {
	userID := c.Param("user_id")

	txs, err := h.usecase.ListUserTransactions(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[payment][handler] list failed user_id=%s err=%v", userID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

// HandleMoMoIPN applies a MoMo payment-result notification to the
// transaction lifecycle. MoMo expects 204 when the notification was taken.
//
// @Summary      MoMo IPN callback
// @Tags         payments
// @Accept       json
// @Param        notification  body  request.MoMoIPNRequest  true  "IPN notification"
// @Success      204  "notification accepted"
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payment/ipn [post]
func (h *PaymentHandler) HandleMoMoIPN(c *gin.Context) {
	var payload request.MoMoIPNRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] ipn bind failed err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] ipn received order_id=%s result_code=%d", payload.OrderID, payload.ResultCode)

	_, err := h.usecase.HandleProviderNotification(c.Request.Context(), entities.ProviderMoMo, payload.ToNotification())
	if err != nil {
		log.Printf("[payment][handler] ipn failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidTransactionType),
		errors.Is(err, usecase.ErrInvalidItemTotal),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnsupportedProvider):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_PROVIDER", "Unsupported payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidNotificationSig):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Notification signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStatusTransitionConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Transaction already settled", http.StatusConflict)
	case errors.Is(err, payments.ErrGatewayRejected):
		return pkg.NewDomainError("GATEWAY_REJECTED", "Payment gateway rejected the request", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

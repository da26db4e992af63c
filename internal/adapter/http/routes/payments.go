package routes

import (
	"himmel_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayment = "/payment"

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payment := rg.Group(PathPayment)
	{
		payment.POST("", paymentHandler.CreatePayment)
		payment.POST("/ipn", paymentHandler.HandleMoMoIPN)
		payment.GET("/user/:user_id", paymentHandler.ListUserTransactions)
		payment.GET("/:order_id", paymentHandler.GetTransactionByOrderID)
	}
}

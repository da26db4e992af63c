package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"himmel_payments/internal/domain/entities"
	"himmel_payments/internal/usecase/interfaces"
	"himmel_payments/pkg/objectid"
)

var (
	ErrTransactionNotFound        = errors.New("transaction not found")
	ErrInvalidAmount              = errors.New("invalid amount")
	ErrInvalidUserID              = errors.New("invalid user id")
	ErrInvalidOrderID             = errors.New("invalid order id")
	ErrInvalidTransactionType     = errors.New("invalid transaction type")
	ErrInvalidItemTotal           = errors.New("item total price does not match price * quantity + tax")
	ErrInvalidStatus              = errors.New("invalid payment status")
	ErrStatusTransitionConflict   = errors.New("payment status transition not allowed")
	ErrInvalidNotificationSig     = errors.New("notification signature verification failed")
	ErrPaymentProviderNotResolved = errors.New("payment provider registry not configured")
)

const defaultLang = "vi"

// defaultItemTotalTolerance bounds the accepted drift between an item's
// declared total and price * quantity + tax.
const defaultItemTotalTolerance = 0.01

// IPaymentUseCase exposes the payment operations of the service:
//   - CreatePayment resolves defaults, records a PENDING transaction and
//     submits a signed request to the selected provider, returning the
//     redirect URL for the end user.
//   - HandleProviderNotification applies a verified gateway callback to the
//     transaction lifecycle.
//   - GetTransactionByOrderID / ListUserTransactions are pure reads.
type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (payURL string, err error)
	HandleProviderNotification(ctx context.Context, provider entities.PaymentProvider, n entities.PaymentNotification) (entities.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, orderID string, status entities.PaymentStatus) (entities.Transaction, error)
	GetTransactionByOrderID(ctx context.Context, orderID string) (entities.Transaction, error)
	ListUserTransactions(ctx context.Context, userID string) ([]entities.Transaction, error)
}

type PaymentUseCase struct {
	repo     interfaces.ITransactionRepository
	registry interfaces.IProviderRegistry
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.ITransactionRepository, registry interfaces.IProviderRegistry) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, registry: registry}
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, req entities.PaymentRequest) (string, error) {
	provider := req.Options.Provider
	if provider == "" {
		provider = entities.DefaultProvider
	}
	log.Printf("[payment][usecase] create start provider=%s user_id=%s amount=%s", provider, req.OrderInfo.UserID, req.Amount)

	if err := validatePaymentRequest(req); err != nil {
		log.Printf("[payment][usecase] create rejected user_id=%s err=%v", req.OrderInfo.UserID, err)
		return "", err
	}
	if u.registry == nil {
		return "", ErrPaymentProviderNotResolved
	}

	gateway, err := u.registry.Resolve(provider)
	if err != nil {
		log.Printf("[payment][usecase] provider resolution failed provider=%s err=%v", provider, err)
		return "", err
	}
	cfg, err := u.registry.Config(provider)
	if err != nil {
		return "", err
	}

	orderID := objectid.New()
	requestID := objectid.New()
	opts := resolveOptions(req.Options, cfg)

	order := entities.PaymentOrder{
		Amount:      req.Amount,
		OrderID:     orderID,
		RequestID:   requestID,
		RedirectURL: opts.RedirectURL,
		IPNURL:      opts.IPNURL,
		OrderInfo:   req.OrderInfo.Message,
		Items:       req.Items,
		Lang:        opts.Lang,
	}

	// The PENDING record goes in before the gateway call so a failed call
	// still leaves an auditable attempt for reconciliation.
	now := time.Now().UTC()
	tx := entities.Transaction{
		OrderID:   orderID,
		RequestID: requestID,
		UserID:    req.OrderInfo.UserID,
		Amount:    req.Amount,
		Type:      req.OrderInfo.Type,
		Message:   req.OrderInfo.Message,
		Metadata:  req.OrderInfo.Metadata,
		Status:    entities.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := u.repo.Create(ctx, tx); err != nil {
		log.Printf("[payment][usecase] transaction create failed order_id=%s err=%v", orderID, err)
		return "", err
	}
	log.Printf("[payment][usecase] transaction recorded order_id=%s request_id=%s status=%s", orderID, requestID, tx.Status)

	payURL, err := gateway.CreatePayment(ctx, order)
	if err != nil {
		log.Printf("[payment][usecase] gateway call failed provider=%s order_id=%s err=%v", provider, orderID, err)
		return "", err
	}
	log.Printf("[payment][usecase] create success provider=%s order_id=%s", provider, orderID)
	return payURL, nil
}

// HandleProviderNotification verifies a gateway callback and applies its
// outcome to the transaction: resultCode 0 moves the order to SUCCESS, every
// other code to FAILED.
func (u *PaymentUseCase) HandleProviderNotification(ctx context.Context, provider entities.PaymentProvider, n entities.PaymentNotification) (entities.Transaction, error) {
	if provider == "" {
		provider = entities.DefaultProvider
	}
	log.Printf("[payment][usecase] notification start provider=%s order_id=%s result_code=%d", provider, n.OrderID, n.ResultCode)

	if u.registry == nil {
		return entities.Transaction{}, ErrPaymentProviderNotResolved
	}
	gateway, err := u.registry.Resolve(provider)
	if err != nil {
		return entities.Transaction{}, err
	}
	if !gateway.VerifyNotification(n) {
		log.Printf("[payment][usecase] notification signature mismatch provider=%s order_id=%s", provider, n.OrderID)
		return entities.Transaction{}, ErrInvalidNotificationSig
	}

	status := entities.PaymentStatusFailed
	if n.ResultCode == 0 {
		status = entities.PaymentStatusSuccess
	}
	return u.UpdateTransactionStatus(ctx, n.OrderID, status)
}

// UpdateTransactionStatus moves a transaction to a terminal status.
//
// Transition rules: only PENDING may move, and only to SUCCESS or FAILED.
// An update against a terminal record is reported as an anomaly and rejected
// instead of silently overwriting the stored outcome.
func (u *PaymentUseCase) UpdateTransactionStatus(ctx context.Context, orderID string, status entities.PaymentStatus) (entities.Transaction, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Transaction{}, ErrInvalidOrderID
	}
	if !status.Valid() || status == entities.PaymentStatusPending {
		return entities.Transaction{}, ErrInvalidStatus
	}

	tx, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.OrderID == "" {
		log.Printf("[payment][usecase] status update for unknown order order_id=%s", orderID)
		return entities.Transaction{}, ErrTransactionNotFound
	}
	if tx.Status.Terminal() {
		log.Printf("[payment][usecase] anomaly: status transition %s -> %s refused order_id=%s", tx.Status, status, orderID)
		return entities.Transaction{}, ErrStatusTransitionConflict
	}

	updated, err := u.repo.UpdateStatus(ctx, orderID, tx.Status, status)
	if err != nil {
		return entities.Transaction{}, err
	}
	if updated.OrderID == "" {
		// Lost the conditional write: another notification landed first.
		log.Printf("[payment][usecase] anomaly: concurrent status update lost order_id=%s attempted=%s", orderID, status)
		return entities.Transaction{}, ErrStatusTransitionConflict
	}
	log.Printf("[payment][usecase] status updated order_id=%s status=%s", orderID, updated.Status)
	return updated, nil
}

func (u *PaymentUseCase) GetTransactionByOrderID(ctx context.Context, orderID string) (entities.Transaction, error) {
	orderID = strings.TrimSpace(orderID)
	if !objectid.IsValid(orderID) {
		return entities.Transaction{}, ErrInvalidOrderID
	}

	tx, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.OrderID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

func (u *PaymentUseCase) ListUserTransactions(ctx context.Context, userID string) ([]entities.Transaction, error) {
	userID = strings.TrimSpace(userID)
	if !objectid.IsValid(userID) {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

// resolveOptions fills caller-omitted fields from the provider defaults.
// Caller-specified values always win; this is pure defaulting, not
// validation.
func resolveOptions(opts entities.PaymentOptions, cfg entities.ProviderConfig) entities.PaymentOptions {
	if opts.RedirectURL == "" {
		opts.RedirectURL = cfg.DefaultRedirectURL
	}
	if opts.IPNURL == "" {
		opts.IPNURL = cfg.DefaultIPNURL
	}
	if opts.Lang == "" {
		opts.Lang = defaultLang
	}
	return opts
}

func validatePaymentRequest(req entities.PaymentRequest) error {
	if !isDigitString(req.Amount) {
		return ErrInvalidAmount
	}
	if !objectid.IsValid(req.OrderInfo.UserID) {
		return ErrInvalidUserID
	}
	if !req.OrderInfo.Type.Valid() {
		return ErrInvalidTransactionType
	}

	tolerance := itemTotalTolerance()
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return ErrInvalidItemTotal
		}
		expected := item.Price*float64(item.Quantity) + item.TaxAmount
		if math.Abs(item.TotalPrice-expected) > tolerance {
			return ErrInvalidItemTotal
		}
	}
	return nil
}

// isDigitString reports whether s is a non-empty run of ASCII digits, i.e. a
// non-negative integer amount with no sign, separator or fraction.
func isDigitString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func itemTotalTolerance() float64 {
	if v := strings.TrimSpace(os.Getenv("PAYMENT_ITEM_TOTAL_TOLERANCE")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return defaultItemTotalTolerance
}

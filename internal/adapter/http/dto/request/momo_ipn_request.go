package request

import "himmel_payments/internal/domain/entities"

// MoMoIPNRequest is the asynchronous payment-result notification MoMo posts
// to the configured IPN URL. Field names and types follow the gateway's v2
// IPN contract; the signature covers all fields except itself.
type MoMoIPNRequest struct {
	PartnerCode  string `json:"partnerCode" binding:"required"`
	OrderID      string `json:"orderId" binding:"required"`
	RequestID    string `json:"requestId" binding:"required"`
	Amount       int64  `json:"amount"`
	OrderInfo    string `json:"orderInfo"`
	OrderType    string `json:"orderType"`
	TransID      int64  `json:"transId"`
	ResultCode   int    `json:"resultCode"`
	Message      string `json:"message"`
	PayType      string `json:"payType"`
	ResponseTime int64  `json:"responseTime"`
	ExtraData    string `json:"extraData"`
	Signature    string `json:"signature" binding:"required"`
}

func (r MoMoIPNRequest) ToNotification() entities.PaymentNotification {
	return entities.PaymentNotification{
		PartnerCode:  r.PartnerCode,
		OrderID:      r.OrderID,
		RequestID:    r.RequestID,
		Amount:       r.Amount,
		OrderInfo:    r.OrderInfo,
		OrderType:    r.OrderType,
		TransID:      r.TransID,
		ResultCode:   r.ResultCode,
		Message:      r.Message,
		PayType:      r.PayType,
		ResponseTime: r.ResponseTime,
		ExtraData:    r.ExtraData,
		Signature:    r.Signature,
	}
}

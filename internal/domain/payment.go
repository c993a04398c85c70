package domain

import "time"

type Gateway string

const (
	GatewayVNPay Gateway = "vnpay"
	GatewayMoMo  Gateway = "momo"
)

const (
	ParamOrderID          = "orderID"
	ParamOrderIDLower     = "orderId"
	ParamVNPTxnRef        = "vnp_TxnRef"
	ParamVNPResponseCode  = "vnp_ResponseCode"
	ParamVNPTransStatus   = "vnp_TransactionStatus"
	ParamMoMoResultCode   = "resultCode"
	VNPayParamPrefix      = "vnp_"
	VNPaySuccessCode      = "00"
	MoMoSuccessResultCode = "0"
)

// PaymentOutcome is what a payment callback resolves to for the user.
type PaymentOutcome struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	OrderID string    `json:"order_id,omitempty"`
	Gateway Gateway   `json:"gateway"`
	At      time.Time `json:"at"`
}

package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
	"go.uber.org/zap"
)

const defaultConfirmTimeout = 15 * time.Second

type PaymentReconciler struct {
	app            *AppContext
	backend        ports.BackendClient
	presenter      ports.OutcomePresenter
	messages       *Messages
	clock          ports.Clock
	log            *zap.Logger
	confirmTimeout time.Duration

	mu       sync.Mutex
	settled  map[string]domain.PaymentOutcome
	inFlight map[string]struct{}
}

type PaymentReconcilerOption func(*PaymentReconciler)

func WithConfirmTimeout(timeout time.Duration) PaymentReconcilerOption {
	return func(r *PaymentReconciler) {
		if timeout > 0 {
			r.confirmTimeout = timeout
		}
	}
}

func NewPaymentReconciler(app *AppContext, backend ports.BackendClient, presenter ports.OutcomePresenter, messages *Messages, clock ports.Clock, log *zap.Logger, opts ...PaymentReconcilerOption) *PaymentReconciler {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	r := &PaymentReconciler{
		app:            app,
		backend:        backend,
		presenter:      presenter,
		messages:       messages,
		clock:          clock,
		log:            log,
		confirmTimeout: defaultConfirmTimeout,
		settled:        map[string]domain.PaymentOutcome{},
		inFlight:       map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Handle reconciles a payment gateway return URL. The boolean is false when the URL is
// not a payment callback, in which case nothing happened.
func (r *PaymentReconciler) Handle(ctx context.Context, rawURL string) (domain.PaymentOutcome, bool) {
	if !IsPaymentURL(rawURL) {
		return domain.PaymentOutcome{}, false
	}

	params := ParseParams(rawURL)
	orderID := ExtractOrderID(params)
	gateway := DetectGateway(params)
	log := r.log.With(zap.String("order_id", orderID), zap.String("gateway", string(gateway)))
	if orderID == "" {
		log.Warn("payment callback without order reference")
	}

	if !IsSuccessful(gateway, params) {
		outcome := domain.PaymentOutcome{
			Success: false,
			Message: r.failureMessage(orderID),
			OrderID: orderID,
			Gateway: gateway,
			At:      r.clock.Now(),
		}
		log.Info("payment rejected by gateway",
			zap.String("vnp_response_code", params.Get(domain.ParamVNPResponseCode)),
			zap.String("vnp_transaction_status", params.Get(domain.ParamVNPTransStatus)),
			zap.String("result_code", params.Get(domain.ParamMoMoResultCode)),
		)
		r.presenter.PresentPaymentOutcome(ctx, outcome)
		return outcome, true
	}

	if previous, duplicate := r.claim(orderID); duplicate {
		log.Info("payment callback already settled, skipping side effects")
		if previous.OrderID == "" {
			previous = r.successOutcome(orderID, gateway)
		}
		return previous, true
	}

	r.confirm(ctx, log, gateway, orderID, params)

	if err := r.app.ClearCart(ctx); err != nil {
		log.Error("clear cart after successful payment", zap.Error(err))
	}

	outcome := r.successOutcome(orderID, gateway)
	r.settle(orderID, outcome)
	log.Info("payment settled")
	r.presenter.PresentPaymentOutcome(ctx, outcome)

	return outcome, true
}

// confirm forwards the gateway result to the backend. Failures are logged only:
// the backend may already have processed the gateway's server-to-server notification.
func (r *PaymentReconciler) confirm(ctx context.Context, log *zap.Logger, gateway domain.Gateway, orderID string, params domain.Params) {
	confirmCtx, cancel := context.WithTimeout(ctx, r.confirmTimeout)
	defer cancel()

	payload := ConfirmationParams(gateway, orderID, params)

	var err error
	switch gateway {
	case domain.GatewayVNPay:
		err = r.backend.ConfirmVNPayPayment(confirmCtx, payload)
	default:
		err = r.backend.ConfirmMoMoPayment(confirmCtx, payload)
	}
	if err != nil {
		log.Warn("payment confirmation failed, continuing", zap.Error(err))
	}
}

func (r *PaymentReconciler) claim(orderID string) (domain.PaymentOutcome, bool) {
	if orderID == "" {
		return domain.PaymentOutcome{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if outcome, ok := r.settled[orderID]; ok {
		return outcome, true
	}
	if _, ok := r.inFlight[orderID]; ok {
		return domain.PaymentOutcome{}, true
	}
	r.inFlight[orderID] = struct{}{}

	return domain.PaymentOutcome{}, false
}

func (r *PaymentReconciler) settle(orderID string, outcome domain.PaymentOutcome) {
	if orderID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.inFlight, orderID)
	r.settled[orderID] = outcome
}

func (r *PaymentReconciler) successOutcome(orderID string, gateway domain.Gateway) domain.PaymentOutcome {
	message := r.messages.Text(msgPaymentSuccess)
	if orderID != "" {
		message = r.messages.Text(msgPaymentSuccessOrder, orderID)
	}

	return domain.PaymentOutcome{
		Success: true,
		Message: message,
		OrderID: orderID,
		Gateway: gateway,
		At:      r.clock.Now(),
	}
}

func (r *PaymentReconciler) failureMessage(orderID string) string {
	if orderID == "" {
		return r.messages.Text(msgPaymentFailed)
	}
	return r.messages.Text(msgPaymentFailedOrder, orderID)
}

// ExtractOrderID tries orderID, vnp_TxnRef and orderId in that order.
func ExtractOrderID(params domain.Params) string {
	return params.FirstNonEmpty(domain.ParamOrderID, domain.ParamVNPTxnRef, domain.ParamOrderIDLower)
}

func DetectGateway(params domain.Params) domain.Gateway {
	if params.Has(domain.ParamVNPResponseCode) {
		return domain.GatewayVNPay
	}
	return domain.GatewayMoMo
}

func IsSuccessful(gateway domain.Gateway, params domain.Params) bool {
	switch gateway {
	case domain.GatewayVNPay:
		return params.Get(domain.ParamVNPResponseCode) == domain.VNPaySuccessCode &&
			params.Get(domain.ParamVNPTransStatus) == domain.VNPaySuccessCode
	case domain.GatewayMoMo:
		return params.Get(domain.ParamMoMoResultCode) == domain.MoMoSuccessResultCode
	default:
		return false
	}
}

// ConfirmationParams builds the backend confirmation payload: every vnp_* parameter for
// VNPay, resultCode for MoMo, plus orderID when known.
func ConfirmationParams(gateway domain.Gateway, orderID string, params domain.Params) map[string]string {
	payload := map[string]string{}

	switch gateway {
	case domain.GatewayVNPay:
		for key, value := range params {
			if strings.HasPrefix(key, domain.VNPayParamPrefix) {
				payload[key] = value
			}
		}
	default:
		payload[domain.ParamMoMoResultCode] = params.Get(domain.ParamMoMoResultCode)
	}

	if orderID != "" {
		payload[domain.ParamOrderID] = orderID
	}

	return payload
}

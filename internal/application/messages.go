package application

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	msgLoginFailedTitle      = "login.failed.title"
	msgLoginMissingToken     = "login.missing_token"
	msgLoginStoreFailed      = "login.store_failed"
	msgLoginIdentityFailed   = "login.identity_failed"
	msgLoginSucceededTitle   = "login.succeeded.title"
	msgLoginWelcome          = "login.welcome"
	msgPaymentSuccess        = "payment.success"
	msgPaymentSuccessOrder   = "payment.success.order"
	msgPaymentFailed         = "payment.failed"
	msgPaymentFailedOrder    = "payment.failed.order"
	msgPaymentFailedTitle    = "payment.failed.title"
	msgPaymentSucceededTitle = "payment.succeeded.title"
)

var translations = map[language.Tag]map[string]string{
	language.Vietnamese: {
		msgLoginFailedTitle:      "Đăng nhập thất bại",
		msgLoginMissingToken:     "Không nhận được mã đăng nhập. Vui lòng thử lại.",
		msgLoginStoreFailed:      "Không thể lưu phiên đăng nhập. Vui lòng thử lại.",
		msgLoginIdentityFailed:   "Không thể lấy thông tin người dùng. Vui lòng thử lại sau.",
		msgLoginSucceededTitle:   "Đăng nhập thành công",
		msgLoginWelcome:          "Xin chào, %s!",
		msgPaymentSuccess:        "Thanh toán thành công!",
		msgPaymentSuccessOrder:   "Thanh toán thành công cho đơn hàng #%s!",
		msgPaymentFailed:         "Thanh toán không thành công. Vui lòng thử lại.",
		msgPaymentFailedOrder:    "Thanh toán cho đơn hàng #%s không thành công. Vui lòng thử lại.",
		msgPaymentFailedTitle:    "Thanh toán thất bại",
		msgPaymentSucceededTitle: "Thanh toán thành công",
	},
	language.English: {
		msgLoginFailedTitle:      "Login failed",
		msgLoginMissingToken:     "No login token was received. Please try again.",
		msgLoginStoreFailed:      "The login session could not be saved. Please try again.",
		msgLoginIdentityFailed:   "Could not load your profile. Please try again later.",
		msgLoginSucceededTitle:   "Logged in",
		msgLoginWelcome:          "Welcome, %s!",
		msgPaymentSuccess:        "Payment successful!",
		msgPaymentSuccessOrder:   "Payment successful for order #%s!",
		msgPaymentFailed:         "Payment was not successful. Please try again.",
		msgPaymentFailedOrder:    "Payment for order #%s was not successful. Please try again.",
		msgPaymentFailedTitle:    "Payment failed",
		msgPaymentSucceededTitle: "Payment successful",
	},
}

// Messages renders user-facing strings in the configured locale.
type Messages struct {
	printer *message.Printer
}

func NewMessages(locale string) *Messages {
	builder := catalog.NewBuilder(catalog.Fallback(language.Vietnamese))
	for tag, entries := range translations {
		for key, msg := range entries {
			// SetString only fails on malformed message syntax, which the table above does not contain.
			_ = builder.SetString(tag, key, msg)
		}
	}

	tag := language.Vietnamese
	if parsed, err := language.Parse(locale); err == nil {
		matcher := language.NewMatcher([]language.Tag{language.Vietnamese, language.English})
		tag, _, _ = matcher.Match(parsed)
	}

	return &Messages{printer: message.NewPrinter(tag, message.Catalog(builder))}
}

func (m *Messages) Text(key string, args ...any) string {
	return m.printer.Sprintf(key, args...)
}

// PaymentTitle is the heading of the payment outcome screen.
func (m *Messages) PaymentTitle(success bool) string {
	if success {
		return m.Text(msgPaymentSucceededTitle)
	}
	return m.Text(msgPaymentFailedTitle)
}

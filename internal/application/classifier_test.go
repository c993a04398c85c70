package application

import (
	"testing"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		kind   domain.LinkKind
		params domain.Params
	}{
		{
			name:   "oauth callback",
			raw:    "foodorder://oauth2/callback?token=abc123",
			kind:   domain.LinkOAuthCallback,
			params: domain.Params{"token": "abc123"},
		},
		{
			name:   "oauth wins over payment markers",
			raw:    "foodorder://oauth2/callback?token=t&vnp_ResponseCode=00",
			kind:   domain.LinkOAuthCallback,
			params: domain.Params{"token": "t", "vnp_ResponseCode": "00"},
		},
		{
			name:   "vnpay return path",
			raw:    "foodorder://vnpay-return?vnp_ResponseCode=00&vnp_TransactionStatus=00&orderID=42",
			kind:   domain.LinkPaymentCallback,
			params: domain.Params{"vnp_ResponseCode": "00", "vnp_TransactionStatus": "00", "orderID": "42"},
		},
		{
			name:   "payment success path",
			raw:    "foodorder://payment-success?orderId=7",
			kind:   domain.LinkPaymentCallback,
			params: domain.Params{"orderId": "7"},
		},
		{
			name:   "momo return path",
			raw:    "foodorder://momo-return?resultCode=1006&orderId=7",
			kind:   domain.LinkPaymentCallback,
			params: domain.Params{"resultCode": "1006", "orderId": "7"},
		},
		{
			name:   "vnpay response code anywhere",
			raw:    "https://shop.example/done?vnp_ResponseCode=24",
			kind:   domain.LinkPaymentCallback,
			params: domain.Params{"vnp_ResponseCode": "24"},
		},
		{
			name:   "bare momo result code",
			raw:    "https://shop.example/done?resultCode=0&orderId=9",
			kind:   domain.LinkPaymentCallback,
			params: domain.Params{"resultCode": "0", "orderId": "9"},
		},
		{
			name:   "result code next to other vnp params is not payment",
			raw:    "https://shop.example/done?resultCode=0&vnp_Amount=1000",
			kind:   domain.LinkUnknown,
			params: domain.Params{"resultCode": "0", "vnp_Amount": "1000"},
		},
		{
			name:   "menu link",
			raw:    "https://shop.example/menu?category=pho",
			kind:   domain.LinkUnknown,
			params: domain.Params{"category": "pho"},
		},
		{
			name:   "not a url at all",
			raw:    "not a url at all",
			kind:   domain.LinkUnknown,
			params: domain.Params{},
		},
		{
			name:   "empty string",
			raw:    "",
			kind:   domain.LinkUnknown,
			params: domain.Params{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.raw)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.params, got.Params)
		})
	}
}

func TestParseParamsDecodesValues(t *testing.T) {
	params := ParseParams("foodorder://payment-success?orderID=42&note=c%C6%A1m+t%E1%BA%A5m")

	assert.Equal(t, "42", params.Get("orderID"))
	assert.Equal(t, "cơm tấm", params.Get("note"))
}

func TestParseParamsLastOccurrenceWins(t *testing.T) {
	params := ParseParams("foodorder://oauth2/callback?token=first&token=second")

	assert.Equal(t, domain.Params{"token": "second"}, params)
}

func TestParseParamsFallsBackOnInvalidEscapes(t *testing.T) {
	params := ParseParams("foodorder://payment-success?orderID=%zz&resultCode=0&note=a%20b")

	assert.Equal(t, "%zz", params.Get("orderID"))
	assert.Equal(t, "0", params.Get("resultCode"))
	assert.Equal(t, "a b", params.Get("note"))
}

func TestParseParamsIgnoresFragment(t *testing.T) {
	params := ParseParams("foodorder://payment-success?orderID=42#receipt")

	assert.Equal(t, domain.Params{"orderID": "42"}, params)
}

func TestIsPaymentURL(t *testing.T) {
	assert.True(t, IsPaymentURL("foodorder://momo-return"))
	assert.True(t, IsPaymentURL("x?resultCode=0"))
	assert.False(t, IsPaymentURL("x?resultCode=0&vnp_TxnRef=1"))
	assert.False(t, IsPaymentURL("foodorder://orders/42"))
}

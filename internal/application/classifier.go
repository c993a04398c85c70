package application

import (
	"net/url"
	"strings"

	"github.com/bnema/foodorder-cli/internal/domain"
)

const oauthCallbackMarker = "oauth2/callback"

var paymentMarkers = []string{"payment-success", "vnpay-return", "momo-return"}

// Classify partitions a deep link by substring markers. OAuth wins over payment.
func Classify(rawURL string) domain.Classification {
	params := ParseParams(rawURL)

	kind := domain.LinkUnknown
	switch {
	case strings.Contains(rawURL, oauthCallbackMarker):
		kind = domain.LinkOAuthCallback
	case IsPaymentURL(rawURL):
		kind = domain.LinkPaymentCallback
	}

	return domain.Classification{Kind: kind, Params: params}
}

func IsPaymentURL(rawURL string) bool {
	for _, marker := range paymentMarkers {
		if strings.Contains(rawURL, marker) {
			return true
		}
	}
	if strings.Contains(rawURL, domain.ParamVNPResponseCode) {
		return true
	}

	return strings.Contains(rawURL, domain.ParamMoMoResultCode) && !strings.Contains(rawURL, domain.VNPayParamPrefix)
}

// ParseParams extracts the query parameters of rawURL. It never fails: a string
// without a parseable query yields an empty map.
func ParseParams(rawURL string) domain.Params {
	params := domain.Params{}

	parsed, err := url.Parse(rawURL)
	if err == nil {
		values, queryErr := url.ParseQuery(parsed.RawQuery)
		if queryErr == nil {
			for key, all := range values {
				if key == "" || len(all) == 0 {
					continue
				}
				params[key] = all[len(all)-1]
			}
			return params
		}
	}

	return parseParamsManually(rawURL)
}

func parseParamsManually(rawURL string) domain.Params {
	params := domain.Params{}

	_, query, found := strings.Cut(rawURL, "?")
	if !found {
		return params
	}
	query, _, _ = strings.Cut(query, "#")

	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		params[decodeComponent(key)] = decodeComponent(value)
	}

	return params
}

func decodeComponent(raw string) string {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

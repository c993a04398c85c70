package domain

type LinkKind string

const (
	LinkUnknown         LinkKind = "unknown"
	LinkOAuthCallback   LinkKind = "oauth_callback"
	LinkPaymentCallback LinkKind = "payment_callback"
)

// Params is the flat query parameter map of a deep link. Later keys overwrite earlier ones.
type Params map[string]string

func (p Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

func (p Params) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p[key]
	return ok
}

// FirstNonEmpty returns the first non-empty value among keys, in order.
func (p Params) FirstNonEmpty(keys ...string) string {
	for _, key := range keys {
		if value := p.Get(key); value != "" {
			return value
		}
	}
	return ""
}

type Classification struct {
	Kind   LinkKind
	Params Params
}

type EntryPoint string

const (
	EntryLive      EntryPoint = "live"
	EntryColdStart EntryPoint = "cold_start"
	EntryResume    EntryPoint = "resume"
)

type AppState string

const (
	AppStateActive     AppState = "active"
	AppStateInactive   AppState = "inactive"
	AppStateBackground AppState = "background"
)

func (s AppState) IsActive() bool {
	return s == AppStateActive
}

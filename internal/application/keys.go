package application

const (
	// TokenKey is the persistent store key of the session bearer token.
	TokenKey = "auth/token"
	// PendingLinkKey is the persistent store key of the deferred deep link.
	PendingLinkKey = "deeplink/pending"
)

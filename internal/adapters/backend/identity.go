package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/spf13/cast"
)

var envelopeKeys = []string{"data", "user", "result"}

var (
	idKeys    = []string{"id", "userId", "user_id", "_id"}
	nameKeys  = []string{"name", "fullName", "full_name", "displayName", "username"}
	emailKeys = []string{"email", "mail"}
	phoneKeys = []string{"phone", "phoneNumber", "phone_number"}
)

// DecodeIdentity reads the backend's "current user" document. Several field
// spellings and response envelopes are accepted; the role is normalized.
func DecodeIdentity(body []byte) (domain.Identity, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var doc map[string]any
	if err := decoder.Decode(&doc); err != nil {
		return domain.Identity{}, fmt.Errorf("decode identity: %w: %v", domain.ErrMalformedIdentity, err)
	}

	doc = unwrap(doc)

	identity := domain.Identity{
		ID:    firstString(doc, idKeys),
		Name:  firstString(doc, nameKeys),
		Email: firstString(doc, emailKeys),
		Phone: firstString(doc, phoneKeys),
		Role:  domain.NormalizeRole(roleOf(doc)),
	}
	if identity.Name == "" {
		identity.Name = identity.Email
	}
	if identity.IsZero() {
		return domain.Identity{}, fmt.Errorf("decode identity: %w: no id or name", domain.ErrMalformedIdentity)
	}

	return identity, nil
}

func unwrap(doc map[string]any) map[string]any {
	for depth := 0; depth < 3; depth++ {
		if hasAny(doc, idKeys) {
			return doc
		}

		next := map[string]any(nil)
		for _, key := range envelopeKeys {
			if inner, ok := doc[key].(map[string]any); ok {
				next = inner
				break
			}
		}
		if next == nil {
			return doc
		}
		doc = next
	}
	return doc
}

func hasAny(doc map[string]any, keys []string) bool {
	for _, key := range keys {
		if _, ok := doc[key]; ok {
			return true
		}
	}
	return false
}

func firstString(doc map[string]any, keys []string) string {
	for _, key := range keys {
		value, ok := doc[key]
		if !ok || value == nil {
			continue
		}
		// Numeric ids arrive as json.Number and keep every digit.
		text, err := cast.ToStringE(value)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}
	return ""
}

// roleOf accepts "role": "ADMIN", "roles": ["ROLE_ADMIN"] and
// "authorities": [{"authority": "ROLE_ADMIN"}].
func roleOf(doc map[string]any) string {
	if role := firstString(doc, []string{"role"}); role != "" {
		return role
	}

	if roles, err := cast.ToStringSliceE(doc["roles"]); err == nil && len(roles) > 0 {
		return roles[0]
	}

	if authorities, ok := doc["authorities"].([]any); ok {
		for _, entry := range authorities {
			if role := firstString(cast.ToStringMap(entry), []string{"authority"}); role != "" {
				return role
			}
		}
	}

	return ""
}

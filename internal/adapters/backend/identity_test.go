package backend

import (
	"testing"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want domain.Identity
	}{
		{
			name: "flat document",
			body: `{"id":"u1","name":"An","email":"an@example.com","role":"customer","phone":"0901"}`,
			want: domain.Identity{ID: "u1", Name: "An", Email: "an@example.com", Role: domain.RoleCustomer, Phone: "0901"},
		},
		{
			name: "data envelope with numeric id",
			body: `{"success":true,"data":{"userId":12,"username":"binh","role":"ROLE_ADMIN"}}`,
			want: domain.Identity{ID: "12", Name: "binh", Role: domain.RoleAdmin},
		},
		{
			name: "nested user envelope",
			body: `{"result":{"user":{"_id":"abc","displayName":"Chi","phoneNumber":"0912"}}}`,
			want: domain.Identity{ID: "abc", Name: "Chi", Role: domain.RoleCustomer, Phone: "0912"},
		},
		{
			name: "spring authorities",
			body: `{"id":3,"email":"staff@example.com","authorities":[{"authority":"ROLE_STAFF"}]}`,
			want: domain.Identity{ID: "3", Name: "staff@example.com", Email: "staff@example.com", Role: domain.RoleStaff},
		},
		{
			name: "snowflake id beyond float precision",
			body: `{"id":1234567890123456789,"name":"Giang"}`,
			want: domain.Identity{ID: "1234567890123456789", Name: "Giang", Role: domain.RoleCustomer},
		},
		{
			name: "name only",
			body: `{"name":"Dung"}`,
			want: domain.Identity{Name: "Dung", Role: domain.RoleCustomer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeIdentity([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeIdentityRejectsMalformedDocuments(t *testing.T) {
	t.Parallel()

	for _, body := range []string{``, `[]`, `"user"`, `{}`, `{"data":{"role":"ADMIN"}}`} {
		_, err := DecodeIdentity([]byte(body))
		require.ErrorIs(t, err, domain.ErrMalformedIdentity, body)
	}
}

package domain

import "strings"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
	RoleAdmin    Role = "ADMIN"
)

// Identity is the authenticated user resolved from the session token. It is never persisted.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
	Phone string `json:"phone,omitempty"`
}

func (i Identity) IsZero() bool {
	return i.ID == "" && i.Name == ""
}

func (i Identity) IsStaff() bool {
	return i.Role == RoleStaff || i.Role == RoleAdmin
}

// NormalizeRole upper-cases a backend role and strips a Spring-style "ROLE_" prefix.
func NormalizeRole(raw string) Role {
	role := strings.ToUpper(strings.TrimSpace(raw))
	role = strings.TrimPrefix(role, "ROLE_")
	if role == "" {
		return RoleCustomer
	}
	return Role(role)
}

type Session struct {
	Token       string    `json:"-"`
	User        *Identity `json:"user,omitempty"`
	AuthLoading bool      `json:"auth_loading"`
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

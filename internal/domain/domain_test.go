package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsFirstNonEmpty(t *testing.T) {
	params := Params{"orderID": "", "vnp_TxnRef": "9", "orderId": "7"}

	assert.Equal(t, "9", params.FirstNonEmpty("orderID", "vnp_TxnRef", "orderId"))
	assert.Equal(t, "", params.FirstNonEmpty("missing"))
	assert.Equal(t, "", Params(nil).FirstNonEmpty("orderID"))
}

func TestParamsHasDistinguishesEmptyValue(t *testing.T) {
	params := Params{"vnp_ResponseCode": ""}

	assert.True(t, params.Has("vnp_ResponseCode"))
	assert.False(t, params.Has("resultCode"))
	assert.False(t, Params(nil).Has("resultCode"))
}

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Role
	}{
		{name: "spring authority", raw: "ROLE_ADMIN", want: RoleAdmin},
		{name: "lower case", raw: "staff", want: RoleStaff},
		{name: "empty defaults to customer", raw: "  ", want: RoleCustomer},
		{name: "unknown kept", raw: "chef", want: Role("CHEF")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRole(tt.raw))
		})
	}
}

func TestCartAddMergesQuantitiesAndNotes(t *testing.T) {
	cart := NewCart()
	cart.Add(CartItem{DishID: "pho", Name: "Pho bo", Quantity: 1})
	cart.Add(CartItem{DishID: "pho", Quantity: 2, Note: "no onion"})
	cart.Add(CartItem{DishID: "banh-mi", Name: "Banh mi", Quantity: 1})

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items["pho"].Quantity)
	assert.Equal(t, "no onion", cart.Items["pho"].Note)
	assert.Equal(t, "Pho bo", cart.Items["pho"].Name)
	assert.Equal(t, 4, cart.TotalQuantity())

	sorted := cart.Sorted()
	assert.Equal(t, DishID("banh-mi"), sorted[0].DishID)
	assert.Equal(t, DishID("pho"), sorted[1].DishID)
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()
	cart.Add(CartItem{DishID: "pho", Quantity: 1})

	assert.True(t, cart.Remove("pho"))
	assert.False(t, cart.Remove("pho"))
	assert.True(t, cart.IsEmpty())
}

func TestCartItemValidate(t *testing.T) {
	assert.NoError(t, CartItem{DishID: "pho", Quantity: 1}.Validate())
	assert.ErrorIs(t, CartItem{Quantity: 1}.Validate(), ErrInvalidCartItem)
	assert.ErrorIs(t, CartItem{DishID: "pho"}.Validate(), ErrInvalidCartItem)
}

func TestSessionAuthenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.False(t, Session{Token: "abc"}.Authenticated())
	assert.True(t, Session{Token: "abc", User: &Identity{ID: "1"}}.Authenticated())
}

package domain

import (
	"fmt"
	"sort"
	"strings"
)

type DishID string

type CartItem struct {
	DishID   DishID
	Name     string
	Quantity int
	Note     string
}

func (i CartItem) Validate() error {
	if strings.TrimSpace(string(i.DishID)) == "" {
		return fmt.Errorf("%w: dish id is required", ErrInvalidCartItem)
	}
	if i.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidCartItem)
	}
	return nil
}

type Cart struct {
	Items map[DishID]CartItem
}

func NewCart() Cart {
	return Cart{Items: map[DishID]CartItem{}}
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Sorted returns the items ordered by dish id.
func (c Cart) Sorted() []CartItem {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, item)
	}
	sort.Slice(items, func(a, b int) bool {
		return items[a].DishID < items[b].DishID
	})
	return items
}

// Add merges item into the cart: quantities add up and a non-empty note replaces the previous one.
func (c *Cart) Add(item CartItem) {
	if c.Items == nil {
		c.Items = map[DishID]CartItem{}
	}

	existing, ok := c.Items[item.DishID]
	if !ok {
		c.Items[item.DishID] = item
		return
	}

	existing.Quantity += item.Quantity
	if item.Note != "" {
		existing.Note = item.Note
	}
	if item.Name != "" {
		existing.Name = item.Name
	}
	c.Items[item.DishID] = existing
}

func (c *Cart) Remove(id DishID) bool {
	if _, ok := c.Items[id]; !ok {
		return false
	}
	delete(c.Items, id)
	return true
}

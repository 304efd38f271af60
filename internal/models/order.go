package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a finalized, priced collection of pizzas for a number of guests.
// The pizzas are snapshotted at creation, so mutating a catalog template
// after the order is placed never changes the order's price.
type Order struct {
	ID         uuid.UUID
	GuestCount int
	Comment    string
	CreatedAt  time.Time
	DeferredAt *time.Time

	pizzas   []*Pizza
	price    decimal.Decimal
	perGuest decimal.Decimal
}

// NewOrder creates an order from finished pizzas. The pizza list must be
// non-empty and the guest count positive. A fresh identifier and the current
// date are assigned; deferredAt is optional.
func NewOrder(pizzas []*Pizza, comment string, guestCount int, deferredAt *time.Time) (*Order, error) {
	if len(pizzas) == 0 {
		return nil, fmt.Errorf("order needs at least one pizza: %w", ErrInvalidArgument)
	}
	if guestCount <= 0 {
		return nil, fmt.Errorf("guest count %d must be positive: %w", guestCount, ErrInvalidArgument)
	}

	snapshots := make([]*Pizza, len(pizzas))
	total := decimal.Zero
	for i, pz := range pizzas {
		snapshots[i] = pz.Clone()
		total = total.Add(pz.Price())
	}

	return &Order{
		ID:         uuid.New(),
		GuestCount: guestCount,
		Comment:    comment,
		CreatedAt:  time.Now(),
		DeferredAt: deferredAt,
		pizzas:     snapshots,
		price:      total,
		perGuest:   total.Div(decimal.NewFromInt(int64(guestCount))),
	}, nil
}

// Pizzas returns the snapshotted pizzas in order.
func (o *Order) Pizzas() []*Pizza {
	return append([]*Pizza(nil), o.pizzas...)
}

// Price returns the sum of the pizza prices at creation time.
func (o *Order) Price() decimal.Decimal {
	return o.price
}

// PerGuestPrice returns the order price divided by the guest count. The
// constructor's guard makes division by zero impossible.
func (o *Order) PerGuestPrice() decimal.Decimal {
	return o.perGuest
}

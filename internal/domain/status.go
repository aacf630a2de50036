package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTransition is returned when an order status move breaks the
// lifecycle machine.
var ErrInvalidTransition = errors.New("invalid order status transition")

// OrderStatus is the delivery lifecycle state of an order.
//
// The happy path is PLACED -> CONFIRMED -> SHIPPED -> OUT_FOR_DELIVERY ->
// DELIVERED, one step at a time. CANCELLED is reachable from any non-terminal
// state. DELIVERED and CANCELLED are terminal.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "PLACED"
	StatusConfirmed      OrderStatus = "CONFIRMED"
	StatusShipped        OrderStatus = "SHIPPED"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

var statusSuccessor = map[OrderStatus]OrderStatus{
	StatusPlaced:         StatusConfirmed,
	StatusConfirmed:      StatusShipped,
	StatusShipped:        StatusOutForDelivery,
	StatusOutForDelivery: StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusConfirmed, StatusShipped, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether next is a legal single-step move from s.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() || s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return statusSuccessor[s] == next
}

// Transition returns a copy of the order advanced to next, with the change
// appended to its status history. The input order is not modified.
func Transition(order Order, next OrderStatus, at time.Time) (Order, error) {
	if !order.Status.CanTransition(next) {
		return Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	updated := order
	updated.Status = next
	history := make([]StatusChange, 0, len(order.StatusHistory)+1)
	history = append(history, order.StatusHistory...)
	history = append(history, StatusChange{State: next, Timestamp: at})
	updated.StatusHistory = history
	return updated, nil
}

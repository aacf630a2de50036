package domain

import (
	"testing"
	"time"
)

func TestStatusHappyPath(t *testing.T) {
	order := Order{ID: "ELM-1", Status: StatusPlaced}
	path := []OrderStatus{StatusConfirmed, StatusShipped, StatusOutForDelivery, StatusDelivered}

	for _, next := range path {
		updated, err := Transition(order, next, time.Now())
		if err != nil {
			t.Fatalf("transition %s -> %s: %v", order.Status, next, err)
		}
		order = updated
	}

	if order.Status != StatusDelivered {
		t.Fatalf("expected DELIVERED, got %s", order.Status)
	}
	if len(order.StatusHistory) != len(path) {
		t.Fatalf("expected %d history entries, got %d", len(path), len(order.StatusHistory))
	}
}

func TestStatusCannotSkipSteps(t *testing.T) {
	order := Order{ID: "ELM-1", Status: StatusPlaced}
	if _, err := Transition(order, StatusShipped, time.Now()); err == nil {
		t.Fatalf("expected PLACED -> SHIPPED to be rejected")
	}
}

func TestCancelFromAnyNonTerminalState(t *testing.T) {
	for _, status := range []OrderStatus{StatusPlaced, StatusConfirmed, StatusShipped, StatusOutForDelivery} {
		order := Order{ID: "ELM-1", Status: status}
		if _, err := Transition(order, StatusCancelled, time.Now()); err != nil {
			t.Fatalf("expected cancel from %s to succeed: %v", status, err)
		}
	}
}

func TestTerminalStatesAreFinal(t *testing.T) {
	for _, status := range []OrderStatus{StatusDelivered, StatusCancelled} {
		order := Order{ID: "ELM-1", Status: status}
		if _, err := Transition(order, StatusCancelled, time.Now()); err == nil {
			t.Fatalf("expected transition from terminal %s to fail", status)
		}
	}
}

func TestTransitionDoesNotMutateInput(t *testing.T) {
	order := Order{
		ID:            "ELM-1",
		Status:        StatusPlaced,
		StatusHistory: []StatusChange{{State: StatusPlaced, Timestamp: time.Now()}},
	}

	updated, err := Transition(order, StatusConfirmed, time.Now())
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if order.Status != StatusPlaced || len(order.StatusHistory) != 1 {
		t.Fatalf("input order was mutated: %+v", order)
	}
	if updated.Status != StatusConfirmed || len(updated.StatusHistory) != 2 {
		t.Fatalf("unexpected updated order: %+v", updated)
	}
}

package services

import "fmt"

// Outcome of applying a consumption amount to one record.
type ConsumeEffect string

const (
	EffectUpdated ConsumeEffect = "updated"
	EffectRemoved ConsumeEffect = "removed"
)

// ApplyConsumption computes the remaining quantity after consuming amount
// from quantity. The amount is clamped to the current quantity even though
// clients clamp too; a fully consumed record yields a removal effect, never a
// zero or negative quantity.
func ApplyConsumption(quantity, amount float64) (remaining float64, effect ConsumeEffect, err error) {
	if amount <= 0 {
		return 0, "", fmt.Errorf("%w: consumption amount must be positive, got %v", ErrPrecondition, amount)
	}
	if amount > quantity {
		amount = quantity
	}
	remaining = quantity - amount
	if remaining <= 0 {
		return 0, EffectRemoved, nil
	}
	return remaining, EffectUpdated, nil
}

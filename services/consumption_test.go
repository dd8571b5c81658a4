package services

import (
	"errors"
	"testing"
)

func TestApplyConsumptionPartialLeavesRemainder(t *testing.T) {
	t.Parallel()
	remaining, effect, err := ApplyConsumption(5, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if effect != EffectUpdated {
		t.Fatalf("expected update effect, got %s", effect)
	}
	if remaining != 3 {
		t.Fatalf("expected remaining 3, got %v", remaining)
	}
}

func TestApplyConsumptionExactAmountRemoves(t *testing.T) {
	t.Parallel()
	remaining, effect, err := ApplyConsumption(5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if effect != EffectRemoved {
		t.Fatalf("expected removal effect, got %s", effect)
	}
	if remaining != 0 {
		t.Fatalf("expected remaining 0 on removal, got %v", remaining)
	}
}

func TestApplyConsumptionClampsOverconsumption(t *testing.T) {
	t.Parallel()
	remaining, effect, err := ApplyConsumption(2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if effect != EffectRemoved {
		t.Fatalf("expected removal effect when amount exceeds quantity, got %s", effect)
	}
	if remaining != 0 {
		t.Fatalf("expected remaining 0, got %v", remaining)
	}
}

func TestApplyConsumptionRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()
	for _, amount := range []float64{0, -1} {
		_, _, err := ApplyConsumption(5, amount)
		if !errors.Is(err, ErrPrecondition) {
			t.Fatalf("amount %v: expected precondition violation, got %v", amount, err)
		}
	}
}

func TestApplyConsumptionNeverGoesNegative(t *testing.T) {
	t.Parallel()
	for _, q := range []float64{0.1, 1, 2.5, 100} {
		for _, a := range []float64{0.05, 1, 2.5, 500} {
			remaining, effect, err := ApplyConsumption(q, a)
			if err != nil {
				t.Fatalf("q=%v a=%v: %v", q, a, err)
			}
			if remaining < 0 {
				t.Fatalf("q=%v a=%v: remaining went negative: %v", q, a, remaining)
			}
			if effect == EffectUpdated && remaining <= 0 {
				t.Fatalf("q=%v a=%v: update effect with non-positive remaining %v", q, a, remaining)
			}
		}
	}
}

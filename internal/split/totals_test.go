package split

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func reconciliationSession(ocrSubtotal float64) Session {
	return Session{
		Phase:        PhaseSplit,
		Participants: 2,
		Items: []LineItem{
			{Name: "Margherita Pizza", Quantity: 2, UnitPrice: 10.00, Assignments: []int{1, 1}},
			{Name: "Sparkling Water", Quantity: 1, UnitPrice: 5.00, Assignments: []int{1, 0}},
		},
		OCRSubtotal: &ocrSubtotal,
	}
}

func TestSubtotalMatchesOCR(t *testing.T) {
	tt := reconciliationSession(25.00).Totals()

	if !almostEqual(tt.Subtotal, 25.00) {
		t.Fatalf("expected subtotal 25.00, got %v", tt.Subtotal)
	}
	if tt.Mismatch {
		t.Fatalf("matching subtotals must not flag a mismatch")
	}
}

func TestSubtotalMismatchAgainstOCR(t *testing.T) {
	tt := reconciliationSession(20.00).Totals()

	if !tt.Mismatch {
		t.Fatalf("expected a mismatch against a 20.00 OCR subtotal")
	}
}

func TestMismatchWithoutOCRSubtotal(t *testing.T) {
	s := reconciliationSession(0)
	s.OCRSubtotal = nil

	tt := s.Totals()
	if tt.Mismatch {
		t.Fatalf("no OCR subtotal means no mismatch")
	}
	if tt.OCRSubtotal != nil {
		t.Fatalf("absent OCR subtotal must stay absent in totals")
	}
}

func TestPerPersonTotals(t *testing.T) {
	tt := reconciliationSession(25.00).Totals()

	// Person 0: one pizza + the water, person 1: one pizza.
	if !almostEqual(tt.PerPerson[0], 15.00) {
		t.Fatalf("expected person 0 to owe 15.00, got %v", tt.PerPerson[0])
	}
	if !almostEqual(tt.PerPerson[1], 10.00) {
		t.Fatalf("expected person 1 to owe 10.00, got %v", tt.PerPerson[1])
	}
}

func TestPerHead(t *testing.T) {
	tt := reconciliationSession(25.00).Totals()

	if !almostEqual(tt.PerHead, 12.50) {
		t.Fatalf("expected per-head 12.50, got %v", tt.PerHead)
	}
}

func TestItemAssignmentMismatch(t *testing.T) {
	s := reconciliationSession(25.00)
	// Fully assigned items: no mismatch.
	tt := s.Totals()
	if tt.ItemMismatches[0] || tt.ItemMismatches[1] {
		t.Fatalf("fully assigned items must not mismatch: %v", tt.ItemMismatches)
	}

	// Under-assign the pizza.
	s.Items[0].Assignments = []int{1, 0}
	tt = s.Totals()
	if !tt.ItemMismatches[0] {
		t.Fatalf("under-assigned item must mismatch")
	}
	if tt.ItemMismatches[1] {
		t.Fatalf("untouched item flagged: %v", tt.ItemMismatches)
	}
}

func TestServiceChargeFlagIsEchoedNotApplied(t *testing.T) {
	s := reconciliationSession(25.00)
	s.ServiceCharge = true

	tt := s.Totals()
	if !tt.ServiceCharge {
		t.Fatalf("service charge flag lost")
	}
	if !almostEqual(tt.Subtotal, 25.00) {
		t.Fatalf("the flag must never change amounts, got %v", tt.Subtotal)
	}
}

package split

import (
	"math"

	"github.com/Benjamin-taro/spliting-the-bill/internal/menu"
)

// Totals are display values derived from the current session state.
// They are recomputed on demand; nothing here is stored.
type Totals struct {
	Subtotal    float64  `json:"subtotal"`
	OCRSubtotal *float64 `json:"ocr_subtotal,omitempty"`

	// Mismatch is set when an OCR subtotal is present and differs from
	// the recomputed subtotal by more than the price tolerance.
	Mismatch bool `json:"mismatch"`

	// PerHead is the even split (subtotal / participants), shown during
	// review before per-item allocation happens.
	PerHead   float64   `json:"per_head"`
	PerPerson []float64 `json:"per_person"`

	// ItemMismatches[i] is set when item i's assignments do not add up
	// to its quantity. Exact comparison; quantities are integers.
	ItemMismatches []bool `json:"item_mismatches"`

	ServiceCharge bool `json:"service_charge_10_percent"`
}

// Totals recomputes every derived value from scratch. O(items ×
// participants), cheap at the expected scale of a few dozen items and
// a handful of people.
func (s Session) Totals() Totals {
	t := Totals{
		PerPerson:      make([]float64, s.Participants),
		ItemMismatches: make([]bool, len(s.Items)),
		ServiceCharge:  s.ServiceCharge,
	}

	for i, it := range s.Items {
		t.Subtotal += it.UnitPrice * float64(it.Quantity)
		t.ItemMismatches[i] = it.assignedTotal() != it.Quantity

		for p, n := range it.Assignments {
			if p < s.Participants {
				t.PerPerson[p] += float64(n) * it.UnitPrice
			}
		}
	}

	if s.Participants > 0 {
		t.PerHead = t.Subtotal / float64(s.Participants)
	}

	if s.OCRSubtotal != nil {
		v := *s.OCRSubtotal
		t.OCRSubtotal = &v
		t.Mismatch = math.Abs(t.Subtotal-v) > menu.Epsilon
	}

	return t
}

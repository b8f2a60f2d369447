package split

// Phase of the two-step workflow. Items are edited during review and
// divided between people during split.
type Phase string

const (
	PhaseReview Phase = "review"
	PhaseSplit  Phase = "split"
)

// LineItem is one row of the receipt being reconciled.
type LineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`

	// ExpectedPrice is the reference menu price for the current name,
	// nil when the name is not on the menu. Refreshed on every name or
	// price edit.
	ExpectedPrice *float64 `json:"expected_price,omitempty"`
	Valid         bool     `json:"valid"`

	// Assignments[p] = units of this item attributed to person p.
	// Length always equals the session's participant count, and
	// sum(Assignments) <= Quantity holds after every command.
	Assignments []int `json:"assignments"`
}

func (it LineItem) assignedTotal() int {
	total := 0
	for _, n := range it.Assignments {
		total += n
	}
	return total
}

// Session is the complete state of one receipt. Sessions are values:
// every command returns a new Session and never mutates its input, so
// the store can swap snapshots atomically and a half-applied command
// is never observable.
type Session struct {
	ID            string     `json:"id"`
	Phase         Phase      `json:"phase"`
	Participants  int        `json:"participants"`
	Items         []LineItem `json:"items"`
	OCRSubtotal   *float64   `json:"ocr_subtotal,omitempty"`
	ServiceCharge bool       `json:"service_charge_10_percent"`
}

// clone deep-copies the session so commands can edit the copy freely.
func (s Session) clone() Session {
	out := s
	out.Items = make([]LineItem, len(s.Items))
	for i, it := range s.Items {
		if it.ExpectedPrice != nil {
			p := *it.ExpectedPrice
			it.ExpectedPrice = &p
		}
		it.Assignments = append([]int(nil), it.Assignments...)
		out.Items[i] = it
	}
	if s.OCRSubtotal != nil {
		v := *s.OCRSubtotal
		out.OCRSubtotal = &v
	}
	return out
}

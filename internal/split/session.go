package split

import (
	"github.com/Benjamin-taro/spliting-the-bill/internal/extract"
	"github.com/Benjamin-taro/spliting-the-bill/internal/menu"
)

// NewSession builds a fresh review-phase session from a parsed
// extraction record. Every item is validated against the reference
// menu exactly as extracted; prices are never rewritten on load.
func NewSession(m *menu.Menu, rec extract.Receipt) Session {
	s := Session{
		Phase:         PhaseReview,
		Participants:  1,
		Items:         make([]LineItem, 0, len(rec.Items)),
		ServiceCharge: rec.ServiceCharge,
	}

	total := rec.Total
	s.OCRSubtotal = &total

	for _, raw := range rec.Items {
		it := LineItem{
			Name:        raw.Name,
			Quantity:    raw.Quantity,
			UnitPrice:   raw.Price,
			Assignments: make([]int, s.Participants),
		}
		it.revalidate(m)
		s.Items = append(s.Items, it)
	}

	return s
}

func (it *LineItem) revalidate(m *menu.Menu) {
	v := m.Validate(it.Name, it.UnitPrice)
	it.ExpectedPrice = v.ExpectedPrice
	it.Valid = v.Valid
}

// AddBlank appends an empty row for manual entry. It starts invalid;
// the confirm gate forces the user to fill it in.
func (s Session) AddBlank() Session {
	next := s.clone()
	next.Items = append(next.Items, LineItem{
		Quantity:    1,
		Assignments: make([]int, next.Participants),
	})
	return next
}

// ItemEdit is a partial update of one line item. Nil fields are left
// untouched.
type ItemEdit struct {
	Name      *string  `json:"name,omitempty"`
	Quantity  *int     `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
}

// EditItem applies the edit and revalidates the item against the
// reference menu. Values are not range-checked here; the confirm gate
// catches empty names and non-positive numbers.
func (s Session) EditItem(m *menu.Menu, index int, edit ItemEdit) (Session, error) {
	if index < 0 || index >= len(s.Items) {
		return s, ErrIndexOutOfRange
	}

	next := s.clone()
	it := &next.Items[index]
	if edit.Name != nil {
		it.Name = *edit.Name
	}
	if edit.Quantity != nil {
		it.Quantity = *edit.Quantity
	}
	if edit.UnitPrice != nil {
		it.UnitPrice = *edit.UnitPrice
	}
	it.revalidate(m)

	return next, nil
}

// RemoveItem deletes the row at index, preserving display order.
func (s Session) RemoveItem(index int) (Session, error) {
	if index < 0 || index >= len(s.Items) {
		return s, ErrIndexOutOfRange
	}

	next := s.clone()
	next.Items = append(next.Items[:index], next.Items[index+1:]...)
	return next, nil
}

// SetParticipants resizes every item's assignments to n zeroed slots.
// Changing the head count discards all prior allocations; there is no
// principled way to redistribute them.
func (s Session) SetParticipants(n int) (Session, error) {
	if n < 1 {
		return s, ErrInvalidParticipants
	}
	if n == s.Participants {
		return s.clone(), nil
	}

	next := s.clone()
	next.Participants = n
	for i := range next.Items {
		next.Items[i].Assignments = make([]int, n)
	}
	return next, nil
}

// SetOCRSubtotal replaces the externally reported subtotal. It is a
// comparison value only and never feeds back into item prices.
func (s Session) SetOCRSubtotal(v float64) Session {
	next := s.clone()
	next.OCRSubtotal = &v
	return next
}

// Confirm moves review → split. The gate checks every item and applies
// nothing or everything: any offending item blocks the transition, and
// on success each item's assignments are reset to zero even if they
// were already sized correctly.
func (s Session) Confirm() (Session, error) {
	if s.Phase != PhaseReview {
		return s, ErrNotReviewing
	}

	var problems []ItemProblem
	for i, it := range s.Items {
		switch {
		case it.Name == "":
			problems = append(problems, ItemProblem{Index: i, Reason: "name is empty"})
		case it.Quantity <= 0:
			problems = append(problems, ItemProblem{Index: i, Reason: "quantity must be positive"})
		case it.UnitPrice <= 0:
			problems = append(problems, ItemProblem{Index: i, Reason: "unit price must be positive"})
		}
	}
	if len(problems) > 0 {
		return s, &ConfirmError{Problems: problems}
	}

	next := s.clone()
	next.Phase = PhaseSplit
	for i := range next.Items {
		next.Items[i].Assignments = make([]int, next.Participants)
	}
	return next, nil
}

// Back returns to review unconditionally. Allocations are preserved;
// only a later Confirm resets them.
func (s Session) Back() Session {
	next := s.clone()
	next.Phase = PhaseReview
	return next
}

// SetAssignment writes one person's share of an item, clamped to what
// the other participants have left unassigned. Over-requests are
// clamped rather than rejected, so the session never needs a rollback;
// callers re-read the item to observe the effective value.
func (s Session) SetAssignment(itemIndex, personIndex, requested int) (Session, error) {
	if itemIndex < 0 || itemIndex >= len(s.Items) {
		return s, ErrIndexOutOfRange
	}
	if personIndex < 0 || personIndex >= s.Participants {
		return s, ErrPersonOutOfRange
	}

	next := s.clone()
	it := &next.Items[itemIndex]

	otherSum := 0
	for p, n := range it.Assignments {
		if p != personIndex {
			otherSum += n
		}
	}
	remaining := it.Quantity - otherSum

	safe := requested
	if safe > remaining {
		safe = remaining
	}
	if safe < 0 {
		safe = 0
	}

	it.Assignments[personIndex] = safe
	return next, nil
}

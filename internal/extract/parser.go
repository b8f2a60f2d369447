package extract

import (
	"encoding/json"
)

// ParseError reports model output that could not be decoded as a
// Receipt. The raw offending content is kept for diagnosis.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return "malformed extraction result: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes the model's raw output into a Receipt.
// Anything that is not the expected record shape fails with a
// ParseError; the caller's session state must stay untouched on
// failure, so no partial result is ever returned.
func Parse(raw string) (Receipt, error) {
	var rec Receipt
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Receipt{}, &ParseError{Raw: raw, Err: err}
	}

	// A missing quantity means a single unit.
	for i := range rec.Items {
		if rec.Items[i].Quantity < 1 {
			rec.Items[i].Quantity = 1
		}
	}

	return rec, nil
}

package extract

import "context"

// Client talks to the vision model that turns a receipt photo into the
// raw JSON record. Implementations must return JSON-only output.
type Client interface {
	ExtractReceipt(ctx context.Context, image []byte, mimeType string) (string, error)
}

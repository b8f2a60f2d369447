package extract

// Receipt is the record shape the extraction model must return.
type Receipt struct {
	Items         []ReceiptItem `json:"items"`
	Total         float64       `json:"total"`
	ServiceCharge bool          `json:"service_charge_10_percent"`
}

// ReceiptItem is one raw line item candidate. Price is the unit price,
// not the line subtotal.
type ReceiptItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

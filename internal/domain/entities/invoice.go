package entities

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "Paid"
	InvoiceStatusUnpaid  InvoiceStatus = "Unpaid"
	InvoiceStatusOverdue InvoiceStatus = "Overdue"
)

// InvoiceItem is a single line item of an invoice. It has no identity
// outside its invoice; the ID only keys UI list operations.
type InvoiceItem struct {
	ID          string  `json:"id" db:"id"`
	Description string  `json:"description" db:"description"`
	Quantity    int     `json:"quantity" db:"quantity"`
	UnitPrice   float64 `json:"unitPrice" db:"unit_price"`
}

// Invoice represents a billing document for one patient.
// Total == Subtotal - Discount + Tax holds at creation time; the data
// layer does not recompute totals on later item mutation.
type Invoice struct {
	ID            string        `json:"id" db:"id"`
	InvoiceNumber string        `json:"invoiceNumber" db:"invoice_number"`
	PatientID     string        `json:"patientId" db:"patient_id"`
	IssueDate     string        `json:"issueDate" db:"issue_date"`
	DueDate       string        `json:"dueDate" db:"due_date"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal" db:"subtotal"`
	Tax           float64       `json:"tax" db:"tax"`
	Discount      float64       `json:"discount" db:"discount"`
	Total         float64       `json:"total" db:"total"`
	Status        InvoiceStatus `json:"status" db:"status"`
}

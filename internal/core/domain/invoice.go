package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents an amount billed to a company.
// PaidDate is non-nil if and only if Paid is true.
type Invoice struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"` // FK -> companies.code
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`  // Set at creation, never changed
	PaidDate *time.Time      `json:"paid_date"` // Nullable
}

// InvoiceDetail is an invoice with its owning company embedded.
type InvoiceDetail struct {
	Invoice
	Company Company `json:"company"`
}

// PaymentUpdate is a requested change to an invoice's amount and payment status.
// A nil Paid leaves the payment status (and paid date) as it is.
type PaymentUpdate struct {
	Amt  decimal.Decimal
	Paid *bool
}

// ApplyPayment returns the invoice that results from applying upd to current.
//
//	old paid | requested | paid date
//	false    | false     | unchanged (nil)
//	false    | true      | today
//	true     | false     | nil
//	true     | true      | unchanged
//	any      | omitted   | unchanged
func ApplyPayment(current Invoice, upd PaymentUpdate, today time.Time) Invoice {
	next := current
	next.Amt = upd.Amt

	if upd.Paid == nil {
		return next
	}

	switch requested := *upd.Paid; {
	case requested && !current.Paid:
		d := DateOf(today)
		next.PaidDate = &d
	case !requested && current.Paid:
		next.PaidDate = nil
	}
	next.Paid = *upd.Paid
	return next
}

// HasConsistentPayment reports whether Paid and PaidDate agree.
func (i Invoice) HasConsistentPayment() bool {
	return i.Paid == (i.PaidDate != nil)
}

// DateOf truncates t to midnight UTC of its calendar day in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

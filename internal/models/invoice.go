package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice mirrors a row of the invoices table.
type Invoice struct {
	ID       int64           `db:"id"`
	CompCode string          `db:"comp_code"`
	Amt      decimal.Decimal `db:"amt"`
	Paid     bool            `db:"paid"`
	AddDate  time.Time       `db:"add_date"`
	PaidDate *time.Time      `db:"paid_date"` // Nullable
}

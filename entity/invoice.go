package entity

import (
	"net/http"
	"siigosync/lib/validate"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a sales invoice as the caller builds it before sending to Siigo.
// Dates keep whatever time of day they carry; only the calendar date is sent.
type Invoice struct {
	Document         *Document    `json:"document" validate:"required"`
	Date             time.Time    `json:"date"`
	Customer         *Customer    `json:"customer" validate:"required"`
	Seller           int          `json:"seller"`
	Observations     string       `json:"observations"`
	Items            []*Item      `json:"items" validate:"dive,required"`
	Payments         []*Payment   `json:"payments" validate:"dive,required"`
	GlobalRetentions []*Retention `json:"global_retentions" validate:"dive,required"`
}

func (i *Invoice) Bind(_ *http.Request) error {
	return validate.Struct(i)
}

// Document is the Siigo voucher type the invoice is issued under.
type Document struct {
	ID int `json:"id"`
}

type Customer struct {
	Identification string `json:"identification"`
	BranchOffice   int    `json:"branch_office"`
}

type Item struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Taxes       []*Tax          `json:"taxes" validate:"dive,required"`
}

type Tax struct {
	ID int `json:"id"`
}

type Payment struct {
	ID      int             `json:"id"`
	DueDate time.Time       `json:"due_date"`
	Value   decimal.Decimal `json:"value"`
}

// Retention is a withholding applied to the whole invoice rather than a single item.
type Retention struct {
	ID int `json:"id"`
}

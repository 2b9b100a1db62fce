package siigo

import (
	"encoding/json"
	"siigosync/entity"
	"siigosync/lib/clock"

	"github.com/shopspring/decimal"
)

type InvoicePayload struct {
	Document     DocumentRef        `json:"document"`
	Date         string             `json:"date"`
	Customer     CustomerRef        `json:"customer"`
	Seller       int                `json:"seller"`
	Observations string             `json:"observations"`
	Items        []ItemPayload      `json:"items"`
	Payments     []PaymentPayload   `json:"payments"`
	Retentions   []RetentionPayload `json:"retentions"`
}

type DocumentRef struct {
	ID int `json:"id"`
}

type CustomerRef struct {
	Identification string `json:"identification"`
	BranchOffice   int    `json:"branch_office"`
}

type ItemPayload struct {
	Code        string       `json:"code"`
	Description string       `json:"description"`
	Quantity    json.Number  `json:"quantity"`
	Price       json.Number  `json:"price"`
	Discount    json.Number  `json:"discount"`
	Taxes       []TaxPayload `json:"taxes"`
}

type TaxPayload struct {
	ID int `json:"id"`
}

type PaymentPayload struct {
	ID      int         `json:"id"`
	DueDate string      `json:"due_date"`
	Value   json.Number `json:"value"`
}

type RetentionPayload struct {
	ID int `json:"id"`
}

// MapInvoice builds the request body for invoice create and update calls.
// Collections keep their input order and are never nil, so they encode as [].
func MapInvoice(inv *entity.Invoice) (*InvoicePayload, error) {
	if inv == nil {
		return nil, missing("invoice")
	}
	if inv.Document == nil {
		return nil, missing("document")
	}
	if inv.Customer == nil {
		return nil, missing("customer")
	}

	items := make([]ItemPayload, 0, len(inv.Items))
	for i, item := range inv.Items {
		if item == nil {
			return nil, missing("items[%d]", i)
		}
		taxes := make([]TaxPayload, 0, len(item.Taxes))
		for j, tax := range item.Taxes {
			if tax == nil {
				return nil, missing("items[%d].taxes[%d]", i, j)
			}
			taxes = append(taxes, TaxPayload{ID: tax.ID})
		}
		items = append(items, ItemPayload{
			Code:        item.Code,
			Description: item.Description,
			Quantity:    number(item.Quantity),
			Price:       number(item.Price),
			Discount:    number(item.Discount),
			Taxes:       taxes,
		})
	}

	payments := make([]PaymentPayload, 0, len(inv.Payments))
	for i, p := range inv.Payments {
		if p == nil {
			return nil, missing("payments[%d]", i)
		}
		payments = append(payments, PaymentPayload{
			ID:      p.ID,
			DueDate: clock.Date(p.DueDate),
			Value:   number(p.Value),
		})
	}

	retentions := make([]RetentionPayload, 0, len(inv.GlobalRetentions))
	for i, r := range inv.GlobalRetentions {
		if r == nil {
			return nil, missing("global_retentions[%d]", i)
		}
		retentions = append(retentions, RetentionPayload{ID: r.ID})
	}

	return &InvoicePayload{
		Document: DocumentRef{ID: inv.Document.ID},
		Date:     clock.Date(inv.Date),
		Customer: CustomerRef{
			Identification: inv.Customer.Identification,
			BranchOffice:   inv.Customer.BranchOffice,
		},
		Seller:       inv.Seller,
		Observations: inv.Observations,
		Items:        items,
		Payments:     payments,
		Retentions:   retentions,
	}, nil
}

// number keeps the exact decimal digits and encodes them unquoted
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

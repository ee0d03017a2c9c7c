package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan plan de precios: créditos incluidos por un precio mensual.
// Price en decimal para evitar aritmética binaria sobre dinero.
type Plan struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Credits   int             `json:"credits"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// PricePerCredit precio unitario del crédito en este plan (cero si no incluye créditos).
func (p Plan) PricePerCredit() decimal.Decimal {
	if p.Credits <= 0 {
		return decimal.Zero
	}
	return p.Price.Div(decimal.NewFromInt(int64(p.Credits)))
}

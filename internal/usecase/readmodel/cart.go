package readmodel

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLineRM struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

type CartRM struct {
	Items           []CartLineRM    `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryCharges decimal.Decimal `json:"delivery_charges"`
	Total           decimal.Decimal `json:"total"`
}

package readmodel

import "github.com/shopspring/decimal"

// StoreSettingsRM is the effective store configuration after merging
// store_settings rows over the env defaults.
type StoreSettingsRM struct {
	StoreOpen          bool            `json:"store_open"`
	MinOrderAmount     decimal.Decimal `json:"min_order_amount"`
	BaseDeliveryCharge decimal.Decimal `json:"base_delivery_charge"`
	FreeDeliveryAbove  decimal.Decimal `json:"free_delivery_above"`
}

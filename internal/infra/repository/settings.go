package repository

import (
	"context"
	"log/slog"
	"strconv"

	"biryani-club/internal/infra"
	"biryani-club/internal/pkg/config"
	"biryani-club/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// StoreSettingsRepository serves the effective store policy: env defaults
// overridden by store_settings key/value rows the admin can flip at
// runtime without a redeploy.
type StoreSettingsRepository struct {
	pool *pgxpool.Pool
	cfg  config.StoreConfig
}

func NewStoreSettingsRepository(pool *pgxpool.Pool, cfg config.StoreConfig) *StoreSettingsRepository {
	return &StoreSettingsRepository{pool: pool, cfg: cfg}
}

const (
	settingStoreOpen          = "store_open"
	settingMinOrderAmount     = "min_order_amount"
	settingBaseDeliveryCharge = "base_delivery_charge"
	settingFreeDeliveryAbove  = "free_delivery_above"
)

func (r *StoreSettingsRepository) Effective(ctx context.Context) (*readmodel.StoreSettingsRM, error) {
	rm := &readmodel.StoreSettingsRM{
		StoreOpen:          true,
		MinOrderAmount:     mustDecimal(r.cfg.MinOrderAmount),
		BaseDeliveryCharge: mustDecimal(r.cfg.BaseDeliveryCharge),
		FreeDeliveryAbove:  mustDecimal(r.cfg.FreeDeliveryAbove),
	}

	rows, err := r.pool.Query(ctx, `SELECT key, value FROM store_settings`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load store settings", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, infra.WrapRepoErr("failed to scan store setting", err)
		}
		applySetting(rm, key, value)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read store settings", err)
	}
	return rm, nil
}

func (r *StoreSettingsRepository) SetStoreOpen(ctx context.Context, open bool) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO store_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		settingStoreOpen, strconv.FormatBool(open))
	if err != nil {
		return infra.WrapRepoErr("failed to update store open flag", err)
	}
	return nil
}

// applySetting ignores unknown keys and unparseable values so a bad row
// can never take the storefront down.
func applySetting(rm *readmodel.StoreSettingsRM, key, value string) {
	switch key {
	case settingStoreOpen:
		open, err := strconv.ParseBool(value)
		if err != nil {
			slog.Warn("ignoring invalid store setting", "key", key, "value", value)
			return
		}
		rm.StoreOpen = open
	case settingMinOrderAmount, settingBaseDeliveryCharge, settingFreeDeliveryAbove:
		d, err := decimal.NewFromString(value)
		if err != nil || d.IsNegative() {
			slog.Warn("ignoring invalid store setting", "key", key, "value", value)
			return
		}
		switch key {
		case settingMinOrderAmount:
			rm.MinOrderAmount = d
		case settingBaseDeliveryCharge:
			rm.BaseDeliveryCharge = d
		case settingFreeDeliveryAbove:
			rm.FreeDeliveryAbove = d
		}
	}
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

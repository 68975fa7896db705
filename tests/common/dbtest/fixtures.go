//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, full_name, phone, role, is_active)
		VALUES ($1, $2, $3, 'Test Customer', '9876543210', $4, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestMenuItem(t *testing.T, db DBLike, name, category, price string) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO menu_items (id, name, description, price, category, emoji, is_veg, is_popular, in_stock)
		VALUES ($1, $2, '', $3::numeric, $4, '', false, false, true)`,
		itemID, name, price, category)
	require.NoError(t, err)

	return itemID
}

func CreateTestPromotion(t *testing.T, db DBLike, code, discountType, discountValue string, usageLimit *int) uuid.UUID {
	t.Helper()

	promoID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO promotions (id, code, description, discount_type, discount_value, min_order_amount, usage_limit, is_active)
		VALUES ($1, $2, '', $3, $4::numeric, 0, $5, true)
		ON CONFLICT (code) DO NOTHING`,
		promoID, code, discountType, discountValue, usageLimit)
	require.NoError(t, err)

	return promoID
}

func CreateTestFreeItemPromotion(t *testing.T, db DBLike, code, category string, qty int) uuid.UUID {
	t.Helper()

	promoID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO promotions (id, code, description, discount_type, discount_value, min_order_amount,
			free_item_category, free_item_qty, is_active)
		VALUES ($1, $2, '', 'free_item_category', 0, 0, $3, $4, true)
		ON CONFLICT (code) DO NOTHING`,
		promoID, code, category, qty)
	require.NoError(t, err)

	return promoID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO menu_items (id, name, description, price, category, emoji, is_veg, is_popular, in_stock) VALUES
		    (gen_random_uuid(), 'Chicken Biryani', 'Signature dum biryani', 299, 'Biryani', '', false, true, true),
		    (gen_random_uuid(), 'Veg Biryani', 'Seasonal vegetables', 249, 'Biryani', '', true, false, true),
		    (gen_random_uuid(), 'Gulab Jamun', 'Two pieces', 49, 'Desserts', '', true, false, true)
		ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

package repository

import (
	"context"
	"time"

	"biryani-club/internal/domain/order"
	"biryani-club/internal/infra"
	"biryani-club/internal/infra/db"
	"biryani-club/internal/pkg/pgconv"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, qx db.Queryer, o *order.Order) error {
	if qx == nil {
		qx = r.pool
	}

	_, err := qx.Exec(ctx, `
		INSERT INTO orders (
			id, order_number, user_id, customer_name, customer_phone, delivery_address,
			subtotal, delivery_charges, discount, total_amount, coupon_code,
			payment_method, payment_status, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		o.ID(), o.Number(), o.UserID(), o.CustomerName(), o.CustomerPhone(),
		o.DeliveryAddress(), o.Subtotal(), o.DeliveryCharges(), o.Discount(),
		o.TotalAmount(), o.CouponCode(), o.PaymentMethod().String(),
		string(o.PaymentStatus()), o.Status().String(), o.CreatedAt())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("order number collision", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, item := range o.Items() {
		_, err := qx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, menu_item_id, name, unit_price, quantity, total_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.New(), o.ID(), item.MenuItemID, item.Name, item.UnitPrice, item.Quantity, item.TotalPrice)
		if err != nil {
			if pgconv.IsForeignKeyViolation(err) {
				return infra.WrapRepoErr("order item references missing menu item", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}

const orderColumns = `
	id, order_number, user_id, customer_name, customer_phone, delivery_address,
	subtotal, delivery_charges, discount, total_amount, coupon_code,
	payment_method, payment_status, status, delivery_person_id,
	created_at, delivered_at, cancelled_at`

func (r *OrderRepository) FindByNumber(ctx context.Context, number string) (*readmodel.OrderRM, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE order_number = $1`, number)

	var rm readmodel.OrderRM
	if err := row.Scan(
		&rm.ID, &rm.Number, &rm.UserID, &rm.CustomerName, &rm.CustomerPhone,
		&rm.DeliveryAddress, &rm.Subtotal, &rm.DeliveryCharges, &rm.Discount,
		&rm.TotalAmount, &rm.CouponCode, &rm.PaymentMethod, &rm.PaymentStatus,
		&rm.Status, &rm.DeliveryPersonID, &rm.CreatedAt, &rm.DeliveredAt, &rm.CancelledAt,
	); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by number", err)
	}
	rm.Progress = order.Status(rm.Status).Progress()

	items, err := r.findItems(ctx, rm.ID)
	if err != nil {
		return nil, err
	}
	rm.Items = items
	return &rm, nil
}

func (r *OrderRepository) FindEntityByNumber(ctx context.Context, number string) (*order.Order, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE order_number = $1`, number)

	var (
		id               uuid.UUID
		orderNumber      string
		userID           *uuid.UUID
		customerName     string
		customerPhone    string
		deliveryAddress  string
		subtotal         decimal.Decimal
		deliveryCharges  decimal.Decimal
		discount         decimal.Decimal
		totalAmount      decimal.Decimal
		couponCode       *string
		paymentMethod    string
		paymentStatus    string
		status           string
		deliveryPersonID *uuid.UUID
		createdAt        time.Time
		deliveredAt      *time.Time
		cancelledAt      *time.Time
	)
	if err := row.Scan(
		&id, &orderNumber, &userID, &customerName, &customerPhone, &deliveryAddress,
		&subtotal, &deliveryCharges, &discount, &totalAmount, &couponCode,
		&paymentMethod, &paymentStatus, &status, &deliveryPersonID,
		&createdAt, &deliveredAt, &cancelledAt,
	); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by number", err)
	}

	itemRMs, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	items := make([]order.Item, 0, len(itemRMs))
	for _, it := range itemRMs {
		items = append(items, order.Item{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
			TotalPrice: it.TotalPrice,
		})
	}

	return order.Reconstruct(
		id, orderNumber, userID, customerName, customerPhone, deliveryAddress,
		items, subtotal, deliveryCharges, discount, totalAmount, couponCode,
		order.PaymentMethod(paymentMethod), order.PaymentStatus(paymentStatus),
		order.Status(status), deliveryPersonID, createdAt, deliveredAt, cancelledAt,
	), nil
}

func (r *OrderRepository) findItems(ctx context.Context, orderID uuid.UUID) ([]readmodel.OrderItemRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT menu_item_id, name, unit_price, quantity, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY name`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order items", err)
	}
	defer rows.Close()

	var items []readmodel.OrderItemRM
	for rows.Next() {
		var it readmodel.OrderItemRM
		if err := rows.Scan(&it.MenuItemID, &it.Name, &it.UnitPrice, &it.Quantity, &it.TotalPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order items", err)
	}
	return items, nil
}

const orderListQuery = `
	SELECT o.id, o.order_number, o.status, o.total_amount,
		(SELECT coalesce(sum(oi.quantity), 0) FROM order_items oi WHERE oi.order_id = o.id),
		o.created_at
	FROM orders o`

func (r *OrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.OrderListRM, error) {
	rows, err := r.pool.Query(ctx, orderListQuery+`
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user orders", err)
	}
	return scanOrderList(rows)
}

func (r *OrderRepository) List(ctx context.Context, status *order.Status) ([]*readmodel.OrderListRM, error) {
	if status != nil {
		rows, err := r.pool.Query(ctx, orderListQuery+`
			WHERE o.status = $1
			ORDER BY o.created_at DESC`, status.String())
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list orders", err)
		}
		return scanOrderList(rows)
	}

	rows, err := r.pool.Query(ctx, orderListQuery+` ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	return scanOrderList(rows)
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, qx db.Queryer, id uuid.UUID, status order.Status, at time.Time) error {
	if qx == nil {
		qx = r.pool
	}

	var tag string
	switch status {
	case order.StatusCancelled:
		tag = "cancelled_at"
	case order.StatusDelivered:
		tag = "delivered_at"
	}

	query := `UPDATE orders SET status = $2 WHERE id = $1`
	if tag != "" {
		query = `UPDATE orders SET status = $2, ` + tag + ` = $3 WHERE id = $1`
	}

	var err error
	if tag != "" {
		_, err = qx.Exec(ctx, query, id, status.String(), at)
	} else {
		_, err = qx.Exec(ctx, query, id, status.String())
	}
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	return nil
}

// Delivery-side queries.

func (r *OrderRepository) FindAvailable(ctx context.Context) ([]*readmodel.OrderListRM, error) {
	rows, err := r.pool.Query(ctx, orderListQuery+`
		WHERE o.status IN ('confirmed', 'preparing') AND o.delivery_person_id IS NULL
		ORDER BY o.created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available orders", err)
	}
	return scanOrderList(rows)
}

func (r *OrderRepository) FindAssigned(ctx context.Context, personID uuid.UUID) ([]*readmodel.OrderListRM, error) {
	rows, err := r.pool.Query(ctx, orderListQuery+`
		WHERE o.delivery_person_id = $1 AND o.status IN ('preparing', 'out_for_delivery')
		ORDER BY o.created_at`, personID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assigned orders", err)
	}
	return scanOrderList(rows)
}

// Claim also moves a confirmed order into preparing: the kitchen
// starts once a rider commits to the run.
func (r *OrderRepository) Claim(ctx context.Context, orderID, personID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders
		SET delivery_person_id = $2, status = 'preparing'
		WHERE id = $1 AND delivery_person_id IS NULL AND status IN ('confirmed', 'preparing')`,
		orderID, personID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim order", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OrderRepository) MarkPickedUp(ctx context.Context, orderID, personID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders
		SET status = 'out_for_delivery'
		WHERE id = $1 AND delivery_person_id = $2 AND status = 'preparing'`,
		orderID, personID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark order picked up", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not in a pickable state", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) MarkDelivered(ctx context.Context, orderID, personID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders
		SET status = 'delivered', payment_status = 'paid', delivered_at = now()
		WHERE id = $1 AND delivery_person_id = $2 AND status = 'out_for_delivery'`,
		orderID, personID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark order delivered", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not in a deliverable state", nil, infra.KindNotFound)
	}
	return nil
}

func scanOrderList(rows pgx.Rows) ([]*readmodel.OrderListRM, error) {
	defer rows.Close()

	var orders []*readmodel.OrderListRM
	for rows.Next() {
		var o readmodel.OrderListRM
		if err := rows.Scan(&o.ID, &o.Number, &o.Status, &o.TotalAmount, &o.ItemCount, &o.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}
	return orders, nil
}

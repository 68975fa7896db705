package usecase

import (
	"context"
	"errors"

	"biryani-club/internal/domain/order"
	"biryani-club/internal/infra"
	"biryani-club/internal/pkg/errs"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrOrderAlreadyClaimed = errors.New("order already claimed by another delivery person")
	ErrNotAssignedToOrder  = errors.New("order is not assigned to this delivery person")
)

type DeliveryOrderRepository interface {
	// FindAvailable lists unassigned orders that are confirmed or
	// already in the kitchen.
	FindAvailable(ctx context.Context) ([]*readmodel.OrderListRM, error)
	FindAssigned(ctx context.Context, personID uuid.UUID) ([]*readmodel.OrderListRM, error)
	// Claim assigns the order only while it is still unassigned,
	// moving a confirmed order to preparing, and reports whether the
	// claim won.
	Claim(ctx context.Context, orderID, personID uuid.UUID) (bool, error)
	MarkPickedUp(ctx context.Context, orderID, personID uuid.UUID) error
	MarkDelivered(ctx context.Context, orderID, personID uuid.UUID) error
}

type DeliveryUseCase interface {
	AvailableOrders(ctx context.Context) ([]*readmodel.OrderListRM, error)
	AssignedOrders(ctx context.Context, personID uuid.UUID) ([]*readmodel.OrderListRM, error)
	ClaimOrder(ctx context.Context, number string, personID uuid.UUID) error
	PickupOrder(ctx context.Context, number string, personID uuid.UUID) error
	CompleteOrder(ctx context.Context, number string, personID uuid.UUID) error
}

type deliveryUseCaseImpl struct {
	deliveryRepo DeliveryOrderRepository
	orderRepo    OrderRepository
}

func NewDeliveryUseCase(
	deliveryRepo DeliveryOrderRepository,
	orderRepo OrderRepository,
) DeliveryUseCase {
	return &deliveryUseCaseImpl{
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
	}
}

func (d *deliveryUseCaseImpl) AvailableOrders(ctx context.Context) ([]*readmodel.OrderListRM, error) {
	orders, err := d.deliveryRepo.FindAvailable(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list available orders")
	}
	return orders, nil
}

func (d *deliveryUseCaseImpl) AssignedOrders(ctx context.Context, personID uuid.UUID) ([]*readmodel.OrderListRM, error) {
	orders, err := d.deliveryRepo.FindAssigned(ctx, personID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list assigned orders")
	}
	return orders, nil
}

func (d *deliveryUseCaseImpl) ClaimOrder(ctx context.Context, number string, personID uuid.UUID) error {
	o, err := d.findOrder(ctx, number)
	if err != nil {
		return err
	}

	claimed, err := d.deliveryRepo.Claim(ctx, o.ID(), personID)
	if err != nil {
		return errs.Wrap(err, "failed to claim order")
	}
	if !claimed {
		return ErrOrderAlreadyClaimed
	}
	return nil
}

func (d *deliveryUseCaseImpl) PickupOrder(ctx context.Context, number string, personID uuid.UUID) error {
	o, err := d.findOrder(ctx, number)
	if err != nil {
		return err
	}

	if !d.assignedTo(o, personID) {
		return ErrNotAssignedToOrder
	}
	if !o.Status().CanTransitionTo(order.StatusOutForDelivery) {
		return order.ErrInvalidTransition
	}

	if err := d.deliveryRepo.MarkPickedUp(ctx, o.ID(), personID); err != nil {
		return errs.Wrap(err, "failed to mark order picked up")
	}
	return nil
}

// CompleteOrder marks delivery done. Cash orders are considered paid on
// handover.
func (d *deliveryUseCaseImpl) CompleteOrder(ctx context.Context, number string, personID uuid.UUID) error {
	o, err := d.findOrder(ctx, number)
	if err != nil {
		return err
	}

	if !d.assignedTo(o, personID) {
		return ErrNotAssignedToOrder
	}
	if !o.Status().CanTransitionTo(order.StatusDelivered) {
		return order.ErrInvalidTransition
	}

	if err := d.deliveryRepo.MarkDelivered(ctx, o.ID(), personID); err != nil {
		return errs.Wrap(err, "failed to mark order delivered")
	}
	return nil
}

func (d *deliveryUseCaseImpl) findOrder(ctx context.Context, number string) (*order.Order, error) {
	o, err := d.orderRepo.FindEntityByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}
	return o, nil
}

func (d *deliveryUseCaseImpl) assignedTo(o *order.Order, personID uuid.UUID) bool {
	return o.DeliveryPersonID() != nil && *o.DeliveryPersonID() == personID
}

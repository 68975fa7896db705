package usecase

import (
	"context"
	"errors"
	"fmt"

	"biryani-club/internal/domain/promotion"
	"biryani-club/internal/infra"
	"biryani-club/internal/pkg/clock"
	"biryani-club/internal/pkg/errs"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrCouponInactive    = errors.New("coupon is inactive")
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponExhausted   = errors.New("coupon usage limit reached")
	ErrCouponAlreadyUsed = errors.New("coupon already used by this user")
	ErrBelowMinimumOrder = errors.New("order below coupon minimum")
)

type PromotionRepository interface {
	FindByCode(ctx context.Context, code promotion.Code) (*promotion.Promotion, error)
	FindActiveOffers(ctx context.Context, limit int) ([]*readmodel.OfferRM, error)
}

type CouponUsageRepository interface {
	ExistsForUser(ctx context.Context, userID uuid.UUID, promotionID uuid.UUID) (bool, error)
}

type PromotionUseCase interface {
	ValidateCoupon(ctx context.Context, code string, subtotal decimal.Decimal, lines []promotion.CartLine, userID *uuid.UUID) (*readmodel.CouponValidationRM, error)
	ResolveCoupon(ctx context.Context, code promotion.Code, subtotal decimal.Decimal, userID *uuid.UUID) (*promotion.Promotion, error)
	ActiveOffers(ctx context.Context) ([]*readmodel.OfferRM, error)
}

type promotionUseCaseImpl struct {
	promotionRepo PromotionRepository
	usageRepo     CouponUsageRepository
	clock         clock.Clock
	offersLimit   int
}

func NewPromotionUseCase(
	promotionRepo PromotionRepository,
	usageRepo CouponUsageRepository,
	clock clock.Clock,
	offersLimit int,
) PromotionUseCase {
	return &promotionUseCaseImpl{
		promotionRepo: promotionRepo,
		usageRepo:     usageRepo,
		clock:         clock,
		offersLimit:   offersLimit,
	}
}

// ValidateCoupon is the read-only preview path. It never mutates
// times_used and never writes a usage row; business rejections come
// back as a negative result with a message, not an error.
func (p *promotionUseCaseImpl) ValidateCoupon(
	ctx context.Context,
	code string,
	subtotal decimal.Decimal,
	lines []promotion.CartLine,
	userID *uuid.UUID,
) (*readmodel.CouponValidationRM, error) {
	reject := func(code, message string) *readmodel.CouponValidationRM {
		return &readmodel.CouponValidationRM{
			Valid:    false,
			Code:     code,
			Message:  message,
			Discount: decimal.Zero,
			NewTotal: subtotal,
		}
	}

	promoCode, err := promotion.NewCode(code)
	if err != nil {
		return reject(code, "Coupon not found"), nil
	}

	promo, err := p.ResolveCoupon(ctx, promoCode, subtotal, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrCouponNotFound):
			return reject(promoCode.String(), "Coupon not found"), nil
		case errors.Is(err, ErrCouponInactive):
			return reject(promoCode.String(), "This coupon is no longer active"), nil
		case errors.Is(err, ErrCouponExpired):
			return reject(promoCode.String(), "This coupon has expired"), nil
		case errors.Is(err, ErrCouponExhausted):
			return reject(promoCode.String(), "This coupon has reached its usage limit"), nil
		case errors.Is(err, ErrCouponAlreadyUsed):
			return reject(promoCode.String(), "You have already used this coupon"), nil
		case errors.Is(err, ErrBelowMinimumOrder):
			_, shortfall := promo.MeetsMinimum(subtotal)
			return reject(promoCode.String(), fmt.Sprintf("Add items worth ₹%s more to use this coupon", shortfall)), nil
		default:
			return nil, err
		}
	}

	result := promo.CalculateDiscount(subtotal, lines)
	message := "Coupon applied"
	if result.Type == promotion.DiscountFreeItemCategory && result.FreeQty == 0 {
		message = fmt.Sprintf("Add %s items to your cart to enjoy this offer", result.Category)
	}

	return &readmodel.CouponValidationRM{
		Valid:    true,
		Code:     promoCode.String(),
		Message:  message,
		Discount: result.Amount,
		NewTotal: subtotal.Sub(result.Amount),
	}, nil
}

// ResolveCoupon runs the full redeemability check shared by the
// preview and checkout paths: existence, validity reason ordering,
// per-user dedup, minimum order. Guests (nil userID) are never
// deduplicated.
func (p *promotionUseCaseImpl) ResolveCoupon(
	ctx context.Context,
	code promotion.Code,
	subtotal decimal.Decimal,
	userID *uuid.UUID,
) (*promotion.Promotion, error) {
	promo, err := p.promotionRepo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "failed to find promotion")
	}

	if err := promo.ValidateUsage(p.clock.Now()); err != nil {
		switch {
		case errors.Is(err, promotion.ErrInactive):
			return nil, ErrCouponInactive
		case errors.Is(err, promotion.ErrExpired):
			return nil, ErrCouponExpired
		default:
			return nil, ErrCouponExhausted
		}
	}

	if userID != nil {
		used, err := p.usageRepo.ExistsForUser(ctx, *userID, promo.ID())
		if err != nil {
			return nil, errs.Wrap(err, "failed to check coupon usage")
		}
		if used {
			return nil, ErrCouponAlreadyUsed
		}
	}

	if ok, _ := promo.MeetsMinimum(subtotal); !ok {
		// The promotion is returned alongside the error so callers can
		// report the shortfall.
		return promo, ErrBelowMinimumOrder
	}

	return promo, nil
}

func (p *promotionUseCaseImpl) ActiveOffers(ctx context.Context) ([]*readmodel.OfferRM, error) {
	offers, err := p.promotionRepo.FindActiveOffers(ctx, p.offersLimit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active offers")
	}
	return offers, nil
}

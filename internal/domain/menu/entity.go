package menu

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidName  = errors.New("menu item name is required")
	ErrInvalidPrice = errors.New("menu item price must be positive")
)

// Item is a sellable menu entry. Category strings double as the match
// key for free-item promotions, so they are trimmed but otherwise kept
// as the admin entered them.
type Item struct {
	id          uuid.UUID
	name        string
	description string
	price       decimal.Decimal
	category    string
	emoji       string
	isVeg       bool
	isPopular   bool
	inStock     bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(name, description string, price decimal.Decimal, category, emoji string, isVeg bool) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	return &Item{
		id:          uuid.New(),
		name:        name,
		description: description,
		price:       price,
		category:    strings.TrimSpace(category),
		emoji:       emoji,
		isVeg:       isVeg,
		inStock:     true,
	}, nil
}

func (i *Item) ID() uuid.UUID          { return i.id }
func (i *Item) Name() string           { return i.name }
func (i *Item) Description() string    { return i.description }
func (i *Item) Price() decimal.Decimal { return i.price }
func (i *Item) Category() string       { return i.category }
func (i *Item) Emoji() string          { return i.emoji }
func (i *Item) IsVeg() bool            { return i.isVeg }
func (i *Item) IsPopular() bool        { return i.isPopular }
func (i *Item) InStock() bool          { return i.inStock }
func (i *Item) CreatedAt() time.Time   { return i.createdAt }
func (i *Item) UpdatedAt() time.Time   { return i.updatedAt }

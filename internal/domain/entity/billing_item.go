package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-clinic-scheduling/pkg/apperr"
)

// BillingItem is a standalone charge line with no relationship to the other
// entities. Mutation goes through the same validated setters the constructor
// uses.
type BillingItem struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewBillingItem(description string, amount decimal.Decimal, now time.Time) (*BillingItem, error) {
	item := &BillingItem{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.SetDescription(description); err != nil {
		return nil, err
	}
	if err := item.SetAmount(amount); err != nil {
		return nil, err
	}
	return item, nil
}

func (b *BillingItem) SetDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return apperr.NewValidation("billing description is required")
	}
	b.Description = description
	return nil
}

func (b *BillingItem) SetAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return apperr.NewValidation("billing amount must be greater than zero")
	}
	b.Amount = amount
	return nil
}

// Render formats the item as a charge line, e.g. "Blood Test: $150.00".
func (b *BillingItem) Render() string {
	return fmt.Sprintf("%s: $%s", b.Description, b.Amount.StringFixed(2))
}

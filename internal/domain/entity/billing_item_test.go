package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-clinic-scheduling/pkg/apperr"
)

func TestNewBillingItem(t *testing.T) {
	tests := []struct {
		name        string
		description string
		amount      decimal.Decimal
		wantErr     bool
	}{
		{"valid", "Blood Test", decimal.NewFromInt(150), false},
		{"empty description", "", decimal.NewFromInt(150), true},
		{"whitespace description", "   ", decimal.NewFromInt(150), true},
		{"zero amount", "Blood Test", decimal.Zero, true},
		{"negative amount", "Blood Test", decimal.NewFromInt(-10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewBillingItem(tt.description, tt.amount, testNow)
			if tt.wantErr {
				assert.Nil(t, item)
				assert.True(t, apperr.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.description, item.Description)
			assert.True(t, tt.amount.Equal(item.Amount))
		})
	}
}

func TestBillingItemRender(t *testing.T) {
	item, err := NewBillingItem("Blood Test", decimal.NewFromFloat(150.00), testNow)
	require.NoError(t, err)
	assert.Equal(t, "Blood Test: $150.00", item.Render())

	item, err = NewBillingItem("Consultation", decimal.NewFromFloat(99.5), testNow)
	require.NoError(t, err)
	assert.Equal(t, "Consultation: $99.50", item.Render())
}

func TestBillingItemSettersLeaveValueOnFailure(t *testing.T) {
	item, err := NewBillingItem("Blood Test", decimal.NewFromInt(150), testNow)
	require.NoError(t, err)

	assert.True(t, apperr.IsValidation(item.SetDescription(" ")))
	assert.Equal(t, "Blood Test", item.Description)

	assert.True(t, apperr.IsValidation(item.SetAmount(decimal.NewFromInt(-1))))
	assert.True(t, decimal.NewFromInt(150).Equal(item.Amount))

	require.NoError(t, item.SetAmount(decimal.NewFromInt(200)))
	assert.Equal(t, "Blood Test: $200.00", item.Render())
}

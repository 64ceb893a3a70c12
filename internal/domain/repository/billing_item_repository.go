package repository

import (
	"github.com/google/uuid"

	"go-clinic-scheduling/internal/domain/entity"
)

type BillingItemRepository interface {
	Save(item *entity.BillingItem) error
	FindByID(id uuid.UUID) (*entity.BillingItem, error)
	FindAll() ([]*entity.BillingItem, error)
}

package repository

import (
	"github.com/google/uuid"

	"go-clinic-scheduling/internal/domain/entity"
	domainRepo "go-clinic-scheduling/internal/domain/repository"
)

type billingItemRepository struct {
	byID  map[uuid.UUID]*entity.BillingItem
	order []uuid.UUID
}

func NewBillingItemRepository() domainRepo.BillingItemRepository {
	return &billingItemRepository{byID: make(map[uuid.UUID]*entity.BillingItem)}
}

func (r *billingItemRepository) Save(item *entity.BillingItem) error {
	if _, exists := r.byID[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.byID[item.ID] = item
	return nil
}

func (r *billingItemRepository) FindByID(id uuid.UUID) (*entity.BillingItem, error) {
	item, exists := r.byID[id]
	if !exists {
		return nil, nil
	}
	return item, nil
}

func (r *billingItemRepository) FindAll() ([]*entity.BillingItem, error) {
	items := make([]*entity.BillingItem, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.byID[id])
	}
	return items, nil
}

package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-clinic-scheduling/internal/converter"
	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/domain/entity"
	"go-clinic-scheduling/internal/domain/repository"
	"go-clinic-scheduling/pkg/validator"
)

var ErrBillingItemNotFound = errors.New("billing item not found")

type BillingUsecase interface {
	CreateBillingItem(req *dto.CreateBillingItemRequest) (*dto.BillingItemResponse, error)
	UpdateBillingItem(itemID uuid.UUID, req *dto.UpdateBillingItemRequest) (*dto.BillingItemResponse, error)
	GetBillingItem(itemID uuid.UUID) (*dto.BillingItemResponse, error)
	ListBillingItems() (*dto.BillingItemListResponse, error)
}

type billingUsecase struct {
	log         *logrus.Logger
	validator   *validator.CustomValidator
	billingRepo repository.BillingItemRepository
	now         func() time.Time
}

func NewBillingUsecase(
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	billingRepo repository.BillingItemRepository,
	now func() time.Time,
) BillingUsecase {
	return &billingUsecase{
		log:         log,
		validator:   customValidator,
		billingRepo: billingRepo,
		now:         now,
	}
}

func (u *billingUsecase) CreateBillingItem(req *dto.CreateBillingItemRequest) (*dto.BillingItemResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	item, err := entity.NewBillingItem(req.Description, req.Amount, u.now())
	if err != nil {
		u.log.Warnf("Failed to create billing item: %v", err)
		return nil, err
	}

	if err := u.billingRepo.Save(item); err != nil {
		return nil, err
	}

	u.log.Infof("Billing item created: id=%s, line=%s", item.ID, item.Render())
	return converter.BillingItemToResponse(item), nil
}

// UpdateBillingItem mutates both fields through the same validated setters the
// constructor uses; the item is untouched if either check fails.
func (u *billingUsecase) UpdateBillingItem(itemID uuid.UUID, req *dto.UpdateBillingItemRequest) (*dto.BillingItemResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	item, err := u.billingRepo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrBillingItemNotFound
	}

	updated := *item
	if err := updated.SetDescription(req.Description); err != nil {
		return nil, err
	}
	if err := updated.SetAmount(req.Amount); err != nil {
		return nil, err
	}
	updated.UpdatedAt = u.now()

	*item = updated
	if err := u.billingRepo.Save(item); err != nil {
		return nil, err
	}

	u.log.Infof("Billing item updated: id=%s, line=%s", item.ID, item.Render())
	return converter.BillingItemToResponse(item), nil
}

func (u *billingUsecase) GetBillingItem(itemID uuid.UUID) (*dto.BillingItemResponse, error) {
	item, err := u.billingRepo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrBillingItemNotFound
	}
	return converter.BillingItemToResponse(item), nil
}

func (u *billingUsecase) ListBillingItems() (*dto.BillingItemListResponse, error) {
	items, err := u.billingRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return &dto.BillingItemListResponse{
		Items: converter.BillingItemsToResponses(items),
		Total: len(items),
	}, nil
}

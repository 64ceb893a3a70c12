package converter

import (
	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/domain/entity"
)

// BillingItemToResponse converts a BillingItem entity to BillingItemResponse DTO.
func BillingItemToResponse(item *entity.BillingItem) *dto.BillingItemResponse {
	if item == nil {
		return nil
	}

	return &dto.BillingItemResponse{
		ID:          item.ID,
		Description: item.Description,
		Amount:      item.Amount,
		Rendered:    item.Render(),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// BillingItemsToResponses converts a slice of BillingItem entities to response DTOs.
func BillingItemsToResponses(items []*entity.BillingItem) []dto.BillingItemResponse {
	responses := make([]dto.BillingItemResponse, 0, len(items))
	for _, item := range items {
		if resp := BillingItemToResponse(item); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}

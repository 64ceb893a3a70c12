package converter

import (
	"time"

	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO. The
// derived age fields depend on the current time, so it is passed in.
func PatientToResponse(patient *entity.Patient, now time.Time) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	history := make([]string, len(patient.MedicalHistory))
	copy(history, patient.MedicalHistory)

	return &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		DateOfBirth:    patient.DateOfBirth,
		Age:            patient.Age(now),
		IsMinor:        patient.IsMinor(now),
		MedicalHistory: history,
		MedicalSummary: patient.FullMedicalSummary(),
		CreatedAt:      patient.CreatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs.
func PatientsToResponses(patients []*entity.Patient, now time.Time) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for _, patient := range patients {
		if resp := PatientToResponse(patient, now); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}

package converter

import (
	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                doctor.ID,
		Name:              doctor.Name,
		Specialization:    doctor.Specialization,
		TotalAppointments: doctor.TotalAppointments(),
		ScheduleIDs:       doctor.Schedule(),
		CreatedAt:         doctor.CreatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs.
func DoctorsToResponses(doctors []*entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		if resp := DoctorToResponse(doctor); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}

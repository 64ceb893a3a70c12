package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterDoctorRequest struct {
	Name           string `json:"name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Specialization    string      `json:"specialization"`
	TotalAppointments int         `json:"total_appointments"`
	ScheduleIDs       []uuid.UUID `json:"schedule_ids,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

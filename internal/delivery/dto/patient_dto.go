package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	Name        string    `json:"name" validate:"required"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required"`
}

type AddMedicalEntryRequest struct {
	Text string `json:"text" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	Age            int       `json:"age"`
	IsMinor        bool      `json:"is_minor"`
	MedicalHistory []string  `json:"medical_history,omitempty"`
	MedicalSummary string    `json:"medical_summary"`
	CreatedAt      time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"go-clinic-scheduling/pkg/apperr"
)

const minorAgeLimit = 18

const historyDateLayout = "2006-01-02"

// Patient represents a clinic patient record. Name and DateOfBirth are fixed at
// registration; the medical history is append-only.
type Patient struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	MedicalHistory []string  `json:"medical_history,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewPatient(name string, dateOfBirth, now time.Time) (*Patient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.NewValidation("patient name is required")
	}
	if dateOfBirth.After(now) {
		return nil, apperr.NewValidation("date of birth cannot be in the future")
	}

	return &Patient{
		ID:          uuid.New(),
		Name:        name,
		DateOfBirth: dateOfBirth,
		CreatedAt:   now,
	}, nil
}

// AddMedicalEntry appends a dated entry to the medical history. The history is
// left untouched when validation fails.
func (p *Patient) AddMedicalEntry(text string, now time.Time) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return apperr.NewValidation("medical history entry cannot be empty")
	}

	p.MedicalHistory = append(p.MedicalHistory, now.Format(historyDateLayout)+": "+text)
	return nil
}

// Age returns full years since the date of birth, recomputed on every call so
// it stays correct as the clock advances.
func (p *Patient) Age(now time.Time) int {
	days := int(now.Sub(p.DateOfBirth).Hours() / 24)
	return days / 365
}

func (p *Patient) IsMinor(now time.Time) bool {
	return p.Age(now) < minorAgeLimit
}

// FullMedicalSummary joins the history entries in insertion order.
func (p *Patient) FullMedicalSummary() string {
	if len(p.MedicalHistory) == 0 {
		return "No medical history recorded"
	}
	return strings.Join(p.MedicalHistory, "; ")
}

package entity

import (
	"time"

	"github.com/google/uuid"

	"go-clinic-scheduling/pkg/apperr"
)

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
)

// Appointment links a patient and a doctor to a time slot. Transitions between
// statuses are not restricted; cancellation does not remove the appointment
// from the doctor's schedule index.
type Appointment struct {
	ID        uuid.UUID         `json:"id"`
	PatientID uuid.UUID         `json:"patient_id"`
	DoctorID  uuid.UUID         `json:"doctor_id"`
	Date      time.Time         `json:"date"`
	Status    AppointmentStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewAppointment constructs a scheduled appointment. Date validation happens
// in the scheduling usecase before this is called.
func NewAppointment(patientID, doctorID uuid.UUID, date, now time.Time) *Appointment {
	return &Appointment{
		ID:        uuid.New(),
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Status:    AppointmentStatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Reschedule commits a new date and marks the appointment rescheduled. Only
// called after the full date validation pipeline has passed.
func (a *Appointment) Reschedule(date, now time.Time) {
	a.Date = date
	a.Status = AppointmentStatusRescheduled
	a.UpdatedAt = now
}

// Cancel marks the appointment cancelled. It never fails, regardless of the
// current status or date.
func (a *Appointment) Cancel(now time.Time) {
	a.Status = AppointmentStatusCancelled
	a.UpdatedAt = now
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// ValidateFutureDate rejects dates before the given current time.
func ValidateFutureDate(date, now time.Time) error {
	if date.Before(now) {
		return apperr.NewValidation("date must be in the future")
	}
	return nil
}

// ValidateBusinessDay rejects the clinic's non-operating days.
func ValidateBusinessDay(date time.Time) error {
	weekday := date.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return apperr.NewValidation("no weekend appointments")
	}
	return nil
}

package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"go-clinic-scheduling/pkg/apperr"
)

// Doctor represents a practitioner. ScheduleIDs is a back-reference index into
// the appointment store: it records booking order but does not own the
// appointments themselves.
type Doctor struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Specialization string      `json:"specialization"`
	ScheduleIDs    []uuid.UUID `json:"schedule_ids,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

func NewDoctor(name, specialization string, now time.Time) (*Doctor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.NewValidation("doctor name is required")
	}
	specialization = strings.TrimSpace(specialization)
	if specialization == "" {
		return nil, apperr.NewValidation("doctor specialization is required")
	}

	return &Doctor{
		ID:             uuid.New(),
		Name:           name,
		Specialization: specialization,
		CreatedAt:      now,
	}, nil
}

// AddToSchedule appends an appointment ID to the schedule index. Called once
// per appointment, at booking time only.
func (d *Doctor) AddToSchedule(appointmentID uuid.UUID) {
	d.ScheduleIDs = append(d.ScheduleIDs, appointmentID)
}

// Schedule returns a copy of the schedule index in booking order.
func (d *Doctor) Schedule() []uuid.UUID {
	schedule := make([]uuid.UUID, len(d.ScheduleIDs))
	copy(schedule, d.ScheduleIDs)
	return schedule
}

// TotalAppointments counts every schedule entry, cancelled ones included.
func (d *Doctor) TotalAppointments() int {
	return len(d.ScheduleIDs)
}

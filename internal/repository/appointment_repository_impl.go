package repository

import (
	"github.com/google/uuid"

	"go-clinic-scheduling/internal/domain/entity"
	domainRepo "go-clinic-scheduling/internal/domain/repository"
)

type appointmentRepository struct {
	byID  map[uuid.UUID]*entity.Appointment
	order []uuid.UUID
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{byID: make(map[uuid.UUID]*entity.Appointment)}
}

func (r *appointmentRepository) Save(appointment *entity.Appointment) error {
	if _, exists := r.byID[appointment.ID]; !exists {
		r.order = append(r.order, appointment.ID)
	}
	r.byID[appointment.ID] = appointment
	return nil
}

func (r *appointmentRepository) FindByID(id uuid.UUID) (*entity.Appointment, error) {
	appointment, exists := r.byID[id]
	if !exists {
		return nil, nil
	}
	return appointment, nil
}

func (r *appointmentRepository) FindByIDs(ids []uuid.UUID) ([]*entity.Appointment, error) {
	appointments := make([]*entity.Appointment, 0, len(ids))
	for _, id := range ids {
		if appointment, exists := r.byID[id]; exists {
			appointments = append(appointments, appointment)
		}
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll() ([]*entity.Appointment, error) {
	appointments := make([]*entity.Appointment, 0, len(r.order))
	for _, id := range r.order {
		appointments = append(appointments, r.byID[id])
	}
	return appointments, nil
}

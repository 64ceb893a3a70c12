package repository

import (
	"github.com/google/uuid"

	"go-clinic-scheduling/internal/domain/entity"
)

type AppointmentRepository interface {
	Save(appointment *entity.Appointment) error
	FindByID(id uuid.UUID) (*entity.Appointment, error)
	// FindByIDs resolves a schedule index, preserving input order and skipping
	// unknown IDs.
	FindByIDs(ids []uuid.UUID) ([]*entity.Appointment, error)
	FindAll() ([]*entity.Appointment, error)
}

package repository

import (
	"github.com/google/uuid"

	"go-clinic-scheduling/internal/domain/entity"
)

type DoctorRepository interface {
	Save(doctor *entity.Doctor) error
	FindByID(id uuid.UUID) (*entity.Doctor, error)
	FindAll() ([]*entity.Doctor, error)
}

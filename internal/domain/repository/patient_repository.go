package repository

import (
	"github.com/google/uuid"

	"go-clinic-scheduling/internal/domain/entity"
)

type PatientRepository interface {
	Save(patient *entity.Patient) error
	FindByID(id uuid.UUID) (*entity.Patient, error)
	FindAll() ([]*entity.Patient, error)
}

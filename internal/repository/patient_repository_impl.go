package repository

import (
	"github.com/google/uuid"

	"go-clinic-scheduling/internal/domain/entity"
	domainRepo "go-clinic-scheduling/internal/domain/repository"
)

// patientRepository is an in-memory arena store. Entities live here; other
// entities refer to them by ID.
type patientRepository struct {
	byID  map[uuid.UUID]*entity.Patient
	order []uuid.UUID
}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{byID: make(map[uuid.UUID]*entity.Patient)}
}

func (r *patientRepository) Save(patient *entity.Patient) error {
	if _, exists := r.byID[patient.ID]; !exists {
		r.order = append(r.order, patient.ID)
	}
	r.byID[patient.ID] = patient
	return nil
}

func (r *patientRepository) FindByID(id uuid.UUID) (*entity.Patient, error) {
	patient, exists := r.byID[id]
	if !exists {
		return nil, nil
	}
	return patient, nil
}

func (r *patientRepository) FindAll() ([]*entity.Patient, error) {
	patients := make([]*entity.Patient, 0, len(r.order))
	for _, id := range r.order {
		patients = append(patients, r.byID[id])
	}
	return patients, nil
}

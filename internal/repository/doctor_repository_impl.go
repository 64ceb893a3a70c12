package repository

import (
	"github.com/google/uuid"

	"go-clinic-scheduling/internal/domain/entity"
	domainRepo "go-clinic-scheduling/internal/domain/repository"
)

type doctorRepository struct {
	byID  map[uuid.UUID]*entity.Doctor
	order []uuid.UUID
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{byID: make(map[uuid.UUID]*entity.Doctor)}
}

func (r *doctorRepository) Save(doctor *entity.Doctor) error {
	if _, exists := r.byID[doctor.ID]; !exists {
		r.order = append(r.order, doctor.ID)
	}
	r.byID[doctor.ID] = doctor
	return nil
}

func (r *doctorRepository) FindByID(id uuid.UUID) (*entity.Doctor, error) {
	doctor, exists := r.byID[id]
	if !exists {
		return nil, nil
	}
	return doctor, nil
}

func (r *doctorRepository) FindAll() ([]*entity.Doctor, error) {
	doctors := make([]*entity.Doctor, 0, len(r.order))
	for _, id := range r.order {
		doctors = append(doctors, r.byID[id])
	}
	return doctors, nil
}

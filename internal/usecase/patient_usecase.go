package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-clinic-scheduling/internal/converter"
	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/domain/entity"
	"go-clinic-scheduling/internal/domain/repository"
	"go-clinic-scheduling/pkg/validator"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	RegisterPatient(req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	AddMedicalEntry(patientID uuid.UUID, req *dto.AddMedicalEntryRequest) (*dto.PatientResponse, error)
	GetPatient(patientID uuid.UUID) (*dto.PatientResponse, error)
	ListPatients() (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	validator   *validator.CustomValidator
	patientRepo repository.PatientRepository
	now         func() time.Time
}

func NewPatientUsecase(
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	patientRepo repository.PatientRepository,
	now func() time.Time,
) PatientUsecase {
	return &patientUsecase{
		log:         log,
		validator:   customValidator,
		patientRepo: patientRepo,
		now:         now,
	}
}

func (u *patientUsecase) RegisterPatient(req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	patient, err := entity.NewPatient(req.Name, req.DateOfBirth, u.now())
	if err != nil {
		u.log.Warnf("Failed to register patient: %v", err)
		return nil, err
	}

	if err := u.patientRepo.Save(patient); err != nil {
		return nil, err
	}

	u.log.Infof("Patient registered: id=%s, name=%s", patient.ID, patient.Name)
	return converter.PatientToResponse(patient, u.now()), nil
}

func (u *patientUsecase) AddMedicalEntry(patientID uuid.UUID, req *dto.AddMedicalEntryRequest) (*dto.PatientResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if err := patient.AddMedicalEntry(req.Text, u.now()); err != nil {
		u.log.Warnf("Rejected medical entry for patient %s: %v", patientID, err)
		return nil, err
	}

	if err := u.patientRepo.Save(patient); err != nil {
		return nil, err
	}

	u.log.Infof("Medical entry added: patient=%s, entries=%d", patientID, len(patient.MedicalHistory))
	return converter.PatientToResponse(patient, u.now()), nil
}

func (u *patientUsecase) GetPatient(patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient, u.now()), nil
}

func (u *patientUsecase) ListPatients() (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients, u.now()),
		Total:    len(patients),
	}, nil
}

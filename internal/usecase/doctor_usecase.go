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

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	RegisterDoctor(req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(doctorID uuid.UUID) (*dto.DoctorResponse, error)
	ListDoctors() (*dto.DoctorListResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	validator  *validator.CustomValidator
	doctorRepo repository.DoctorRepository
	now        func() time.Time
}

func NewDoctorUsecase(
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	doctorRepo repository.DoctorRepository,
	now func() time.Time,
) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		validator:  customValidator,
		doctorRepo: doctorRepo,
		now:        now,
	}
}

func (u *doctorUsecase) RegisterDoctor(req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	doctor, err := entity.NewDoctor(req.Name, req.Specialization, u.now())
	if err != nil {
		u.log.Warnf("Failed to register doctor: %v", err)
		return nil, err
	}

	if err := u.doctorRepo.Save(doctor); err != nil {
		return nil, err
	}

	u.log.Infof("Doctor registered: id=%s, name=%s, specialization=%s", doctor.ID, doctor.Name, doctor.Specialization)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ListDoctors() (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

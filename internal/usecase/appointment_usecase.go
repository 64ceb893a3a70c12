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
	"go-clinic-scheduling/pkg/apperr"
	"go-clinic-scheduling/pkg/validator"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentUsecase interface {
	BookAppointment(req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	RescheduleAppointment(appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetAppointment(appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	ListDoctorSchedule(doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	validator       *validator.CustomValidator
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	conflictWindow  time.Duration
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	conflictWindow time.Duration,
	now func() time.Time,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		validator:       customValidator,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		conflictWindow:  conflictWindow,
		now:             now,
	}
}

// BookAppointment books a new appointment for a doctor.
//
// Flow:
// 1. Resolve patient and doctor references
// 2. Run the date pipeline: future check, weekend check, conflict scan
// 3. Save the appointment and append it to the doctor's schedule index
func (u *appointmentUsecase) BookAppointment(req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(req.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperr.NewValidation("patient %s does not exist", req.PatientID)
	}

	doctor, err := u.doctorRepo.FindByID(req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperr.NewValidation("doctor %s does not exist", req.DoctorID)
	}

	if err := u.validateDate(doctor, req.Date, uuid.Nil); err != nil {
		u.log.Warnf("Rejected booking for doctor %s at %s: %v", doctor.ID, req.Date, err)
		return nil, err
	}

	appointment := entity.NewAppointment(patient.ID, doctor.ID, req.Date, u.now())
	if err := u.appointmentRepo.Save(appointment); err != nil {
		return nil, err
	}

	// Schedule membership is a separate, explicit step: the index grows once
	// per appointment and never shrinks.
	doctor.AddToSchedule(appointment.ID)
	if err := u.doctorRepo.Save(doctor); err != nil {
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%s, patient=%s, date=%s",
		appointment.ID, doctor.ID, patient.ID, appointment.Date)
	return converter.AppointmentToResponse(appointment), nil
}

// RescheduleAppointment moves an appointment to a new date. The date and the
// status change together or not at all.
func (u *appointmentUsecase) RescheduleAppointment(appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	doctor, err := u.doctorRepo.FindByID(appointment.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if err := u.validateDate(doctor, req.Date, appointment.ID); err != nil {
		u.log.Warnf("Rejected reschedule of appointment %s to %s: %v", appointmentID, req.Date, err)
		return nil, err
	}

	appointment.Reschedule(req.Date, u.now())
	if err := u.appointmentRepo.Save(appointment); err != nil {
		return nil, err
	}

	u.log.Infof("Appointment rescheduled: id=%s, date=%s", appointment.ID, appointment.Date)
	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment is unconditional: any appointment can be cancelled at any
// time, and the doctor's schedule index keeps the entry.
func (u *appointmentUsecase) CancelAppointment(appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.Cancel(u.now())
	if err := u.appointmentRepo.Save(appointment); err != nil {
		return nil, err
	}

	u.log.Infof("Appointment cancelled: id=%s", appointment.ID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListDoctorSchedule(doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindByIDs(doctor.Schedule())
	if err != nil {
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// validateDate runs the full pipeline for a new appointment date; the first
// failing rule wins. The conflict scan walks the doctor's whole schedule index
// and skips only the appointment being rescheduled. Cancelled appointments
// still block their slot.
func (u *appointmentUsecase) validateDate(doctor *entity.Doctor, date time.Time, exclude uuid.UUID) error {
	if err := entity.ValidateFutureDate(date, u.now()); err != nil {
		return err
	}
	if err := entity.ValidateBusinessDay(date); err != nil {
		return err
	}

	booked, err := u.appointmentRepo.FindByIDs(doctor.Schedule())
	if err != nil {
		return err
	}
	for _, other := range booked {
		if other.ID == exclude {
			continue
		}
		gap := other.Date.Sub(date)
		if gap < 0 {
			gap = -gap
		}
		if gap < u.conflictWindow {
			return apperr.NewConflict(other.ID,
				"appointment conflicts with an existing appointment at %s",
				other.Date.Format(time.RFC3339))
		}
	}
	return nil
}

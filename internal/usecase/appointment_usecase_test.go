package usecase

import (
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/repository"
	"go-clinic-scheduling/pkg/apperr"
	"go-clinic-scheduling/pkg/validator"
)

// Monday, 09:00 UTC. The usual test slot is the same day at 10:00.
var fixedNow = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

var mondayTen = time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)

type schedulingFixture struct {
	patients     PatientUsecase
	doctors      DoctorUsecase
	appointments AppointmentUsecase

	patientID uuid.UUID
	doctorID  uuid.UUID
}

func newSchedulingFixture(t *testing.T) *schedulingFixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)
	customValidator := validator.NewValidator()
	now := func() time.Time { return fixedNow }

	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	f := &schedulingFixture{
		patients: NewPatientUsecase(log, customValidator, patientRepo, now),
		doctors:  NewDoctorUsecase(log, customValidator, doctorRepo, now),
		appointments: NewAppointmentUsecase(
			log, customValidator, appointmentRepo, doctorRepo, patientRepo, time.Hour, now,
		),
	}

	patient, err := f.patients.RegisterPatient(&dto.RegisterPatientRequest{
		Name:        "Alice Johnson",
		DateOfBirth: time.Date(1985, time.March, 12, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	f.patientID = patient.ID

	doctor, err := f.doctors.RegisterDoctor(&dto.RegisterDoctorRequest{
		Name:           "Dr. Smith",
		Specialization: "Cardiology",
	})
	require.NoError(t, err)
	f.doctorID = doctor.ID

	return f
}

func (f *schedulingFixture) book(t *testing.T, date time.Time) *dto.AppointmentResponse {
	t.Helper()
	appointment, err := f.appointments.BookAppointment(&dto.BookAppointmentRequest{
		PatientID: f.patientID,
		DoctorID:  f.doctorID,
		Date:      date,
	})
	require.NoError(t, err)
	return appointment
}

func TestBookAppointment(t *testing.T) {
	f := newSchedulingFixture(t)

	appointment := f.book(t, mondayTen)
	assert.Equal(t, "scheduled", appointment.Status)
	assert.Equal(t, mondayTen, appointment.Date)

	doctor, err := f.doctors.GetDoctor(f.doctorID)
	require.NoError(t, err)
	assert.Equal(t, 1, doctor.TotalAppointments)
	assert.Equal(t, []uuid.UUID{appointment.ID}, doctor.ScheduleIDs)
}

func TestBookAppointmentUnknownReferences(t *testing.T) {
	f := newSchedulingFixture(t)

	_, err := f.appointments.BookAppointment(&dto.BookAppointmentRequest{
		PatientID: uuid.New(),
		DoctorID:  f.doctorID,
		Date:      mondayTen,
	})
	assert.True(t, apperr.IsValidation(err))

	_, err = f.appointments.BookAppointment(&dto.BookAppointmentRequest{
		PatientID: f.patientID,
		DoctorID:  uuid.New(),
		Date:      mondayTen,
	})
	assert.True(t, apperr.IsValidation(err))
}

func TestBookAppointmentDateRules(t *testing.T) {
	f := newSchedulingFixture(t)

	t.Run("past date", func(t *testing.T) {
		_, err := f.appointments.BookAppointment(&dto.BookAppointmentRequest{
			PatientID: f.patientID,
			DoctorID:  f.doctorID,
			Date:      fixedNow.Add(-time.Hour),
		})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.EqualError(t, err, "date must be in the future")
	})

	t.Run("weekend", func(t *testing.T) {
		saturday := time.Date(2026, time.January, 10, 10, 0, 0, 0, time.UTC)
		_, err := f.appointments.BookAppointment(&dto.BookAppointmentRequest{
			PatientID: f.patientID,
			DoctorID:  f.doctorID,
			Date:      saturday,
		})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.EqualError(t, err, "no weekend appointments")
	})
}

func TestConflictWindow(t *testing.T) {
	tests := []struct {
		name     string
		offset   time.Duration
		conflict bool
	}{
		{"thirty minutes after", 30 * time.Minute, true},
		{"fifty-nine minutes after", 59 * time.Minute, true},
		{"thirty minutes before", -30 * time.Minute, true},
		{"exactly one hour after", time.Hour, false},
		{"ninety minutes after", 90 * time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSchedulingFixture(t)
			existing := f.book(t, mondayTen)

			_, err := f.appointments.BookAppointment(&dto.BookAppointmentRequest{
				PatientID: f.patientID,
				DoctorID:  f.doctorID,
				Date:      mondayTen.Add(tt.offset),
			})
			if tt.conflict {
				require.Error(t, err)
				assert.True(t, apperr.IsConflict(err))
				var conflictErr *apperr.ConflictError
				require.ErrorAs(t, err, &conflictErr)
				assert.Equal(t, existing.ID, conflictErr.ConflictingID)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancelledAppointmentStillBlocksSlot(t *testing.T) {
	f := newSchedulingFixture(t)

	appointment := f.book(t, mondayTen)
	_, err := f.appointments.CancelAppointment(appointment.ID)
	require.NoError(t, err)

	_, err = f.appointments.BookAppointment(&dto.BookAppointmentRequest{
		PatientID: f.patientID,
		DoctorID:  f.doctorID,
		Date:      mondayTen.Add(30 * time.Minute),
	})
	assert.True(t, apperr.IsConflict(err))

	// The cancelled entry also still counts toward the schedule size
	doctor, err := f.doctors.GetDoctor(f.doctorID)
	require.NoError(t, err)
	assert.Equal(t, 1, doctor.TotalAppointments)
}

func TestRescheduleAppointment(t *testing.T) {
	f := newSchedulingFixture(t)
	appointment := f.book(t, mondayTen)

	t.Run("to a valid slot updates date and status", func(t *testing.T) {
		newDate := mondayTen.Add(3 * time.Hour)
		rescheduled, err := f.appointments.RescheduleAppointment(appointment.ID, &dto.RescheduleAppointmentRequest{Date: newDate})
		require.NoError(t, err)
		assert.Equal(t, newDate, rescheduled.Date)
		assert.Equal(t, "rescheduled", rescheduled.Status)
	})

	t.Run("close to its own old slot is allowed", func(t *testing.T) {
		// The appointment itself is excluded from the conflict scan
		nearby := mondayTen.Add(3*time.Hour + 10*time.Minute)
		rescheduled, err := f.appointments.RescheduleAppointment(appointment.ID, &dto.RescheduleAppointmentRequest{Date: nearby})
		require.NoError(t, err)
		assert.Equal(t, nearby, rescheduled.Date)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := f.appointments.RescheduleAppointment(uuid.New(), &dto.RescheduleAppointmentRequest{Date: mondayTen.Add(6 * time.Hour)})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestRescheduleFailureLeavesAppointmentUnchanged(t *testing.T) {
	f := newSchedulingFixture(t)

	f.book(t, mondayTen)
	second := f.book(t, mondayTen.Add(2*time.Hour))

	_, err := f.appointments.RescheduleAppointment(second.ID, &dto.RescheduleAppointmentRequest{
		Date: mondayTen.Add(30 * time.Minute),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	unchanged, err := f.appointments.GetAppointment(second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.Date, unchanged.Date)
	assert.Equal(t, "scheduled", unchanged.Status)
}

func TestCancelAppointment(t *testing.T) {
	f := newSchedulingFixture(t)
	appointment := f.book(t, mondayTen)

	cancelled, err := f.appointments.CancelAppointment(appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	// Cancelling again is still fine
	cancelled, err = f.appointments.CancelAppointment(appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	_, err = f.appointments.CancelAppointment(uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListDoctorSchedule(t *testing.T) {
	f := newSchedulingFixture(t)

	first := f.book(t, mondayTen)
	second := f.book(t, mondayTen.Add(2*time.Hour))

	schedule, err := f.appointments.ListDoctorSchedule(f.doctorID)
	require.NoError(t, err)
	require.Equal(t, 2, schedule.Total)
	assert.Equal(t, first.ID, schedule.Appointments[0].ID)
	assert.Equal(t, second.ID, schedule.Appointments[1].ID)

	_, err = f.appointments.ListDoctorSchedule(uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestBookingScenario(t *testing.T) {
	f := newSchedulingFixture(t)

	// Doctor booked Monday 10:00
	f.book(t, mondayTen)

	// Monday 10:30 falls inside the window
	_, err := f.appointments.BookAppointment(&dto.BookAppointmentRequest{
		PatientID: f.patientID,
		DoctorID:  f.doctorID,
		Date:      mondayTen.Add(30 * time.Minute),
	})
	assert.True(t, apperr.IsConflict(err))

	// Monday 11:30 is clear
	appointment, err := f.appointments.BookAppointment(&dto.BookAppointmentRequest{
		PatientID: f.patientID,
		DoctorID:  f.doctorID,
		Date:      mondayTen.Add(90 * time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, "scheduled", appointment.Status)
}

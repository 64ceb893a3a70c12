package bootstrap

import (
	"fmt"
	"os"
	"time"

	"go-clinic-scheduling/config"
	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/repository"
	"go-clinic-scheduling/internal/usecase"
	"go-clinic-scheduling/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	Patients     usecase.PatientUsecase
	Doctors      usecase.DoctorUsecase
	Appointments usecase.AppointmentUsecase
	Billing      usecase.BillingUsecase
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	setupLogger(cfg)
	logrus.Info("Configuration loaded successfully")

	log := logrus.StandardLogger()
	customValidator := validator.NewValidator()
	now := time.Now

	// Arena stores: all entities live here, cross-links are IDs
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	billingRepo := repository.NewBillingItemRepository()

	return &App{
		Config:   cfg,
		Patients: usecase.NewPatientUsecase(log, customValidator, patientRepo, now),
		Doctors:  usecase.NewDoctorUsecase(log, customValidator, doctorRepo, now),
		Appointments: usecase.NewAppointmentUsecase(
			log, customValidator, appointmentRepo, doctorRepo, patientRepo,
			cfg.Clinic.ConflictWindow, now,
		),
		Billing: usecase.NewBillingUsecase(log, customValidator, billingRepo, now),
	}, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg *config.Config) {
	if cfg.App.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// Run executes the demo scenario. Failures are reported on stdout and never
// change the exit code.
func (app *App) Run() {
	if err := app.runDemo(); err != nil {
		fmt.Println("error:", err)
	}
}

func (app *App) runDemo() error {
	fmt.Printf("=== %s ===\n", app.Config.Clinic.Name)

	alice, err := app.Patients.RegisterPatient(&dto.RegisterPatientRequest{
		Name:        "Alice Johnson",
		DateOfBirth: time.Date(1985, time.March, 12, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		return err
	}
	if _, err = app.Patients.AddMedicalEntry(alice.ID, &dto.AddMedicalEntryRequest{
		Text: "Diagnosed with seasonal allergies",
	}); err != nil {
		return err
	}
	if alice, err = app.Patients.AddMedicalEntry(alice.ID, &dto.AddMedicalEntryRequest{
		Text: "Prescribed antihistamines",
	}); err != nil {
		return err
	}

	bob, err := app.Patients.RegisterPatient(&dto.RegisterPatientRequest{
		Name:        "Bob Carter",
		DateOfBirth: time.Now().AddDate(-12, 0, 0),
	})
	if err != nil {
		return err
	}

	smith, err := app.Doctors.RegisterDoctor(&dto.RegisterDoctorRequest{
		Name:           "Dr. Sarah Smith",
		Specialization: "Cardiology",
	})
	if err != nil {
		return err
	}

	slot := nextWeekday(time.Now(), time.Monday, 10)
	appointment, err := app.Appointments.BookAppointment(&dto.BookAppointmentRequest{
		PatientID: alice.ID,
		DoctorID:  smith.ID,
		Date:      slot,
	})
	if err != nil {
		return err
	}

	// Half an hour later lands inside the conflict window
	if _, err := app.Appointments.BookAppointment(&dto.BookAppointmentRequest{
		PatientID: bob.ID,
		DoctorID:  smith.ID,
		Date:      slot.Add(30 * time.Minute),
	}); err != nil {
		fmt.Println("booking rejected:", err)
	}

	bloodTest, err := app.Billing.CreateBillingItem(&dto.CreateBillingItemRequest{
		Description: "Blood Test",
		Amount:      decimal.NewFromInt(150),
	})
	if err != nil {
		return err
	}
	consultation, err := app.Billing.CreateBillingItem(&dto.CreateBillingItemRequest{
		Description: "Cardiology Consultation",
		Amount:      decimal.NewFromInt(250),
	})
	if err != nil {
		return err
	}

	// Re-read the doctor so the summary reflects the booked schedule
	if smith, err = app.Doctors.GetDoctor(smith.ID); err != nil {
		return err
	}

	fmt.Printf("Patient: %s, age %d, minor=%t - %s\n", alice.Name, alice.Age, alice.IsMinor, alice.MedicalSummary)
	fmt.Printf("Patient: %s, age %d, minor=%t - %s\n", bob.Name, bob.Age, bob.IsMinor, bob.MedicalSummary)
	fmt.Printf("Doctor: %s (%s), %d appointment(s)\n", smith.Name, smith.Specialization, smith.TotalAppointments)
	fmt.Printf("Appointment: %s, status %s\n", appointment.Date.Format("Mon Jan 2 15:04"), appointment.Status)
	fmt.Println("Billing:", bloodTest.Rendered)
	fmt.Println("Billing:", consultation.Rendered)
	return nil
}

// nextWeekday returns the next occurrence of the given weekday after now, at
// the given whole hour.
func nextWeekday(now time.Time, weekday time.Weekday, hour int) time.Time {
	d := now.AddDate(0, 0, 1)
	for d.Weekday() != weekday {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
}

package router

import (
	"database/sql"
	"net/http"

	"remedios-api/docs"
	"remedios-api/internal/adapters/auth/passwords"
	mem "remedios-api/internal/adapters/storage/memory"
	pg "remedios-api/internal/adapters/storage/postgres"
	"remedios-api/internal/domain/medications"
	"remedios-api/internal/domain/patients"
	"remedios-api/internal/domain/prescriptions"
	"remedios-api/internal/domain/users"
	"remedios-api/internal/middleware"
	"remedios-api/internal/platform/logger"
	"remedios-api/internal/ports/auth"
	"remedios-api/internal/ports/postal"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Postal puede ser nil: pacientes se guardan sin enriquecer dirección.
	Postal postal.Lookup

	// Hasher nil = bcrypt con costo por defecto.
	Hasher auth.PasswordHasher

	// Throttle nil = login sin bloqueo por intentos.
	Throttle users.Throttle

	Logger      logger.Logger
	CORSOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	hasher := opts.Hasher
	if hasher == nil {
		hasher = passwords.NewHasher(0)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
	))

	var (
		medicationRepo   medications.Repository
		patientRepo      patients.Repository
		userRepo         users.Repository
		prescriptionRepo prescriptions.Repository
	)

	if opts.DB != nil {
		medicationRepo = pg.NewMedicationsRepo(opts.DB)
		patientRepo = pg.NewPatientsRepo(opts.DB)
		userRepo = pg.NewUsersRepo(opts.DB)
		prescriptionRepo = pg.NewPrescriptionsRepo(opts.DB)
	} else {
		store := mem.NewStore()
		medicationRepo = store.Medications
		patientRepo = store.Patients
		userRepo = store.Users
		prescriptionRepo = store.Prescriptions
	}

	// Services por módulo
	medicationsSvc := medications.NewService(medicationRepo, prescriptionRepo)
	patientsSvc := patients.NewService(patientRepo, opts.Postal, log)
	usersSvc := users.NewService(userRepo, hasher, log).WithThrottle(opts.Throttle)
	prescriptionsSvc := prescriptions.NewService(prescriptionRepo, medicationsSvc, patientsSvc)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	medications.RegisterRoutes(r, medicationsSvc)
	patientsRouter := patients.RegisterRoutes(r, patientsSvc)
	prescriptions.RegisterRoutes(r, prescriptionsSvc)
	prescriptions.RegisterPatientRoutes(patientsRouter, prescriptionsSvc)

	return r
}

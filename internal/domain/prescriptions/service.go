package prescriptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("prescription not found")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrMedicationNotFound = errors.New("medication not found")
)

type Service struct {
	repo        Repository
	medications MedicationLookup
	patients    PatientLookup
	now         func() time.Time
	newCode     func() string
}

func NewService(repo Repository, medications MedicationLookup, patients PatientLookup) *Service {
	return &Service{
		repo:        repo,
		medications: medications,
		patients:    patients,
		now:         time.Now,
		newCode:     func() string { return uuid.NewString() },
	}
}

type CreateInput struct {
	PatientID int64
	// IssuedOn nil = hoy
	IssuedOn *time.Time
	Items    []Item
}

// Create valida presencia, verifica que paciente y medicamentos existan y persiste.
// No descuenta stock.
func (s *Service) Create(ctx context.Context, in CreateInput) (Prescription, error) {
	if in.PatientID <= 0 || len(in.Items) == 0 {
		return Prescription{}, ErrInvalidInput
	}

	items := make([]Item, 0, len(in.Items))
	seen := make(map[int64]bool, len(in.Items))
	for _, it := range in.Items {
		if it.MedicationID <= 0 || it.Quantity <= 0 || seen[it.MedicationID] {
			return Prescription{}, ErrInvalidInput
		}
		seen[it.MedicationID] = true
		items = append(items, it)
	}

	ok, err := s.patients.Exists(ctx, in.PatientID)
	if err != nil {
		return Prescription{}, fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return Prescription{}, ErrPatientNotFound
	}

	for _, it := range items {
		ok, err := s.medications.Exists(ctx, it.MedicationID)
		if err != nil {
			return Prescription{}, fmt.Errorf("check medication %d: %w", it.MedicationID, err)
		}
		if !ok {
			return Prescription{}, fmt.Errorf("%w: %d", ErrMedicationNotFound, it.MedicationID)
		}
	}

	now := s.now().UTC()
	issued := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if in.IssuedOn != nil {
		issued = *in.IssuedOn
	}

	return s.repo.Create(ctx, Prescription{
		Code:      s.newCode(),
		PatientID: in.PatientID,
		IssuedOn:  issued,
		Items:     items,
		CreatedAt: now,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Prescription, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]Prescription, error) {
	if patientID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPatient(ctx, patientID)
}

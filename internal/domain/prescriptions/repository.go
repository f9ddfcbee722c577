package prescriptions

import "context"

type Repository interface {
	// Create persiste cabecera e ítems; asigna el ID.
	Create(ctx context.Context, p Prescription) (Prescription, error)
	GetByID(ctx context.Context, id int64) (Prescription, error)
	ListByPatient(ctx context.Context, patientID int64) ([]Prescription, error)
	ListIDsByMedication(ctx context.Context, medicationID int64) ([]int64, error)
}

// MedicationLookup y PatientLookup evitan importar los paquetes de dominio vecinos.
type MedicationLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type PatientLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

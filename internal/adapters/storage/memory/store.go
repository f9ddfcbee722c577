package memory

import (
	"remedios-api/internal/domain/medications"
	"remedios-api/internal/domain/patients"
	"remedios-api/internal/domain/prescriptions"
	"remedios-api/internal/domain/users"
)

// Store agrupa los repos in-memory y replica los borrados en cascada del esquema postgres:
// borrar un paciente borra sus recetas; borrar un medicamento lo quita de las recetas.
type Store struct {
	Medications   medications.Repository
	Patients      patients.Repository
	Users         users.Repository
	Prescriptions prescriptions.Repository
}

func NewStore() *Store {
	rx := newPrescriptionRepo()

	meds := newMedicationRepo()
	meds.onDelete = rx.removeMedication

	pats := newPatientRepo()
	pats.onDelete = rx.deleteByPatient

	return &Store{
		Medications:   meds,
		Patients:      pats,
		Users:         NewUserRepo(),
		Prescriptions: rx,
	}
}

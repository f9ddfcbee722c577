package prescriptions

import "time"

// Prescription es una receta dispensada a un paciente.
// Code es el identificador impreso en el comprobante.
type Prescription struct {
	ID        int64
	Code      string
	PatientID int64
	IssuedOn  time.Time
	Items     []Item
	CreatedAt time.Time
}

// Item es una fila del join prescription_medications.
type Item struct {
	MedicationID int64
	Quantity     int
}

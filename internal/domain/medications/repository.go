package medications

import "context"

type Repository interface {
	List(ctx context.Context) ([]Medication, error)
	GetByID(ctx context.Context, id int64) (Medication, error)
	// Create asigna el ID y devuelve el registro persistido.
	Create(ctx context.Context, m Medication) (Medication, error)
	// Update sobrescribe el registro completo; ErrNotFound si no existe.
	Update(ctx context.Context, m Medication) error
	// Delete devuelve ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error

	ListByTag(ctx context.Context, tag Tag) ([]Medication, error)
	// ListByFormulaAboveQuantity: formula exacta, quantity > minQuantity, vencimiento ascendente.
	ListByFormulaAboveQuantity(ctx context.Context, formula string, minQuantity int) ([]Medication, error)
}

// PrescriptionLinks lee el lado medicamento del join con recetas.
// Se define aquí para no importar el paquete prescriptions.
type PrescriptionLinks interface {
	ListIDsByMedication(ctx context.Context, medicationID int64) ([]int64, error)
}

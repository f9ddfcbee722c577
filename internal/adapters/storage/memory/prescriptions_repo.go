package memory

import (
	"context"
	"sort"
	"sync"

	"remedios-api/internal/domain/prescriptions"
)

// prescriptionRepo guarda ítems junto a la cabecera; el "join" se resuelve recorriendo.
type prescriptionRepo struct {
	mu     sync.RWMutex
	byID   map[int64]prescriptions.Prescription
	nextID int64
}

func NewPrescriptionRepo() prescriptions.Repository {
	return newPrescriptionRepo()
}

func newPrescriptionRepo() *prescriptionRepo {
	return &prescriptionRepo{
		byID: make(map[int64]prescriptions.Prescription),
	}
}

func (r *prescriptionRepo) Create(ctx context.Context, p prescriptions.Prescription) (prescriptions.Prescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	p.Items = append([]prescriptions.Item(nil), p.Items...)
	r.byID[p.ID] = p
	return p, nil
}

func (r *prescriptionRepo) GetByID(ctx context.Context, id int64) (prescriptions.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return prescriptions.Prescription{}, prescriptions.ErrNotFound
	}
	return p, nil
}

func (r *prescriptionRepo) ListByPatient(ctx context.Context, patientID int64) ([]prescriptions.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prescriptions.Prescription, 0)
	for _, p := range r.byID {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	// más recientes primero
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *prescriptionRepo) ListIDsByMedication(ctx context.Context, medicationID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int64, 0)
	for _, p := range r.byID {
		for _, it := range p.Items {
			if it.MedicationID == medicationID {
				out = append(out, p.ID)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// deleteByPatient borra las recetas del paciente (ON DELETE CASCADE en postgres).
func (r *prescriptionRepo) deleteByPatient(patientID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.byID {
		if p.PatientID == patientID {
			delete(r.byID, id)
		}
	}
}

// removeMedication quita los ítems que apuntan al medicamento; la receta queda.
func (r *prescriptionRepo) removeMedication(medicationID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.byID {
		kept := make([]prescriptions.Item, 0, len(p.Items))
		for _, it := range p.Items {
			if it.MedicationID != medicationID {
				kept = append(kept, it)
			}
		}
		if len(kept) != len(p.Items) {
			p.Items = kept
			r.byID[id] = p
		}
	}
}

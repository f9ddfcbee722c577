package memory

import (
	"context"
	"sort"
	"sync"

	"remedios-api/internal/domain/medications"
)

type medicationRepo struct {
	mu     sync.RWMutex
	byID   map[int64]medications.Medication
	nextID int64

	// onDelete se llama con el lock tomado; no debe volver a este repo.
	onDelete func(id int64)
}

func NewMedicationRepo() medications.Repository {
	return newMedicationRepo()
}

func newMedicationRepo() *medicationRepo {
	return &medicationRepo{
		byID: make(map[int64]medications.Medication),
	}
}

func (r *medicationRepo) List(ctx context.Context) ([]medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(medications.Medication) bool { return true }), nil
}

func (r *medicationRepo) GetByID(ctx context.Context, id int64) (medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return medications.Medication{}, medications.ErrNotFound
	}
	return m, nil
}

func (r *medicationRepo) Create(ctx context.Context, m medications.Medication) (medications.Medication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m.ID = r.nextID
	r.byID[m.ID] = m
	return m, nil
}

func (r *medicationRepo) Update(ctx context.Context, m medications.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; !exists {
		return medications.ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *medicationRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return medications.ErrNotFound
	}
	delete(r.byID, id)
	if r.onDelete != nil {
		r.onDelete(id)
	}
	return nil
}

func (r *medicationRepo) ListByTag(ctx context.Context, tag medications.Tag) ([]medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(m medications.Medication) bool { return m.Tag == tag }), nil
}

func (r *medicationRepo) ListByFormulaAboveQuantity(ctx context.Context, formula string, minQuantity int) ([]medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.filter(func(m medications.Medication) bool {
		return m.Formula == formula && m.Quantity > minQuantity
	})

	// igual que ORDER BY expires_on ASC en postgres: sin vencimiento al final
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].ExpiresOn, out[j].ExpiresOn
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return out, nil
}

// filter devuelve copias en orden de id. Requiere el lock tomado.
func (r *medicationRepo) filter(keep func(medications.Medication) bool) []medications.Medication {
	out := make([]medications.Medication, 0)
	for _, m := range r.byID {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

package memory

import (
	"context"
	"sort"
	"sync"

	"remedios-api/internal/domain/patients"
)

type patientRepo struct {
	mu     sync.RWMutex
	byID   map[int64]patients.Patient
	nextID int64

	// onDelete se llama con el lock tomado; no debe volver a este repo.
	onDelete func(id int64)
}

func NewPatientRepo() patients.Repository {
	return newPatientRepo()
}

func newPatientRepo() *patientRepo {
	return &patientRepo{
		byID: make(map[int64]patients.Patient),
	}
}

func (r *patientRepo) List(ctx context.Context) ([]patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]patients.Patient, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *patientRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return patients.Patient{}, patients.ErrNotFound
	}
	return p, nil
}

func (r *patientRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *patientRepo) Update(ctx context.Context, p patients.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, exists := r.byID[p.ID]
	if !exists {
		return patients.ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	r.byID[p.ID] = p
	return nil
}

func (r *patientRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return patients.ErrNotFound
	}
	delete(r.byID, id)
	if r.onDelete != nil {
		r.onDelete(id)
	}
	return nil
}

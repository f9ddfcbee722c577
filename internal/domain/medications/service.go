package medications

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrTagRequired  = errors.New("medication tag is required")
	ErrNotFound     = errors.New("medication not found")
)

type Service struct {
	repo  Repository
	links PrescriptionLinks
}

// NewService crea el servicio. links puede ser nil: GetByID no carga recetas.
func NewService(repo Repository, links PrescriptionLinks) *Service {
	return &Service{
		repo:  repo,
		links: links,
	}
}

func (s *Service) List(ctx context.Context) ([]Medication, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Medication, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Medication{}, err
	}
	if s.links != nil {
		ids, err := s.links.ListIDsByMedication(ctx, id)
		if err != nil {
			return Medication{}, err
		}
		m.PrescriptionIDs = ids
	}
	return m, nil
}

// Save inserta (ID == 0) o sobrescribe el registro completo (ID != 0).
// La tarja es obligatoria: sin ella no se llega al repositorio.
func (s *Service) Save(ctx context.Context, m Medication) (Medication, error) {
	if strings.TrimSpace(string(m.Tag)) == "" {
		return Medication{}, ErrTagRequired
	}
	if !m.Tag.Valid() {
		return Medication{}, ErrInvalidInput
	}
	if m.Quantity < 0 || m.ID < 0 {
		return Medication{}, ErrInvalidInput
	}

	m.Formula = strings.TrimSpace(m.Formula)
	m.PrescriptionIDs = nil

	if m.ID == 0 {
		return s.repo.Create(ctx, m)
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByTag(ctx context.Context, tag Tag) ([]Medication, error) {
	if !tag.Valid() {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByTag(ctx, tag)
}

// ListStock devuelve los lotes de formula con más de minQuantity unidades,
// del que vence primero al que vence último.
func (s *Service) ListStock(ctx context.Context, formula string, minQuantity int) ([]Medication, error) {
	formula = strings.TrimSpace(formula)
	if formula == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByFormulaAboveQuantity(ctx, formula, minQuantity)
}

// Exists se usa desde prescriptions (vía interfaz) para validar ítems.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

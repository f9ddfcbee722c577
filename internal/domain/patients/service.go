package patients

import (
	"context"
	"errors"
	"strings"
	"time"

	"remedios-api/internal/platform/logger"
	"remedios-api/internal/ports/postal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("patient not found")
)

type Service struct {
	repo   Repository
	lookup postal.Lookup
	log    logger.Logger
	now    func() time.Time
}

// NewService crea el servicio. lookup nil desactiva el enriquecimiento por CEP.
func NewService(repo Repository, lookup postal.Lookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   repo,
		lookup: lookup,
		log:    log.With(map[string]any{"component": "patients"}),
		now:    time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// Save enriquece la dirección con el CEP (best-effort) y persiste.
// Si la consulta falla el registro se guarda tal como vino.
func (s *Service) Save(ctx context.Context, p Patient, postalCode string) (Patient, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.ID < 0 {
		return Patient{}, ErrInvalidInput
	}

	s.enrichAddress(ctx, &p, strings.TrimSpace(postalCode))

	now := s.now()
	p.UpdatedAt = now

	if p.ID == 0 {
		p.CreatedAt = now
		return s.repo.Create(ctx, p)
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return Patient{}, err
	}
	return s.repo.GetByID(ctx, p.ID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Exists se usa desde prescriptions (vía interfaz) para validar el paciente.
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

func (s *Service) enrichAddress(ctx context.Context, p *Patient, postalCode string) {
	if s.lookup == nil || postalCode == "" {
		return
	}

	addr, err := s.lookup.Lookup(ctx, postalCode)
	if err != nil {
		s.log.Warn("postal lookup failed; saving without address enrichment", map[string]any{
			"postal_code": postalCode,
			"err":         err,
		})
		return
	}

	p.PostalCode = postalCode
	p.Street = addr.Street
	p.District = addr.District
	p.City = addr.City
	p.State = addr.State
}

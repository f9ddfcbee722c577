package patients

import (
	"context"
	"errors"
	"testing"
	"time"

	"remedios-api/internal/platform/logger"
	"remedios-api/internal/ports/postal"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	byID   map[int64]Patient
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Patient{}}
}

func (r *testRepo) List(ctx context.Context) ([]Patient, error) {
	out := make([]Patient, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Patient, error) {
	p, ok := r.byID[id]
	if !ok {
		return Patient{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) Create(ctx context.Context, p Patient) (Patient, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, p Patient) error {
	cur, ok := r.byID[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubLookup struct {
	addr  postal.Address
	err   error
	calls []string
}

func (s *stubLookup) Lookup(ctx context.Context, postalCode string) (postal.Address, error) {
	s.calls = append(s.calls, postalCode)
	return s.addr, s.err
}

type recordingLogger struct {
	warns []string
}

func (l *recordingLogger) With(map[string]any) logger.Logger { return l }
func (l *recordingLogger) Debug(string, map[string]any)      {}
func (l *recordingLogger) Info(string, map[string]any)       {}
func (l *recordingLogger) Warn(msg string, _ map[string]any) { l.warns = append(l.warns, msg) }
func (l *recordingLogger) Error(string, map[string]any)      {}

func fixedNow(svc *Service, t time.Time) {
	svc.now = func() time.Time { return t }
}

// -------------------------
// Tests
// -------------------------

func TestService_Save_LookupOK_EnrichesAddress(t *testing.T) {
	repo := newTestRepo()
	lookup := &stubLookup{addr: postal.Address{
		PostalCode: "01001000",
		Street:     "Praça da Sé",
		District:   "Sé",
		City:       "São Paulo",
		State:      "SP",
	}}
	svc := NewService(repo, lookup, nil)

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	fixedNow(svc, now)

	p, err := svc.Save(context.Background(), Patient{
		Name:   "Maria Silva",
		Number: "100",
		Street: "typed by hand",
	}, "01001-000")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	stored := repo.byID[p.ID]
	if stored.Street != "Praça da Sé" || stored.City != "São Paulo" || stored.State != "SP" || stored.District != "Sé" {
		t.Fatalf("expected address from lookup, got %#v", stored)
	}
	if stored.PostalCode != "01001-000" {
		t.Fatalf("expected postal code to equal the input, got %q", stored.PostalCode)
	}
	if stored.Number != "100" {
		t.Fatalf("number must be kept, got %q", stored.Number)
	}
	if stored.CreatedAt != now || stored.UpdatedAt != now {
		t.Fatalf("expected timestamps set to now")
	}
	if len(lookup.calls) != 1 || lookup.calls[0] != "01001-000" {
		t.Fatalf("expected one lookup with the input code, got %#v", lookup.calls)
	}
}

func TestService_Save_LookupFails_KeepsAddressUnchanged(t *testing.T) {
	for _, lookupErr := range []error{postal.ErrNotFound, postal.ErrUpstream, postal.ErrInvalidPostalCode} {
		repo := newTestRepo()
		svc := NewService(repo, &stubLookup{err: lookupErr}, nil)

		in := Patient{
			Name:       "João",
			PostalCode: "old",
			Street:     "Rua A",
			City:       "Recife",
			State:      "PE",
		}
		p, err := svc.Save(context.Background(), in, "99999999")
		if err != nil {
			t.Fatalf("lookup failure (%v) must not fail save: %v", lookupErr, err)
		}

		stored := repo.byID[p.ID]
		if stored.PostalCode != "old" || stored.Street != "Rua A" || stored.City != "Recife" || stored.State != "PE" {
			t.Fatalf("address must be unchanged on lookup failure, got %#v", stored)
		}
	}
}

func TestService_Save_OnCreate_LookupFails_AddressStaysEmpty(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &stubLookup{err: postal.ErrUpstream}, nil)

	p, err := svc.Save(context.Background(), Patient{Name: "Ana"}, "01001000")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	stored := repo.byID[p.ID]
	if stored.Street != "" || stored.City != "" || stored.State != "" {
		t.Fatalf("expected empty address, got %#v", stored)
	}
}

func TestService_Save_EmptyPostalCode_SkipsLookup(t *testing.T) {
	lookup := &stubLookup{}
	svc := NewService(newTestRepo(), lookup, nil)

	if _, err := svc.Save(context.Background(), Patient{Name: "Ana"}, "  "); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if len(lookup.calls) != 0 {
		t.Fatalf("expected no lookup, got %d", len(lookup.calls))
	}
}

func TestService_Save_RequiresName(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)
	if _, err := svc.Save(context.Background(), Patient{Name: "  "}, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Save_Update_KeepsCreatedAt(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	fixedNow(svc, t1)
	created, err := svc.Save(context.Background(), Patient{Name: "Ana"}, "")
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	fixedNow(svc, t2)
	updated, err := svc.Save(context.Background(), Patient{ID: created.ID, Name: "Ana Souza"}, "")
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.Name != "Ana Souza" || updated.CreatedAt != t1 || updated.UpdatedAt != t2 {
		t.Fatalf("unexpected updated record %#v", updated)
	}

	if _, err := svc.Save(context.Background(), Patient{ID: 404, Name: "X"}, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestService_Exists(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)
	p, _ := svc.Save(context.Background(), Patient{Name: "Ana"}, "")

	ok, err := svc.Exists(context.Background(), p.ID)
	if err != nil || !ok {
		t.Fatalf("expected exists, got %v %v", ok, err)
	}
	ok, err = svc.Exists(context.Background(), 999)
	if err != nil || ok {
		t.Fatalf("expected not exists, got %v %v", ok, err)
	}
}

func TestService_Save_LookupFails_LogsWarning(t *testing.T) {
	log := &recordingLogger{}
	svc := NewService(newTestRepo(), &stubLookup{err: postal.ErrNotFound}, log)

	if _, err := svc.Save(context.Background(), Patient{Name: "Ana"}, "00000000"); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if len(log.warns) != 1 {
		t.Fatalf("expected one warning, got %d", len(log.warns))
	}
}

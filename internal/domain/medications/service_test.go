package medications

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Medication
	nextID int64
	calls  int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Medication{}}
}

func (r *testRepo) List(ctx context.Context) ([]Medication, error) {
	r.calls++
	out := make([]Medication, 0, len(r.byID))
	for _, m := range r.byID {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Medication, error) {
	r.calls++
	m, ok := r.byID[id]
	if !ok {
		return Medication{}, ErrNotFound
	}
	return m, nil
}

func (r *testRepo) Create(ctx context.Context, m Medication) (Medication, error) {
	r.calls++
	r.nextID++
	m.ID = r.nextID
	r.byID[m.ID] = m
	return m, nil
}

func (r *testRepo) Update(ctx context.Context, m Medication) error {
	r.calls++
	if _, ok := r.byID[m.ID]; !ok {
		return ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	r.calls++
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ListByTag(ctx context.Context, tag Tag) ([]Medication, error) {
	r.calls++
	out := make([]Medication, 0)
	for _, m := range r.byID {
		if m.Tag == tag {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *testRepo) ListByFormulaAboveQuantity(ctx context.Context, formula string, minQuantity int) ([]Medication, error) {
	r.calls++
	out := make([]Medication, 0)
	for _, m := range r.byID {
		if m.Formula == formula && m.Quantity > minQuantity {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiresOn.Before(*out[j].ExpiresOn) })
	return out, nil
}

type testLinks map[int64][]int64

func (l testLinks) ListIDsByMedication(ctx context.Context, medicationID int64) ([]int64, error) {
	return l[medicationID], nil
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// -------------------------
// Tests
// -------------------------

func TestService_Save_WithoutTag_RejectsBeforeRepo(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	_, err := svc.Save(context.Background(), Medication{Formula: "Dipirona", Quantity: 3})
	if !errors.Is(err, ErrTagRequired) {
		t.Fatalf("expected ErrTagRequired, got %v", err)
	}

	// también en reemplazo completo
	_, err = svc.Save(context.Background(), Medication{ID: 7, Formula: "Dipirona", Tag: "  "})
	if !errors.Is(err, ErrTagRequired) {
		t.Fatalf("expected ErrTagRequired on update, got %v", err)
	}

	if repo.calls != 0 {
		t.Fatalf("repository must not be reached, got %d calls", repo.calls)
	}
}

func TestService_Save_UnknownTag_IsInvalidInput(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	_, err := svc.Save(context.Background(), Medication{Formula: "Dipirona", Tag: Tag("GREEN")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repository must not be reached")
	}
}

func TestService_Save_PersistsTagExactly(t *testing.T) {
	for _, tag := range []Tag{TagNone, TagYellow, TagRed, TagBlack} {
		repo := newTestRepo()
		svc := NewService(repo, nil)

		saved, err := svc.Save(context.Background(), Medication{Formula: "Ibuprofen", Quantity: 5, Tag: tag})
		if err != nil {
			t.Fatalf("Save(%s) error: %v", tag, err)
		}
		if saved.ID == 0 {
			t.Fatalf("expected assigned id")
		}
		if repo.byID[saved.ID].Tag != tag {
			t.Fatalf("expected persisted tag %s, got %s", tag, repo.byID[saved.ID].Tag)
		}
	}
}

func TestService_Save_WithID_OverwritesWholeRecord(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	created, err := svc.Save(context.Background(), Medication{
		Formula:   "Ibuprofen",
		Quantity:  20,
		ExpiresOn: date(2026, 12, 1),
		Tag:       TagNone,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	updated, err := svc.Save(context.Background(), Medication{
		ID:       created.ID,
		Formula:  "Ibuprofeno 400mg",
		Quantity: 4,
		Tag:      TagRed,
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}

	got := repo.byID[created.ID]
	if got.Formula != "Ibuprofeno 400mg" || got.Quantity != 4 || got.Tag != TagRed || got.ExpiresOn != nil {
		t.Fatalf("expected full overwrite, got %#v", got)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected same id")
	}
}

func TestService_Save_UnknownID_IsNotFound(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	_, err := svc.Save(context.Background(), Medication{ID: 99, Formula: "X", Tag: TagNone})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Save_NegativeQuantity_IsInvalidInput(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	_, err := svc.Save(context.Background(), Medication{Formula: "X", Quantity: -1, Tag: TagNone})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Delete_Missing_LeavesOthersIntact(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	for _, f := range []string{"A", "B", "C"} {
		if _, err := svc.Save(ctx, Medication{Formula: f, Quantity: 1, Tag: TagNone}); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}

	before, _ := svc.List(ctx)

	if err := svc.Delete(ctx, 12345); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, _ := svc.List(ctx)
	if len(before) != len(after) {
		t.Fatalf("expected %d records after delete of missing id, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID || before[i].Formula != after[i].Formula {
			t.Fatalf("record %d changed: %#v -> %#v", i, before[i], after[i])
		}
	}
}

func TestService_ListStock_FiltersAndOrdersByExpiration(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	seed := []Medication{
		{Formula: "Ibuprofen", Quantity: 50, ExpiresOn: date(2027, 1, 1), Tag: TagNone},
		{Formula: "Ibuprofen", Quantity: 10, ExpiresOn: date(2025, 1, 1), Tag: TagNone}, // no > 10
		{Formula: "Ibuprofen", Quantity: 11, ExpiresOn: date(2026, 6, 1), Tag: TagNone},
		{Formula: "ibuprofen", Quantity: 99, ExpiresOn: date(2024, 1, 1), Tag: TagNone}, // distinta
		{Formula: "Paracetamol", Quantity: 99, ExpiresOn: date(2024, 1, 1), Tag: TagNone},
	}
	for _, m := range seed {
		if _, err := svc.Save(ctx, m); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}

	got, err := svc.ListStock(ctx, "Ibuprofen", 10)
	if err != nil {
		t.Fatalf("ListStock error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Quantity != 11 || got[1].Quantity != 50 {
		t.Fatalf("expected ascending expiration, got %#v", got)
	}

	if _, err := svc.ListStock(ctx, " ", 10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty formula, got %v", err)
	}
}

func TestService_ListByTag_RejectsUnknownTag(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	if _, err := svc.ListByTag(context.Background(), Tag("PURPLE")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_GetByID_LoadsPrescriptionLinks(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testLinks{1: {10, 11}})

	if _, err := svc.Save(context.Background(), Medication{Formula: "A", Tag: TagNone}); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	m, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if len(m.PrescriptionIDs) != 2 || m.PrescriptionIDs[0] != 10 {
		t.Fatalf("expected prescription ids, got %#v", m.PrescriptionIDs)
	}
}

func TestParseTag_AcceptsLegacyCodes(t *testing.T) {
	cases := map[string]Tag{
		"SEM_TARJA": TagNone,
		"amarela":   TagYellow,
		"VERMELHA":  TagRed,
		" preta ":   TagBlack,
		"black":     TagBlack,
	}
	for in, want := range cases {
		if got := ParseTag(in); got != want {
			t.Fatalf("ParseTag(%q)=%s, want %s", in, got, want)
		}
	}
	if TagBlack.Label() != "Tarja Preta" {
		t.Fatalf("unexpected label %q", TagBlack.Label())
	}
	if ParseTag("").Valid() {
		t.Fatalf("empty tag must not be valid")
	}
}

package users

import (
	"context"
	"errors"
	"strings"
	"testing"

	"remedios-api/internal/ports/auth"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	byUsername map[string]User
	nextID     int64
}

func newTestRepo() *testRepo {
	return &testRepo{byUsername: map[string]User{}}
}

func (r *testRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) Create(ctx context.Context, u User) (User, error) {
	if _, ok := r.byUsername[u.Username]; ok {
		return User{}, ErrUsernameTaken
	}
	r.nextID++
	u.ID = r.nextID
	r.byUsername[u.Username] = u
	return u, nil
}

// plainHasher: "hash" = "h:" + plain. Suficiente para probar el flujo sin bcrypt.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "h:" + plain, nil }

func (plainHasher) Compare(hash, plain string) error {
	if hash != "h:"+plain {
		return auth.ErrMismatch
	}
	return nil
}

type testThrottle struct {
	max      int64
	failures map[string]int64
	err      error
}

func newTestThrottle(max int64) *testThrottle {
	return &testThrottle{max: max, failures: map[string]int64{}}
}

func (t *testThrottle) Blocked(ctx context.Context, key string) (bool, error) {
	if t.err != nil {
		return false, t.err
	}
	return t.failures[key] >= t.max, nil
}

func (t *testThrottle) Fail(ctx context.Context, key string) (int64, error) {
	if t.err != nil {
		return 0, t.err
	}
	t.failures[key]++
	return t.failures[key], nil
}

func (t *testThrottle) Reset(ctx context.Context, key string) error {
	delete(t.failures, key)
	return nil
}

func seeded(t *testing.T) (*Service, *testRepo) {
	t.Helper()
	repo := newTestRepo()
	svc := NewService(repo, plainHasher{}, nil)
	if _, err := svc.Register(context.Background(), RegisterInput{Username: "u", Email: "u@example.com", Password: "p"}); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Authenticate_MatchesOnlyWhenBothFieldsMatch(t *testing.T) {
	svc, _ := seeded(t)
	ctx := context.Background()

	u, err := svc.Authenticate(ctx, "u", "p")
	if err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if u.Username != "u" {
		t.Fatalf("unexpected user %#v", u)
	}

	cases := []struct{ user, pass string }{
		{"u", "x"},
		{"x", "p"},
		{"x", "x"},
		{"U", "p"},
		{"u", ""},
		{"", "p"},
	}
	for _, c := range cases {
		if _, err := svc.Authenticate(ctx, c.user, c.pass); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Authenticate(%q,%q): expected ErrInvalidCredentials, got %v", c.user, c.pass, err)
		}
	}
}

func TestService_Register_StoresHashNotPlainText(t *testing.T) {
	_, repo := seeded(t)

	u := repo.byUsername["u"]
	if u.PasswordHash == "p" || u.PasswordHash != "h:p" {
		t.Fatalf("expected hashed password, got %q", u.PasswordHash)
	}
	if u.CreatedAt.IsZero() {
		t.Fatalf("expected created_at")
	}
}

func TestService_Register_PresenceChecks(t *testing.T) {
	svc := NewService(newTestRepo(), plainHasher{}, nil)
	bad := []RegisterInput{
		{Email: "a@b", Password: "p"},
		{Username: "a", Password: "p"},
		{Username: "a", Email: "a@b"},
		{Username: "  ", Email: "a@b", Password: "p"},
		{Username: "a", Email: "a@b", Password: strings.Repeat("a", MaxPasswordBytes+1)},
	}
	for _, in := range bad {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Register(%#v): expected ErrInvalidInput, got %v", in, err)
		}
	}
}

type tooLongHasher struct{ plainHasher }

func (tooLongHasher) Hash(string) (string, error) { return "", auth.ErrPasswordTooLong }

func TestService_Register_HasherRejectsLength_IsInvalidInput(t *testing.T) {
	svc := NewService(newTestRepo(), tooLongHasher{}, nil)
	_, err := svc.Register(context.Background(), RegisterInput{Username: "a", Email: "a@b", Password: "p"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	svc, _ := seeded(t)
	_, err := svc.Register(context.Background(), RegisterInput{Username: "u", Email: "o@example.com", Password: "z"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestService_Authenticate_ThrottleLocksAfterMaxFailures(t *testing.T) {
	svc, _ := seeded(t)
	th := newTestThrottle(3)
	svc.WithThrottle(th)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Authenticate(ctx, "u", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	// bloqueado aun con el password correcto
	if _, err := svc.Authenticate(ctx, "u", "p"); !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}

	// otro usuario no se ve afectado
	if _, err := svc.Authenticate(ctx, "other", "p"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for other user, got %v", err)
	}
}

func TestService_Authenticate_ThrottleKeyMatchesUsernameCase(t *testing.T) {
	svc, _ := seeded(t)
	svc.WithThrottle(newTestThrottle(3))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _ = svc.Authenticate(ctx, "U", "wrong")
	}
	if _, err := svc.Authenticate(ctx, "u", "p"); err != nil {
		t.Fatalf("failures for a different username must not lock u, got %v", err)
	}
}

func TestService_Authenticate_SuccessResetsThrottle(t *testing.T) {
	svc, _ := seeded(t)
	th := newTestThrottle(3)
	svc.WithThrottle(th)
	ctx := context.Background()

	_, _ = svc.Authenticate(ctx, "u", "wrong")
	_, _ = svc.Authenticate(ctx, "u", "wrong")
	if _, err := svc.Authenticate(ctx, "u", "p"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if th.failures["u"] != 0 {
		t.Fatalf("expected counter reset, got %d", th.failures["u"])
	}
}

func TestService_Authenticate_ThrottleDownDoesNotBlockLogin(t *testing.T) {
	svc, _ := seeded(t)
	th := newTestThrottle(1)
	th.err = errors.New("redis down")
	svc.WithThrottle(th)

	if _, err := svc.Authenticate(context.Background(), "u", "p"); err != nil {
		t.Fatalf("expected success with throttle down, got %v", err)
	}
}

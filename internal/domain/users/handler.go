package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"remedios-api/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/login", loginHandler(svc))
	r.Post("/register", registerHandler(svc))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse no incluye el hash.
type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// loginHandler godoc
// @Summary Login
// @Description Verifica usuario y password. No emite token.
// @Tags users
// @Accept json
// @Produce plain
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {string} string "login successful"
// @Failure 401 {string} string "invalid credentials"
// @Failure 429 {string} string "too many login attempts"
// @Router /login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		_, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		switch {
		case err == nil:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("login successful"))
		case errors.Is(err, ErrInvalidCredentials):
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
		case errors.Is(err, ErrTooManyAttempts):
			http.Error(w, ErrTooManyAttempts.Error(), http.StatusTooManyRequests)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// registerHandler godoc
// @Summary Registrar usuario
// @Tags users
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Usuario, email y password"
// @Success 201 {object} userResponse
// @Failure 400 {string} string "username, email and password required"
// @Failure 409 {string} string "username already taken"
// @Router /register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "username, email and password required", http.StatusBadRequest)
			case errors.Is(err, ErrUsernameTaken):
				http.Error(w, ErrUsernameTaken.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		web.WriteJSON(w, http.StatusCreated, userResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		})
	}
}

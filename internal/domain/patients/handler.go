package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"remedios-api/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /patients y devuelve el subrouter para que otros
// módulos cuelguen rutas anidadas (/patients/{patientID}/...).
func RegisterRoutes(r chi.Router, svc *Service) chi.Router {
	return r.Route("/patients", func(pr chi.Router) {
		pr.Get("/", listPatientsHandler(svc))
		pr.Post("/", createPatientHandler(svc))

		pr.Get("/{patientID}", getPatientHandler(svc))
		pr.Put("/{patientID}", updatePatientHandler(svc))
		pr.Delete("/{patientID}", deletePatientHandler(svc))
	})
}

// patientRequest es el cuerpo para alta y reemplazo completo. postal_code dispara la consulta de CEP.
type patientRequest struct {
	Name       string `json:"name"`
	CPF        string `json:"cpf"`
	Phone      string `json:"phone"`
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
}

// patientResponse representa un paciente devuelto por la API.
type patientResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CPF        string    `json:"cpf"`
	Phone      string    `json:"phone"`
	PostalCode string    `json:"postal_code"`
	Street     string    `json:"street"`
	Number     string    `json:"number"`
	District   string    `json:"district"`
	Complement string    `json:"complement"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// listPatientsHandler godoc
// @Summary Listar pacientes
// @Tags patients
// @Produce json
// @Success 200 {array} patientResponse
// @Failure 500 {string} string "internal error"
// @Router /patients [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// getPatientHandler godoc
// @Summary Obtener paciente
// @Tags patients
// @Produce json
// @Param patientID path int true "ID del paciente"
// @Success 200 {object} patientResponse
// @Failure 404 {string} string "patient not found"
// @Router /patients/{patientID} [get]
func getPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "patientID")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

// createPatientHandler godoc
// @Summary Registrar paciente
// @Description Si el CEP existe, calle/barrio/ciudad/UF se completan desde ViaCEP. Si la consulta falla el paciente se guarda igual.
// @Tags patients
// @Accept json
// @Produce json
// @Param payload body patientRequest true "Datos del paciente"
// @Success 201 {object} patientResponse
// @Failure 400 {string} string "invalid json / name required"
// @Router /patients [post]
func createPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Save(r.Context(), req.toPatient(), req.PostalCode)
		if err != nil {
			writeError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, toPatientResponse(p))
	}
}

// updatePatientHandler godoc
// @Summary Reemplazar paciente
// @Tags patients
// @Accept json
// @Produce json
// @Param patientID path int true "ID del paciente"
// @Param payload body patientRequest true "Registro completo"
// @Success 200 {object} patientResponse
// @Failure 400 {string} string "invalid json / name required"
// @Failure 404 {string} string "patient not found"
// @Router /patients/{patientID} [put]
func updatePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "patientID")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var req patientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := req.toPatient()
		in.ID = id

		p, err := svc.Save(r.Context(), in, req.PostalCode)
		if err != nil {
			writeError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

// deletePatientHandler godoc
// @Summary Eliminar paciente
// @Tags patients
// @Param patientID path int true "ID del paciente"
// @Success 204
// @Failure 404 {string} string "patient not found"
// @Router /patients/{patientID} [delete]
func deletePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "patientID")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (req patientRequest) toPatient() Patient {
	return Patient{
		Name:       req.Name,
		CPF:        req.CPF,
		Phone:      req.Phone,
		PostalCode: req.PostalCode,
		Street:     req.Street,
		Number:     req.Number,
		District:   req.District,
		Complement: req.Complement,
		City:       req.City,
		State:      req.State,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "name required", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "patient not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		ID:         p.ID,
		Name:       p.Name,
		CPF:        p.CPF,
		Phone:      p.Phone,
		PostalCode: p.PostalCode,
		Street:     p.Street,
		Number:     p.Number,
		District:   p.District,
		Complement: p.Complement,
		City:       p.City,
		State:      p.State,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

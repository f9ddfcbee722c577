package prescriptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"remedios-api/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/prescriptions", func(pr chi.Router) {
		pr.Post("/", createPrescriptionHandler(svc))
		pr.Get("/{prescriptionID}", getPrescriptionHandler(svc))
	})
}

// RegisterPatientRoutes cuelga las recetas del subrouter de /patients.
func RegisterPatientRoutes(patientsRouter chi.Router, svc *Service) {
	patientsRouter.Get("/{patientID}/prescriptions", listByPatientHandler(svc))
}

type itemDTO struct {
	MedicationID int64 `json:"medication_id"`
	Quantity     int   `json:"quantity"`
}

type createPrescriptionRequest struct {
	PatientID int64     `json:"patient_id"`
	IssuedOn  string    `json:"issued_on"` // YYYY-MM-DD opcional; por defecto hoy
	Items     []itemDTO `json:"items"`
}

type prescriptionResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	PatientID int64     `json:"patient_id"`
	IssuedOn  string    `json:"issued_on"`
	Items     []itemDTO `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// createPrescriptionHandler godoc
// @Summary Registrar receta
// @Description Registra la dispensación de uno o más medicamentos a un paciente. No descuenta stock.
// @Tags prescriptions
// @Accept json
// @Produce json
// @Param payload body createPrescriptionRequest true "Paciente e ítems"
// @Success 201 {object} prescriptionResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "patient not found / medication not found"
// @Router /prescriptions [post]
func createPrescriptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPrescriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		issued, err := web.ParseDate(req.IssuedOn)
		if err != nil {
			http.Error(w, "issued_on must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		in := CreateInput{
			PatientID: req.PatientID,
			IssuedOn:  issued,
			Items:     make([]Item, 0, len(req.Items)),
		}
		for _, it := range req.Items {
			in.Items = append(in.Items, Item{MedicationID: it.MedicationID, Quantity: it.Quantity})
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, toPrescriptionResponse(p))
	}
}

// getPrescriptionHandler godoc
// @Summary Obtener receta
// @Tags prescriptions
// @Produce json
// @Param prescriptionID path int true "ID de la receta"
// @Success 200 {object} prescriptionResponse
// @Failure 404 {string} string "prescription not found"
// @Router /prescriptions/{prescriptionID} [get]
func getPrescriptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "prescriptionID")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toPrescriptionResponse(p))
	}
}

// listByPatientHandler godoc
// @Summary Recetas de un paciente
// @Tags prescriptions
// @Produce json
// @Param patientID path int true "ID del paciente"
// @Success 200 {array} prescriptionResponse
// @Router /patients/{patientID}/prescriptions [get]
func listByPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "patientID")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPatient(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]prescriptionResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPrescriptionResponse(p))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "patient_id and at least one item with medication_id and quantity > 0 required", http.StatusBadRequest)
	case errors.Is(err, ErrPatientNotFound), errors.Is(err, ErrMedicationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "prescription not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPrescriptionResponse(p Prescription) prescriptionResponse {
	items := make([]itemDTO, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, itemDTO{MedicationID: it.MedicationID, Quantity: it.Quantity})
	}
	issued := p.IssuedOn
	return prescriptionResponse{
		ID:        p.ID,
		Code:      p.Code,
		PatientID: p.PatientID,
		IssuedOn:  web.FormatDate(&issued),
		Items:     items,
		CreatedAt: p.CreatedAt,
	}
}

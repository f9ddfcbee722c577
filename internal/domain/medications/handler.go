package medications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"remedios-api/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc))
		mr.Post("/", createMedicationHandler(svc))

		// Reporte de stock por fórmula (vencimiento ascendente)
		mr.Get("/stock", listStockHandler(svc))

		mr.Get("/{medicationID}", getMedicationHandler(svc))
		mr.Put("/{medicationID}", updateMedicationHandler(svc))
		mr.Delete("/{medicationID}", deleteMedicationHandler(svc))
	})
}

// medicationRequest es el cuerpo para alta y reemplazo completo de un medicamento.
type medicationRequest struct {
	Formula   string `json:"formula"`
	Quantity  int    `json:"quantity"`
	ExpiresOn string `json:"expires_on"` // YYYY-MM-DD opcional
	Tag       string `json:"tag" enums:"NONE,YELLOW,RED,BLACK"`
}

// medicationResponse representa un medicamento devuelto por la API.
type medicationResponse struct {
	ID              int64   `json:"id"`
	Formula         string  `json:"formula"`
	Quantity        int     `json:"quantity"`
	ExpiresOn       string  `json:"expires_on,omitempty"`
	Tag             Tag     `json:"tag"`
	TagLabel        string  `json:"tag_label"`
	PrescriptionIDs []int64 `json:"prescription_ids,omitempty"`
}

// listMedicationsHandler godoc
// @Summary Listar medicamentos
// @Description Lista todos los medicamentos. Con `tag` filtra por tarja.
// @Tags medications
// @Produce json
// @Param tag query string false "Tarja: NONE, YELLOW, RED, BLACK (acepta SEM_TARJA, AMARELA, VERMELHA, PRETA)"
// @Success 200 {array} medicationResponse
// @Failure 400 {string} string "invalid tag"
// @Failure 500 {string} string "internal error"
// @Router /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Medication
			err   error
		)

		if raw := strings.TrimSpace(r.URL.Query().Get("tag")); raw != "" {
			items, err = svc.ListByTag(r.Context(), ParseTag(raw))
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			writeError(w, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, toMedicationResponses(items))
	}
}

// listStockHandler godoc
// @Summary Stock por fórmula
// @Description Lotes con fórmula exacta y cantidad estrictamente mayor a `min_quantity`, ordenados por vencimiento ascendente.
// @Tags medications
// @Produce json
// @Param formula query string true "Fórmula exacta (ej: Ibuprofen)"
// @Param min_quantity query int false "Cantidad mínima exclusiva. Por defecto 0"
// @Success 200 {array} medicationResponse
// @Failure 400 {string} string "formula required / min_quantity inválido"
// @Failure 500 {string} string "internal error"
// @Router /medications/stock [get]
func listStockHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formula := r.URL.Query().Get("formula")

		minQty := 0
		if v := strings.TrimSpace(r.URL.Query().Get("min_quantity")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "min_quantity must be an integer", http.StatusBadRequest)
				return
			}
			minQty = n
		}

		items, err := svc.ListStock(r.Context(), formula, minQty)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "formula required", http.StatusBadRequest)
				return
			}
			writeError(w, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, toMedicationResponses(items))
	}
}

// getMedicationHandler godoc
// @Summary Obtener medicamento
// @Tags medications
// @Produce json
// @Param medicationID path int true "ID del medicamento"
// @Success 200 {object} medicationResponse
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [get]
func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "medicationID")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		m, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// createMedicationHandler godoc
// @Summary Registrar medicamento
// @Description La tarja es obligatoria.
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body medicationRequest true "Datos del medicamento; expires_on en formato YYYY-MM-DD"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "invalid json / tarja ausente o inválida"
// @Router /medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := decodeMedication(w, r)
		if !ok {
			return
		}

		saved, err := svc.Save(r.Context(), m)
		if err != nil {
			writeError(w, err)
			return
		}

		web.WriteJSON(w, http.StatusCreated, toMedicationResponse(saved))
	}
}

// updateMedicationHandler godoc
// @Summary Reemplazar medicamento
// @Description Sobrescribe el registro completo.
// @Tags medications
// @Accept json
// @Produce json
// @Param medicationID path int true "ID del medicamento"
// @Param payload body medicationRequest true "Registro completo"
// @Success 200 {object} medicationResponse
// @Failure 400 {string} string "invalid json / tarja ausente o inválida"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [put]
func updateMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "medicationID")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		m, ok := decodeMedication(w, r)
		if !ok {
			return
		}
		m.ID = id

		saved, err := svc.Save(r.Context(), m)
		if err != nil {
			writeError(w, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, toMedicationResponse(saved))
	}
}

// deleteMedicationHandler godoc
// @Summary Eliminar medicamento
// @Tags medications
// @Param medicationID path int true "ID del medicamento"
// @Success 204
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [delete]
func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "medicationID")
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

func decodeMedication(w http.ResponseWriter, r *http.Request) (Medication, bool) {
	var req medicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return Medication{}, false
	}

	exp, err := web.ParseDate(req.ExpiresOn)
	if err != nil {
		http.Error(w, "expires_on must be YYYY-MM-DD", http.StatusBadRequest)
		return Medication{}, false
	}

	return Medication{
		Formula:   req.Formula,
		Quantity:  req.Quantity,
		ExpiresOn: exp,
		Tag:       ParseTag(req.Tag),
	}, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrTagRequired), errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "medication not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:              m.ID,
		Formula:         m.Formula,
		Quantity:        m.Quantity,
		ExpiresOn:       web.FormatDate(m.ExpiresOn),
		Tag:             m.Tag,
		TagLabel:        m.Tag.Label(),
		PrescriptionIDs: m.PrescriptionIDs,
	}
}

func toMedicationResponses(items []Medication) []medicationResponse {
	out := make([]medicationResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMedicationResponse(m))
	}
	return out
}

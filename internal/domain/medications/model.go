package medications

import (
	"strings"
	"time"
)

// Tag es la tarja (clasificación regulatoria) del medicamento.
// @Enum NONE, YELLOW, RED, BLACK
type Tag string

const (
	TagNone   Tag = "NONE"
	TagYellow Tag = "YELLOW"
	TagRed    Tag = "RED"
	TagBlack  Tag = "BLACK"
)

var tagLabels = map[Tag]string{
	TagNone:   "Sem Tarja",
	TagYellow: "Tarja Amarela",
	TagRed:    "Tarja Vermelha",
	TagBlack:  "Tarja Preta",
}

// códigos que manda el front-end heredado
var legacyTags = map[string]Tag{
	"SEM_TARJA": TagNone,
	"AMARELA":   TagYellow,
	"VERMELHA":  TagRed,
	"PRETA":     TagBlack,
}

// ParseTag normaliza mayúsculas y códigos heredados.
// Un valor desconocido se devuelve tal cual; Valid() lo rechaza.
func ParseTag(s string) Tag {
	s = strings.ToUpper(strings.TrimSpace(s))
	if t, ok := legacyTags[s]; ok {
		return t
	}
	return Tag(s)
}

func (t Tag) Valid() bool {
	_, ok := tagLabels[t]
	return ok
}

// Label es el texto para mostrar; "" si la tarja no es válida.
func (t Tag) Label() string {
	return tagLabels[t]
}

// Medication es un ítem de stock del dispensario.
type Medication struct {
	ID int64

	Formula   string
	Quantity  int
	ExpiresOn *time.Time // DATE

	Tag Tag

	// Lectura del join prescription_medications; Save no lo escribe.
	PrescriptionIDs []int64
}

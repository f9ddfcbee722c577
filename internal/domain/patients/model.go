package patients

import "time"

// Patient es la persona que retira medicamentos en el dispensario.
type Patient struct {
	ID int64

	Name  string
	CPF   string
	Phone string

	// Dirección. Street/District/City/State se completan desde la consulta de CEP cuando responde.
	PostalCode string
	Street     string
	Number     string
	District   string
	Complement string
	City       string
	State      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

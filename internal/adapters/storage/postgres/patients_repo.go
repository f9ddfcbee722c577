package postgres

import (
	"context"
	"database/sql"
	"errors"

	"remedios-api/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

const patientColumns = `
	id, name, cpf, phone,
	postal_code, street, number, district, complement, city, state,
	created_at, updated_at`

func (r *PatientsRepo) List(ctx context.Context) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+patientColumns+` FROM patients ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PatientsRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id)

	p, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return patients.Patient{}, patients.ErrNotFound
		}
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO patients (
			name, cpf, phone,
			postal_code, street, number, district, complement, city, state,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id
	`,
		p.Name,
		p.CPF,
		p.Phone,
		p.PostalCode,
		p.Street,
		p.Number,
		p.District,
		p.Complement,
		p.City,
		p.State,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return patients.Patient{}, err
	}
	return p, nil
}

// Update sobrescribe todo salvo created_at.
func (r *PatientsRepo) Update(ctx context.Context, p patients.Patient) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE patients
		SET
			name = $2,
			cpf = $3,
			phone = $4,
			postal_code = $5,
			street = $6,
			number = $7,
			district = $8,
			complement = $9,
			city = $10,
			state = $11,
			updated_at = $12
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.CPF,
		p.Phone,
		p.PostalCode,
		p.Street,
		p.Number,
		p.District,
		p.Complement,
		p.City,
		p.State,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return patients.ErrNotFound
	}
	return nil
}

func (r *PatientsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return patients.ErrNotFound
	}
	return nil
}

func scanPatient(s rowScanner) (patients.Patient, error) {
	var p patients.Patient
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.CPF,
		&p.Phone,
		&p.PostalCode,
		&p.Street,
		&p.Number,
		&p.District,
		&p.Complement,
		&p.City,
		&p.State,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

var _ patients.Repository = (*PatientsRepo)(nil)

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"remedios-api/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

const medicationColumns = `id, formula, quantity, expires_on, tag`

func (r *MedicationsRepo) List(ctx context.Context) ([]medications.Medication, error) {
	return r.query(ctx, `SELECT `+medicationColumns+` FROM medications ORDER BY id ASC`)
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id int64) (medications.Medication, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+medicationColumns+` FROM medications WHERE id = $1`, id)

	m, err := scanMedication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medications.Medication{}, medications.ErrNotFound
		}
		return medications.Medication{}, err
	}
	return m, nil
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) (medications.Medication, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medications (formula, quantity, expires_on, tag)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`,
		m.Formula,
		m.Quantity,
		toNullDate(m.ExpiresOn),
		string(m.Tag),
	).Scan(&m.ID)
	if err != nil {
		return medications.Medication{}, err
	}
	return m, nil
}

func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medications
		SET
			formula = $2,
			quantity = $3,
			expires_on = $4,
			tag = $5
		WHERE id = $1
	`,
		m.ID,
		m.Formula,
		m.Quantity,
		toNullDate(m.ExpiresOn),
		string(m.Tag),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) ListByTag(ctx context.Context, tag medications.Tag) ([]medications.Medication, error) {
	return r.query(ctx, `SELECT `+medicationColumns+` FROM medications WHERE tag = $1 ORDER BY id ASC`, string(tag))
}

func (r *MedicationsRepo) ListByFormulaAboveQuantity(ctx context.Context, formula string, minQuantity int) ([]medications.Medication, error) {
	return r.query(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE formula = $1 AND quantity > $2
		ORDER BY expires_on ASC, id ASC
	`, formula, minQuantity)
}

func (r *MedicationsRepo) query(ctx context.Context, q string, args ...any) ([]medications.Medication, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedication(s rowScanner) (medications.Medication, error) {
	var (
		m   medications.Medication
		exp sql.NullTime
		tag string
	)
	if err := s.Scan(&m.ID, &m.Formula, &m.Quantity, &exp, &tag); err != nil {
		return medications.Medication{}, err
	}
	m.ExpiresOn = fromNullDate(exp)
	m.Tag = medications.Tag(tag)
	return m, nil
}

var _ medications.Repository = (*MedicationsRepo)(nil)

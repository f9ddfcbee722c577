package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"remedios-api/internal/domain/prescriptions"
)

// PrescriptionsRepo persiste la cabecera en prescriptions y los ítems en
// prescription_medications (join explícito con medications).
type PrescriptionsRepo struct {
	db *sql.DB
}

func NewPrescriptionsRepo(db *sql.DB) *PrescriptionsRepo {
	return &PrescriptionsRepo{db: db}
}

func (r *PrescriptionsRepo) Create(ctx context.Context, p prescriptions.Prescription) (prescriptions.Prescription, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return prescriptions.Prescription{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO prescriptions (code, patient_id, issued_on, created_at)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`,
		p.Code,
		p.PatientID,
		p.IssuedOn,
		p.CreatedAt,
	).Scan(&p.ID); err != nil {
		if isForeignKeyViolation(err) {
			return prescriptions.Prescription{}, prescriptions.ErrPatientNotFound
		}
		return prescriptions.Prescription{}, err
	}

	for _, it := range p.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO prescription_medications (prescription_id, medication_id, quantity)
			VALUES ($1,$2,$3)
		`, p.ID, it.MedicationID, it.Quantity); err != nil {
			if isForeignKeyViolation(err) {
				return prescriptions.Prescription{}, fmt.Errorf("%w: %d", prescriptions.ErrMedicationNotFound, it.MedicationID)
			}
			return prescriptions.Prescription{}, fmt.Errorf("insert item %d: %w", it.MedicationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return prescriptions.Prescription{}, err
	}
	return p, nil
}

func (r *PrescriptionsRepo) GetByID(ctx context.Context, id int64) (prescriptions.Prescription, error) {
	var p prescriptions.Prescription
	err := r.db.QueryRowContext(ctx, `
		SELECT id, code, patient_id, issued_on, created_at
		FROM prescriptions
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Code, &p.PatientID, &p.IssuedOn, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return prescriptions.Prescription{}, prescriptions.ErrNotFound
		}
		return prescriptions.Prescription{}, err
	}

	items, err := r.items(ctx, p.ID)
	if err != nil {
		return prescriptions.Prescription{}, err
	}
	p.Items = items
	return p, nil
}

func (r *PrescriptionsRepo) ListByPatient(ctx context.Context, patientID int64) ([]prescriptions.Prescription, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, code, patient_id, issued_on, created_at
		FROM prescriptions
		WHERE patient_id = $1
		ORDER BY id DESC
	`, patientID)
	if err != nil {
		return nil, err
	}

	out := make([]prescriptions.Prescription, 0)
	for rows.Next() {
		var p prescriptions.Prescription
		if err := rows.Scan(&p.ID, &p.Code, &p.PatientID, &p.IssuedOn, &p.CreatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// ítems después de cerrar rows: con MaxOpenConns bajo no conviene anidar queries
	for i := range out {
		items, err := r.items(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *PrescriptionsRepo) ListIDsByMedication(ctx context.Context, medicationID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT prescription_id
		FROM prescription_medications
		WHERE medication_id = $1
		ORDER BY prescription_id ASC
	`, medicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *PrescriptionsRepo) items(ctx context.Context, prescriptionID int64) ([]prescriptions.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT medication_id, quantity
		FROM prescription_medications
		WHERE prescription_id = $1
		ORDER BY medication_id ASC
	`, prescriptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]prescriptions.Item, 0)
	for rows.Next() {
		var it prescriptions.Item
		if err := rows.Scan(&it.MedicationID, &it.Quantity); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

var _ prescriptions.Repository = (*PrescriptionsRepo)(nil)

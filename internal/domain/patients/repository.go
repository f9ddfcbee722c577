package patients

import "context"

type Repository interface {
	List(ctx context.Context) ([]Patient, error)
	GetByID(ctx context.Context, id int64) (Patient, error)
	Create(ctx context.Context, p Patient) (Patient, error)
	// Update sobrescribe todo salvo CreatedAt; ErrNotFound si no existe.
	Update(ctx context.Context, p Patient) error
	Delete(ctx context.Context, id int64) error
}

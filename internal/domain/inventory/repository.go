package inventory

import "context"

type Repository interface {
	Save(ctx context.Context, a *OutwardAssignment) error
	Update(ctx context.Context, a *OutwardAssignment) error
	GetByID(ctx context.Context, id uint) (*OutwardAssignment, error)
	List(ctx context.Context) ([]*OutwardAssignment, error)
	ListByTechnician(ctx context.Context, technicianID uint) ([]*OutwardAssignment, error)
}

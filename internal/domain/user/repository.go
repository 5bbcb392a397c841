package user

import (
	"context"

	vo "klevant/internal/domain/user/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByRole(ctx context.Context, role vo.Role) ([]*User, error)
	CountByRole(ctx context.Context, role vo.Role) (int64, error)
}

package repository

import (
	"context"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
)

// UserRepository puerto de persistencia para User.
// Los métodos Get devuelven (nil, nil) si no existe el registro y domain.ErrInvalidID si el id
// no tiene el formato del almacén. Create/Update devuelven domain.ErrDuplicate si el email ya existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, role string, limit, offset int) ([]*entity.User, error)
	// Update reemplaza el registro; false si no existía.
	Update(ctx context.Context, user *entity.User) (bool, error)
	// Upsert crea o actualiza por email (bootstrap del superadmin).
	Upsert(ctx context.Context, user *entity.User) error
	// Delete elimina físicamente; false si no existía.
	Delete(ctx context.Context, id string) (bool, error)
}

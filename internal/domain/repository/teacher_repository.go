package repository

import (
	"context"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
)

// TeacherRepository puerto de persistencia para Teacher.
// Create/Update devuelven domain.ErrDuplicate si el número de empleado ya existe.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *entity.Teacher) error
	GetByID(ctx context.Context, id string) (*entity.Teacher, error)
	// List ordena por nombre ascendente.
	List(ctx context.Context, filter entity.TeacherFilter) ([]*entity.Teacher, error)
	Update(ctx context.Context, teacher *entity.Teacher) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

package repository

import (
	"context"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
)

// EnrollmentRepository puerto de persistencia para inscripciones a cursos y actividades.
// Create/Update devuelven domain.ErrDuplicate si la tupla (kind, periodo, estudiante, destino) ya existe.
type EnrollmentRepository interface {
	Create(ctx context.Context, e *entity.Enrollment) error
	GetByID(ctx context.Context, id string) (*entity.Enrollment, error)
	List(ctx context.Context, filter entity.EnrollmentFilter) ([]*entity.Enrollment, error)
	Update(ctx context.Context, e *entity.Enrollment) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

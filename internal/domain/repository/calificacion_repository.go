package repository

import (
	"context"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
)

// CalificacionRepository puerto de persistencia para calificaciones.
type CalificacionRepository interface {
	Create(ctx context.Context, c *entity.Calificacion) error
	GetByID(ctx context.Context, id string) (*entity.Calificacion, error)
	// ListByStudent devuelve las calificaciones en el orden natural del almacén.
	ListByStudent(ctx context.Context, studentID string) ([]*entity.Calificacion, error)
	Update(ctx context.Context, c *entity.Calificacion) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

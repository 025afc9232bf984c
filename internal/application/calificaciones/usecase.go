package calificaciones

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/ports"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
)

// UseCase registro de calificaciones, análisis de riesgo y boleta.
type UseCase struct {
	repo     repository.CalificacionRepository
	users    repository.UserRepository
	risk     ports.RiskScorer
	reporter ports.ReportCardGenerator
	now      func() time.Time
}

// NewUseCase construye el caso de uso. users y reporter solo se usan para la boleta.
func NewUseCase(
	repo repository.CalificacionRepository,
	users repository.UserRepository,
	risk ports.RiskScorer,
	reporter ports.ReportCardGenerator,
) *UseCase {
	return &UseCase{
		repo:     repo,
		users:    users,
		risk:     risk,
		reporter: reporter,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create registra una calificación; la fecha es la del momento de escritura.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCalificacionRequest) (*dto.CalificacionResponse, error) {
	c := &entity.Calificacion{
		StudentID:  strings.TrimSpace(in.EstudianteID),
		Subject:    strings.TrimSpace(in.Materia),
		Score:      decimal.NewFromFloat(*in.Calificacion),
		Evaluation: strings.TrimSpace(in.Evaluacion),
		Date:       uc.now(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// ListByStudent calificaciones de un estudiante en el orden del almacén.
func (uc *UseCase) ListByStudent(ctx context.Context, studentID string) ([]dto.CalificacionResponse, error) {
	list, err := uc.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CalificacionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toResponse(c))
	}
	return out, nil
}

// Update aplica los campos presentes. ErrInvalidID si el id es malformado, ErrCalificacionNotFound si no existe.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateCalificacionRequest) (*dto.CalificacionResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCalificacionNotFound
	}
	if in.Materia != nil {
		c.Subject = strings.TrimSpace(*in.Materia)
	}
	if in.Calificacion != nil {
		c.Score = decimal.NewFromFloat(*in.Calificacion)
	}
	if in.Evaluacion != nil {
		c.Evaluation = strings.TrimSpace(*in.Evaluacion)
	}
	if in.Fecha != nil {
		c.Date = in.Fecha.UTC()
	}
	found, err := uc.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrCalificacionNotFound
	}
	return toResponse(c), nil
}

// Delete elimina físicamente una calificación.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrCalificacionNotFound
	}
	return nil
}

func toResponse(c *entity.Calificacion) *dto.CalificacionResponse {
	return &dto.CalificacionResponse{
		ID:           c.ID,
		EstudianteID: c.StudentID,
		Materia:      c.Subject,
		Calificacion: c.Score.InexactFloat64(),
		Evaluacion:   c.Evaluation,
		Fecha:        c.Date,
	}
}

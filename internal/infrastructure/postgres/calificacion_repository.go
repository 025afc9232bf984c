package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
)

var _ repository.CalificacionRepository = (*CalificacionRepo)(nil)

const calificacionColumns = `id, student_id, subject, score, evaluation, date`

// CalificacionRepo adaptador PostgreSQL para calificaciones. score es NUMERIC (shopspring/decimal).
type CalificacionRepo struct {
	db Querier
}

// NewCalificacionRepository construye el repositorio.
func NewCalificacionRepository(db Querier) *CalificacionRepo {
	return &CalificacionRepo{db: db}
}

func (r *CalificacionRepo) Create(ctx context.Context, c *entity.Calificacion) error {
	if c.ID == "" {
		c.ID = newID()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO calificaciones (`+calificacionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.StudentID, c.Subject, c.Score, c.Evaluation, c.Date,
	)
	if err != nil {
		return wrapErr("insert calificacion", err)
	}
	return nil
}

func (r *CalificacionRepo) GetByID(ctx context.Context, id string) (*entity.Calificacion, error) {
	if _, err := parseID(id); err != nil {
		return nil, err
	}
	c, err := scanCalificacion(r.db.QueryRow(ctx, `SELECT `+calificacionColumns+` FROM calificaciones WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calificacion: %w", err)
	}
	return c, nil
}

// ListByStudent orden de inserción (seq).
func (r *CalificacionRepo) ListByStudent(ctx context.Context, studentID string) ([]*entity.Calificacion, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+calificacionColumns+` FROM calificaciones
		WHERE student_id = $1 ORDER BY seq ASC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("list calificaciones: %w", err)
	}
	defer rows.Close()
	list := []*entity.Calificacion{}
	for rows.Next() {
		c, err := scanCalificacion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan calificacion: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CalificacionRepo) Update(ctx context.Context, c *entity.Calificacion) (bool, error) {
	if _, err := parseID(c.ID); err != nil {
		return false, err
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE calificaciones SET subject = $2, score = $3, evaluation = $4, date = $5
		WHERE id = $1`,
		c.ID, c.Subject, c.Score, c.Evaluation, c.Date,
	)
	if err != nil {
		return false, wrapErr("update calificacion", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CalificacionRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := parseID(id); err != nil {
		return false, err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM calificaciones WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete calificacion: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanCalificacion(row pgx.Row) (*entity.Calificacion, error) {
	var c entity.Calificacion
	if err := row.Scan(&c.ID, &c.StudentID, &c.Subject, &c.Score, &c.Evaluation, &c.Date); err != nil {
		return nil, err
	}
	return &c, nil
}

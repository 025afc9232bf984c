package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
)

var _ repository.TeacherRepository = (*TeacherRepo)(nil)

const teacherColumns = `id, name, employee_number, division_id, status, created_at, updated_at`

// TeacherRepo adaptador PostgreSQL para docentes.
type TeacherRepo struct {
	db Querier
}

// NewTeacherRepository construye el repositorio.
func NewTeacherRepository(db Querier) *TeacherRepo {
	return &TeacherRepo{db: db}
}

func (r *TeacherRepo) Create(ctx context.Context, t *entity.Teacher) error {
	if t.ID == "" {
		t.ID = newID()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO teachers (`+teacherColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Name, t.EmployeeNumber, t.DivisionID, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return wrapErr("insert teacher", err)
	}
	return nil
}

func (r *TeacherRepo) GetByID(ctx context.Context, id string) (*entity.Teacher, error) {
	if _, err := parseID(id); err != nil {
		return nil, err
	}
	t, err := scanTeacher(r.db.QueryRow(ctx, `SELECT `+teacherColumns+` FROM teachers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get teacher: %w", err)
	}
	return t, nil
}

// List arma el WHERE solo con los filtros presentes.
func (r *TeacherRepo) List(ctx context.Context, f entity.TeacherFilter) ([]*entity.Teacher, error) {
	var (
		conds []string
		args  []any
	)
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.DivisionID != nil {
		args = append(args, *f.DivisionID)
		conds = append(conds, fmt.Sprintf("division_id = $%d", len(args)))
	}
	query := `SELECT ` + teacherColumns + ` FROM teachers`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	defer rows.Close()
	list := []*entity.Teacher{}
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("scan teacher: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TeacherRepo) Update(ctx context.Context, t *entity.Teacher) (bool, error) {
	if _, err := parseID(t.ID); err != nil {
		return false, err
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE teachers SET name = $2, employee_number = $3, division_id = $4, status = $5, updated_at = $6
		WHERE id = $1`,
		t.ID, t.Name, t.EmployeeNumber, t.DivisionID, t.Status, t.UpdatedAt,
	)
	if err != nil {
		return false, wrapErr("update teacher", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TeacherRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := parseID(id); err != nil {
		return false, err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete teacher: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanTeacher(row pgx.Row) (*entity.Teacher, error) {
	var t entity.Teacher
	if err := row.Scan(&t.ID, &t.Name, &t.EmployeeNumber, &t.DivisionID, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

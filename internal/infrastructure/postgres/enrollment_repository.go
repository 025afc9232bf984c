package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
)

var _ repository.EnrollmentRepository = (*EnrollmentRepo)(nil)

const enrollmentColumns = `id, kind, period_id, student_id, target_id, status, unit_grades, created_at, updated_at`

// EnrollmentRepo adaptador PostgreSQL para inscripciones. unit_grades se guarda como JSONB.
type EnrollmentRepo struct {
	db Querier
}

// NewEnrollmentRepository construye el repositorio.
func NewEnrollmentRepository(db Querier) *EnrollmentRepo {
	return &EnrollmentRepo{db: db}
}

func marshalUnitGrades(g []entity.UnitGrade) ([]byte, error) {
	if g == nil {
		g = []entity.UnitGrade{}
	}
	return json.Marshal(g)
}

func (r *EnrollmentRepo) Create(ctx context.Context, e *entity.Enrollment) error {
	if e.ID == "" {
		e.ID = newID()
	}
	grades, err := marshalUnitGrades(e.UnitGrades)
	if err != nil {
		return fmt.Errorf("marshal unit grades: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO enrollments (`+enrollmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.Kind, e.PeriodID, e.StudentID, e.TargetID, e.Status, grades, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return wrapErr("insert enrollment", err)
	}
	return nil
}

func (r *EnrollmentRepo) GetByID(ctx context.Context, id string) (*entity.Enrollment, error) {
	if _, err := parseID(id); err != nil {
		return nil, err
	}
	e, err := scanEnrollment(r.db.QueryRow(ctx, `SELECT `+enrollmentColumns+` FROM enrollments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return e, nil
}

func (r *EnrollmentRepo) List(ctx context.Context, f entity.EnrollmentFilter) ([]*entity.Enrollment, error) {
	var (
		conds []string
		args  []any
	)
	add := func(col, val string) {
		if val == "" {
			return
		}
		args = append(args, val)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	add("kind", f.Kind)
	add("period_id", f.PeriodID)
	add("student_id", f.StudentID)
	add("target_id", f.TargetID)
	add("status", f.Status)

	query := `SELECT ` + enrollmentColumns + ` FROM enrollments`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()
	list := []*entity.Enrollment{}
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EnrollmentRepo) Update(ctx context.Context, e *entity.Enrollment) (bool, error) {
	if _, err := parseID(e.ID); err != nil {
		return false, err
	}
	grades, err := marshalUnitGrades(e.UnitGrades)
	if err != nil {
		return false, fmt.Errorf("marshal unit grades: %w", err)
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE enrollments SET status = $2, unit_grades = $3, updated_at = $4
		WHERE id = $1`,
		e.ID, e.Status, grades, e.UpdatedAt,
	)
	if err != nil {
		return false, wrapErr("update enrollment", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *EnrollmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := parseID(id); err != nil {
		return false, err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete enrollment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanEnrollment(row pgx.Row) (*entity.Enrollment, error) {
	var (
		e      entity.Enrollment
		grades []byte
	)
	if err := row.Scan(&e.ID, &e.Kind, &e.PeriodID, &e.StudentID, &e.TargetID, &e.Status, &grades,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if len(grades) > 0 {
		if err := json.Unmarshal(grades, &e.UnitGrades); err != nil {
			return nil, fmt.Errorf("unit grades: %w", err)
		}
	}
	if len(e.UnitGrades) == 0 {
		e.UnitGrades = nil
	}
	return &e, nil
}

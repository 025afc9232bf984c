package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
)

// EnrollmentUseCase inscripciones a cursos y a actividades complementarias.
type EnrollmentUseCase struct {
	repo repository.EnrollmentRepository
}

// NewEnrollmentUseCase construye el caso de uso.
func NewEnrollmentUseCase(repo repository.EnrollmentRepository) *EnrollmentUseCase {
	return &EnrollmentUseCase{repo: repo}
}

// CreateCourse inscribe a un estudiante en un curso del periodo.
func (uc *EnrollmentUseCase) CreateCourse(ctx context.Context, in dto.CreateCourseEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	e := newEnrollment(entity.EnrollmentKindCourse, in.PeriodID, in.StudentID, in.CourseID, in.Status)
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, translateEnrollmentErr(err)
	}
	return toEnrollmentResponse(e), nil
}

// CreateActivity inscribe a un estudiante en una actividad complementaria del periodo.
func (uc *EnrollmentUseCase) CreateActivity(ctx context.Context, in dto.CreateActivityEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	e := newEnrollment(entity.EnrollmentKindActivity, in.PeriodID, in.StudentID, in.ActivityID, in.Status)
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, translateEnrollmentErr(err)
	}
	return toEnrollmentResponse(e), nil
}

// BulkCreateActivity inscribe la lista de estudiantes; los ya inscritos (o repetidos en la
// misma solicitud) se reportan en Duplicates y no detienen el resto.
func (uc *EnrollmentUseCase) BulkCreateActivity(ctx context.Context, in dto.BulkActivityEnrollmentRequest) (*dto.BulkEnrollmentResponse, error) {
	out := &dto.BulkEnrollmentResponse{
		Created:    make([]dto.EnrollmentResponse, 0, len(in.StudentIDs)),
		Duplicates: []string{},
	}
	seen := make(map[string]struct{}, len(in.StudentIDs))
	for _, raw := range in.StudentIDs {
		studentID := strings.TrimSpace(raw)
		if _, dup := seen[studentID]; dup {
			out.Duplicates = append(out.Duplicates, studentID)
			continue
		}
		seen[studentID] = struct{}{}

		e := newEnrollment(entity.EnrollmentKindActivity, in.PeriodID, studentID, in.ActivityID, in.Status)
		if err := uc.repo.Create(ctx, e); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				out.Duplicates = append(out.Duplicates, studentID)
				continue
			}
			return nil, err
		}
		out.Created = append(out.Created, *toEnrollmentResponse(e))
	}
	return out, nil
}

// List filtra por igualdad sobre los campos presentes.
func (uc *EnrollmentUseCase) List(ctx context.Context, q dto.EnrollmentListQuery) ([]dto.EnrollmentResponse, error) {
	list, err := uc.repo.List(ctx, entity.EnrollmentFilter{
		Kind:      q.Kind,
		PeriodID:  q.PeriodID,
		StudentID: q.StudentID,
		TargetID:  q.TargetID,
		Status:    q.Status,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.EnrollmentResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEnrollmentResponse(e))
	}
	return out, nil
}

// GetByID devuelve ErrEnrollmentNotFound si no existe.
func (uc *EnrollmentUseCase) GetByID(ctx context.Context, id string) (*dto.EnrollmentResponse, error) {
	e, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEnrollmentResponse(e), nil
}

// UpdateStatus activa o desactiva una inscripción.
func (uc *EnrollmentUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateEnrollmentStatusRequest) (*dto.EnrollmentResponse, error) {
	e, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Status = in.Status
	return uc.save(ctx, e)
}

// SetUnitGrades registra notas por unidad; una unidad existente se reemplaza.
// Solo aplica a inscripciones a curso.
func (uc *EnrollmentUseCase) SetUnitGrades(ctx context.Context, id string, in dto.UpdateUnitGradesRequest) (*dto.EnrollmentResponse, error) {
	e, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Kind != entity.EnrollmentKindCourse {
		return nil, domain.ErrNotCourseEnrollment
	}
	byUnit := make(map[int]float64, len(e.UnitGrades)+len(in.Grades))
	for _, g := range e.UnitGrades {
		byUnit[g.Unit] = g.Score
	}
	for _, g := range in.Grades {
		byUnit[g.Unit] = *g.Score
	}
	grades := make([]entity.UnitGrade, 0, len(byUnit))
	for unit, score := range byUnit {
		grades = append(grades, entity.UnitGrade{Unit: unit, Score: score})
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i].Unit < grades[j].Unit })
	e.UnitGrades = grades
	return uc.save(ctx, e)
}

// Delete elimina físicamente la inscripción.
func (uc *EnrollmentUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

func (uc *EnrollmentUseCase) load(ctx context.Context, id string) (*entity.Enrollment, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEnrollmentNotFound
	}
	return e, nil
}

func (uc *EnrollmentUseCase) save(ctx context.Context, e *entity.Enrollment) (*dto.EnrollmentResponse, error) {
	e.UpdatedAt = time.Now().UTC()
	found, err := uc.repo.Update(ctx, e)
	if err != nil {
		return nil, translateEnrollmentErr(err)
	}
	if !found {
		return nil, domain.ErrEnrollmentNotFound
	}
	return toEnrollmentResponse(e), nil
}

func newEnrollment(kind, periodID, studentID, targetID, status string) *entity.Enrollment {
	if status == "" {
		status = entity.EnrollmentStatusActive
	}
	now := time.Now().UTC()
	return &entity.Enrollment{
		Kind:      kind,
		PeriodID:  strings.TrimSpace(periodID),
		StudentID: strings.TrimSpace(studentID),
		TargetID:  strings.TrimSpace(targetID),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func translateEnrollmentErr(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.ErrAlreadyEnrolled
	}
	return err
}

func toEnrollmentResponse(e *entity.Enrollment) *dto.EnrollmentResponse {
	resp := &dto.EnrollmentResponse{
		ID:        e.ID,
		Kind:      e.Kind,
		PeriodID:  e.PeriodID,
		StudentID: e.StudentID,
		TargetID:  e.TargetID,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	for _, g := range e.UnitGrades {
		resp.UnitGrades = append(resp.UnitGrades, dto.UnitGradeResponse{Unit: g.Unit, Score: g.Score})
	}
	return resp
}

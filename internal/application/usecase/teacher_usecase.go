package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
)

const minNameLen = 3

// TeacherUseCase ciclo de vida del expediente docente.
type TeacherUseCase struct {
	repo repository.TeacherRepository
}

// NewTeacherUseCase construye el caso de uso.
func NewTeacherUseCase(repo repository.TeacherRepository) *TeacherUseCase {
	return &TeacherUseCase{repo: repo}
}

// Create registra un docente. Status por defecto: active.
func (uc *TeacherUseCase) Create(ctx context.Context, in dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	name, err := validName(in.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	t := &entity.Teacher{
		Name:           name,
		EmployeeNumber: strings.TrimSpace(in.EmployeeNumber),
		DivisionID:     trimOptional(in.DivisionID),
		Status:         in.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if t.Status == "" {
		t.Status = entity.TeacherStatusActive
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, translateTeacherErr(err)
	}
	return toTeacherResponse(t), nil
}

// List filtra por igualdad sobre los campos presentes; orden por nombre ascendente.
func (uc *TeacherUseCase) List(ctx context.Context, q dto.TeacherListQuery) ([]dto.TeacherResponse, error) {
	var filter entity.TeacherFilter
	if q.Status != "" {
		filter.Status = &q.Status
	}
	if q.DivisionID != "" {
		filter.DivisionID = &q.DivisionID
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeacherResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTeacherResponse(t))
	}
	return out, nil
}

// GetByID devuelve ErrTeacherNotFound si no existe.
func (uc *TeacherUseCase) GetByID(ctx context.Context, id string) (*dto.TeacherResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrTeacherNotFound
	}
	return toTeacherResponse(t), nil
}

// Update aplica solo los campos presentes. divisionId null desasigna la división.
func (uc *TeacherUseCase) Update(ctx context.Context, id string, in dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrTeacherNotFound
	}
	if in.Name != nil {
		name, err := validName(*in.Name)
		if err != nil {
			return nil, err
		}
		t.Name = name
	}
	if in.EmployeeNumber != nil {
		t.EmployeeNumber = strings.TrimSpace(*in.EmployeeNumber)
	}
	if in.DivisionID.Set {
		if in.DivisionID.Null {
			t.DivisionID = nil
		} else {
			t.DivisionID = trimOptional(&in.DivisionID.Value)
		}
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	t.UpdatedAt = time.Now().UTC()

	found, err := uc.repo.Update(ctx, t)
	if err != nil {
		return nil, translateTeacherErr(err)
	}
	if !found {
		return nil, domain.ErrTeacherNotFound
	}
	return toTeacherResponse(t), nil
}

// Delete elimina físicamente; ErrTeacherNotFound si no se eliminó nada.
func (uc *TeacherUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrTeacherNotFound
	}
	return nil
}

func translateTeacherErr(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.ErrEmployeeNumberExists
	}
	return err
}

// normalizeName recorta espacios y normaliza a NFC para que "José" compuesto y descompuesto coincidan.
func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// validName normaliza y exige minNameLen caracteres ya sin espacios alrededor.
func validName(s string) (string, error) {
	name := normalizeName(s)
	if utf8.RuneCountInString(name) < minNameLen {
		return "", domain.ErrNameTooShort
	}
	return name, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func toTeacherResponse(t *entity.Teacher) *dto.TeacherResponse {
	return &dto.TeacherResponse{
		ID:             t.ID,
		Name:           t.Name,
		EmployeeNumber: t.EmployeeNumber,
		DivisionID:     t.DivisionID,
		Status:         t.Status,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

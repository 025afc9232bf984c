package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/usecase"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/internal/testutil/memrepo"
)

const missingID = "00000000-0000-0000-0000-0000000000ff"

func strp(s string) *string { return &s }

func newTeacherUC() *usecase.TeacherUseCase {
	return usecase.NewTeacherUseCase(memrepo.NewTeachers())
}

func TestTeacherCreate_RecortaYStatusPorDefecto(t *testing.T) {
	uc := newTeacherUC()

	out, err := uc.Create(context.Background(), dto.CreateTeacherRequest{
		Name:           "  Ana Pérez  ",
		EmployeeNumber: " E-100 ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Ana Pérez", out.Name)
	assert.Equal(t, "E-100", out.EmployeeNumber)
	assert.Equal(t, "active", out.Status)
	assert.Nil(t, out.DivisionID)
}

func TestTeacherCreate_NombreNormalizadoNFC(t *testing.T) {
	uc := newTeacherUC()

	// "José" con acento combinante (NFD).
	out, err := uc.Create(context.Background(), dto.CreateTeacherRequest{Name: "Jose\u0301 Ruiz", EmployeeNumber: "E-1"})
	require.NoError(t, err)
	assert.Equal(t, "Jos\u00e9 Ruiz", out.Name)
}

func TestTeacherCreate_NumeroEmpleadoDuplicado(t *testing.T) {
	uc := newTeacherUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateTeacherRequest{Name: "Ana Pérez", EmployeeNumber: "E-100"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateTeacherRequest{Name: "Luis Gómez", EmployeeNumber: "E-100"})
	assert.ErrorIs(t, err, domain.ErrEmployeeNumberExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "el número de empleado ya existe", domain.Message(err))
}

func TestTeacherList_FiltraYOrdenaPorNombre(t *testing.T) {
	uc := newTeacherUC()
	ctx := context.Background()
	div := "65a1f0c2b3d4e5f6a7b8c9d0"

	_, _ = uc.Create(ctx, dto.CreateTeacherRequest{Name: "Zoe Díaz", EmployeeNumber: "E-3", DivisionID: &div})
	_, _ = uc.Create(ctx, dto.CreateTeacherRequest{Name: "Ana Pérez", EmployeeNumber: "E-1", DivisionID: &div})
	_, _ = uc.Create(ctx, dto.CreateTeacherRequest{Name: "Marta Gil", EmployeeNumber: "E-2", Status: "suspended"})

	all, err := uc.List(ctx, dto.TeacherListQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Ana Pérez", all[0].Name)
	assert.Equal(t, "Marta Gil", all[1].Name)
	assert.Equal(t, "Zoe Díaz", all[2].Name)

	byDiv, err := uc.List(ctx, dto.TeacherListQuery{DivisionID: div})
	require.NoError(t, err)
	assert.Len(t, byDiv, 2)

	suspended, err := uc.List(ctx, dto.TeacherListQuery{Status: "suspended"})
	require.NoError(t, err)
	require.Len(t, suspended, 1)
	assert.Equal(t, "E-2", suspended[0].EmployeeNumber)
}

func TestTeacherGetByID_NoExiste(t *testing.T) {
	_, err := newTeacherUC().GetByID(context.Background(), missingID)
	assert.ErrorIs(t, err, domain.ErrTeacherNotFound)
}

func TestTeacherGetByID_IDMalformado(t *testing.T) {
	_, err := newTeacherUC().GetByID(context.Background(), "xyz")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestTeacherUpdate_Parcial(t *testing.T) {
	uc := newTeacherUC()
	ctx := context.Background()
	div := "65a1f0c2b3d4e5f6a7b8c9d0"
	created, err := uc.Create(ctx, dto.CreateTeacherRequest{Name: "Ana Pérez", EmployeeNumber: "E-1", DivisionID: &div})
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.UpdateTeacherRequest{Status: strp("inactive")})
	require.NoError(t, err)
	assert.Equal(t, "inactive", out.Status)
	assert.Equal(t, "Ana Pérez", out.Name)
	require.NotNil(t, out.DivisionID)
	assert.Equal(t, div, *out.DivisionID)
}

func TestTeacherUpdate_DivisionNullDesasigna(t *testing.T) {
	uc := newTeacherUC()
	ctx := context.Background()
	div := "65a1f0c2b3d4e5f6a7b8c9d0"
	created, err := uc.Create(ctx, dto.CreateTeacherRequest{Name: "Ana Pérez", EmployeeNumber: "E-1", DivisionID: &div})
	require.NoError(t, err)

	var in dto.UpdateTeacherRequest
	require.NoError(t, json.Unmarshal([]byte(`{"divisionId":null}`), &in))

	out, err := uc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Nil(t, out.DivisionID)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DivisionID)
}

func TestTeacherUpdate_NumeroDeOtroDocente(t *testing.T) {
	uc := newTeacherUC()
	ctx := context.Background()
	_, _ = uc.Create(ctx, dto.CreateTeacherRequest{Name: "Ana Pérez", EmployeeNumber: "E-1"})
	second, err := uc.Create(ctx, dto.CreateTeacherRequest{Name: "Luis Gómez", EmployeeNumber: "E-2"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, second.ID, dto.UpdateTeacherRequest{EmployeeNumber: strp("E-1")})
	assert.ErrorIs(t, err, domain.ErrEmployeeNumberExists)
}

func TestTeacherUpdate_NoExiste(t *testing.T) {
	_, err := newTeacherUC().Update(context.Background(), missingID, dto.UpdateTeacherRequest{Name: strp("Nadie Más")})
	assert.ErrorIs(t, err, domain.ErrTeacherNotFound)
}

func TestTeacherDelete(t *testing.T) {
	uc := newTeacherUC()
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateTeacherRequest{Name: "Ana Pérez", EmployeeNumber: "E-1"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrTeacherNotFound)
}

func TestTeacher_NombreCortoTrasRecortar(t *testing.T) {
	uc := newTeacherUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateTeacherRequest{Name: "  ab  ", EmployeeNumber: "E-1"})
	assert.ErrorIs(t, err, domain.ErrNameTooShort)

	created, err := uc.Create(ctx, dto.CreateTeacherRequest{Name: "Ana Pérez", EmployeeNumber: "E-1"})
	require.NoError(t, err)
	_, err = uc.Update(ctx, created.ID, dto.UpdateTeacherRequest{Name: strp(" ab ")})
	assert.ErrorIs(t, err, domain.ErrNameTooShort)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", got.Name)
}

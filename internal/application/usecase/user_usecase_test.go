package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/usecase"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/internal/testutil/memrepo"
)

func TestUserCreate_HasheaYNormalizaEmail(t *testing.T) {
	repo := memrepo.NewUsers()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, "superadmin", dto.CreateUserRequest{
		FullName: "Ana López", Email: "  Ana@Escuela.MX ", Password: "secreta123", Role: "teacher",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@escuela.mx", out.Email)
	assert.True(t, out.Active)

	stored, err := repo.GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	uc := usecase.NewUserUseCase(memrepo.NewUsers())
	ctx := context.Background()
	in := dto.CreateUserRequest{FullName: "Ana López", Email: "ana@escuela.mx", Password: "secreta123", Role: "teacher"}

	_, err := uc.Create(ctx, "superadmin", in)
	require.NoError(t, err)

	in.Email = "ANA@escuela.mx"
	_, err = uc.Create(ctx, "superadmin", in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserUpdate_CambiaPasswordYRol(t *testing.T) {
	repo := memrepo.NewUsers()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()
	created, err := uc.Create(ctx, "superadmin", dto.CreateUserRequest{FullName: "Ana López", Email: "ana@escuela.mx", Password: "secreta123", Role: "teacher"})
	require.NoError(t, err)

	inactive := false
	out, err := uc.Update(ctx, "superadmin", created.ID, dto.UpdateUserRequest{
		Password: strp("otraClave99"), Role: strp("tutor"), Active: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "tutor", out.Role)
	assert.False(t, out.Active)
	assert.Equal(t, "Ana López", out.FullName)

	stored, _ := repo.GetByID(ctx, created.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("otraClave99")))
}

func TestUserList_FiltraPorRolYPagina(t *testing.T) {
	uc := usecase.NewUserUseCase(memrepo.NewUsers())
	ctx := context.Background()
	for _, e := range []string{"a@x.mx", "b@x.mx", "c@x.mx"} {
		_, err := uc.Create(ctx, "superadmin", dto.CreateUserRequest{FullName: "Alumno X", Email: e, Password: "secreta123", Role: "student"})
		require.NoError(t, err)
	}
	_, _ = uc.Create(ctx, "superadmin", dto.CreateUserRequest{FullName: "Profe Y", Email: "p@x.mx", Password: "secreta123", Role: "teacher"})

	out, err := uc.List(ctx, "student", dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "a@x.mx", out.Items[0].Email)

	out, err = uc.List(ctx, "student", dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "c@x.mx", out.Items[0].Email)
}

func TestUserDelete_NoExiste(t *testing.T) {
	uc := usecase.NewUserUseCase(memrepo.NewUsers())
	assert.ErrorIs(t, uc.Delete(context.Background(), "superadmin", missingID), domain.ErrUserNotFound)
}

func TestUserCreate_RolNoOtorgable(t *testing.T) {
	repo := memrepo.NewUsers()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, "registrar", dto.CreateUserRequest{
		FullName: "Intruso", Email: "x@escuela.mx", Password: "secreta123", Role: "superadmin",
	})
	assert.ErrorIs(t, err, domain.ErrRoleNotAssignable)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, _ := repo.List(ctx, "", 10, 0)
	assert.Empty(t, list)
}

func TestUserUpdate_NoPuedeEscalarRol(t *testing.T) {
	uc := usecase.NewUserUseCase(memrepo.NewUsers())
	ctx := context.Background()
	created, err := uc.Create(ctx, "admin", dto.CreateUserRequest{
		FullName: "Ana López", Email: "ana@escuela.mx", Password: "secreta123", Role: "teacher",
	})
	require.NoError(t, err)

	_, err = uc.Update(ctx, "admin", created.ID, dto.UpdateUserRequest{Role: strp("superadmin")})
	assert.ErrorIs(t, err, domain.ErrRoleNotAssignable)
}

func TestUserCreate_NombreConEspaciosDemasiadoCorto(t *testing.T) {
	uc := usecase.NewUserUseCase(memrepo.NewUsers())
	_, err := uc.Create(context.Background(), "superadmin", dto.CreateUserRequest{
		FullName: "  ab  ", Email: "ab@escuela.mx", Password: "secreta123", Role: "teacher",
	})
	assert.ErrorIs(t, err, domain.ErrNameTooShort)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHashPassword_MayorA72Bytes(t *testing.T) {
	_, err := usecase.HashPassword(strings.Repeat("ñ", 40))
	assert.ErrorIs(t, err, usecase.ErrPasswordTooLong)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

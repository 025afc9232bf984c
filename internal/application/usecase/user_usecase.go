package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/permission"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create hashea el password con bcrypt y persiste. Email en minúsculas; activo por defecto.
// actorRole es el rol de quien hace la petición y debe poder otorgar in.Role.
func (uc *UserUseCase) Create(ctx context.Context, actorRole string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !permission.CanAssignRole(actorRole, in.Role) {
		return nil, domain.ErrRoleNotAssignable
	}
	name, err := validName(in.FullName)
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &entity.User{
		FullName:     name,
		Email:        NormalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         in.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, translateUserErr(err)
	}
	return ToUserResponse(u), nil
}

// List lista usuarios, opcionalmente filtrados por rol.
func (uc *UserUseCase) List(ctx context.Context, role string, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, role, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(u), nil
}

// Update actualización parcial; un password presente se vuelve a hashear.
// actorRole debe poder administrar el rol actual del usuario y, si cambia, el nuevo.
func (uc *UserUseCase) Update(ctx context.Context, actorRole, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if !permission.CanAssignRole(actorRole, u.Role) {
		return nil, domain.ErrRoleNotAssignable
	}
	if in.Role != nil && !permission.CanAssignRole(actorRole, *in.Role) {
		return nil, domain.ErrRoleNotAssignable
	}
	if in.FullName != nil {
		name, err := validName(*in.FullName)
		if err != nil {
			return nil, err
		}
		u.FullName = name
	}
	if in.Email != nil {
		u.Email = NormalizeEmail(*in.Email)
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	if in.Password != nil {
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = time.Now().UTC()

	found, err := uc.repo.Update(ctx, u)
	if err != nil {
		return nil, translateUserErr(err)
	}
	if !found {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(u), nil
}

// Delete elimina físicamente al usuario si actorRole puede administrar su rol.
func (uc *UserUseCase) Delete(ctx context.Context, actorRole, id string) error {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if !permission.CanAssignRole(actorRole, u.Role) {
		return domain.ErrRoleNotAssignable
	}
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrUserNotFound
	}
	return nil
}

// MaxPasswordBytes límite de bcrypt; bytes adicionales no entrarían en el hash.
const MaxPasswordBytes = 72

// ErrPasswordTooLong password que bcrypt no puede hashear.
var ErrPasswordTooLong = domain.New(domain.ErrInvalidInput, "el password no puede exceder 72 bytes")

// HashPassword bcrypt con costo por defecto.
func HashPassword(plain string) (string, error) {
	if len(plain) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// NormalizeEmail recorta y pasa a minúsculas.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func translateUserErr(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.ErrEmailAlreadyExists
	}
	return err
}

// ToUserResponse mapea la entidad a su salida pública (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

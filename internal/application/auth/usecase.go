package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"html"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/ports"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/usecase"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/permission"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
	"github.com/L20660042/Backend-Proy-sub001/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, perfil y códigos de verificación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	codes    ports.VerificationCodeStore
	mailer   ports.Mailer
	jwtCfg   JWTConfig
	codeTTL  time.Duration
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	codes ports.VerificationCodeStore,
	mailer ports.Mailer,
	jwtCfg JWTConfig,
	codeTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, codes: codes, mailer: mailer, jwtCfg: jwtCfg, codeTTL: codeTTL}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, usecase.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domain.ErrInactiveUser
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      *usecase.ToUserResponse(user),
	}, nil
}

// Me devuelve el perfil del principal y los permisos de su rol.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.MeResponse{
		User:        *usecase.ToUserResponse(user),
		Permissions: permission.ForRole(user.Role).List(),
	}, nil
}

// SendVerificationCode genera un código de 6 dígitos, lo guarda con expiración y lo envía por correo.
// Para no revelar qué correos existen, un email desconocido no produce error ni envío.
func (uc *AuthUseCase) SendVerificationCode(ctx context.Context, in dto.SendVerificationCodeRequest) error {
	email := usecase.NormalizeEmail(in.Email)
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	code, err := generateCode()
	if err != nil {
		return err
	}
	if err := uc.codes.Save(ctx, email, code, uc.codeTTL); err != nil {
		return fmt.Errorf("auth: guardar código: %w", err)
	}
	minutes := int(uc.codeTTL.Minutes())
	return uc.mailer.Send(ctx, ports.Mail{
		To:      []string{email},
		Subject: "Código de verificación",
		Text:    fmt.Sprintf("Hola %s,\n\nTu código de verificación es %s. Vence en %d minutos.", user.FullName, code, minutes),
		HTML: fmt.Sprintf("<p>Hola %s,</p><p>Tu código de verificación es <strong>%s</strong>. Vence en %d minutos.</p>",
			html.EscapeString(user.FullName), code, minutes),
	})
}

// VerifyCode consume el código; ErrInvalidVerificationCode si no coincide o expiró.
func (uc *AuthUseCase) VerifyCode(ctx context.Context, in dto.VerifyCodeRequest) error {
	ok, err := uc.codes.Consume(ctx, usecase.NormalizeEmail(in.Email), in.Code)
	if err != nil {
		return fmt.Errorf("auth: consumir código: %w", err)
	}
	if !ok {
		return domain.ErrInvalidVerificationCode
	}
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

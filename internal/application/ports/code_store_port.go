package ports

import (
	"context"
	"time"
)

// VerificationCodeStore guarda códigos de verificación de un solo uso con expiración.
type VerificationCodeStore interface {
	Save(ctx context.Context, email, code string, ttl time.Duration) error
	// Consume devuelve true y elimina el código si coincide y no ha expirado.
	Consume(ctx context.Context, email, code string) (bool, error)
}

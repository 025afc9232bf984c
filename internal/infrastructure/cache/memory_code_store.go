package cache

import (
	"context"
	"sync"
	"time"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/ports"
)

var _ ports.VerificationCodeStore = (*MemoryCodeStore)(nil)

type memoryCode struct {
	code      string
	expiresAt time.Time
}

// MemoryCodeStore alternativa en proceso cuando no hay REDIS_ADDR (desarrollo, tests).
type MemoryCodeStore struct {
	mu    sync.Mutex
	codes map[string]memoryCode
	now   func() time.Time
}

// NewMemoryCodeStore construye el store vacío.
func NewMemoryCodeStore() *MemoryCodeStore {
	return &MemoryCodeStore{codes: make(map[string]memoryCode), now: time.Now}
}

func (s *MemoryCodeStore) Save(_ context.Context, email, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = memoryCode{code: code, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryCodeStore) Consume(_ context.Context, email, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.codes[email]
	if !ok {
		return false, nil
	}
	if !s.now().Before(c.expiresAt) {
		delete(s.codes, email)
		return false, nil
	}
	if c.code != code {
		return false, nil
	}
	delete(s.codes, email)
	return true, nil
}

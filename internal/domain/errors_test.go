package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
)

func TestError_ConservaClase(t *testing.T) {
	assert.ErrorIs(t, domain.ErrEmployeeNumberExists, domain.ErrConflict)
	assert.ErrorIs(t, domain.ErrDuplicate, domain.ErrConflict)
	assert.ErrorIs(t, domain.ErrTeacherNotFound, domain.ErrNotFound)
	assert.NotErrorIs(t, domain.ErrTeacherNotFound, domain.ErrConflict)
}

func TestWithCause_MensajeSinDetalleTecnico(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:8000: connection refused")
	err := fmt.Errorf("riesgo: %w", domain.WithCause(domain.ErrRiskServiceUnavailable, cause))

	assert.ErrorIs(t, err, domain.ErrRiskServiceUnavailable)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "no se pudo contactar el servicio de riesgo académico", domain.Message(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMessage_ErrorPlano(t *testing.T) {
	assert.Equal(t, "recurso no encontrado", domain.Message(domain.ErrNotFound))
}

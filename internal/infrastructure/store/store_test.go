package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/L20660042/Backend-Proy-sub001/internal/infrastructure/store"
	"github.com/L20660042/Backend-Proy-sub001/pkg/config"
)

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := store.Open(context.Background(), &config.Config{DB: config.DBConfig{Driver: "sqlite"}}, store.Options{})
	assert.Error(t, err)
}

func TestClose_SinRecursos(t *testing.T) {
	var r store.Repositories
	assert.NoError(t, r.Close(context.Background()))
}

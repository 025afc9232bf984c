package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/ports"
	"github.com/L20660042/Backend-Proy-sub001/pkg/config"
	"github.com/L20660042/Backend-Proy-sub001/pkg/logger"
)

func TestLogSender_RegistraCorreo(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSender(logger.New(logger.Config{Env: "production", Level: "info", Output: &buf}))

	err := s.Send(context.Background(), ports.Mail{
		To:      []string{"ana@escuela.mx", "luis@escuela.mx"},
		Subject: "Código de verificación",
		Text:    "Tu código es 123456",
	})
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ana@escuela.mx,luis@escuela.mx", entry["to"])
	assert.Equal(t, "Código de verificación", entry["subject"])
	assert.Equal(t, "Tu código es 123456", entry["body"])
}

func TestBuildMessage_Cabeceras(t *testing.T) {
	msg := buildMessage("no-reply@escuela.mx", ports.Mail{
		To:      []string{"ana@escuela.mx"},
		Subject: "Hola",
		Text:    "texto",
		HTML:    "<p>texto</p>",
	})

	assert.Equal(t, []string{"no-reply@escuela.mx"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"ana@escuela.mx"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Hola"}, msg.GetHeader("Subject"))

	var out bytes.Buffer
	_, err := msg.WriteTo(&out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "text/html")
	assert.Contains(t, out.String(), "text/plain")
}

func TestSMTPSender_SinDestinatarios(t *testing.T) {
	s := NewSMTPSender(config.SMTPConfig{Host: "localhost", Port: 2525, From: "x@y.z"})
	err := s.Send(context.Background(), ports.Mail{Subject: "vacío"})
	assert.Error(t, err)
}

func TestSMTPSender_ContextoCancelado(t *testing.T) {
	s := NewSMTPSender(config.SMTPConfig{Host: "localhost", Port: 2525, From: "x@y.z"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Send(ctx, ports.Mail{To: []string{"a@b.c"}})
	assert.ErrorIs(t, err, context.Canceled)
}

package mail

import (
	"context"
	"strings"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/ports"
	"github.com/L20660042/Backend-Proy-sub001/pkg/logger"
)

var _ ports.Mailer = (*LogSender)(nil)

// LogSender registra los correos en el log en vez de enviarlos (SMTP_HOST vacío, desarrollo).
type LogSender struct {
	log *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, m ports.Mail) error {
	s.log.Info().
		Str("to", strings.Join(m.To, ",")).
		Str("subject", m.Subject).
		Str("body", m.Text).
		Msg("correo no enviado (SMTP no configurado)")
	return nil
}

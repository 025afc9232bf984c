package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/ports"
	"github.com/L20660042/Backend-Proy-sub001/pkg/config"
)

var _ ports.Mailer = (*SMTPSender)(nil)

// SMTPSender envía correos vía SMTP con gomail. Cada envío abre su propia conexión.
type SMTPSender struct {
	from   string
	dialer *gomail.Dialer
}

// NewSMTPSender construye el transporte SMTP a partir de la configuración.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// Send arma el mensaje (texto plano y HTML opcional) y lo entrega.
func (s *SMTPSender) Send(ctx context.Context, m ports.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(m.To) == 0 {
		return fmt.Errorf("mail: sin destinatarios")
	}
	if err := s.dialer.DialAndSend(buildMessage(s.from, m)); err != nil {
		return fmt.Errorf("mail: envío SMTP: %w", err)
	}
	return nil
}

func buildMessage(from string, m ports.Mail) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", m.To...)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.Text)
	if m.HTML != "" {
		msg.AddAlternative("text/html", m.HTML)
	}
	return msg
}

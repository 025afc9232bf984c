package ports

import "context"

// Mail mensaje saliente. HTML es opcional; si viene vacío se envía solo texto.
type Mail struct {
	To      []string
	Subject string
	Text    string
	HTML    string
}

// Mailer puerto de envío de correo. Hay un único transporte real (SMTP).
type Mailer interface {
	Send(ctx context.Context, m Mail) error
}

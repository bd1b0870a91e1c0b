package notification

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"
	"gopkg.in/gomail.v2"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
)

type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

// NewEmailNotifier builds the confirmation-mail sender. With an empty host
// the notifier stays up but only logs, so local runs work without SMTP.
func NewEmailNotifier(host string, port int, user, password, from string, log logger.Logger) *EmailNotifier {
	if host == "" {
		log.Warn("smtp host is empty, confirmation emails disabled")
		return &EmailNotifier{from: from, logger: log}
	}

	return &EmailNotifier{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
		logger: log,
	}
}

// NotifyReservaConfirmada sends the confirmation mail. Best effort: failures
// are logged and never affect the reserva, which is already confirmada.
func (n *EmailNotifier) NotifyReservaConfirmada(ctx context.Context, reserva *domain.Reserva, cancha *domain.Cancha) {
	if n.dialer == nil {
		n.logger.Debug("confirmation email skipped (smtp disabled)",
			logger.String("reserva_id", reserva.ID),
		)
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("confirmation email skipped (context cancelled)",
			logger.String("reserva_id", reserva.ID),
		)
		return
	}

	nombre := cancha.Nombre
	if reserva.Tipo != nil {
		nombre = fmt.Sprintf("%s %s", cancha.Nombre, *reserva.Tipo)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", reserva.JugadorEmail)
	m.SetHeader("Subject", fmt.Sprintf("Reserva confirmada - %s %s %s", nombre, reserva.Fecha, reserva.Horario))
	m.SetBody("text/html", fmt.Sprintf(
		"<h1>¡Reserva Confirmada!</h1>"+
			"<p>Hola %s,</p>"+
			"<p>Tu reserva ha sido confirmada:</p>"+
			"<ul>"+
			"<li><strong>Cancha:</strong> %s</li>"+
			"<li><strong>Fecha:</strong> %s</li>"+
			"<li><strong>Horario:</strong> %s</li>"+
			"<li><strong>Precio total:</strong> $%d</li>"+
			"<li><strong>Seña pagada:</strong> $%d</li>"+
			"</ul>"+
			"<p>¡Te esperamos!</p>",
		reserva.JugadorNombre, nombre, reserva.Fecha, reserva.Horario, reserva.Precio, reserva.Sena,
	))

	if err := n.dialer.DialAndSend(m); err != nil {
		n.logger.Error("failed to send confirmation email",
			logger.String("reserva_id", reserva.ID),
			logger.String("to", reserva.JugadorEmail),
			logger.String("error", err.Error()),
		)
		return
	}

	n.logger.Info("confirmation email sent",
		logger.String("reserva_id", reserva.ID),
		logger.String("to", reserva.JugadorEmail),
	)
}

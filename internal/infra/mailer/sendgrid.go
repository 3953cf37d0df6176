package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"karoca-backend/internal/pkg/config"
	"karoca-backend/internal/pkg/errs"
	"karoca-backend/internal/usecase/commands"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const dateLayout = "02.01.2006."

// SendGridMailer sends booking confirmations through the SendGrid v3 API.
type SendGridMailer struct {
	apiKey       string
	fromEmail    string
	fromName     string
	depositCents int64
}

func NewSendGridMailer(cfg config.MailConfig, bookingCfg config.BookingConfig) *SendGridMailer {
	return &SendGridMailer{
		apiKey:       cfg.SendGridAPIKey,
		fromEmail:    cfg.FromEmail,
		fromName:     cfg.FromName,
		depositCents: bookingCfg.DepositCents,
	}
}

func (m *SendGridMailer) SendBookingConfirmation(ctx context.Context, email commands.ConfirmationEmail) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	recipient := mail.NewEmail(email.CustomerName, email.CustomerEmail)

	subject := fmt.Sprintf("Booking confirmation: %s, %s", email.VehicleName, email.PickupDate.Format(dateLayout))
	plainText := m.plainBody(email)
	htmlContent := m.htmlBody(email)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "failed to send confirmation email")
	}
	if response.StatusCode >= 400 {
		return errs.Newf("sendgrid rejected confirmation email: status %d", response.StatusCode)
	}
	return nil
}

func (m *SendGridMailer) plainBody(email commands.ConfirmationEmail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", email.CustomerName)
	fmt.Fprintf(&b, "We received your booking request for %s.\n\n", email.VehicleName)
	fmt.Fprintf(&b, "Pickup: %s, %s\n", email.PickupLocation, email.PickupDate.Format(dateLayout))
	fmt.Fprintf(&b, "Return: %s\n", email.ReturnDate.Format(dateLayout))
	if len(email.SelectedExtras) > 0 {
		fmt.Fprintf(&b, "Extras: %s\n", strings.Join(email.SelectedExtras, ", "))
	}
	fmt.Fprintf(&b, "Total: %s EUR\n\n", formatEuros(email.TotalCents))
	fmt.Fprintf(&b, "A security deposit of %s EUR is collected at pickup and returned when the vehicle is brought back undamaged.\n\n", formatEuros(m.depositCents))
	b.WriteString("We will contact you shortly to confirm the reservation.\n")
	return b.String()
}

func (m *SendGridMailer) htmlBody(email commands.ConfirmationEmail) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", email.CustomerName)
	fmt.Fprintf(&b, "<p>We received your booking request for <strong>%s</strong>.</p>", email.VehicleName)
	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li>Pickup: %s, %s</li>", email.PickupLocation, email.PickupDate.Format(dateLayout))
	fmt.Fprintf(&b, "<li>Return: %s</li>", email.ReturnDate.Format(dateLayout))
	if len(email.SelectedExtras) > 0 {
		fmt.Fprintf(&b, "<li>Extras: %s</li>", strings.Join(email.SelectedExtras, ", "))
	}
	fmt.Fprintf(&b, "<li>Total: <strong>%s EUR</strong></li>", formatEuros(email.TotalCents))
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>A security deposit of %s EUR is collected at pickup and returned when the vehicle is brought back undamaged.</p>", formatEuros(m.depositCents))
	b.WriteString("<p>We will contact you shortly to confirm the reservation.</p>")
	b.WriteString("</body></html>")
	return b.String()
}

func formatEuros(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// DisabledMailer replaces the SendGrid client when no API key is
// configured. Confirmations are logged, never sent.
type DisabledMailer struct {
	logger *slog.Logger
}

func NewDisabledMailer(logger *slog.Logger) *DisabledMailer {
	return &DisabledMailer{logger: logger}
}

func (m *DisabledMailer) SendBookingConfirmation(_ context.Context, email commands.ConfirmationEmail) error {
	m.logger.Warn("mail sending disabled, skipping booking confirmation",
		"customer_email", email.CustomerEmail,
		"vehicle", email.VehicleName,
	)
	return nil
}

// New picks the live or disabled implementation based on configuration.
func New(cfg config.MailConfig, bookingCfg config.BookingConfig, logger *slog.Logger) commands.Mailer {
	if cfg.SendGridAPIKey == "" {
		return NewDisabledMailer(logger)
	}
	return NewSendGridMailer(cfg, bookingCfg)
}

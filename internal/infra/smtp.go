package infra

import (
	"fmt"
	"net/smtp"

	"github.com/vanozi/superleuk-backend/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for the invitation and welcome messages.
// All sends go through a circuit breaker so a dead mail server fails fast
// instead of stalling every registration call.
type Mailer struct {
	host     string
	addr     string
	user     string
	password string
	from     string
	baseURL  string
	cb       *CircuitBreaker
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     fmt.Sprintf("%s <%s>", cfg.MailFromName, cfg.MailFrom),
		baseURL:  cfg.FrontendBaseURL,
		cb:       NewCircuitBreaker(DefaultCBConfig()),
	}
}

// SendInvitation mails the registration invitation with a link to the
// registration page.
func (m *Mailer) SendInvitation(to string) error {
	html := fmt.Sprintf(`<p>Beste,</p>
<p>Je bent uitgenodigd om een account aan te maken voor de administratie app van Gebroeders Vroege.</p>
<p><a href="%s/register">Klik hier om je te registreren</a></p>
<p>Met vriendelijke groet,<br>Gebroeders Vroege</p>`, m.baseURL)
	return m.send(to, "Uitnodiging registratie", html)
}

// SendWelcome mails the registration confirmation with the activation token
// embedded in the activation link.
func (m *Mailer) SendWelcome(to, activationToken string) error {
	html := fmt.Sprintf(`<p>Welkom!</p>
<p>Je account is aangemaakt. Activeer je account via onderstaande link:</p>
<p><a href="%s/activate?token=%s">Account activeren</a></p>
<p>Met vriendelijke groet,<br>Gebroeders Vroege</p>`, m.baseURL, activationToken)
	return m.send(to, "Welkom!!", html)
}

func (m *Mailer) send(to, subject, html string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(html)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return m.cb.Execute(func() error {
		return e.Send(m.addr, auth)
	})
}

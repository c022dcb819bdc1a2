package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendConfirmationEmail mails the account activation link to a newly
// registered client.
func (s *SMTPEmailService) SendConfirmationEmail(username, to, token string) error {
	confirmURL := fmt.Sprintf("%s/usuarios/confirmar/%s", s.config.BaseURL, token)

	subject := "Confirma tu cuenta"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hola %s</h2>
			<p>Gracias por registrarte. Confirma tu cuenta haciendo clic en el siguiente enlace:</p>
			<p><a href="%s">Confirmar cuenta</a></p>
			<p>O copia y pega esta URL en tu navegador:</p>
			<p>%s</p>
			<p>Si no creaste esta cuenta, ignora este mensaje.</p>
		</body>
		</html>
	`, username, confirmURL, confirmURL)

	plainBody := fmt.Sprintf(`
Hola %s

Gracias por registrarte. Confirma tu cuenta visitando:
%s

Si no creaste esta cuenta, ignora este mensaje.
	`, username, confirmURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

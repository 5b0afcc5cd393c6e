package utils

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/config"
)

// Mailer sends transactional mail. When no SMTP host is configured every
// send is a silent no-op so local setups work without a mail account.
type Mailer struct {
	smtp config.SMTP
}

func NewMailer(smtp config.SMTP) *Mailer {
	return &Mailer{smtp: smtp}
}

func (m *Mailer) Enabled() bool {
	return m.smtp.Configured()
}

// SendWelcome mails a short greeting to a freshly registered account.
func (m *Mailer) SendWelcome(to string, name string, role string) error {
	if !m.Enabled() {
		return nil
	}

	body := fmt.Sprintf(`
	<html>
	<body>
		<p>Hi %s,</p>
		<p>Your %s account for the University Course Manager has been created.</p>
		<p>You can now sign in and start browsing the course catalog.</p>
	</body>
	</html>`, name, role)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.smtp.Username)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Welcome to University Course Manager")
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.smtp.Host, m.smtp.Port, m.smtp.Username, m.smtp.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", to, err)
		return err
	}

	return nil
}

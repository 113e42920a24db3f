package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	FrontendURL  string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// IsConfigured reports whether SMTP credentials are present. When they
// are not, callers skip sending instead of failing the request.
func (s *EmailService) IsConfigured() bool {
	return s.config.SMTPHost != "" && s.config.FromEmail != ""
}

// SendStaffWelcomeEmail notifies a staff member that their account was approved
func (s *EmailService) SendStaffWelcomeEmail(toEmail string) error {
	loginURL := s.config.FrontendURL + "/login"

	htmlContent, err := s.renderStaffWelcomeEmail(loginURL)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Welcome to Coffee & Chill!"
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// ContactMessage is a message submitted through the public contact form
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SendContactFormEmail relays a contact-form message to the café inbox
func (s *EmailService) SendContactFormEmail(msg ContactMessage) error {
	htmlContent, err := s.renderContactEmail(msg)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "[Cafe Contact] " + msg.Subject
	message := s.buildHTMLEmail(s.config.FromEmail, subject, htmlContent)

	return s.sendEmail(s.config.FromEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)
	return []byte(headers + htmlBody)
}

const staffWelcomeTemplate = `
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #4e260a;">
  <h1 style="color: #8b4513;">Welcome to the Team!</h1>
  <p>Hi there,</p>
  <p>Your staff account for <strong>Coffee &amp; Chill</strong> has been approved by the administrator.</p>
  <p>You can now log in and access the staff dashboard to record sales and view your daily records.</p>
  <br/>
  <a href="{{.LoginURL}}" style="background-color: #8b4513; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Go to Dashboard</a>
  <br/><br/>
  <p>Best regards,<br/>Coffee &amp; Chill Admin</p>
</div>
`

func (s *EmailService) renderStaffWelcomeEmail(loginURL string) (string, error) {
	tmpl, err := template.New("staff_welcome").Parse(staffWelcomeTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ LoginURL string }{LoginURL: loginURL}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const contactTemplate = `
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #4e260a; border: 1px solid #e5e7eb; border-radius: 8px;">
  <h2 style="color: #8b4513; border-bottom: 2px solid #8b4513; padding-bottom: 10px;">New Contact Message</h2>
  <p><strong>From:</strong> {{.Name}} (<a href="mailto:{{.Email}}">{{.Email}}</a>)</p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <div style="background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin-top: 20px;">
    <p style="white-space: pre-wrap; margin: 0;">{{.Message}}</p>
  </div>
  <br/>
  <p style="font-size: 12px; color: #6b7280;">This message was sent from the Coffee &amp; Chill contact form.</p>
</div>
`

func (s *EmailService) renderContactEmail(msg ContactMessage) (string, error) {
	tmpl, err := template.New("contact").Parse(contactTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, msg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

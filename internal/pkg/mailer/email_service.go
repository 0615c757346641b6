package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendRequestStatusUpdate(toEmail, employeeName, requestType, status string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	portalURL   string
}

func NewEmailService(host string, port int, username, password, senderName, portalURL string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		portalURL:   portalURL,
	}
}

func (s *emailService) SendRequestStatusUpdate(toEmail, employeeName, requestType, status string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your %s request is now %s", requestType, status))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hello %s,</h2>
			<p>The status of your <b>%s</b> request has changed to:</p>
			<h1 style="color: #007BFF;">%s</h1>
			<p>Open the portal for the full details:</p>
			<p><a href="%s/requests">%s/requests</a></p>
		</div>
	`, employeeName, requestType, status, s.portalURL, s.portalURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send status update to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Status update sent to %s\n", toEmail)
	return nil
}

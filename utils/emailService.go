package utils

import (
	"fmt"
	"lms/config"
	"log"
	"net/smtp"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendCoursePublishedEmail notifies the operator that a course went live.
// SendGrid is used when an API key is configured, SMTP otherwise.
func SendCoursePublishedEmail(email, userName, courseTitle string) error {
	subject := "Course Published - " + courseTitle
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Course Published!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">The following course is now live and visible in the catalog:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #999999; text-align: center; margin-top: 30px;">This is an automated notification.</p>
				</div>
			</body>
		</html>
	`, userName, courseTitle)

	if config.AppConfig.SendGridAPIKey != "" {
		return sendViaSendGrid(email, subject, body)
	}
	return sendViaSMTP(email, subject, body)
}

func sendViaSendGrid(email, subject, body string) error {
	from := mail.NewEmail("LMS", config.AppConfig.EmailSender)
	to := mail.NewEmail("", email)
	message := mail.NewSingleEmail(from, subject, to, "", body)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email via SendGrid: %v", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email, code: %d", resp.StatusCode)
		return fmt.Errorf("sendgrid rejected email, code: %d", resp.StatusCode)
	}

	log.Println("Email sent successfully to", email)
	return nil
}

func sendViaSMTP(email, subject, body string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password // App password

	to := []string{email}

	header := "Subject: " + subject + "\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := []byte(header + "\n" + body)

	// Auth setup
	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}

	log.Println("Email sent successfully to", email)
	return nil
}

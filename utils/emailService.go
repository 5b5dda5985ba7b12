package utils

import (
	"fmt"
	"log"

	"lms/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a single HTML email through SendGrid
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("SENDGRID_API_KEY not set, skipping email to %s", toEmail)
		return nil
	}

	from := sgmail.NewEmail(config.AppConfig.EmailSenderName, config.AppConfig.EmailSender)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Failed to send email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid error: %d", resp.StatusCode)
	}

	return nil
}

// SendWebinarReminderEmail emails a registered attendee before a webinar
func SendWebinarReminderEmail(toName, toEmail, webinarTitle, startsAt string) error {
	subject := "Reminder: " + webinarTitle + " starts tomorrow"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333;">Hi %s,</h2>
					<p>This is a reminder that <strong>%s</strong> starts on <strong>%s</strong>.</p>
					<p>You will find the meeting link on the webinar page once you are logged in.</p>
					<p style="color: #888; font-size: 12px;">You are receiving this because you registered for this webinar.</p>
				</div>
			</body>
		</html>`, toName, webinarTitle, startsAt)

	return SendEmail(toName, toEmail, subject, body)
}

// SendEnrollmentEmail confirms a successful course enrollment
func SendEnrollmentEmail(toName, toEmail, courseTitle string) error {
	subject := "You are enrolled in " + courseTitle

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333;">Welcome aboard, %s!</h2>
					<p>Your enrollment in <strong>%s</strong> is confirmed. Head to your dashboard to start learning.</p>
				</div>
			</body>
		</html>`, toName, courseTitle)

	return SendEmail(toName, toEmail, subject, body)
}

package utils

import (
	"fmt"
	"log"
	"time"

	"worksuite/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid. Callers treat delivery as
// fire-and-forget; a failure is logged and returned but never blocks the
// business flow that triggered it.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendGridAPIKey == "" {
		log.Printf("[MAIL] SendGrid disabled, skipping mail to %s (%s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("WorkSuite Learning", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[MAIL] Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[MAIL] SendGrid rejected email to %s: status %d", toEmail, resp.StatusCode)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

func emailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1F3A5F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1F3A5F; line-height: 1.6; }
			.content h2 { color: #1F3A5F; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #5A8DEE; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>WorkSuite Learning</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from the WorkSuite internal training portal.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendQuizResultEmail notifies a user about a scored quiz submission
func SendQuizResultEmail(toName, toEmail, lessonTitle string, percentage float64, passed bool, attemptsLeft int) {
	outcome := "did not pass"
	if passed {
		outcome = "passed"
	}
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your quiz submission for <b>%s</b> has been scored.</p>
		<div class="info-box">Result: you %s with <b>%.0f%%</b>. Attempts remaining: %d.</div>`,
		toName, lessonTitle, outcome, percentage, attemptsLeft)

	if err := SendEmail(toName, toEmail, "Your quiz result: "+lessonTitle, emailTemplate("Quiz Result", body)); err != nil {
		log.Printf("[MAIL] Quiz result mail failed for %s: %v", toEmail, err)
	}
}

// SendMaxAttemptsEmail notifies a user that the attempt cap has been reached
func SendMaxAttemptsEmail(toName, toEmail, lessonTitle string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You have used all quiz attempts for <b>%s</b>.</p>
		<p>Please reach out to your instructor if you need this lesson unlocked.</p>`,
		toName, lessonTitle)

	if err := SendEmail(toName, toEmail, "Quiz attempts exhausted: "+lessonTitle, emailTemplate("Attempts Exhausted", body)); err != nil {
		log.Printf("[MAIL] Max attempts mail failed for %s: %v", toEmail, err)
	}
}

// SendCertificateEmail notifies a user that a course certificate is ready
func SendCertificateEmail(toName, toEmail, courseTitle, certificateNumber string, expiresAt time.Time) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations! You completed <b>%s</b>.</p>
		<div class="info-box">Certificate number: <b>%s</b><br>Valid until: %s</div>
		<p>You can download it from your certificates page.</p>`,
		toName, courseTitle, certificateNumber, expiresAt.Format("02 Jan 2006"))

	if err := SendEmail(toName, toEmail, "Your certificate for "+courseTitle, emailTemplate("Certificate Ready", body)); err != nil {
		log.Printf("[MAIL] Certificate mail failed for %s: %v", toEmail, err)
	}
}

// SendCertificateExpiryReminder warns a user about an expiring certificate
func SendCertificateExpiryReminder(toName, toEmail, courseTitle string, expiresAt time.Time) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your certificate for <b>%s</b> expires on <b>%s</b>.</p>
		<p>Retake the course before then to stay certified.</p>`,
		toName, courseTitle, expiresAt.Format("02 Jan 2006"))

	if err := SendEmail(toName, toEmail, "Certificate expiring soon: "+courseTitle, emailTemplate("Certificate Expiry Reminder", body)); err != nil {
		log.Printf("[MAIL] Expiry reminder mail failed for %s: %v", toEmail, err)
	}
}

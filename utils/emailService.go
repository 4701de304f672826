package utils

import (
	"codelearn/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid. Callers fire it on a
// goroutine; delivery failures are logged, never surfaced to the request.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridAPIKey == "" {
		log.Printf("[EMAIL] SENDGRID_API_KEY not set, skipping %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("CodeLearn", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending %q to %s: %v", subject, toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[EMAIL] SendGrid rejected %q to %s: %d %s", subject, toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)
	}

	log.Printf("[EMAIL] Sent %q to %s", subject, toEmail)
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
			.header { background-color: #1D4ED8; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #111827; line-height: 1.6; }
			.content h2 { color: #111827; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #1D4ED8; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CODELEARN</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 CodeLearn. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a newly registered learner
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to CodeLearn"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>CodeLearn</strong>! We are thrilled to have you onboard.</p>
		<p>Your account has been successfully created. Browse the catalog, enroll in a course and start your learning journey.</p>
		<p>If you have any questions, feel free to reach out to our support team.</p>
	`, name)

	go SendEmail(email, name, subject, emailTemplate("Welcome Onboard!", body))
}

// SendEnrollmentEmail confirms a new course enrollment
func SendEnrollmentEmail(email, name, courseName string) {
	subject := "Course Enrollment Confirmation"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You have successfully enrolled in:</p>
		<h3 style="text-align: center; color: #1D4ED8; margin: 20px 0;">%s</h3>
		<p>You can now access all the course content. Track your progress and complete all lessons to earn your certificate.</p>
		<div class="info-box">
			<strong>Next step:</strong> open lesson 1 from your dashboard.
		</div>
	`, name, courseName)

	go SendEmail(email, name, subject, emailTemplate("Enrollment Successful", body))
}

// SendCourseCompletedEmail congratulates a learner on finishing a course
func SendCourseCompletedEmail(email, name, courseName string) {
	subject := "Course Completed: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing <strong>%s</strong>!</p>
		<p>You can now request your certificate of completion from your dashboard.</p>
	`, name, courseName)

	go SendEmail(email, name, subject, emailTemplate("Course Completed", body))
}

// SendCertificateEmail notifies a learner their certificate was issued
func SendCertificateEmail(email, name, courseName, certificateNumber string) {
	subject := "Course Completion Certificate"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing the course:</p>
		<h3 style="text-align: center; color: #1D4ED8; margin: 20px 0;">%s</h3>
		<div class="info-box" style="text-align: center;">
			<p style="margin-bottom: 10px;">Your Certificate Number:</p>
			<h2 style="margin: 0;">%s</h2>
		</div>
		<p>Your certificate has been approved and is now available. You can use this certificate number for verification purposes.</p>
	`, name, courseName, certificateNumber)

	go SendEmail(email, name, subject, emailTemplate("Certificate of Completion", body))
}

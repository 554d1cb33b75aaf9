package services

import (
	"fmt"
	"net/smtp"

	"eldercare/config"
	"eldercare/utils"
)

func smtpConfig() (from, password, host, port string) {
	from = config.GetEnv("SMTP_FROM")
	password = config.GetEnv("SMTP_PASSWORD")
	host = config.GetEnvDefault("SMTP_HOST", "smtp.gmail.com")
	port = config.GetEnvDefault("SMTP_PORT", "587")
	return
}

func sendMail(to []string, subject, body string) error {
	from, password, host, port := smtpConfig()
	if from == "" || password == "" {
		return fmt.Errorf("smtp is not configured")
	}

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\r\n\r\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

// SendContactConfirmationEmail acknowledges an inquiry with its ticket
// reference. Failures are logged, never surfaced to the caller.
func SendContactConfirmationEmail(email, name, reference string) {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body>
			<p>Dear %s,</p>
			<p>Thank you for reaching out. We have received your inquiry and our care team will get back to you within one business day.</p>
			<p>Your reference number is <strong>%s</strong>. Please quote it in any follow-up.</p>
			<p>Warm regards,<br>The Care Team</p>
		</body>
		</html>
	`, name, reference)

	if err := sendMail([]string{email}, "We received your inquiry", body); err != nil {
		utils.LogError("Failed to send contact confirmation to %s: %v", email, err)
	}
}

// SendPaymentReceiptEmail confirms a completed payment
func SendPaymentReceiptEmail(email, name, roomName, transactionID string, amount int, currency string) {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body>
			<p>Dear %s,</p>
			<p>We have received your payment of <strong>%d %s</strong> for <strong>%s</strong>.</p>
			<p>Transaction reference: <strong>%s</strong></p>
			<p>Warm regards,<br>The Care Team</p>
		</body>
		</html>
	`, name, amount, currency, roomName, transactionID)

	if err := sendMail([]string{email}, "Payment received", body); err != nil {
		utils.LogError("Failed to send payment receipt to %s: %v", email, err)
	}
}

// SendContactNotificationEmail alerts the back office about a new
// inquiry. Sent to ADMIN_EMAIL; skipped quietly when that is unset.
func SendContactNotificationEmail(name, subject, reference string) {
	adminEmail := config.GetEnv("ADMIN_EMAIL")
	if adminEmail == "" {
		return
	}

	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body>
			<p>New inquiry from <strong>%s</strong>.</p>
			<p>Subject: %s</p>
			<p>Reference: <strong>%s</strong></p>
		</body>
		</html>
	`, name, subject, reference)

	if err := sendMail([]string{adminEmail}, "New contact inquiry: "+subject, body); err != nil {
		utils.LogError("Failed to notify admin about contact %s: %v", reference, err)
	}
}

// SendTestEmail probes the SMTP configuration by mailing the sender
// address to itself.
func SendTestEmail() error {
	from, _, _, _ := smtpConfig()
	if from == "" {
		return fmt.Errorf("smtp is not configured")
	}
	return sendMail([]string{from}, "SMTP test", "<p>SMTP configuration is working.</p>")
}

// SendWelcomeEmail greets a newly registered family member
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body>
			<p>Dear %s,</p>
			<p>Welcome aboard. You can now save rooms to your shortlist and compare facilities side by side.</p>
			<p>Warm regards,<br>The Care Team</p>
		</body>
		</html>
	`, name)

	if err := sendMail([]string{email}, "Welcome", body); err != nil {
		utils.LogError("Failed to send welcome email to %s: %v", email, err)
	}
}

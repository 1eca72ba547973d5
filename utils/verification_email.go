package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendVerificationEmail mails the account-verification link. Without SMTP
// configuration the link is logged instead, which keeps local development
// working without a mail server.
func SendVerificationEmail(recipientEmail, verifyLink string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "Hotel Backoffice")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] verify to:%s link:%s", recipientEmail, verifyLink)
		return nil
	}

	verifyLink = strings.ReplaceAll(strings.TrimSpace(verifyLink), "\r\n", " ")

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	body := fmt.Sprintf(
		"Welcome!\n\n"+
			"Please verify your account using the link below:\n%s\n\n"+
			"If you did not create this account, you can ignore this email.\n",
		verifyLink,
	)

	msg := strings.Join([]string{
		"From: " + from,
		"To: " + recipientEmail,
		"Subject: Verify your account",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, smtpUser, []string{recipientEmail}, []byte(msg)); err != nil {
		log.Printf("⚠️ failed to send verification email to %s: %v", recipientEmail, err)
		return err
	}
	return nil
}

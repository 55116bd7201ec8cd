package mailing

import (
	"FitnessPro-Backend/internal/utils"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendMail delivers an HTML mail through the configured SMTP account. The
// From header carries the configured sender name, not the bare address.
func SendMail(toEmail string, subject string, body string) error {
	host := utils.GetConfig("SMTP_HOST")
	port, err := strconv.Atoi(utils.GetConfig("SMTP_PORT"))
	if err != nil {
		return err
	}
	authEmail := utils.GetConfig("SMTP_AUTH_EMAIL")
	authPassword := utils.GetConfig("SMTP_AUTH_PASSWORD")
	senderName := utils.GetConfig("SMTP_SENDER_NAME")

	message := gomail.NewMessage()
	message.SetHeader("From", message.FormatAddress(authEmail, senderName))
	message.SetHeader("To", toEmail)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	dialer := gomail.NewDialer(host, port, authEmail, authPassword)
	return dialer.DialAndSend(message)
}

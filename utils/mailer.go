package utils

import (
	"fmt"
	"log"
	"time"
	"warranty-app/config"

	"gopkg.in/gomail.v2"
)

// SendMail sends one notification mail. Best effort: a missing SMTP config
// or a dial failure is logged and never fails the calling request.
func SendMail(to, subject, body string) {
	if config.SMTPHost == "" || to == "" {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.MailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Println("Failed to send mail to", to, ":", err)
	}
}

// SendActivationMail mails the warranty card to a freshly activated customer.
func SendActivationMail(to, customerName, qrcodeID string, warrantyEnd *time.Time) {
	endText := "-"
	if warrantyEnd != nil {
		endText = warrantyEnd.Format("2006-01-02")
	}
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your product <b>%s</b> has been activated. Warranty is valid until <b>%s</b>.</p>",
		customerName, qrcodeID, endText)
	go SendMail(to, "Product activated", body)
}

// SendRepairDoneMail notifies the customer that the repair is finished.
func SendRepairDoneMail(to, customerName, qrcodeID, solution string) {
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>The repair of your product <b>%s</b> is complete.</p><p>Solution: %s</p>",
		customerName, qrcodeID, solution)
	go SendMail(to, "Repair completed", body)
}

package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func GetEmailConfig() *EmailConfig {
	return &EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func SendEmail(to, subject, htmlBody string) error {
	config := GetEmailConfig()
	if config.Host == "" || config.Port == "" || config.From == "" {
		return fmt.Errorf("SMTP not configured")
	}

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		config.From, to, subject)
	msg := []byte(headers + htmlBody)

	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	addr := config.Host + ":" + config.Port
	return smtp.SendMail(addr, auth, config.From, []string{to}, msg)
}

func SendWelcomeEmail(email, name string) {
	go func() {
		subject := "Welcome to Integrators!"
		body := fmt.Sprintf(`<h2>Welcome to Integrators, %s!</h2>
<p>Thank you for creating your account. You can now:</p>
<ul>
<li>Browse CCTV, networking and security products</li>
<li>Place orders and track their status</li>
<li>Raise service and installation requests</li>
</ul>
<p>The Integrators Team</p>`, strings.Split(name, " ")[0])
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}()
}

func SendOrderConfirmation(email, name, orderID, total string) {
	go func() {
		subject := fmt.Sprintf("Order Confirmed - %s", orderID)
		body := fmt.Sprintf(`<h2>Order Confirmed!</h2>
<p>Hi %s,</p>
<p>Your order <strong>%s</strong> has been placed successfully.</p>
<p>Order total: <strong>₹%s</strong></p>
<p>We'll notify you when your order status changes.</p>
<p>The Integrators Team</p>`, strings.Split(name, " ")[0], orderID, total)
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send order confirmation to %s: %v", email, err)
		}
	}()
}

func SendOrderStatusUpdate(email, name, orderID, status string) {
	go func() {
		subject := fmt.Sprintf("Order %s - Status Update", orderID)
		body := fmt.Sprintf(`<h2>Order Status Update</h2>
<p>Hi %s,</p>
<p>Your order <strong>%s</strong> status has been updated to: <strong>%s</strong></p>
<p>The Integrators Team</p>`, strings.Split(name, " ")[0], orderID, strings.ReplaceAll(status, "_", " "))
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send status update email to %s: %v", email, err)
		}
	}()
}

// SendServiceRequestAlert notifies the sales inbox about a new service request.
func SendServiceRequestAlert(salesEmail, subject, contactName, contactPhone string) {
	go func() {
		mailSubject := fmt.Sprintf("New Service Request: %s", subject)
		body := fmt.Sprintf(`<h2>New Service Request</h2>
<p>A new service request has been submitted.</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Contact:</strong> %s (%s)</p>
<p>Log in to the sales dashboard to respond.</p>`, subject, contactName, contactPhone)
		if err := SendEmail(salesEmail, mailSubject, body); err != nil {
			log.Printf("Failed to send service request alert to %s: %v", salesEmail, err)
		}
	}()
}

package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"

	"github.com/stayvia/stayvia-server/internal/adapters/logger"
)

// Client is the outgoing mail client.
type Client struct {
	dialer *gomail.Dialer
}

func NewClient(dialer *gomail.Dialer) *Client {
	return &Client{dialer: dialer}
}

// SendVerificationResult mails the outcome of a landlord account review.
// Delivery failures are logged, never propagated: mail is best effort.
func (c *Client) SendVerificationResult(to string, subject string, body string) {
	msg := gomail.NewMessage()

	domain := viper.GetString("service.smtp.domain")
	messageID := generateMessageID(domain)

	msg.SetHeader("Message-ID", messageID)
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", viper.GetString("service.smtp.email"))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if err := c.dialer.DialAndSend(msg); err != nil {
		logger.Log.Error(err)
		return
	}

	logger.Log.Info("Email successfully sent")
}

func generateMessageID(domain string) string {
	uniqueID := uuid.New().String()
	return fmt.Sprintf("<%s@%s>", uniqueID, domain)
}

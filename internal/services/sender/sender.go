// Package services содержит сервис отправки писем-напоминаний об оплате.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/matheusvidal/gestor-pautas/internal/lib/sl"
	"github.com/matheusvidal/gestor-pautas/internal/lib/smtp"
	"github.com/matheusvidal/gestor-pautas/internal/models"
)

// SenderService потребляет напоминания из очереди и отправляет письма
// владельцу системы. Адресат один: набором паут управляет фрилансер,
// его адрес задаётся в конфигурации.
type SenderService struct {
	transport  smtp.TransportInterface
	ownerEmail string
	log        *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(transport smtp.TransportInterface, ownerEmail string, log *slog.Logger) *SenderService {
	return &SenderService{
		transport:  transport,
		ownerEmail: ownerEmail,
		log:        log,
	}
}

// SendPaymentDueReminder отправляет письмо о наступившей дате оплаты квинзены.
func (s *SenderService) SendPaymentDueReminder(body []byte) error {
	var message models.PaymentReminder
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	subject := fmt.Sprintf("Pagamento previsto para hoje: %s", message.PeriodKey)
	bodyText := fmt.Sprintf(`Olá!

O pagamento das pautas do período %s está previsto para hoje (%s).

Pautas pendentes: %d
Valor total: R$ %.2f

Confira se o pagamento foi recebido e atualize o status das pautas.`,
		message.PeriodKey, message.ProjectedPaymentDate, message.Count, message.Total)

	return s.sendEmail([]string{s.ownerEmail}, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", "from", s.transport.GetSMTPUser(), "error", sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", "recipient", addr, "error", sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get Data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close Data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", "to", to)
	return nil
}

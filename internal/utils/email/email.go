package email

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Dan9191/home-financing/internal/config"
	"github.com/Dan9191/home-financing/internal/export"
	"github.com/Dan9191/home-financing/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		send:   (*email.Email).Send,
	}
}

// SendComparisonReport emails the comparison summary with the workbook attached
func (s *Sender) SendComparisonReport(to, name string, cmp *models.Comparison, workbook []byte) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Your Home Financing Comparison"

	body, err := buildReportBody(name, cmp)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	e.Text = []byte(body)

	if _, err := e.Attach(bytes.NewReader(workbook), export.FileName, export.ContentType); err != nil {
		return fmt.Errorf("failed to attach workbook: %w", err)
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := s.send(e, addr, auth); err != nil {
		s.logger.Errorf("Failed to send report %s to %s: %v", cmp.ID, to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Report %s sent to %s", cmp.ID, to)
	return nil
}

func buildReportBody(name string, cmp *models.Comparison) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	fmt.Fprintf(&b, "Here is your comparison for a property of INR %s with an initial contribution of INR %s.\n"+
		"The traditional loan was evaluated at %.2f%% per year.\n\n",
		export.FormatMoney(cmp.Request.PropertyPrice),
		export.FormatMoney(cmp.Request.CustomerContribution),
		cmp.InterestRate*100,
	)
	if err := export.WriteMetricsTable(&b, cmp); err != nil {
		return "", err
	}
	b.WriteString("\nThe full month-by-month schedules are attached.\n")
	b.WriteString("\nBest regards,\nHome Financing Simulator")
	return b.String(), nil
}

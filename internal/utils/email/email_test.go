package email

import (
	"errors"
	"io"
	"net/smtp"
	"strings"
	"testing"

	"github.com/Dan9191/home-financing/internal/config"
	"github.com/Dan9191/home-financing/internal/export"
	"github.com/Dan9191/home-financing/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

func testComparison() *models.Comparison {
	return &models.Comparison{
		ID:           "cmp-42",
		Request:      models.ComparisonRequest{PropertyPrice: 10_000_000, CustomerContribution: 2_000_000},
		InterestRate: 0.07,
		Buyback:      models.BuybackSimulation{Metrics: models.Metrics{MonthlyPayment: 46396.78}},
		FixedLoan:    models.FixedLoanSimulation{Metrics: models.Metrics{MonthlyPayment: 62023.91}},
		Savings:      3750513.0,
	}
}

func newTestSender() *Sender {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewSender(&config.Config{SMTPHost: "smtp.test", SMTPPort: "2525", SenderEmail: "bank@test"}, log)
}

func TestSendComparisonReport(t *testing.T) {
	s := newTestSender()
	var sent *email.Email
	var sentAddr string
	s.send = func(e *email.Email, addr string, auth smtp.Auth) error {
		sent, sentAddr = e, addr
		return nil
	}

	if err := s.SendComparisonReport("jane@test", "Jane", testComparison(), []byte("xlsx")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sentAddr != "smtp.test:2525" {
		t.Fatalf("expected smtp.test:2525, got %s", sentAddr)
	}
	if len(sent.To) != 1 || sent.To[0] != "jane@test" {
		t.Fatalf("unexpected recipients: %v", sent.To)
	}
	if len(sent.Attachments) != 1 || sent.Attachments[0].Filename != export.FileName {
		t.Fatalf("expected workbook attachment, got %+v", sent.Attachments)
	}

	body := string(sent.Text)
	for _, want := range []string{"Dear Jane", "INR 10,000,000.00", "7.00% per year", "62,023.91", "INR 3,750,513.00"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body:\n%s", want, body)
		}
	}
}

func TestSendComparisonReportFailure(t *testing.T) {
	s := newTestSender()
	s.send = func(*email.Email, string, smtp.Auth) error { return errors.New("connection refused") }

	if err := s.SendComparisonReport("jane@test", "Jane", testComparison(), []byte("xlsx")); err == nil {
		t.Fatal("expected send error")
	}
}

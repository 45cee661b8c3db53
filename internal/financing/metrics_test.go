package financing

import (
	"errors"
	"testing"

	"github.com/Dan9191/home-financing/internal/models"
)

func TestAggregateFixedLoanRows(t *testing.T) {
	rows := []models.FixedLoanRow{
		{Month: 1, Payment: 100, Interest: 30, Principal: 70, Balance: 130},
		{Month: 2, Payment: 100, Interest: 20, Principal: 80, Balance: 50},
	}
	m, err := Aggregate(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := models.Metrics{MonthlyPayment: 100, TotalPayments: 200, TotalYield: 50, TotalTransfer: 150, LenderProfit: 50}
	if m != want {
		t.Fatalf("expected %+v, got %+v", want, m)
	}
}

func TestAggregateBuybackRows(t *testing.T) {
	rows := []models.BuybackRow{
		{Month: 1, Payment: 50, RentalIncome: 10, BuybackAmount: 40},
		{Month: 2, Payment: 50, RentalIncome: 5, BuybackAmount: 45},
		{Month: 3, Payment: 50, RentalIncome: 1, BuybackAmount: 49},
	}
	m, err := Aggregate(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalPayments != 150 || m.TotalYield != 16 || m.TotalTransfer != 134 {
		t.Fatalf("unexpected totals: %+v", m)
	}
	if m.LenderProfit != 16 {
		t.Fatalf("expected lender profit 16, got %v", m.LenderProfit)
	}
	if m.MonthlyPayment != 50 {
		t.Fatalf("expected monthly payment 50, got %v", m.MonthlyPayment)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if _, err := Aggregate([]models.BuybackRow{}); !errors.Is(err, ErrEmptySchedule) {
		t.Fatalf("expected ErrEmptySchedule, got %v", err)
	}
	if _, err := Aggregate[models.FixedLoanRow](nil); !errors.Is(err, ErrEmptySchedule) {
		t.Fatalf("expected ErrEmptySchedule, got %v", err)
	}
}

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Dan9191/home-financing/internal/financing"
	"github.com/Dan9191/home-financing/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RateProvider supplies the fixed-loan rate when a request omits one
type RateProvider interface {
	Rate() float64
}

// Service handles simulation requests on top of the financing engine
type Service struct {
	rates RateProvider
	log   *logrus.Logger
}

// NewService initializes a new service
func NewService(rates RateProvider, log *logrus.Logger) *Service {
	return &Service{rates: rates, log: log}
}

// SolvePayment returns the fixed periodic payment for an annuity
func (s *Service) SolvePayment(req models.PaymentRequest) (*models.PaymentResponse, error) {
	payment, err := financing.SolvePayment(req.Principal, req.PeriodicRate, req.TermPeriods)
	if err != nil {
		return nil, err
	}
	return &models.PaymentResponse{Payment: payment}, nil
}

// SimulateBuyback runs the shared-ownership schedule
func (s *Service) SimulateBuyback(req models.BuybackRequest) (*models.BuybackSimulation, error) {
	sim, err := financing.SimulateBuyback(req.PropertyPrice, req.CustomerContribution, req.AnnualYieldRate, req.TermMonths)
	if err != nil {
		s.log.Warnf("Buyback simulation rejected: %v", err)
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"months":  req.TermMonths,
		"payment": sim.Metrics.MonthlyPayment,
	}).Info("Buyback simulation completed")
	return sim, nil
}

// SimulateFixedLoan runs the fixed-rate loan schedule
func (s *Service) SimulateFixedLoan(req models.FixedLoanRequest) (*models.FixedLoanSimulation, error) {
	sim, err := financing.SimulateFixedLoan(req.Principal, req.AnnualInterestRate, req.TermMonths)
	if err != nil {
		s.log.Warnf("Fixed loan simulation rejected: %v", err)
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"months":  req.TermMonths,
		"payment": sim.Metrics.MonthlyPayment,
	}).Info("Fixed loan simulation completed")
	return sim, nil
}

// Compare runs both schemes for the same property and reports the savings
// of the buyback model over the traditional loan.
func (s *Service) Compare(ctx context.Context, req models.ComparisonRequest) (*models.Comparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateComparison(req); err != nil {
		return nil, err
	}

	rate := s.rates.Rate()
	if req.InterestRate != nil {
		rate = *req.InterestRate
	}

	var (
		wg        sync.WaitGroup
		buyback   *models.BuybackSimulation
		fixedLoan *models.FixedLoanSimulation
		buyErr    error
		loanErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		buyback, buyErr = financing.SimulateBuyback(
			req.PropertyPrice, req.CustomerContribution, req.AnnualRentalYield, yearsToMonths(req.BuybackTenureYears))
	}()
	go func() {
		defer wg.Done()
		fixedLoan, loanErr = financing.SimulateFixedLoan(
			req.PropertyPrice-req.CustomerContribution, rate, yearsToMonths(req.LoanTenureYears))
	}()
	wg.Wait()

	if buyErr != nil {
		return nil, fmt.Errorf("buyback model: %w", buyErr)
	}
	if loanErr != nil {
		return nil, fmt.Errorf("traditional loan model: %w", loanErr)
	}
	cmp := &models.Comparison{
		ID:           uuid.New().String(),
		Request:      req,
		InterestRate: rate,
		Buyback:      *buyback,
		FixedLoan:    *fixedLoan,
		Savings:      fixedLoan.Metrics.TotalPayments - buyback.Metrics.TotalPayments,
	}

	s.log.WithFields(logrus.Fields{
		"comparison_id": cmp.ID,
		"interest_rate": rate,
		"savings":       cmp.Savings,
	}).Info("Comparison completed")
	return cmp, nil
}

func validateComparison(req models.ComparisonRequest) error {
	if req.CustomerContribution >= req.PropertyPrice {
		return fmt.Errorf("%w: customer's initial contribution must be less than the property price", financing.ErrInvalidParameter)
	}
	if req.AnnualRentalYield <= 0 || req.AnnualRentalYield >= 1 {
		return fmt.Errorf("%w: annual rental yield must be between 0%% and 100%%", financing.ErrInvalidParameter)
	}
	if req.BuybackTenureYears <= 0 || req.LoanTenureYears <= 0 {
		return fmt.Errorf("%w: loan tenure must be a positive number", financing.ErrInvalidParameter)
	}
	if req.InterestRate != nil && *req.InterestRate < 0 {
		return fmt.Errorf("%w: interest rate must be non-negative", financing.ErrInvalidParameter)
	}
	return nil
}

// yearsToMonths truncates fractional months
func yearsToMonths(years float64) int {
	return int(years * 12)
}

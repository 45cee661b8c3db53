package models

// PaymentRequest asks for the fixed periodic payment of an annuity
type PaymentRequest struct {
	Principal    float64 `json:"principal"`
	PeriodicRate float64 `json:"periodic_rate"`
	TermPeriods  int     `json:"term_periods"`
}

// PaymentResponse carries the solved periodic payment
type PaymentResponse struct {
	Payment float64 `json:"payment"`
}

// BuybackRequest holds shared-ownership simulation inputs
type BuybackRequest struct {
	PropertyPrice        float64 `json:"property_price"`
	CustomerContribution float64 `json:"customer_contribution"`
	AnnualYieldRate      float64 `json:"annual_yield_rate"`
	TermMonths           int     `json:"term_months"`
}

// FixedLoanRequest holds fixed-rate loan simulation inputs
type FixedLoanRequest struct {
	Principal          float64 `json:"principal"`
	AnnualInterestRate float64 `json:"annual_interest_rate"`
	TermMonths         int     `json:"term_months"`
}

// ComparisonRequest mirrors the inputs a customer fills in to compare both schemes.
// Tenures are in years; InterestRate is optional and falls back to the reference rate.
type ComparisonRequest struct {
	PropertyPrice        float64  `json:"property_price"`
	CustomerContribution float64  `json:"customer_contribution"`
	AnnualRentalYield    float64  `json:"annual_rental_yield"`
	BuybackTenureYears   float64  `json:"buyback_tenure_years"`
	InterestRate         *float64 `json:"interest_rate,omitempty"`
	LoanTenureYears      float64  `json:"loan_tenure_years"`
}

// Comparison is the side-by-side result of both schemes
type Comparison struct {
	ID           string              `json:"id"`
	Request      ComparisonRequest   `json:"request"`
	InterestRate float64             `json:"interest_rate"`
	Buyback      BuybackSimulation   `json:"buyback"`
	FixedLoan    FixedLoanSimulation `json:"fixed_loan"`
	Savings      float64             `json:"savings"`
}

// EmailReportRequest asks for a comparison to be mailed as a workbook
type EmailReportRequest struct {
	To         string            `json:"to"`
	Name       string            `json:"name"`
	Comparison ComparisonRequest `json:"comparison"`
}

// TokenRequest carries client credentials
type TokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

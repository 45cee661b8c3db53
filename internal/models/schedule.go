package models

// BuybackRow is one period of a shared-ownership (buyback) schedule
type BuybackRow struct {
	Month           int     `json:"month"`
	Payment         float64 `json:"payment"`
	RentalIncome    float64 `json:"rental_income"`
	BuybackAmount   float64 `json:"buyback_amount"`
	LenderValue     float64 `json:"lender_value"`
	CustomerValue   float64 `json:"customer_value"`
	LenderPercent   float64 `json:"lender_percent"`
	CustomerPercent float64 `json:"customer_percent"`
}

// Split returns the payment and its yield and transfer components
func (r BuybackRow) Split() (payment, yield, transfer float64) {
	return r.Payment, r.RentalIncome, r.BuybackAmount
}

// FixedLoanRow is one period of a conventional amortizing loan schedule
type FixedLoanRow struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// Split returns the payment and its yield and transfer components
func (r FixedLoanRow) Split() (payment, yield, transfer float64) {
	return r.Payment, r.Interest, r.Principal
}

// Metrics summarizes a completed schedule
type Metrics struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayments  float64 `json:"total_payments"`
	TotalYield     float64 `json:"total_interest_or_rental"`
	TotalTransfer  float64 `json:"total_principal_or_buyback"`
	LenderProfit   float64 `json:"lender_profit"`
}

// BuybackSimulation is the outcome of a buyback run
type BuybackSimulation struct {
	Schedule []BuybackRow `json:"schedule"`
	Metrics  Metrics      `json:"metrics"`
}

// FixedLoanSimulation is the outcome of a fixed-rate loan run
type FixedLoanSimulation struct {
	Schedule []FixedLoanRow `json:"schedule"`
	Metrics  Metrics        `json:"metrics"`
}

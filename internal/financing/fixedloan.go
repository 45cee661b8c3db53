package financing

import "github.com/Dan9191/home-financing/internal/models"

// SimulateFixedLoan runs a conventional amortizing loan at a fixed annual rate
func SimulateFixedLoan(principal, annualRate float64, term int) (*models.FixedLoanSimulation, error) {
	rate := annualRate / 12
	payment, err := SolvePayment(principal, rate, term)
	if err != nil {
		return nil, err
	}

	balance := principal
	schedule := make([]models.FixedLoanRow, 0, term)
	for month := 1; month <= term; month++ {
		interest := balance * rate
		principalPart := payment - interest
		balance -= principalPart

		schedule = append(schedule, models.FixedLoanRow{
			Month:     month,
			Payment:   payment,
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		})
	}

	metrics, err := Aggregate(schedule)
	if err != nil {
		return nil, err
	}
	return &models.FixedLoanSimulation{Schedule: schedule, Metrics: metrics}, nil
}

package financing

import "github.com/Dan9191/home-financing/internal/models"

// SimulateBuyback runs the shared-ownership schedule. Each period the lender
// earns rent on its remaining share and the rest of the payment buys part of
// that share back for the customer.
//
// Values are not clamped: floating-point drift can push the lender share
// slightly below zero in the final periods.
func SimulateBuyback(price, contribution, annualYield float64, term int) (*models.BuybackSimulation, error) {
	if !finite(price) || price <= 0 {
		return nil, invalidf("property price must be positive, got %v", price)
	}
	if !finite(contribution) || contribution < 0 || contribution >= price {
		return nil, invalidf("customer contribution must be in [0, %v), got %v", price, contribution)
	}
	if !finite(annualYield) || annualYield <= 0 || annualYield >= 1 {
		return nil, invalidf("annual yield rate must be in (0, 1), got %v", annualYield)
	}

	lenderValue := price - contribution
	customerValue := contribution
	rate := annualYield / 12

	payment, err := SolvePayment(lenderValue, rate, term)
	if err != nil {
		return nil, err
	}

	schedule := make([]models.BuybackRow, 0, term)
	for month := 1; month <= term; month++ {
		rental := lenderValue * rate
		buyback := payment - rental
		lenderValue -= buyback
		customerValue += buyback

		schedule = append(schedule, models.BuybackRow{
			Month:           month,
			Payment:         payment,
			RentalIncome:    rental,
			BuybackAmount:   buyback,
			LenderValue:     lenderValue,
			CustomerValue:   customerValue,
			LenderPercent:   lenderValue / price * 100,
			CustomerPercent: customerValue / price * 100,
		})
	}

	metrics, err := Aggregate(schedule)
	if err != nil {
		return nil, err
	}
	return &models.BuybackSimulation{Schedule: schedule, Metrics: metrics}, nil
}

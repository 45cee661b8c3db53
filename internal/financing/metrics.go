package financing

import "github.com/Dan9191/home-financing/internal/models"

// Row is a schedule row that splits its payment into a yield part kept by the
// lender and a transfer part that pays down principal or buys back ownership.
type Row interface {
	models.BuybackRow | models.FixedLoanRow
	Split() (payment, yield, transfer float64)
}

// Aggregate reduces a schedule to its totals. Lender profit is the total yield.
func Aggregate[R Row](schedule []R) (models.Metrics, error) {
	if len(schedule) == 0 {
		return models.Metrics{}, ErrEmptySchedule
	}

	var m models.Metrics
	m.MonthlyPayment, _, _ = schedule[0].Split()
	for _, row := range schedule {
		payment, yield, transfer := row.Split()
		m.TotalPayments += payment
		m.TotalYield += yield
		m.TotalTransfer += transfer
	}
	m.LenderProfit = m.TotalYield
	return m, nil
}

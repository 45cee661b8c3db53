package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Dan9191/home-financing/internal/models"
	"github.com/shopspring/decimal"
)

// WriteMetricsTable prints the key metrics of both schemes side by side,
// followed by the savings line.
func WriteMetricsTable(w io.Writer, cmp *models.Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	bb, fl := cmp.Buyback.Metrics, cmp.FixedLoan.Metrics

	rows := []struct {
		label   string
		buyback float64
		loan    float64
	}{
		{"Monthly Payment", bb.MonthlyPayment, fl.MonthlyPayment},
		{"Total EMI Paid", bb.TotalPayments, fl.TotalPayments},
		{"Total Interest/Rental Paid", bb.TotalYield, fl.TotalYield},
		{"Total Principal/Buyback Paid", bb.TotalTransfer, fl.TotalTransfer},
		{"Lender Profit", bb.LenderProfit, fl.LenderProfit},
	}

	fmt.Fprintln(tw, "Metric\tBuyback Model (INR)\tTraditional Loan Model (INR)\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", r.label, FormatMoney(r.buyback), FormatMoney(r.loan))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nTotal Savings with Buyback Model: INR %s\n", FormatMoney(cmp.Savings))
	return err
}

// FormatMoney renders v with two decimals and thousands separators, e.g. 1,234,567.89
func FormatMoney(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + b.String() + "." + frac
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Dan9191/home-financing/internal/export"
	"github.com/Dan9191/home-financing/internal/financing"
	"github.com/Dan9191/home-financing/internal/models"
	"github.com/Dan9191/home-financing/internal/service"
	"github.com/sirupsen/logrus"
)

type staticRate float64

func (r staticRate) Rate() float64 { return float64(r) }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	price := fs.Float64("price", 10_000_000, "property price (INR)")
	contribution := fs.Float64("contribution", 2_000_000, "customer's initial contribution (INR)")
	yield := fs.Float64("yield", 3.5, "annual rental yield (%)")
	buybackYears := fs.Float64("buyback-years", 20, "buyback tenure (years)")
	interest := fs.Float64("interest", 7.0, "traditional loan interest rate (%)")
	loanYears := fs.Float64("loan-years", 20, "traditional loan tenure (years)")
	xlsxPath := fs.String("xlsx", "", "write both schedules to this workbook")
	verbose := fs.Bool("v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if !*verbose {
		log.SetLevel(logrus.WarnLevel)
	}

	rate := *interest / 100
	svc := service.NewService(staticRate(rate), log)
	cmp, err := svc.Compare(context.Background(), models.ComparisonRequest{
		PropertyPrice:        *price,
		CustomerContribution: *contribution,
		AnnualRentalYield:    *yield / 100,
		BuybackTenureYears:   *buybackYears,
		InterestRate:         &rate,
		LoanTenureYears:      *loanYears,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, financing.ErrInvalidParameter) {
			return 2
		}
		return 1
	}

	if err := export.WriteMetricsTable(stdout, cmp); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *xlsxPath != "" {
		if err := writeWorkbook(*xlsxPath, cmp); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		log.Infof("Workbook written to %s", *xlsxPath)
	}
	return 0
}

func writeWorkbook(path string, cmp *models.Comparison) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.WriteWorkbook(f, cmp); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDefaults(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run(nil, &out, &errOut); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, errOut.String())
	}
	for _, want := range []string{"Monthly Payment", "46,396.78", "62,023.91", "Total Savings with Buyback Model"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestRunInvalidInput(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-contribution", "10000000"}, &out, &errOut)
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if !strings.Contains(errOut.String(), "less than the property price") {
		t.Fatalf("unexpected error output: %s", errOut.String())
	}
}

func TestRunWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simulation_data.xlsx")
	var out, errOut bytes.Buffer
	if code := run([]string{"-loan-years", "10", "-xlsx", path}, &out, &errOut); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, errOut.String())
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected workbook at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty workbook")
	}
}

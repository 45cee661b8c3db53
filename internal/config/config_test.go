package config

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.BankMargin != 5.0 {
		t.Fatalf("expected bank margin 5.0, got %v", cfg.BankMargin)
	}
	if cfg.DefaultInterestRate != 0.07 {
		t.Fatalf("expected default interest rate 0.07, got %v", cfg.DefaultInterestRate)
	}
	if cfg.RateRefreshSchedule != "@daily" {
		t.Fatalf("expected @daily schedule, got %s", cfg.RateRefreshSchedule)
	}
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BANK_MARGIN", "2.5")
	t.Setenv("DEFAULT_INTEREST_RATE", "0.085")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.BankMargin != 2.5 {
		t.Fatalf("expected bank margin 2.5, got %v", cfg.BankMargin)
	}
	if cfg.DefaultInterestRate != 0.085 {
		t.Fatalf("expected default interest rate 0.085, got %v", cfg.DefaultInterestRate)
	}
}

func TestNewConfigRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"BANK_MARGIN":           "five",
		"DEFAULT_INTEREST_RATE": "-0.01",
		"JWT_SECRET":            "",
		"HMAC_SECRET":           "",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := NewConfig(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

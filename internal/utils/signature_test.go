package utils

import "testing"

func TestSignAndVerifyReport(t *testing.T) {
	data := []byte("Month,EMI (INR)\n1,62023.91\n")
	sig := SignReport(data, "secret")

	if len(sig) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(sig))
	}
	if !VerifyReport(data, sig, "secret") {
		t.Fatal("expected signature to verify")
	}
	if VerifyReport(data, sig, "other") {
		t.Fatal("expected verification to fail with another secret")
	}
	if VerifyReport(append(data, '!'), sig, "secret") {
		t.Fatal("expected verification to fail for tampered data")
	}
	if VerifyReport(data, "zz", "secret") {
		t.Fatal("expected verification to fail for malformed signature")
	}
}

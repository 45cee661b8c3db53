package financing

import "math"

// SolvePayment returns the fixed payment that amortizes principal to zero
// after term periods at the given periodic rate.
func SolvePayment(principal, rate float64, term int) (float64, error) {
	if !finite(principal) || principal <= 0 {
		return 0, invalidf("principal must be positive, got %v", principal)
	}
	if !finite(rate) || rate < 0 {
		return 0, invalidf("periodic rate must be non-negative, got %v", rate)
	}
	if term < 1 {
		return 0, invalidf("term must be at least 1 period, got %d", term)
	}

	if rate == 0 {
		return principal / float64(term), nil
	}

	// r / (1 - (1+r)^-n), kept in log space so tiny rates do not cancel to
	// zero and large rates do not overflow.
	discount := -math.Expm1(-float64(term) * math.Log1p(rate))
	payment := principal * rate / discount
	if !finite(payment) || payment <= 0 {
		return 0, invalidf("no finite payment for principal %v at rate %v over %d periods", principal, rate, term)
	}
	return payment, nil
}

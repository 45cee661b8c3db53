// Package financing is the simulation core: annuity payment, buyback and
// fixed-loan amortization schedules, and schedule metrics. It is pure; it never
// logs, reads configuration, or touches I/O.
package financing

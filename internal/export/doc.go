// Package export renders simulation results for people: an xlsx workbook with
// one sheet per scheme and a plain-text metrics table.
package export

package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Dan9191/home-financing/internal/export"
	"github.com/Dan9191/home-financing/internal/financing"
	"github.com/Dan9191/home-financing/internal/middleware"
	"github.com/Dan9191/home-financing/internal/models"
	"github.com/Dan9191/home-financing/internal/service"
	"github.com/Dan9191/home-financing/internal/utils"
	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// KeyRateSource fetches the live reference rate in percent
type KeyRateSource interface {
	GetKeyRate(ctx context.Context) (float64, error)
}

// RateSnapshot exposes the cached reference rate
type RateSnapshot interface {
	Rate() float64
	UpdatedAt() time.Time
}

// ReportMailer delivers a comparison workbook by email
type ReportMailer interface {
	SendComparisonReport(to, name string, cmp *models.Comparison, workbook []byte) error
}

type Handler struct {
	svc        *service.Service
	auth       *service.Authenticator
	keyRate    KeyRateSource
	rates      RateSnapshot
	mailer     ReportMailer
	hmacSecret string
	log        *logrus.Logger
}

func NewHandler(svc *service.Service, auth *service.Authenticator, keyRate KeyRateSource, rates RateSnapshot,
	mailer ReportMailer, hmacSecret string, log *logrus.Logger) *Handler {
	return &Handler{
		svc:        svc,
		auth:       auth,
		keyRate:    keyRate,
		rates:      rates,
		mailer:     mailer,
		hmacSecret: hmacSecret,
		log:        log,
	}
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Token exchanges client credentials for a bearer token
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if !decode(w, r, &req) {
		return
	}
	token, err := h.auth.IssueToken(req.ClientID, req.ClientSecret)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.TokenResponse{Token: token, ExpiresIn: int64(service.TokenTTL.Seconds())})
}

// KeyRate returns the live central bank key rate including the bank margin
func (h *Handler) KeyRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.keyRate.GetKeyRate(r.Context())
	if err != nil {
		h.log.Errorf("Failed to get key rate: %v", err)
		writeError(w, http.StatusBadGateway, "Failed to get key rate: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"key_rate": rate})
}

// ReferenceRate returns the cached annual rate used when a comparison omits one
func (h *Handler) ReferenceRate(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{"rate": h.rates.Rate()}
	if at := h.rates.UpdatedAt(); !at.IsZero() {
		resp["updated_at"] = at.UTC().Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

// SolvePayment handles annuity payment requests
func (h *Handler) SolvePayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.svc.SolvePayment(req)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SimulateBuyback handles shared-ownership simulation requests
func (h *Handler) SimulateBuyback(w http.ResponseWriter, r *http.Request) {
	var req models.BuybackRequest
	if !decode(w, r, &req) {
		return
	}
	sim, err := h.svc.SimulateBuyback(req)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sim)
}

// SimulateFixedLoan handles fixed-rate loan simulation requests
func (h *Handler) SimulateFixedLoan(w http.ResponseWriter, r *http.Request) {
	var req models.FixedLoanRequest
	if !decode(w, r, &req) {
		return
	}
	sim, err := h.svc.SimulateFixedLoan(req)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sim)
}

// Compare handles side-by-side comparison requests
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req models.ComparisonRequest
	if !decode(w, r, &req) {
		return
	}
	cmp, err := h.svc.Compare(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.requestLog(r).WithField("comparison_id", cmp.ID).Info("Comparison served")
	writeJSON(w, http.StatusOK, cmp)
}

// ExportComparison returns both schedules as a signed xlsx workbook
func (h *Handler) ExportComparison(w http.ResponseWriter, r *http.Request) {
	var req models.ComparisonRequest
	if !decode(w, r, &req) {
		return
	}
	cmp, err := h.svc.Compare(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, cmp); err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	w.Header().Set("X-Comparison-ID", cmp.ID)
	w.Header().Set("X-Report-Signature", utils.SignReport(buf.Bytes(), h.hmacSecret))
	h.requestLog(r).WithField("comparison_id", cmp.ID).Info("Workbook exported")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.log.Errorf("Failed to write workbook %s: %v", cmp.ID, err)
	}
}

// EmailComparison mails the comparison workbook to the customer
func (h *Handler) EmailComparison(w http.ResponseWriter, r *http.Request) {
	var req models.EmailReportRequest
	if !decode(w, r, &req) {
		return
	}
	if req.To == "" {
		writeError(w, http.StatusBadRequest, "Recipient address is required")
		return
	}
	cmp, err := h.svc.Compare(r.Context(), req.Comparison)
	if err != nil {
		h.fail(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, cmp); err != nil {
		h.fail(w, err)
		return
	}
	if err := h.mailer.SendComparisonReport(req.To, req.Name, cmp, buf.Bytes()); err != nil {
		writeError(w, http.StatusBadGateway, "Failed to send report")
		return
	}
	h.requestLog(r).WithField("comparison_id", cmp.ID).Info("Report emailed")
	writeJSON(w, http.StatusAccepted, map[string]string{"id": cmp.ID})
}

// requestLog tags entries with the client authenticated by the middleware
func (h *Handler) requestLog(r *http.Request) *logrus.Entry {
	entry := logrus.NewEntry(h.log)
	if id, ok := middleware.ClientID(r.Context()); ok {
		entry = entry.WithField("client_id", id)
	}
	return entry
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, financing.ErrInvalidParameter):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.log.Errorf("Request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Status: status, Message: message})
}

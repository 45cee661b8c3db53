package cbr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Dan9191/home-financing/internal/config"
	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// Client fetches the central bank key rate used as the reference loan rate
type Client struct {
	url    string
	margin float64
	client *http.Client
	log    *logrus.Logger
	now    func() time.Time
}

// NewClient initializes a new CBR client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url:    cfg.CBRURL,
		margin: cfg.BankMargin,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
		now: time.Now,
	}
}

// buildSOAPRequest creates a SOAP request for the last 30 days of key rates
func (c *Client) buildSOAPRequest() string {
	now := c.now()
	fromDate := now.AddDate(0, 0, -30).Format("2006-01-02")
	toDate := now.Format("2006-01-02")
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
		<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
			<soap12:Body>
				<KeyRate xmlns="http://web.cbr.ru/">
					<fromDate>%s</fromDate>
					<ToDate>%s</ToDate>
				</KeyRate>
			</soap12:Body>
		</soap12:Envelope>`, fromDate, toDate)
}

func (c *Client) sendRequest(ctx context.Context, soapRequest string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBufferString(soapRequest))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", "http://web.cbr.ru/KeyRate")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("CBR XML response: %s", string(body))
	return body, nil
}

// parseKeyRate extracts the latest key rate (first KR element) in percent
func parseKeyRate(rawBody []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %w", err)
	}

	krElements := doc.FindElements("//diffgram/KeyRate/KR")
	if len(krElements) == 0 {
		return 0, fmt.Errorf("no key rate data found in XML")
	}

	rateElement := krElements[0].FindElement("./Rate")
	if rateElement == nil {
		return 0, fmt.Errorf("rate element not found in XML")
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(rateElement.Text()), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse rate: %w", err)
	}
	return rate, nil
}

// GetKeyRate retrieves the current key rate and adds the bank margin.
// The result is in percent.
func (c *Client) GetKeyRate(ctx context.Context) (float64, error) {
	body, err := c.sendRequest(ctx, c.buildSOAPRequest())
	if err != nil {
		return 0, err
	}

	rate, err := parseKeyRate(body)
	if err != nil {
		return 0, err
	}
	rate += c.margin

	c.log.Infof("Retrieved key rate: %.2f%% (including %.2f%% bank margin)", rate, c.margin)
	return rate, nil
}

package apodclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"apod"
	"apod/pkg/consts"
	"apod/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client performs single APOD lookups.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = consts.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = consts.UserAgent
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
	}
}

// Fetch issues one GET for p and returns the decoded document verbatim.
// A non-2xx status yields *UpstreamError. There is no retry.
func (c *Client) Fetch(ctx context.Context, p Params) (apod.Metadata, error) {
	q, err := BuildQuery(p)
	if err != nil {
		return nil, err
	}

	u, err := MakeRequestURL(c.baseURL, q)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"date": p.Date,
		"hd":   p.HD,
	}).Debug("requesting picture metadata")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.OutcomeTransport).Inc()
		return nil, fmt.Errorf("request to APOD API: %w", redact(err, q.Get(consts.ApiKey)))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.OutcomeHTTPError).Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		uerr := &UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    errorMessage(body),
		}
		logrus.Warnf("APOD API error: %s", uerr)
		return nil, uerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.OutcomeTransport).Inc()
		return nil, fmt.Errorf("read APOD response: %w", err)
	}

	// Unmarshal rejects trailing data after the object.
	var md apod.Metadata
	if err := json.Unmarshal(body, &md); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.OutcomeDecodeError).Inc()
		return nil, &DecodeError{Err: err}
	}
	if md == nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.OutcomeDecodeError).Inc()
		return nil, &DecodeError{Err: fmt.Errorf("response is not a JSON object")}
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logrus.Debugf("picture metadata: %s", md.Picture())

	return md, nil
}

// errorMessage pulls a human readable message out of the API's error body.
// The API uses both {"msg": ...} and {"error": {"message": ...}} shapes.
func errorMessage(body []byte) string {
	var e struct {
		Msg   string `json:"msg"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}

	if e.Msg != "" {
		return e.Msg
	}
	return e.Error.Message
}

// redact keeps the API key out of transport errors, which embed the
// query-escaped URL.
func redact(err error, key string) error {
	if key == "" || key == consts.DemoKey {
		return err
	}

	msg := err.Error()
	for _, k := range []string{url.QueryEscape(key), key} {
		msg = strings.ReplaceAll(msg, k, "REDACTED")
	}
	if msg == err.Error() {
		return err
	}
	return &redactedError{msg: msg, err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

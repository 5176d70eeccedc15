package omdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"movies-db/internal/provider"
	"movies-db/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Client looks movies up by exact title on the OMDb API.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient builds a client with a bounded total timeout and no retries.
func NewClient(config utils.OMDbConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL:   config.BaseURL,
		apiKey:    config.APIKey,
		userAgent: config.UserAgent,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		log: log.With(zap.String("provider", "omdb")),
	}
}

func (c *Client) Name() string {
	return "omdb"
}

// requestURL returns the full request URL and a copy safe for logs.
func (c *Client) requestURL(title string) (string, string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", "", fmt.Errorf("parse base url: %w", err)
	}

	query := u.Query()
	query.Set("t", title)
	redacted := u.Query()
	redacted.Set("t", title)

	query.Set("apikey", c.apiKey)
	u.RawQuery = query.Encode()
	full := u.String()

	u.RawQuery = redacted.Encode()
	return full, u.String(), nil
}

func (c *Client) Lookup(ctx context.Context, title string) (*provider.Metadata, error) {
	reqURL, logURL, err := c.requestURL(title)
	if err != nil {
		return nil, &provider.TransportError{URL: c.baseURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &provider.TransportError{URL: logURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.log.Info("Fetching movie metadata", zap.String("url", logURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the full URL including the key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		c.log.Error("Metadata request failed", zap.String("url", logURL), zap.Error(err))
		return nil, &provider.TransportError{URL: logURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &provider.TransportError{URL: logURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	record, err := DecodeRecord(body)
	if err != nil {
		c.log.Error("Metadata response is not a JSON object",
			zap.String("url", logURL),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return nil, &provider.TransportError{URL: logURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode body: %w", err)}
	}

	// OMDb answers a bad or exhausted key with an error record too
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		msg, _ := record.Failed()
		if msg == "" {
			msg = strings.ToLower(http.StatusText(resp.StatusCode))
		}
		c.log.Error("Metadata request rejected",
			zap.String("url", logURL),
			zap.Int("status", resp.StatusCode),
			zap.String("response", msg),
		)
		return nil, &provider.TransportError{URL: logURL, StatusCode: resp.StatusCode, Err: errors.New(msg)}
	}

	if msg, failed := record.Failed(); failed {
		c.log.Warn("Movie metadata not found",
			zap.String("title", title),
			zap.String("response", msg),
		)
		return nil, &provider.NotFoundError{Title: title, Message: msg}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &provider.TransportError{URL: logURL, StatusCode: resp.StatusCode, Err: errors.New(strings.ToLower(http.StatusText(resp.StatusCode)))}
	}

	return record.Metadata(), nil
}

// Metadata maps the record through the placeholder-aware readers.
func (r Record) Metadata() *provider.Metadata {
	title, _ := r.Read(FieldTitle)

	return &provider.Metadata{
		Title:       title,
		Cover:       r.ReadPtr(FieldPoster),
		ReleaseDate: ParseReleased(r.Read(FieldReleased)),
		Duration:    ParseRuntime(r.Read(FieldRuntime)),
		Director:    r.ReadPtr(FieldDirector),
		Website:     r.ReadPtr(FieldWebsite),
	}
}

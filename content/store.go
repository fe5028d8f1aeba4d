package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
)

// StoreConfig identifies a dataset in the hosted content store.
type StoreConfig struct {
	ProjectID  string        `env:"PROJECT_ID,required" validate:"required,alphanum"`
	Dataset    string        `env:"DATASET" envDefault:"production" validate:"required"`
	APIVersion string        `env:"API_VERSION" envDefault:"2024-01-01" validate:"required,datetime=2006-01-02"`
	Token      string        `env:"TOKEN"`
	UseCDN     bool          `env:"USE_CDN" envDefault:"true"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// BaseURL replaces the hosted API origin, e.g. with a local proxy.
	BaseURL string `env:"BASE_URL" validate:"omitempty,url"`
}

// SetDefaults fills unset optional fields.
func (c *StoreConfig) SetDefaults() {
	if c.Dataset == "" {
		c.Dataset = "production"
	}
	if c.APIVersion == "" {
		c.APIVersion = "2024-01-01"
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
}

// QueryEndpoint returns the URL queries are sent to.
func (c StoreConfig) QueryEndpoint() string {
	base := c.BaseURL
	if base == "" {
		host := "api.sanity.io"
		if c.UseCDN {
			host = "apicdn.sanity.io"
		}
		base = "https://" + c.ProjectID + "." + host
	}
	return strings.TrimSuffix(base, "/") + "/v" + c.APIVersion + "/data/query/" + url.PathEscape(c.Dataset)
}

// ImageURL resolves an image asset reference of the form
// "image-<id>-<w>x<h>-<format>" to its CDN URL. Other references yield "".
func ImageURL(c StoreConfig, ref string) string {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" || parts[1] == "" || parts[3] == "" {
		return ""
	}
	return "https://cdn.sanity.io/images/" + c.ProjectID + "/" + c.Dataset + "/" +
		parts[1] + "-" + parts[2] + "." + parts[3]
}

// QueryError is a non-2xx response from the content store.
type QueryError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *QueryError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("content: query failed: %d %s: %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("content: query failed: %d: %s", e.StatusCode, e.Message)
}

// HTTPStore is a Querier over the content store's HTTP query API.
type HTTPStore struct {
	cfg    StoreConfig
	client *http.Client
	logger *log.Logger
}

// StoreOption configures an HTTPStore.
type StoreOption func(*HTTPStore)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) StoreOption {
	return func(s *HTTPStore) {
		s.client = c
	}
}

// WithLogger sets the logger used for per-query debug lines.
func WithLogger(l *log.Logger) StoreOption {
	return func(s *HTTPStore) {
		s.logger = l
	}
}

// NewHTTPStore creates an HTTPStore. Request timeouts come from
// cfg.Timeout; there are no retries.
func NewHTTPStore(cfg StoreConfig, opts ...StoreOption) *HTTPStore {
	cfg.SetDefaults()
	s := &HTTPStore{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: cfg.Timeout}
	}
	if s.logger == nil {
		s.logger = log.New("content")
	}
	return s
}

// Config returns the store's configuration.
func (s *HTTPStore) Config() StoreConfig {
	return s.cfg
}

// Query implements Querier. Parameters are sent JSON-encoded as $name
// query-string values.
func (s *HTTPStore) Query(ctx context.Context, query string, params map[string]any, result any) error {
	values := url.Values{}
	values.Set("query", query)
	for name, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("content: encode param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.QueryEndpoint()+"?"+values.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	s.logger.Debugf("content query -> %d (%s) %s", resp.StatusCode, time.Since(start), firstLine(query))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseQueryError(resp.StatusCode, body)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("content: decode response: %w", err)
	}
	if len(envelope.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("content: decode result: %w", err)
	}
	return nil
}

func parseQueryError(status int, body []byte) error {
	qe := &QueryError{StatusCode: status, Message: http.StatusText(status)}
	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if json.Unmarshal(body, &envelope) != nil {
		if msg := strings.TrimSpace(string(body)); msg != "" && len(msg) < 512 {
			qe.Message = msg
		}
		return qe
	}
	var detail struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	}
	var plain string
	switch {
	case json.Unmarshal(envelope.Error, &detail) == nil && detail.Description != "":
		qe.Message, qe.Type = detail.Description, detail.Type
	case envelope.Message != "":
		qe.Message = envelope.Message
		if json.Unmarshal(envelope.Error, &plain) == nil {
			qe.Type = plain
		}
	case json.Unmarshal(envelope.Error, &plain) == nil && plain != "":
		qe.Message = plain
	}
	return qe
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

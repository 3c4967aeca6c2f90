package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

const defaultTimeout = 30 * time.Second

// Fields is a partial entity payload. Only the keys present are sent, so an
// update leaves every other stored field untouched.
type Fields map[string]interface{}

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID == "" {
		return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%d: %s (request %s)", e.StatusCode, e.Message, e.RequestID)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

func IsNotFound(err error) bool {
	return IsStatus(err, constvars.StatusNotFound)
}

type Client struct {
	serverURL  string
	prefix     string
	httpClient *http.Client
	log        *logrus.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		c.log = logger
	}
}

// WithPrefix sets the path the API is mounted under. The default is "/api".
func WithPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = normalizePrefix(prefix)
	}
}

func New(serverURL string, opts ...Option) *Client {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	c := &Client{
		serverURL:  strings.TrimRight(serverURL, "/"),
		prefix:     "/api",
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        silent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health calls the unprefixed health endpoint. A degraded service answers 503
// with a body, which is decoded and returned along with the APIError.
func (c *Client) Health(ctx context.Context) (*responses.Health, error) {
	health := new(responses.Health)
	err := c.send(ctx, constvars.MethodGet, c.serverURL+"/healthz", nil, health)
	if err != nil && !IsStatus(err, constvars.StatusServiceUnavailable) {
		return nil, err
	}
	return health, err
}

func (c *Client) apiPath(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
	}
	return c.serverURL + c.prefix + "/" + strings.Join(escaped, "/")
}

func (c *Client) do(ctx context.Context, method string, payload, out interface{}, segments ...string) error {
	return c.send(ctx, method, c.apiPath(segments...), payload, out)
}

func (c *Client) send(ctx context.Context, method, target string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		requestJSON, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s %s request: %w", method, target, err)
		}
		body = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, target, err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if payload != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	entry := c.log.WithFields(logrus.Fields{
		constvars.LoggingMethodKey:   method,
		constvars.LoggingEndpointKey: target,
	})
	entry.Debug("sending request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send %s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, target, err)
	}
	entry.WithFields(logrus.Fields{
		constvars.LoggingStatusCodeKey: resp.StatusCode,
		constvars.LoggingDurationKey:   time.Since(start).String(),
		constvars.LoggingRequestIDKey:  resp.Header.Get(constvars.HeaderXRequestID),
	}).Debug("received response")

	if resp.StatusCode >= constvars.StatusBadRequest {
		if out != nil && len(responseBody) > 0 {
			_ = json.Unmarshal(responseBody, out)
		}
		return newAPIError(resp, responseBody)
	}

	if out == nil || len(responseBody) == 0 {
		return nil
	}
	err = json.Unmarshal(responseBody, out)
	if err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, target, err)
	}
	return nil
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(constvars.HeaderXRequestID),
	}

	var errorBody responses.Error
	if err := json.Unmarshal(body, &errorBody); err == nil && errorBody.Error != "" {
		apiErr.Message = errorBody.Error
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

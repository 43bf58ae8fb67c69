package axonops

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	axerrors "github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/errors"
	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/limiter"
	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/shared"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/core/ports"
	"github.com/olusolaa/axonops-importer/internal/errors"
)

const (
	PlatformType = "axonops"

	DefaultTimeout   = 30 * time.Second
	DefaultTokenType = "AxonApi"
	userAgent        = "axonops-importer"
)

type Config struct {
	Host         string
	Protocol     string
	APIKey       string
	TokenType    string
	Timeout      time.Duration
	RateLimitRPS int
}

// Client performs authenticated GETs against one AxonOps server.
type Client struct {
	baseURL      string
	authHeader   string
	maskedAuth   string
	httpClient   *http.Client
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
	logger       ports.Logger
}

type ClientOption func(*Client)

// WithHTTPClient replaces the underlying client. Its timeout is kept as is.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithRateLimiter(l shared.RateLimiter) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.limiter = l
		}
	}
}

func WithErrorHandler(h shared.ErrorHandler) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

func NewClient(cfg Config, logger ports.Logger, opts ...ClientOption) (*Client, error) {
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "logger cannot be nil for AxonOps client")
	}
	if cfg.Host == "" {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation, "AxonOps host is empty", "Pass the server as host[:port], e.g. axonops.example.com:8080.")
	}

	protocol := cfg.Protocol
	if protocol == "" {
		protocol = "http"
	}
	tokenType := cfg.TokenType
	if tokenType == "" {
		tokenType = DefaultTokenType
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:      protocol + "://" + strings.TrimSuffix(cfg.Host, "/"),
		authHeader:   tokenType + " " + cfg.APIKey,
		maskedAuth:   tokenType + " " + maskSecret(cfg.APIKey),
		httpClient:   &http.Client{Timeout: timeout},
		errorHandler: &axerrors.DefaultErrorHandler{},
		logger:       logger.WithFields(map[string]any{"platform": PlatformType}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.limiter == nil {
		c.limiter = limiter.New(cfg.RateLimitRPS, c.logger)
	}
	return c, nil
}

func (c *Client) Type() string {
	return PlatformType
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// NewSource returns a fresh session so each resource kind gets its own
// fetch statistics.
func (c *Client) NewSource(logger ports.Logger) ports.TrackedSource {
	return NewSession(c, logger)
}

// Get never returns a transport error directly; it is carried in the result.
func (c *Client) Get(ctx context.Context, path string) domain.FetchResult {
	url := c.baseURL + path
	result := domain.FetchResult{URL: url}

	if err := c.limiter.Wait(ctx, c.logger); err != nil {
		result.Err = c.errorHandler.Handle(ctx, url, 0, err)
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Err = errors.Wrap(err, errors.CodeTransportError, fmt.Sprintf("building request for %s", url))
		return result
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debugf(ctx, "GET %s (Authorization: %s)", url, c.maskedAuth)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Err = c.errorHandler.Handle(ctx, url, 0, err)
		return result
	}
	defer resp.Body.Close()

	result.Status = resp.StatusCode
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Err = c.errorHandler.Handle(ctx, url, 0, err)
		return result
	}
	c.logger.Debugf(ctx, "GET %s -> %d (%d bytes, %s)", url, resp.StatusCode, len(body), time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result.Err = c.errorHandler.Handle(ctx, url, resp.StatusCode, nil)
		return result
	}
	result.Body = body
	return result
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}

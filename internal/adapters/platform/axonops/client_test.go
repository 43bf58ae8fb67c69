package axonops

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/olusolaa/axonops-importer/internal/errors"
	"github.com/olusolaa/axonops-importer/internal/log"
)

const testAPIKey = "s3cr3t-api-key-1234"

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	mux     *http.ServeMux
	logBuf  *bytes.Buffer
	client  *Client
	ctx     context.Context
	cancel  context.CancelFunc
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.logBuf = &bytes.Buffer{}
	logger, err := log.NewLogger(log.Config{Level: log.LevelDebug, Format: log.FormatJSON, Output: s.logBuf})
	s.Require().NoError(err)

	s.client, err = NewClient(Config{
		Host:         strings.TrimPrefix(s.server.URL, "http://"),
		Protocol:     "http",
		APIKey:       testAPIKey,
		Timeout:      2 * time.Second,
		RateLimitRPS: 100,
	}, logger)
	s.Require().NoError(err)
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 5*time.Second)
}

func (s *ClientTestSuite) TearDownTest() {
	s.cancel()
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestGet_Success() {
	headers := make(chan http.Header, 1)
	s.mux.HandleFunc("/api/v1/acme/kafka/prod/topics", func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"orders"}]`))
	})

	res := s.client.Get(s.ctx, "/api/v1/acme/kafka/prod/topics")

	s.Require().True(res.OK(), "unexpected error: %v", res.Err)
	s.Equal(http.StatusOK, res.Status)
	s.JSONEq(`[{"name":"orders"}]`, string(res.Body))
	s.Equal(s.server.URL+"/api/v1/acme/kafka/prod/topics", res.URL)
	got := <-headers
	s.Equal("AxonApi "+testAPIKey, got.Get("Authorization"))
	s.Equal("application/json", got.Get("Accept"))
}

func (s *ClientTestSuite) TestGet_DebugTraceMasksKey() {
	s.mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	s.client.Get(s.ctx, "/x")

	s.Contains(s.logBuf.String(), "GET "+s.server.URL+"/x")
	s.Contains(s.logBuf.String(), "****1234")
	s.NotContains(s.logBuf.String(), testAPIKey)
}

func (s *ClientTestSuite) TestGet_StatusErrors() {
	s.mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	s.mux.HandleFunc("/denied", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	s.mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	s.Equal(errors.CodeResourceNotFound, errors.GetCode(s.client.Get(s.ctx, "/missing").Err))
	s.Equal(errors.CodePlatformAuthError, errors.GetCode(s.client.Get(s.ctx, "/denied").Err))

	res := s.client.Get(s.ctx, "/broken")
	s.False(res.OK())
	s.Equal(http.StatusInternalServerError, res.Status)
	s.Nil(res.Body)
	s.Equal(errors.CodeUpstreamStatus, errors.GetCode(res.Err))
}

func (s *ClientTestSuite) TestGet_Timeout() {
	s.mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	client, err := NewClient(Config{
		Host:    strings.TrimPrefix(s.server.URL, "http://"),
		APIKey:  testAPIKey,
		Timeout: 50 * time.Millisecond,
	}, log.Discard())
	s.Require().NoError(err)

	res := client.Get(s.ctx, "/slow")
	s.False(res.OK())
	s.Equal(errors.CodeTimeout, errors.GetCode(res.Err))
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(Config{Host: "axonops.example.com:8080/", APIKey: "k"}, log.Discard())
	require.NoError(t, err)
	assert.Equal(t, "http://axonops.example.com:8080", c.BaseURL())
	assert.Equal(t, "AxonApi k", c.authHeader)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.Equal(t, PlatformType, c.Type())
}

func TestNewClient_BearerAndHTTPS(t *testing.T) {
	c, err := NewClient(Config{Host: "h", Protocol: "https", APIKey: "k", TokenType: "Bearer"}, log.Discard())
	require.NoError(t, err)
	assert.Equal(t, "https://h", c.BaseURL())
	assert.Equal(t, "Bearer k", c.authHeader)
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{Host: "h"}, nil)
	assert.Equal(t, errors.CodeConfigValidation, errors.GetCode(err))

	_, err = NewClient(Config{}, log.Discard())
	assert.Equal(t, errors.CodeConfigValidation, errors.GetCode(err))
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "****", maskSecret("short"))
	assert.Equal(t, "****wxyz", maskSecret("abcdefghwxyz"))
}

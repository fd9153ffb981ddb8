// Package app provides the core service that implements the dependencies
// required by the MCP tool handlers.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/malekian/snipemcp/internal/snipeit"
	"github.com/malekian/snipemcp/pkg/logger"
)

const defaultHTTPTimeout = 30 * time.Second

// Service holds upstream credentials and hands the Snipe-IT client to
// tool handlers. The client is built lazily on first use so the server
// can start before credentials are configured; until then every tool
// call reports a configuration error, mirroring the upstream contract.
type Service struct {
	mu sync.Mutex

	// Configuration
	url     string
	token   string
	timeout time.Duration

	// State
	client *snipeit.Client

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCredentials sets the Snipe-IT base URL and API token.
func WithCredentials(url, token string) Option {
	return func(s *Service) {
		s.url = url
		s.token = token
	}
}

// WithHTTPTimeout bounds each upstream request.
func WithHTTPTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClient injects a pre-built client, bypassing lazy construction.
func WithClient(c *snipeit.Client) Option {
	return func(s *Service) {
		s.client = c
	}
}

// New creates a Service using provided options.
func New(opts ...Option) *Service {
	s := &Service{
		timeout: defaultHTTPTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start logs the configuration state. Missing credentials are a warning,
// not a failure: tools report them per call.
func (s *Service) Start(ctx context.Context) error {
	if s.logger == nil {
		return nil
	}
	if s.url == "" || s.token == "" {
		s.logger.Warn(ctx, "snipeit_url and snipeit_token are not set; tools will fail until configured")
		return nil
	}
	s.logger.Info(ctx, "snipe-it upstream configured", logger.String("url", s.url))
	return nil
}

// Inventory returns the Snipe-IT client, building it on first use.
func (s *Service) Inventory(_ context.Context) (*snipeit.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	opts := []snipeit.Option{snipeit.WithTimeout(s.timeout)}
	if s.logger != nil {
		opts = append(opts, snipeit.WithLogger(s.logger.Named("snipeit")))
	}
	client, err := snipeit.New(s.url, s.token, opts...)
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

// Package qdrant implements store.Store on a Qdrant collection used purely
// as a payload document store. Each issue is a point whose payload carries
// the record; the vector is a fixed placeholder and never searched.
package qdrant

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/Kavirubc/gh-tracker/internal/config"
	"github.com/qdrant/go-client/qdrant"
)

const defaultPort = 6334

// Store wraps Qdrant operations
type Store struct {
	qdrant *qdrant.Client

	mu      sync.Mutex
	ensured map[string]bool
}

// endpoint is where the gRPC client dials
type endpoint struct {
	host string
	port int
	tls  bool
}

// NewStore connects to the Qdrant instance described by cfg
func NewStore(cfg *config.QdrantConfig) (*Store, error) {
	ep, err := parseEndpoint(cfg.URL)
	if err != nil {
		return nil, err
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   ep.host,
		Port:   ep.port,
		APIKey: cfg.APIKey,
		UseTLS: ep.tls,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Qdrant at %s: %w", net.JoinHostPort(ep.host, strconv.Itoa(ep.port)), err)
	}

	return &Store{qdrant: client, ensured: make(map[string]bool)}, nil
}

// parseEndpoint accepts host, host:port, [v6]:port or a URL with an optional
// path. TLS is on for https and for Qdrant Cloud hosts.
func parseEndpoint(raw string) (endpoint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return endpoint{}, fmt.Errorf("qdrant url is required")
	}
	if !strings.Contains(raw, "://") {
		raw = "grpc://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return endpoint{}, fmt.Errorf("invalid qdrant url: %w", err)
	}
	if u.Hostname() == "" {
		return endpoint{}, fmt.Errorf("invalid qdrant url %q: missing host", raw)
	}

	ep := endpoint{host: u.Hostname(), port: defaultPort}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return endpoint{}, fmt.Errorf("invalid qdrant port %q", p)
		}
		ep.port = port
	}

	ep.tls = u.Scheme == "https" || isCloudHost(ep.host)
	return ep, nil
}

func isCloudHost(host string) bool {
	host = strings.ToLower(host)
	return strings.HasSuffix(host, ".qdrant.io") || strings.HasSuffix(host, ".qdrant.cloud")
}

// Close closes the connection
func (s *Store) Close() error {
	if s.qdrant != nil {
		return s.qdrant.Close()
	}
	return nil
}

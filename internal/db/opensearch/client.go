package opensearch

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"

	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for an OpenSearch cluster.
type Config struct {
	Addrs              []string
	Username           string
	Password           string
	InsecureSkipVerify bool
	Compress           bool
}

// Store implements db.Store via opensearch-go.
type Store struct {
	client    *opensearchapi.Client
	transport *http.Transport
}

// NewStore creates an OpenSearch store. No request is made until first use.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec // opt-in for self-signed dev clusters
		},
	}

	client, err := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearch.Config{
			Addresses:           cfg.Addrs,
			Username:            cfg.Username,
			Password:            cfg.Password,
			Transport:           transport,
			CompressRequestBody: cfg.Compress,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{client: client, transport: transport}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, nil)
	closeBody(resp)
	if err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close releases idle connections.
func (s *Store) Close() {
	s.transport.CloseIdleConnections()
}

func closeBody(resp *opensearch.Response) {
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
}

// isOpenSearchErr reports whether err carries the given server error type.
func isOpenSearchErr(err error, errType string) bool {
	return err != nil && strings.Contains(err.Error(), errType)
}

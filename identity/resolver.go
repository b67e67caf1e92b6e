package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Resolver maps an opaque external token to a stable external identity.
// resolved=false means the provider does not recognize the token; errors are
// reserved for transport and protocol failures.
type Resolver interface {
	Resolve(ctx context.Context, externalToken string) (id string, resolved bool, err error)
}

// ResolverFunc adapts a function to the [Resolver] interface.
type ResolverFunc func(ctx context.Context, externalToken string) (string, bool, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, externalToken string) (string, bool, error) {
	return f(ctx, externalToken)
}

const defaultHTTPTimeout = 5 * time.Second

// responseBodyLimit caps how much of the provider response is read; the
// expected body is a tiny JSON object.
const responseBodyLimit = 1 << 16

// GraphResolver resolves tokens against a Graph-style identity endpoint:
//
//	GET <endpoint>?access_token=<token>  ->  {"id":"<external id>"}
//
// A non-2xx status or an empty id means the token is not resolvable. When a
// prefix is configured it is prepended to every resolved identity, which
// keeps provider identities out of the local login namespace.
type GraphResolver struct {
	endpoint string
	prefix   string
	client   *http.Client
}

// NewGraphResolver creates a [GraphResolver]. A nil client selects a default
// one with a 5-second timeout; the resolver must fail fast rather than hang.
func NewGraphResolver(endpoint, prefix string, client *http.Client) *GraphResolver {
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &GraphResolver{endpoint: endpoint, prefix: prefix, client: client}
}

// Resolve queries the provider for the identity behind externalToken.
func (g *GraphResolver) Resolve(ctx context.Context, externalToken string) (string, bool, error) {
	u := g.endpoint + "?access_token=" + url.QueryEscape(externalToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", false, fmt.Errorf("build provider request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("query identity provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The provider rejected the token; not an error, just unresolved.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, responseBodyLimit))
		return "", false, nil
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, responseBodyLimit)).Decode(&body); err != nil {
		return "", false, fmt.Errorf("decode provider response: %w", err)
	}
	if body.ID == "" {
		return "", false, nil
	}

	return g.prefix + body.ID, true, nil
}

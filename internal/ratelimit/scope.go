package ratelimit

import "github.com/danielgtaylor/huma/v2"

// Scope categorizes a request for rate limiting.
type Scope string

const (
	// ScopeGlobal applies to every request.
	ScopeGlobal Scope = "global"
	// ScopeRead applies to GET, HEAD and OPTIONS requests.
	ScopeRead Scope = "read"
	// ScopeWrite applies to everything else.
	ScopeWrite Scope = "write"
)

// MetadataKey stores an EndpointConfig in huma operation metadata.
const MetadataKey = "rateLimit"

// EndpointConfig overrides the policy for one endpoint. With Limits set,
// those limits replace the scope defaults entirely; with Disabled set, the
// endpoint skips rate limiting.
type EndpointConfig struct {
	Limits   []LimitConfig
	Disabled bool
}

// ResolveScopes returns the scopes applying to a request based on its
// HTTP method.
func ResolveScopes(ctx huma.Context) []Scope {
	scopes := []Scope{ScopeGlobal}

	switch ctx.Method() {
	case "GET", "HEAD", "OPTIONS":
		return append(scopes, ScopeRead)
	default:
		return append(scopes, ScopeWrite)
	}
}

// EndpointConfigFrom extracts the per-endpoint override from operation
// metadata, or nil when the operation carries none.
func EndpointConfigFrom(ctx huma.Context) *EndpointConfig {
	op := ctx.Operation()
	if op == nil || op.Metadata == nil {
		return nil
	}

	cfg, ok := op.Metadata[MetadataKey].(EndpointConfig)
	if !ok {
		return nil
	}

	return &cfg
}

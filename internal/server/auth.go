package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/justfortestingnothibghere/Api/internal/models"
	"github.com/justfortestingnothibghere/Api/internal/shared"
)

type grantKey struct{}

// grant records what the gate decided for a request.
type grant struct {
	capability models.Capability
	bypass     bool
}

func withGrant(ctx context.Context, g grant) context.Context {
	return context.WithValue(ctx, grantKey{}, g)
}

func grantFrom(ctx context.Context) (grant, bool) {
	g, ok := ctx.Value(grantKey{}).(grant)
	return g, ok
}

// CapabilityFrom returns the capability the gate attached to ctx.
// The second result is false when the request was not gated or was let through by bypass.
func CapabilityFrom(ctx context.Context) (models.Capability, bool) {
	g, ok := grantFrom(ctx)
	if !ok || g.bypass {
		return "", false
	}
	return g.capability, true
}

// Gate rejects requests under a protected prefix that do not carry a known API key.
type Gate struct {
	keys        *models.KeyTable
	prefix      string
	allowBypass bool
	logger      *log.Logger
}

// NewGate creates a gate for paths under prefix.
//
// With allowBypass set, requests that send no key at all are granted every capability.
func NewGate(keys *models.KeyTable, prefix string, allowBypass bool, logger *log.Logger) *Gate {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Gate{
		keys:        keys,
		prefix:      strings.TrimRight(prefix, "/"),
		allowBypass: allowBypass,
		logger:      logger,
	}
}

// Protects reports whether path falls under the protected prefix.
func (g *Gate) Protects(path string) bool {
	return path == g.prefix || strings.HasPrefix(path, g.prefix+"/")
}

// Middleware returns the gate as a [Middleware].
//
// OPTIONS requests pass untouched so CORS preflight works without a key.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || !g.Protects(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(shared.APIKeyHeader)
		if key == "" && g.allowBypass {
			g.logger.Warn("auth bypassed", "path", r.URL.Path, "request_id", RequestIDFrom(r.Context()))
			next.ServeHTTP(w, r.WithContext(withGrant(r.Context(), grant{bypass: true})))
			return
		}

		capability, ok := g.keys.Lookup(key)
		if !ok {
			g.logger.Debug("rejected key", "path", r.URL.Path, "key_present", key != "")
			writeError(w, shared.ErrInvalidAPIKey)
			return
		}

		next.ServeHTTP(w, r.WithContext(withGrant(r.Context(), grant{capability: capability})))
	})
}

// RequireCapability only lets through requests whose key carries capability.
func RequireCapability(capability models.Capability) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			g, ok := grantFrom(r.Context())
			if !ok || (!g.bypass && g.capability != capability) {
				writeError(w, shared.ErrUnauthorizedKey)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

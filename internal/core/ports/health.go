package ports

import "context"

// HealthChecker is one dependency reported by GET /health: a storage
// backend, the gallery directory or the Story RPC endpoint.
type HealthChecker interface {
	// Name is the key under "dependencies" in the /health body.
	Name() string
	// Ping returns nil when the dependency can serve requests right now.
	Ping(ctx context.Context) error
}

package health

import "context"

// HealthPinger is implemented by store drivers that can check connectivity directly
// (mongo ping, sql PingContext). HealthPing returns nil when the backend is reachable.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}

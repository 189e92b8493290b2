package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name used by the underlying
// [httpclient.Client] for tracing and metrics.
func (c *ModelClient) Name() string {
	return ServiceName
}

// HealthCheck reports the model provider's availability from the circuit
// breaker guarding it: nil when closed, a "degraded" error when half-open and
// a "failing" error when open.
//
// This reports downstream status, not service readiness. Agents keep
// answering with error text while the provider is down.
func (c *ModelClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}

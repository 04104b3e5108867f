// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	// Setup health routes
//	mux.HandleFunc("/health/live", health.Liveness)
//	mux.HandleFunc("/health/ready", health.Readiness(
//		logger,
//		pg.Healthcheck(pool),
//		redis.Healthcheck(client),
//	))
//	mux.HandleFunc("/ping", health.NoContent)
//
// Dependency checks must follow func(context.Context) error signature:
//
//	func checkDB(ctx context.Context) error {
//		return db.PingContext(ctx)
//	}
package health

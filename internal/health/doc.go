// Package health classifies container health status events.
//
// The container engine reports each health check transition as a single
// status line of the form "health_status: <state>". Only three states are
// recognised:
//
//	StatusStarting  - health checks are still in their start period
//	StatusHealthy   - terminal, the container passed its checks
//	StatusUnhealthy - terminal, the container failed its checks
//
// Any other line classifies as StatusUnknown and is ignored by the watcher.
//
//	switch health.Classify(line) {
//	case health.StatusHealthy:
//	    ...
//	}
package health

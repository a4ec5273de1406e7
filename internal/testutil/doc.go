// Package testutil provides helpers for tests that run real processes.
//
// # Fake Engines
//
// NewFakeEngine writes a small shell script that stands in for docker. The
// script records its arguments and then runs the given body, which decides
// what the "event stream" looks like:
//
//	engine := testutil.NewFakeEngine(t, testutil.EmitLines("health_status: healthy")+"exec sleep 30\n")
//	src := events.NewCLISource(engine, time.Second)
//
// After the stream produced output, the recorded arguments are available:
//
//	args := engine.Args(t)
//
// ProcessRunning checks that a recorded pid did not outlive cleanup.
package testutil

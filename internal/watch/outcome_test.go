package watch

import (
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/errors"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		str      string
		exitCode int
		kind     errors.Kind
	}{
		{Healthy, "healthy", 0, ""},
		{Unhealthy, "unhealthy", 1, errors.KindUnhealthy},
		{TimedOut, "timed-out", 1, errors.KindTimedOut},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.outcome.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.outcome.ExitCode(); got != tt.exitCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exitCode)
			}

			err := tt.outcome.Err("web1")
			if tt.kind == "" {
				if err != nil {
					t.Errorf("Err() = %v, want nil", err)
				}
				return
			}
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("KindOf(Err()) = %q, want %q", errors.KindOf(err), tt.kind)
			}
			if got := errors.GetExitCode(err); got != tt.exitCode {
				t.Errorf("GetExitCode(Err()) = %d, want %d", got, tt.exitCode)
			}
		})
	}
}

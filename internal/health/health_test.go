package health

import "testing"

func TestStatusConstants(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusStarting, "starting"},
		{StatusHealthy, "healthy"},
		{StatusUnhealthy, "unhealthy"},
		{StatusUnknown, "unknown"},
	}

	for _, tt := range tests {
		if string(tt.status) != tt.want {
			t.Errorf("Status %v = %q, want %q", tt.status, tt.status, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Status
	}{
		{"healthy", "health_status: healthy", StatusHealthy},
		{"unhealthy", "health_status: unhealthy", StatusUnhealthy},
		{"starting", "health_status: starting", StatusStarting},
		{"trailing newline", "health_status: healthy\n", StatusHealthy},
		{"crlf", "health_status: unhealthy\r\n", StatusUnhealthy},
		{"empty", "", StatusUnknown},
		{"unrelated", "exec_start: /bin/sh -c curl localhost", StatusUnknown},
		{"leading text", "x health_status: healthy", StatusUnknown},
		{"trailing text", "health_status: healthy!", StatusUnknown},
		{"suffix only", "healthy", StatusUnknown},
		{"uppercase", "health_status: HEALTHY", StatusUnknown},
		{"unknown state", "health_status: none", StatusUnknown},
		{"missing space", "health_status:healthy", StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		state string
		want  Status
	}{
		{"healthy", StatusHealthy},
		{"unhealthy", StatusUnhealthy},
		{"starting", StatusStarting},
		{"", StatusUnknown},
		{"none", StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			if got := Parse(tt.state); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.state, got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusHealthy, true},
		{StatusUnhealthy, true},
		{StatusStarting, false},
		{StatusUnknown, false},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.want {
			t.Errorf("%q.IsTerminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestEventLine(t *testing.T) {
	if got := StatusHealthy.EventLine(); got != "health_status: healthy" {
		t.Errorf("EventLine() = %q, want %q", got, "health_status: healthy")
	}
	if got := Classify(StatusUnhealthy.EventLine()); got != StatusUnhealthy {
		t.Errorf("Classify(EventLine()) = %q, want %q", got, StatusUnhealthy)
	}
}

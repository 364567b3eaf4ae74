package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/linsim/internal/export"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunPresetTable(t *testing.T) {
	out, err := execute(t, "run", "antelope", "--preset", "even", "--cycles", "2")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, want := range []string{"antelope", "forest", "0.450", "0.550", "0.415", "mass_drift", "distribution"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "run", "antelope", "--format", "json", "--cycles", "30", "--tol", "0.001", "--window", "3")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var data export.ExportData
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(data.States) != 31 {
		t.Errorf("expected 31 states, got %d", len(data.States))
	}
	if !data.Converged || data.Equilibrium != 14 {
		t.Errorf("expected equilibrium 14, got %d (converged=%v)", data.Equilibrium, data.Converged)
	}
	if data.Metrics["mass_drift"] > 1e-9 {
		t.Errorf("expected conserved mass, drift %g", data.Metrics["mass_drift"])
	}
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte(`system: custom
operator:
  - [2, 0]
  - [0, 3]
initial: [1, 1]
cycles: 2
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out, err := execute(t, "run", "--config", path, "--format", "csv", "--no-round")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := "step,x0,x1\n0,1,1\n1,2,3\n2,4,9\n"
	if out != want {
		t.Errorf("unexpected csv:\n%s\nwant:\n%s", out, want)
	}
}

func TestRunRejectsPerturbedChain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte(`system: tiger
operator:
  - [0.6, 0.4, 0.6]
  - [0.2, 0.2, 0.3]
  - [0.3, 0.4, 0.1]
initial: [1, 0, 0]
stochastic: true
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := execute(t, "run", "--config", path); err == nil {
		t.Error("expected stochastic validation failure")
	}
	if _, err := execute(t, "validate", "--config", path); err == nil {
		t.Error("expected validate to fail")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no system", []string{"run"}},
		{"unknown system", []string{"run", "zebra"}},
		{"unknown preset", []string{"run", "tiger", "--preset", "missing"}},
		{"unknown format", []string{"run", "tiger", "--format", "xml"}},
		{"negative cycles", []string{"run", "tiger", "--cycles", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidatePreset(t *testing.T) {
	out, err := execute(t, "validate", "tiger")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out, "valid markov chain") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "sweep", "tiger", "--cycles", "40", "--tol", "1e-6")
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header, configured initial state, three pure states
	if len(lines) != 5 {
		t.Errorf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	if !strings.Contains(out, "tiger") || !strings.Contains(out, "antelope") {
		t.Errorf("unexpected systems:\n%s", out)
	}

	out, err = execute(t, "presets", "tiger")
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	if !strings.Contains(out, "resting") {
		t.Errorf("unexpected presets:\n%s", out)
	}
}

func TestTraceLogging(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"run", "antelope", "--cycles", "2", "--log-level", "trace"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if strings.Count(errOut.String(), "level=TRACE") != 3 {
		t.Errorf("expected 3 trace lines:\n%s", errOut.String())
	}
}

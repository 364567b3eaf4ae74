package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/linsim/internal/dynamo"
)

var traj = dynamo.Trajectory{
	{0.5, 0.5},
	{0.45, 0.55},
	{0.415, 0.585},
}

func TestTable(t *testing.T) {
	out := Table(traj, []string{"forest", "plains"}, 3, 2)

	for _, want := range []string{"step", "forest", "plains", "0.450", "0.585", "equilibrium"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(traj)+1 {
		t.Errorf("expected %d lines, got %d", len(traj)+1, len(lines))
	}
	if strings.Contains(lines[1], "equilibrium") {
		t.Error("wrong row marked as equilibrium")
	}
}

func TestTableDefaultLabels(t *testing.T) {
	out := Table(traj, nil, 2, -1)
	if !strings.Contains(out, "x0") || !strings.Contains(out, "x1") {
		t.Errorf("expected default labels:\n%s", out)
	}
	if strings.Contains(out, "equilibrium") {
		t.Error("no row should be marked")
	}
}

func TestChart(t *testing.T) {
	out := Chart(traj, []string{"forest", "plains"}, "antelope", 5, 20)
	if out == "" {
		t.Fatal("expected chart output")
	}
	if !strings.Contains(out, "antelope") {
		t.Errorf("chart missing caption:\n%s", out)
	}
}

func TestChartEmpty(t *testing.T) {
	if out := Chart(nil, nil, "", 5, 20); out != "" {
		t.Errorf("expected empty chart, got %q", out)
	}
}

func TestSummary(t *testing.T) {
	out := Summary([2]string{"system", "tiger"}, [2]string{"steps", "20"})
	if !strings.Contains(out, "tiger") || !strings.Contains(out, "steps") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

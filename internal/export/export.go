// Package export encodes simulation results for other tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/linsim/internal/dynamo"
)

type ExportData struct {
	System      string             `json:"system"`
	Labels      []string           `json:"labels"`
	Steps       int                `json:"steps"`
	States      [][]float64        `json:"states"`
	Display     [][]float64        `json:"display,omitempty"`
	Equilibrium int                `json:"equilibrium"`
	Converged   bool               `json:"converged"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
}

func NewExportData(system string, labels []string, result *dynamo.Result) ExportData {
	data := ExportData{
		System:      system,
		Labels:      labels,
		Steps:       result.Steps,
		States:      make([][]float64, len(result.Trajectory)),
		Equilibrium: result.Equilibrium,
		Converged:   result.Converged,
		Metrics:     result.Metrics,
	}

	for i, s := range result.Trajectory {
		data.States[i] = s
	}
	if result.Display != nil {
		data.Display = make([][]float64, len(result.Display))
		for i, s := range result.Display {
			data.Display[i] = s
		}
	}
	return data
}

func WriteJSON(w io.Writer, system string, labels []string, result *dynamo.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(system, labels, result))
}

// WriteCSV writes one row per step. Values are printed with the given number
// of decimals, or at full precision when places is negative.
func WriteCSV(w io.Writer, labels []string, traj dynamo.Trajectory, places int) error {
	cw := csv.NewWriter(w)

	header := []string{"step"}
	for i := 0; i < traj.Dim(); i++ {
		if i < len(labels) {
			header = append(header, labels[i])
		} else {
			header = append(header, "x"+strconv.Itoa(i))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for k, x := range traj {
		row := []string{strconv.Itoa(k)}
		for _, val := range x {
			row = append(row, strconv.FormatFloat(val, 'f', places, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

package config

import "sort"

var Presets = map[string]map[string]*Config{
	"antelope": {
		"even": {
			System: "antelope", Cycles: 30, Stochastic: true,
			Operator:    [][]float64{{0.8, 0.1}, {0.2, 0.9}},
			Initial:     []float64{0.5, 0.5},
			Labels:      []string{"forest", "plains"},
			Display:     DisplayConfig{Round: true, Places: 3},
			Convergence: ConvergenceConfig{Tolerance: DefaultTolerance, Window: DefaultWindow},
		},
		"forest": {
			System: "antelope", Cycles: 30, Stochastic: true,
			Operator:    [][]float64{{0.8, 0.1}, {0.2, 0.9}},
			Initial:     []float64{1, 0},
			Labels:      []string{"forest", "plains"},
			Display:     DisplayConfig{Round: true, Places: 3},
			Convergence: ConvergenceConfig{Tolerance: DefaultTolerance, Window: DefaultWindow},
		},
	},
	"tiger": {
		"resting": {
			System: "tiger", Cycles: 20, Stochastic: true,
			Operator:    [][]float64{{0.5, 0.4, 0.6}, {0.2, 0.2, 0.3}, {0.3, 0.4, 0.1}},
			Initial:     []float64{1, 0, 0},
			Labels:      []string{"sleep", "hunt", "eat"},
			Display:     DisplayConfig{Round: true, Places: 3},
			Convergence: ConvergenceConfig{Tolerance: DefaultTolerance, Window: DefaultWindow},
		},
		"uniform": {
			System: "tiger", Cycles: 20, Stochastic: true,
			Operator:    [][]float64{{0.5, 0.4, 0.6}, {0.2, 0.2, 0.3}, {0.3, 0.4, 0.1}},
			Initial:     []float64{1.0 / 3, 1.0 / 3, 1.0 / 3},
			Labels:      []string{"sleep", "hunt", "eat"},
			Display:     DisplayConfig{Round: true, Places: 3},
			Convergence: ConvergenceConfig{Tolerance: DefaultTolerance, Window: DefaultWindow},
		},
	},
	"population": {
		"growth": {
			System: "population", Cycles: 25,
			Operator: [][]float64{{0, 1.5}, {0.5, 0.9}},
			Initial:  []float64{10, 10},
			Labels:   []string{"juvenile", "adult"},
			Display:  DisplayConfig{Round: true, Places: 2},
		},
		"decline": {
			System: "population", Cycles: 25,
			Operator:    [][]float64{{0, 0.8}, {0.4, 0.6}},
			Initial:     []float64{10, 10},
			Labels:      []string{"juvenile", "adult"},
			Display:     DisplayConfig{Round: true, Places: 2},
			Convergence: ConvergenceConfig{Tolerance: 1e-2, Window: DefaultWindow},
		},
	},
	"rotation": {
		"quarter": {
			System: "rotation", Cycles: 8,
			Operator: [][]float64{{0, -1}, {1, 0}},
			Initial:  []float64{1, 0},
			Display:  DisplayConfig{Round: true, Places: 3},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(system, preset string) *Config {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	cfg, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(system string) []string {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListSystems() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SPDX-License-Identifier: MIT

package config

import "sort"

// Presets are named sample matrices selectable with --preset.
var Presets = map[string][][]float32{
	"sample": {
		{1, 3, 6},
		{1, 2, 5},
		{2, 9, 4},
	},
	"symmetric": {
		{1, 1, 1},
		{1, 2, 3},
		{1, 3, 5},
	},
	"spd": {
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	},
	// adjacency of two triangles 0-1-2 and 3-4-5 bridged by 2-3
	"barbell": {
		{0, 1, 1, 0, 0, 0},
		{1, 0, 1, 0, 0, 0},
		{1, 1, 0, 1, 0, 0},
		{0, 0, 1, 0, 1, 1},
		{0, 0, 0, 1, 0, 1},
		{0, 0, 0, 1, 1, 0},
	},
}

// GetPreset returns a config for the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	rows, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Name = name
	cfg.Matrix = cloneRows(rows)

	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseMatrix reads rows separated by ';' and values by ','.
// Row lengths are validated later by matrix.NewDenseRows.
func parseMatrix(s string) ([][]float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("--matrix: empty")
	}
	var rows [][]float32
	for i, line := range strings.Split(s, ";") {
		fields := strings.Split(line, ",")
		row := make([]float32, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
			if err != nil {
				return nil, fmt.Errorf("--matrix: row %d: %w", i, err)
			}
			row = append(row, float32(v))
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// cmd/headless/script.go
package main

import (
	"fmt"
	"strconv"
	"strings"

	"jungle-defense/pkg/grid"
)

// placement is one scripted opening move.
type placement struct {
	Kind string
	Cell grid.Cell
}

// parsePlacements reads "kind@col,row" items separated by semicolons,
// e.g. "tree@1,3;prod_monkey@2,3".
func parsePlacements(s string) ([]placement, error) {
	var out []placement
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		kind, at, ok := strings.Cut(item, "@")
		if !ok || kind == "" {
			return nil, fmt.Errorf("placement %q: want kind@col,row", item)
		}
		colStr, rowStr, ok := strings.Cut(at, ",")
		if !ok {
			return nil, fmt.Errorf("placement %q: want kind@col,row", item)
		}
		col, err := strconv.Atoi(strings.TrimSpace(colStr))
		if err != nil {
			return nil, fmt.Errorf("placement %q: column: %w", item, err)
		}
		row, err := strconv.Atoi(strings.TrimSpace(rowStr))
		if err != nil {
			return nil, fmt.Errorf("placement %q: row: %w", item, err)
		}
		out = append(out, placement{Kind: strings.TrimSpace(kind), Cell: grid.Cell{Col: col, Row: row}})
	}
	return out, nil
}

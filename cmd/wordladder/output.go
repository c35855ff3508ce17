package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordladder/internal/config"
)

// writePaths renders ladders in the requested format.
func writePaths(w io.Writer, format string, paths [][]string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(paths)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(paths); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, p := range paths {
			if _, err := fmt.Fprintln(w, formatBraces(p)); err != nil {
				return err
			}
		}
		return nil
	}
}

// formatBraces renders one ladder as {a, b, c}.
func formatBraces(path []string) string {
	return "{" + strings.Join(path, ", ") + "}"
}

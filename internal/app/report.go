package app

import (
	"encoding/json"
	"fmt"
	"strings"
)

// reportEntry is the JSON shape of one code group.
type reportEntry struct {
	Code   string   `json:"code"`
	Type   string   `json:"type"`
	Legacy []string `json:"legacy,omitempty"`
}

// report writes the code groups to the application's output writer, as
// human-readable text or as a JSON array.
func (a *App) report(groups [][]string) error {
	entries := make([]reportEntry, 0, len(groups))
	for _, group := range groups {
		// group[0] is always the active code; resolve it for the type name.
		typeName, err := a.registry.Resolve(group[0])
		if err != nil {
			return err
		}
		entries = append(entries, reportEntry{
			Code:   group[0],
			Type:   typeName,
			Legacy: group[1:],
		})
	}

	if a.config.Output == "json" {
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, e := range entries {
		if len(e.Legacy) > 0 {
			fmt.Fprintf(a.outW, "%s  (%s)  legacy: %s\n", e.Code, e.Type, strings.Join(e.Legacy, ", "))
		} else {
			fmt.Fprintf(a.outW, "%s  (%s)\n", e.Code, e.Type)
		}
	}
	return nil
}

// internal/output/stats.go

// Package output turns run statistics into serialized reports. Presentation
// knowledge lives here; the core stays domain-only and JSON goes through
// pkg/api for a stable wire format.
package output

import (
	"fmt"
	"io"

	"guniq-core/stats"
	"guniq/internal/jsonutil"
	"guniq/internal/pretty"
	"guniq/pkg/api"
)

// Formats accepted for the statistics report.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ToAPIStats converts run counters to the stable wire schema (v1).
func ToAPIStats(st stats.Stats) api.StatsV1 {
	return api.StatsV1{
		Total:      st.Total(),
		Unique:     st.Unique(),
		Duplicates: st.Duplicates(),
		Bytes:      st.Bytes(),
		DupRate:    st.DupRate(),
	}
}

// WriteStats renders the report in the requested format.
func WriteStats(w io.Writer, format string, st stats.Stats) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, pretty.RenderStats(st, pretty.Options{ShowBytes: true}))
		return err
	case FormatJSON:
		return jsonutil.EncodePretty(w, ToAPIStats(st))
	default:
		return fmt.Errorf("unsupported output %q", format)
	}
}

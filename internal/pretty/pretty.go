// internal/pretty/pretty.go

// Package pretty renders the human-readable statistics report for a run
// using plain fmt alignment.
package pretty

import (
	"fmt"
	"strings"

	"guniq-core/stats"
)

// Options control the report layout.
type Options struct {
	// ValueWidth is the total width of a row before values overflow it.
	// If <= 0, the default is used.
	ValueWidth int
	// ShowBytes adds the input-volume row.
	ShowBytes bool
}

// DefaultOptions matches the classic terminal look.
var DefaultOptions = Options{ValueWidth: 28}

const labelWidth = 14

// GroupDigits formats n with comma separators: 1234567 → "1,234,567".
func GroupDigits(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// RenderStats returns the aligned multi-line report for one run.
func RenderStats(st stats.Stats, opt Options) string {
	w := opt.ValueWidth
	if w <= 0 {
		w = DefaultOptions.ValueWidth
	}
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%-*s%*s\n", labelWidth, label+":", w-labelWidth, value)
	}
	row("Total Count", GroupDigits(st.Total()))
	row("Unique Count", GroupDigits(st.Unique()))
	row("Dup Count", GroupDigits(st.Duplicates()))
	if opt.ShowBytes {
		row("Input Bytes", GroupDigits(st.Bytes()))
	}
	row("Dup Rate", fmt.Sprintf("%.2f%%", st.DupRate()))
	return b.String()
}

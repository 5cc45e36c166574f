// pkg/api/stats_v1.go
package api

// StatsV1 is the stable JSON schema for the statistics report. Keep fields,
// names, and types stable. Add new fields only with ",omitempty".
type StatsV1 struct {
	Total      uint64  `json:"total"`
	Unique     uint64  `json:"unique"`
	Duplicates uint64  `json:"duplicates"`
	Bytes      uint64  `json:"bytes,omitempty"`
	DupRate    float64 `json:"dup_rate"`
}

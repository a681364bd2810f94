package shared

// UpdateCounts mirrors the driver's matched/modified pair so handlers can
// echo update results without leaking driver types.
type UpdateCounts struct {
	Matched  int64 `json:"matched_count"`
	Modified int64 `json:"modified_count"`
}

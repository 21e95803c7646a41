package report

import "strings"

// NormalizeClientID canonicalizes a raw client identifier. The export
// carries the same client as either "HWB123" or the zero-padded
// "HWB0000123"; both forms reduce to "123". Values without the prefix pass
// through unchanged, so an empty field stays empty and is rejected later by
// the eligibility filter.
func NormalizeClientID(raw string) string {
	if !strings.HasPrefix(raw, "HWB") {
		return raw
	}
	raw = strings.ReplaceAll(raw, "HWB0000", "")
	return strings.ReplaceAll(raw, "HWB", "")
}

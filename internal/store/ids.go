package store

import "github.com/samber/lo"

// appendUnique adds id to ids unless already present, always returning a
// fresh slice so previous snapshots stay untouched.
func appendUnique(ids []string, id string) []string {
	if lo.Contains(ids, id) {
		return ids
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, id)
}

// ABOUTME: Tag helpers for categorizing notes.
// ABOUTME: Merges tag lists without duplicates.

package models

import "strings"

// MergeTags appends the trimmed, non-empty tags of extra that are not already
// present in base. Order of first appearance is kept.
func MergeTags(base []string, extra ...string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, t := range list {
			t = strings.TrimSpace(t)
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

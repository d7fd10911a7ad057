// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"strings"
	"unicode"

	"github.com/mlukac/citetab/internal/dataset"
	"github.com/mlukac/citetab/pkg/types"
)

// Overlap finds articles that appear in more than one dataset, matched
// by normalized-title token overlap at or above threshold. The record
// from the earlier dataset is kept; results are deduplicated by
// normalized title and ordered by first appearance.
func Overlap(datasets []dataset.Dataset, threshold float64) []types.Record {
	var common []types.Record
	seen := make(map[string]bool)

	for i := 0; i < len(datasets)-1; i++ {
		for _, rec := range datasets[i].Records {
			title := normalizeTitle(rec.Title)
			if title == "" || seen[title] {
				continue
			}
			if matchesAny(title, datasets[i+1:], threshold) {
				seen[title] = true
				common = append(common, rec)
			}
		}
	}
	return common
}

func matchesAny(title string, datasets []dataset.Dataset, threshold float64) bool {
	for _, ds := range datasets {
		for _, rec := range ds.Records {
			other := normalizeTitle(rec.Title)
			if other == "" {
				continue
			}
			if titleSimilarity(title, other) >= threshold {
				return true
			}
		}
	}
	return false
}

// titleSimilarity is the fraction of a's tokens also present in b.
// Both arguments must already be normalized.
func titleSimilarity(a, b string) float64 {
	tokensA := strings.Fields(a)
	if len(tokensA) == 0 {
		return 0
	}
	tokensB := make(map[string]bool)
	for _, tok := range strings.Fields(b) {
		tokensB[tok] = true
	}

	shared := 0
	counted := make(map[string]bool)
	for _, tok := range tokensA {
		if counted[tok] {
			continue
		}
		counted[tok] = true
		if tokensB[tok] {
			shared++
		}
	}
	return float64(shared) / float64(len(counted))
}

// normalizeTitle returns a lowercased, punctuation-stripped version of
// the title with whitespace collapsed.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

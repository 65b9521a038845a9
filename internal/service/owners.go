package service

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/omarshaarawi/bestball/internal/models"
)

const ownerMatchThreshold = 0.6

// FindOwner resolves a loosely typed team name. An exact case-insensitive
// match wins, then the closest name by Levenshtein similarity above the
// threshold, then the closest name containing the query as a subsequence.
func FindOwner(owners []models.Owner, name string) (models.Owner, error) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return "", fmt.Errorf("empty name: %w", models.ErrOwnerNotFound)
	}

	targets := make([]string, len(owners))
	for i, o := range owners {
		targets[i] = string(o)
		if strings.EqualFold(string(o), query) {
			return o, nil
		}
	}

	best := -1
	bestSimilarity := 0.0
	for i, target := range targets {
		candidate := strings.ToLower(target)
		distance := fuzzy.LevenshteinDistance(query, candidate)
		maxLen := float64(max(len(query), len(candidate)))
		similarity := 1 - float64(distance)/maxLen
		if similarity > ownerMatchThreshold && similarity > bestSimilarity {
			best = i
			bestSimilarity = similarity
		}
	}
	if best >= 0 {
		return owners[best], nil
	}

	ranks := fuzzy.RankFindFold(query, targets)
	if len(ranks) > 0 {
		closest := ranks[0]
		for _, r := range ranks[1:] {
			if r.Distance < closest.Distance {
				closest = r
			}
		}
		return owners[closest.OriginalIndex], nil
	}

	return "", fmt.Errorf("%q: %w", name, models.ErrOwnerNotFound)
}

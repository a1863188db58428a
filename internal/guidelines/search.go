package guidelines

import (
	"regexp"
	"sort"
	"strings"
)

// Match is a scored guideline hit.
type Match struct {
	Category string `json:"category"`
	Score    int    `json:"relevance_score"`
	Content  string `json:"-"`
}

// stopWords are Portuguese filler words ignored when scoring a query.
var stopWords = map[string]bool{
	"o": true, "a": true, "os": true, "as": true, "um": true, "uma": true,
	"de": true, "do": true, "da": true, "em": true, "para": true, "com": true,
	"no": true, "na": true, "que": true, "esta": true, "está": true,
	"procurando": true, "cliente": true,
}

var wordRe = regexp.MustCompile(`\pL+`)

const maxMatches = 2

// Search ranks guideline categories against a free-text query using plain
// keyword scoring: category matches weigh most, content occurrences are
// capped so a long document cannot drown out a focused one, and queries
// whose terms all land in one category get a completeness bonus.
func Search(query string) []Match {
	queryClean := strings.ToLower(strings.TrimSpace(query))

	var terms []string
	for _, t := range wordRe.FindAllString(queryClean, -1) {
		if !stopWords[t] && len([]rune(t)) > 2 {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		terms = wordRe.FindAllString(queryClean, -1)
	}

	var matches []Match
	for category, content := range Guidelines {
		score := 0
		contentLower := strings.ToLower(content)
		catLower := strings.ToLower(category)

		if strings.Contains(catLower, queryClean) || strings.Contains(queryClean, catLower) {
			score += 20
		}

		matched := 0
		for _, term := range terms {
			if strings.Contains(catLower, term) {
				score += 15
				matched++
			}
			if occurrences := strings.Count(contentLower, term); occurrences > 0 {
				if occurrences > 5 {
					occurrences = 5
				}
				score += occurrences * 2
				matched++
			}
		}
		if len(terms) > 1 && matched >= len(terms) {
			score += 10
		}

		if score > 0 {
			matches = append(matches, Match{Category: category, Score: score, Content: content})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Category < matches[j].Category
	})

	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}

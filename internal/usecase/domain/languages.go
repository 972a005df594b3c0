package domain

import (
	"math"
	"sort"

	"github.com/Koushal55/GitReceipt/internal/entities"
)

const maxLanguageShares = 3

// RankLanguages tallies primary languages, keeps the top three by count and
// converts counts to integer percentages of the total tally. Ranking ties
// keep first-encounter order. After rounding, any discrepancy from 100 is
// added to the top-ranked entry so a non-empty result always sums to 100.
func RankLanguages(repos []entities.RepositorySummary) []entities.LanguageShare {
	counts := make(map[string]int)
	var order []string
	total := 0

	for _, repo := range repos {
		lang := repo.PrimaryLanguage
		if lang == "" {
			continue
		}
		if _, seen := counts[lang]; !seen {
			order = append(order, lang)
		}
		counts[lang]++
		total++
	}
	if total == 0 {
		return nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxLanguageShares {
		order = order[:maxLanguageShares]
	}

	shares := make([]entities.LanguageShare, 0, len(order))
	sum := 0
	for _, lang := range order {
		pct := int(math.Round(float64(counts[lang]) / float64(total) * 100))
		sum += pct
		shares = append(shares, entities.LanguageShare{Language: lang, Percent: pct})
	}

	if sum != 100 {
		shares[0].Percent += 100 - sum
	}
	return shares
}

// TopLanguage returns the highest-ranked language or the Unknown sentinel,
// never an empty string.
func TopLanguage(shares []entities.LanguageShare) string {
	if len(shares) == 0 {
		return entities.LanguageUnknown
	}
	return shares[0].Language
}

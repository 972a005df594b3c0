package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Koushal55/GitReceipt/internal/entities"
)

const (
	effortBarBlocks = 15
	receiptIDSpan   = 0xFFFFF
	terminalIDSpan  = 1000
	dateRangeDays   = 7
)

// footerPhrases is the fixed pool of closing lines.
var footerPhrases = []string{
	"THANK YOU FOR CODING.",
	"PUSH RESPONSIBLY.",
	"COMMIT WISELY.",
	"MERGE CAREFULLY.",
	"MAY YOUR BUILDS PASS.",
	"NO BUGS ON PRODUCTION.",
	"IT WORKS ON MY MACHINE.",
	"LGTM.",
	"SHIP IT.",
	"APPROVED.",
}

// EffortBar renders the fifteen-block meter printed under the effort score.
func EffortBar(score int) string {
	filled := int(math.Round(float64(score) / 100 * effortBarBlocks))
	return strings.Repeat("█", filled) + strings.Repeat("░", effortBarBlocks-filled)
}

// AssembleReceipt composes the immutable receipt document. The receipt id,
// terminal id, footer phrase and timestamps are presentation fields drawn
// fresh per call; everything else is carried over unchanged.
func AssembleReceipt(
	identity entities.Identity,
	stats entities.DerivedStatistics,
	shares []entities.LanguageShare,
	items []entities.LineItem,
	surcharge entities.Surcharge,
	style entities.StyleLabel,
	effort int,
	rng Rand,
	now time.Time,
) entities.ReceiptDocument {
	subtotal := 0.0
	for _, item := range items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}

	total := subtotal
	if surcharge.IsPercentage {
		total += subtotal * surcharge.Amount / 100
	} else {
		total += surcharge.Amount
	}

	start := now.AddDate(0, 0, -dateRangeDays)

	return entities.ReceiptDocument{
		User: identity,
		Stats: entities.StatsSummary{
			Commits:      stats.Commits,
			PullRequests: stats.PullRequestsOpened,
			NewRepos:     stats.ReposCreated,
			IssuesOpened: stats.IssuesOpened,
			TopLanguage:  TopLanguage(shares),
			ActiveDays:   stats.ActiveDayCount,
		},
		Items:             items,
		Surcharge:         surcharge,
		LanguageBreakdown: shares,
		CodingStyle:       style,
		EffortScore:       effort,
		EffortBar:         EffortBar(effort),
		Subtotal:          roundCents(subtotal),
		Total:             roundCents(total),
		Footer:            footerPhrases[rng.Intn(len(footerPhrases))],
		ReceiptID:         fmt.Sprintf("#GH-%05X", rng.Intn(receiptIDSpan)),
		TerminalID:        fmt.Sprintf("TERM-%04d", rng.Intn(terminalIDSpan)),
		DateRange:         fmt.Sprintf("%s - %s", strings.ToUpper(start.Format("Jan 2")), strings.ToUpper(now.Format("Jan 2"))),
		Date:              now.Format("1/2/2006"),
		Time:              now.Format("3:04:05 PM"),
	}
}

// roundCents rounds to two decimals at the presentation boundary only;
// intermediate math keeps full precision.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

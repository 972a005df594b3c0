package domain

import (
	"testing"
	"time"

	"github.com/Koushal55/GitReceipt/internal/entities"

	"github.com/stretchr/testify/require"
)

// fixedRand pins presentation randomness in tests.
type fixedRand struct{ n int }

func (f fixedRand) Intn(n int) int { return f.n % n }

func testIdentity() entities.Identity {
	return entities.Identity{
		Login:       "octocat",
		DisplayName: "The Octocat",
		AvatarURL:   "https://example.test/octocat.png",
		ProfileURL:  "https://example.test/octocat",
	}
}

func TestAssembleReceiptTotals(t *testing.T) {
	items := []entities.LineItem{
		{Quantity: 10, Description: "Commits Pushed", UnitPrice: 2.00},
		{Quantity: 2, Description: "Pull Requests", UnitPrice: 5.00},
	}
	now := time.Date(2025, 10, 2, 14, 30, 5, 0, time.UTC)

	doc := AssembleReceipt(testIdentity(), entities.DerivedStatistics{Commits: 10}, nil,
		items, entities.Surcharge{Label: "Lurker Fee", Amount: 42.00},
		entities.StyleGopher, 30, fixedRand{}, now)

	require.Equal(t, 30.00, doc.Subtotal)
	require.Equal(t, 72.00, doc.Total)
}

func TestAssembleReceiptPercentageSurcharge(t *testing.T) {
	items := []entities.LineItem{
		{Quantity: 100, Description: "Commits Pushed", UnitPrice: 1.00},
	}
	now := time.Date(2025, 10, 2, 14, 30, 5, 0, time.UTC)

	doc := AssembleReceipt(testIdentity(), entities.DerivedStatistics{Commits: 100}, nil,
		items, entities.Surcharge{Label: "Touch Grass Rebate", Amount: -15.00, IsPercentage: true},
		entities.StyleGopher, 100, fixedRand{}, now)

	require.Equal(t, 100.00, doc.Subtotal)
	require.Equal(t, 85.00, doc.Total, "percentage surcharge applies to the subtotal")
}

func TestAssembleReceiptPresentationFields(t *testing.T) {
	now := time.Date(2025, 10, 2, 14, 30, 5, 0, time.UTC)

	doc := AssembleReceipt(testIdentity(), entities.DerivedStatistics{}, nil,
		nil, entities.Surcharge{Label: "Lurker Fee", Amount: 42.00},
		entities.StyleGhostwareEngineer, 0, fixedRand{n: 7}, now)

	require.Equal(t, "#GH-00007", doc.ReceiptID)
	require.Equal(t, "TERM-0007", doc.TerminalID)
	require.Equal(t, footerPhrases[7], doc.Footer)
	require.Equal(t, "SEP 25 - OCT 2", doc.DateRange)
	require.Equal(t, "10/2/2025", doc.Date)
	require.Equal(t, "2:30:05 PM", doc.Time)
	require.Equal(t, entities.LanguageUnknown, doc.Stats.TopLanguage)
}

func TestAssembleReceiptSummary(t *testing.T) {
	stats := entities.DerivedStatistics{
		Commits:            12,
		PullRequestsOpened: 4,
		ReposCreated:       1,
		IssuesOpened:       2,
		ActiveDayCount:     6,
	}
	shares := []entities.LanguageShare{{Language: "Go", Percent: 100}}
	now := time.Date(2025, 10, 2, 14, 30, 5, 0, time.UTC)

	doc := AssembleReceipt(testIdentity(), stats, shares, nil,
		entities.Surcharge{Label: "Gopher Fee", Amount: 1.00},
		entities.StyleGopher, 50, fixedRand{}, now)

	require.Equal(t, entities.StatsSummary{
		Commits:      12,
		PullRequests: 4,
		NewRepos:     1,
		IssuesOpened: 2,
		TopLanguage:  "Go",
		ActiveDays:   6,
	}, doc.Stats)
	require.Equal(t, shares, doc.LanguageBreakdown)
	require.Equal(t, entities.StyleGopher, doc.CodingStyle)
}

func TestEffortBar(t *testing.T) {
	require.Equal(t, "░░░░░░░░░░░░░░░", EffortBar(0))
	require.Equal(t, "███████████████", EffortBar(100))
	require.Equal(t, "████████░░░░░░░", EffortBar(50))
}

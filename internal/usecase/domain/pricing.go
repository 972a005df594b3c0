package domain

import (
	"math"

	"github.com/Koushal55/GitReceipt/internal/entities"
)

// impostorSyndromePrice is the one constant-priced novelty item; it skips
// the quirky pricing formula.
const impostorSyndromePrice = 13.37

// quirkySuffixes are the ten fixed cent endings; one is picked per identity
// by seed mod 10 and reused for every priced item of that identity.
var quirkySuffixes = [10]float64{0.37, 0.99, 0.69, 0.88, 0.42, 0.13, 0.77, 0.21, 0.66, 0.11}

// loginSeed sums the code points of the login. Prices derive from this pure
// hash so the same identity replays the same price set across runs.
func loginSeed(login string) int {
	seed := 0
	for _, r := range login {
		seed += int(r)
	}
	return seed
}

// quirkyPrice scales the base by 0.8..1.1 from the seed, then replaces the
// fractional part with the identity's quirky suffix.
func quirkyPrice(seed int, base float64) float64 {
	fraction := float64(seed%100) / 100
	price := base * (0.8 + fraction*0.3)
	return math.Floor(price) + quirkySuffixes[seed%len(quirkySuffixes)]
}

// PriceItems builds the priced line items for an identity, dropping entries
// with zero quantity.
func PriceItems(login string, stats entities.DerivedStatistics) []entities.LineItem {
	seed := loginSeed(login)

	candidates := []entities.LineItem{
		{Quantity: stats.Commits, Description: "Commits Pushed", UnitPrice: quirkyPrice(seed, 1.8)},
		{Quantity: stats.PullRequestsOpened, Description: "Pull Requests", UnitPrice: quirkyPrice(seed, 5.0)},
		{Quantity: stats.ReposCreated, Description: "New Repos", UnitPrice: quirkyPrice(seed, 12.0)},
		{Quantity: stats.IssuesOpened, Description: "Issues Opened", UnitPrice: quirkyPrice(seed, 2.5)},
		{Quantity: stats.ActiveDayCount, Description: "Active Sessions", UnitPrice: quirkyPrice(seed, 4.0)},
		{Quantity: 1, Description: "Impostor Syndrome", UnitPrice: impostorSyndromePrice},
	}

	items := make([]entities.LineItem, 0, len(candidates))
	for _, item := range candidates {
		if item.Quantity > 0 {
			items = append(items, item)
		}
	}
	return items
}

// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/Koushal55/GitReceipt/internal/api"
	"github.com/Koushal55/GitReceipt/internal/entities"
)

// ToAPIReceipt maps the assembled receipt document to the transport model.
func ToAPIReceipt(doc entities.ReceiptDocument) api.Receipt {
	items := make([]api.ReceiptItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, api.ReceiptItem{
			Qty:         item.Quantity,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
		})
	}

	breakdown := make([]api.LanguageShare, 0, len(doc.LanguageBreakdown))
	for _, share := range doc.LanguageBreakdown {
		breakdown = append(breakdown, api.LanguageShare{
			Language: share.Language,
			Percent:  share.Percent,
		})
	}

	return api.Receipt{
		User: api.User{
			Login:     doc.User.Login,
			Name:      doc.User.DisplayName,
			AvatarUrl: doc.User.AvatarURL,
			HtmlUrl:   doc.User.ProfileURL,
		},
		Stats: api.ReceiptStats{
			Commits:      doc.Stats.Commits,
			PullRequests: doc.Stats.PullRequests,
			NewRepos:     doc.Stats.NewRepos,
			IssuesOpened: doc.Stats.IssuesOpened,
			TopLanguage:  doc.Stats.TopLanguage,
			ActiveDays:   doc.Stats.ActiveDays,
		},
		Items: items,
		Surcharge: api.ReceiptSurcharge{
			Label:        doc.Surcharge.Label,
			Amount:       doc.Surcharge.Amount,
			IsPercentage: doc.Surcharge.IsPercentage,
		},
		LanguageBreakdown: breakdown,
		CodingStyle:       string(doc.CodingStyle),
		EffortScore:       doc.EffortScore,
		EffortBar:         doc.EffortBar,
		Subtotal:          doc.Subtotal,
		Total:             doc.Total,
		Footer:            doc.Footer,
		ReceiptId:         doc.ReceiptID,
		TerminalId:        doc.TerminalID,
		DateRange:         doc.DateRange,
		Date:              doc.Date,
		Time:              doc.Time,
	}
}

// Package api contains the HTTP transport contract: DTOs, error codes and
// route registration.
package api

// ErrorResponseErrorCode enumerates machine-readable error codes.
type ErrorResponseErrorCode string

const (
	NOTFOUND          ErrorResponseErrorCode = "NOT_FOUND"
	SOURCEUNAVAILABLE ErrorResponseErrorCode = "SOURCE_UNAVAILABLE"
	INVALIDARGUMENT   ErrorResponseErrorCode = "INVALID_ARGUMENT"
	INTERNAL          ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// User carries the analyzed account's public profile.
type User struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarUrl string `json:"avatar_url"`
	HtmlUrl   string `json:"html_url"`
}

// ReceiptStats is the statistics summary block of the receipt.
type ReceiptStats struct {
	Commits      int    `json:"commits"`
	PullRequests int    `json:"pull_requests"`
	NewRepos     int    `json:"new_repos"`
	IssuesOpened int    `json:"issues_opened"`
	TopLanguage  string `json:"top_language"`
	ActiveDays   int    `json:"active_days"`
}

// ReceiptItem is one priced line of the receipt.
type ReceiptItem struct {
	Qty         int     `json:"qty"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
}

// ReceiptSurcharge is the featured fee line.
type ReceiptSurcharge struct {
	Label        string  `json:"label"`
	Amount       float64 `json:"amount"`
	IsPercentage bool    `json:"is_percentage"`
}

// LanguageShare is one entry of the language breakdown.
type LanguageShare struct {
	Language string `json:"language"`
	Percent  int    `json:"percent"`
}

// Receipt is the full receipt document returned to consumers.
type Receipt struct {
	User              User             `json:"user"`
	Stats             ReceiptStats     `json:"stats"`
	Items             []ReceiptItem    `json:"items"`
	Surcharge         ReceiptSurcharge `json:"surcharge"`
	LanguageBreakdown []LanguageShare  `json:"language_breakdown"`
	CodingStyle       string           `json:"coding_style"`
	EffortScore       int              `json:"effort_score"`
	EffortBar         string           `json:"effort_bar"`
	Subtotal          float64          `json:"subtotal"`
	Total             float64          `json:"total"`
	Footer            string           `json:"footer"`
	ReceiptId         string           `json:"receipt_id"`
	TerminalId        string           `json:"terminal_id"`
	DateRange         string           `json:"date_range"`
	Date              string           `json:"date"`
	Time              string           `json:"time"`
}

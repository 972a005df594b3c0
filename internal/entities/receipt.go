// Package entities contains core business entities.
package entities

// Identity mirrors the public profile of the analyzed account. It is sourced
// verbatim from the activity provider and never mutated.
type Identity struct {
	Login       string
	DisplayName string
	AvatarURL   string
	ProfileURL  string
}

// LanguageUnknown is reported as the top language when no repository in the
// window declares one.
const LanguageUnknown = "Unknown"

// LanguageShare is one entry of the normalized language breakdown. A
// non-empty breakdown always sums to exactly 100 percent.
type LanguageShare struct {
	Language string
	Percent  int
}

// StyleLabel is the single behavioral tag printed on the receipt.
type StyleLabel string

const (
	StyleGhostwareEngineer StyleLabel = "GHOSTWARE ENGINEER"
	StyleVampireCoder      StyleLabel = "VAMPIRE CODER"
	StyleWeekendWarrior    StyleLabel = "WEEKEND WARRIOR"
	StyleCaffeineDriven    StyleLabel = "CAFFEINE DRIVEN"
	StyleTenXEngineer      StyleLabel = "10X ENGINEER"
	StyleCodeReviewer      StyleLabel = "CODE REVIEWER"
	StyleQaInDisguise      StyleLabel = "QA IN DISGUISE"
	StyleDivCenterer       StyleLabel = "DIV CENTERER"
	StyleConsoleLogDebug   StyleLabel = "CONSOLE.LOG(DEBUG)"
	StyleSnakeCharmer      StyleLabel = "SNAKE CHARMER"
	StyleMemorySafe        StyleLabel = "MEMORY SAFE"
	StyleGopher            StyleLabel = "GOPHER"
	StyleTheArchitect      StyleLabel = "THE ARCHITECT"
	StyleFullStackOverflow StyleLabel = "FULL STACK OVERFLOW"
)

// LineItem is one priced entry on the receipt. Items with zero quantity are
// dropped before the document is assembled.
type LineItem struct {
	Quantity    int
	Description string
	UnitPrice   float64
}

// Surcharge is the single featured fee line. When IsPercentage is set the
// amount is applied to the pre-surcharge subtotal and may be negative.
type Surcharge struct {
	Label        string
	Amount       float64
	IsPercentage bool
}

// ReceiptDocument is the aggregate output of one receipt request. It is
// created once per request and never mutated after assembly.
type ReceiptDocument struct {
	User              Identity
	Stats             StatsSummary
	Items             []LineItem
	Surcharge         Surcharge
	LanguageBreakdown []LanguageShare
	CodingStyle       StyleLabel
	EffortScore       int
	EffortBar         string
	Subtotal          float64
	Total             float64
	Footer            string
	ReceiptID         string
	TerminalID        string
	DateRange         string
	Date              string
	Time              string
}

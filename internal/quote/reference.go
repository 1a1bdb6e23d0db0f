package quote

import "strings"

// ReferenceEntry holds static data for a well-known ticker. Optional fields
// are zero when not applicable; the generator synthesizes them instead.
type ReferenceEntry struct {
	BasePrice   float64
	Name        string
	Sector      string
	WeekHigh52  float64
	WeekLow52   float64
	Earnings    string // YYYY-MM-DD, empty when unknown
	MarketCap   float64
	PERatio     float64
	TargetPrice float64
	AvgVolume   float64
}

// DemoTicker is reserved: it is always served synthetically so the bot works
// with no network at all.
const DemoTicker = "DEMO"

// referenceTable is the static table of known tickers. Base prices anchor
// the synthetic generator; the display marks these as known symbols.
var referenceTable = map[string]ReferenceEntry{
	"AAPL": {BasePrice: 228.50, Name: "Apple Inc.", Sector: "Technology",
		WeekHigh52: 260.10, WeekLow52: 169.21, Earnings: "2026-10-29",
		MarketCap: 3.42e12, PERatio: 34.8, TargetPrice: 250.00, AvgVolume: 54_000_000},
	"MSFT": {BasePrice: 512.30, Name: "Microsoft Corporation", Sector: "Technology",
		WeekHigh52: 555.45, WeekLow52: 385.58, Earnings: "2026-10-28",
		MarketCap: 3.81e12, PERatio: 37.2, TargetPrice: 560.00, AvgVolume: 21_500_000},
	"GOOGL": {BasePrice: 205.80, Name: "Alphabet Inc.", Sector: "Communication Services",
		WeekHigh52: 217.23, WeekLow52: 140.53, Earnings: "2026-10-27",
		MarketCap: 2.49e12, PERatio: 22.6, TargetPrice: 225.00, AvgVolume: 33_800_000},
	"AMZN": {BasePrice: 231.40, Name: "Amazon.com, Inc.", Sector: "Consumer Cyclical",
		WeekHigh52: 242.52, WeekLow52: 151.61, Earnings: "2026-10-30",
		MarketCap: 2.45e12, PERatio: 36.1, TargetPrice: 260.00, AvgVolume: 41_200_000},
	"TSLA": {BasePrice: 348.70, Name: "Tesla, Inc.", Sector: "Consumer Cyclical",
		WeekHigh52: 488.54, WeekLow52: 212.11, Earnings: "2026-10-22",
		MarketCap: 1.12e12, PERatio: 178.3, TargetPrice: 310.00, AvgVolume: 92_600_000},
	"META": {BasePrice: 752.10, Name: "Meta Platforms, Inc.", Sector: "Communication Services",
		WeekHigh52: 796.25, WeekLow52: 479.80, Earnings: "2026-10-28",
		MarketCap: 1.89e12, PERatio: 27.9, TargetPrice: 820.00, AvgVolume: 12_400_000},
	"NVDA": {BasePrice: 178.40, Name: "NVIDIA Corporation", Sector: "Technology",
		WeekHigh52: 184.48, WeekLow52: 86.62, Earnings: "2026-11-18",
		MarketCap: 4.35e12, PERatio: 57.4, TargetPrice: 200.00, AvgVolume: 168_000_000},
	"NFLX": {BasePrice: 1205.60, Name: "Netflix, Inc.", Sector: "Communication Services",
		WeekHigh52: 1341.15, WeekLow52: 677.88, Earnings: "2026-10-16",
		MarketCap: 5.12e11, PERatio: 50.8, TargetPrice: 1350.00, AvgVolume: 2_900_000},
	"AMD": {BasePrice: 166.20, Name: "Advanced Micro Devices, Inc.", Sector: "Technology",
		WeekHigh52: 187.28, WeekLow52: 76.48, Earnings: "2026-11-04",
		MarketCap: 2.69e11, PERatio: 97.2, TargetPrice: 185.00, AvgVolume: 47_300_000},
	"INTC": {BasePrice: 24.80, Name: "Intel Corporation", Sector: "Technology",
		WeekHigh52: 27.55, WeekLow52: 17.67, Earnings: "2026-10-23",
		MarketCap: 1.08e11, TargetPrice: 22.00, AvgVolume: 79_500_000},
	"DIS": {BasePrice: 118.30, Name: "The Walt Disney Company", Sector: "Communication Services",
		WeekHigh52: 124.69, WeekLow52: 80.10, Earnings: "2026-11-12",
		MarketCap: 2.14e11, PERatio: 21.4, TargetPrice: 130.00, AvgVolume: 9_800_000},
	"JPM": {BasePrice: 298.60, Name: "JPMorgan Chase & Co.", Sector: "Financial Services",
		WeekHigh52: 312.44, WeekLow52: 200.61, Earnings: "2026-10-14",
		MarketCap: 8.21e11, PERatio: 14.9, TargetPrice: 310.00, AvgVolume: 8_700_000},
	"V": {BasePrice: 352.40, Name: "Visa Inc.", Sector: "Financial Services",
		WeekHigh52: 375.51, WeekLow52: 272.76, Earnings: "2026-10-28",
		MarketCap: 6.83e11, PERatio: 33.5, TargetPrice: 385.00, AvgVolume: 6_100_000},
	"KO": {BasePrice: 69.90, Name: "The Coca-Cola Company", Sector: "Consumer Defensive",
		WeekHigh52: 74.38, WeekLow52: 60.62, Earnings: "2026-10-21",
		MarketCap: 3.01e11, PERatio: 28.2, TargetPrice: 75.00, AvgVolume: 14_100_000},
	"SPY": {BasePrice: 645.20, Name: "SPDR S&P 500 ETF Trust", Sector: "ETF",
		WeekHigh52: 652.58, WeekLow52: 481.80, AvgVolume: 68_400_000},
	"DEMO": {BasePrice: 100.00, Name: "Demo Holdings", Sector: "Demonstration",
		AvgVolume: 10_000_000},
}

// LookupReference returns the reference entry for a ticker, case-insensitive.
func LookupReference(ticker string) (ReferenceEntry, bool) {
	e, ok := referenceTable[strings.ToUpper(ticker)]
	return e, ok
}

// IsKnownTicker reports whether the ticker exists in the reference table or
// is the reserved demo ticker.
func IsKnownTicker(ticker string) bool {
	_, ok := referenceTable[strings.ToUpper(ticker)]
	return ok
}

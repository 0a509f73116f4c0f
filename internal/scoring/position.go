package scoring

// Position factor constants.
const (
	positionVRWeight      = 0.6
	positionMCapWeight    = 0.4
	positionSpreadDivisor = 50.0
)

// PositionFactorCalculator normalizes a company's competitive standing
// into a bounded factor in [-1, 1].
type PositionFactorCalculator struct {
	cfg *EngineConfig
}

// NewPositionFactorCalculator creates a calculator over the sector
// average table in cfg.
func NewPositionFactorCalculator(cfg *EngineConfig) *PositionFactorCalculator {
	return &PositionFactorCalculator{cfg: cfg}
}

// Calculate derives the position factor from the V^R score relative to
// the sector average and the market-cap percentile. The caller guarantees
// marketCapPercentile is in [0, 1]; an unknown sector falls back to the
// neutral average 50.0.
func (p *PositionFactorCalculator) Calculate(vrScore float64, sector string, marketCapPercentile float64) float64 {
	sectorAvg := p.cfg.SectorAverageFor(sector)

	vrComponent := clamp((vrScore-sectorAvg)/positionSpreadDivisor, -1, 1)
	mcapComponent := (marketCapPercentile - 0.5) * 2.0

	factor := positionVRWeight*vrComponent + positionMCapWeight*mcapComponent
	return round2(clamp(factor, -1, 1))
}

// Market-cap band thresholds in USD, used to derive a percentile when the
// caller only has a raw market cap.
const (
	megaCapFloor  = 200_000_000_000.0
	largeCapFloor = 10_000_000_000.0
	midCapFloor   = 2_000_000_000.0
	smallCapFloor = 300_000_000.0

	megaCapBonusCeiling = 3_000_000_000_000.0
)

// MarketCapPercentile maps a raw market cap onto [0, 1] through named
// bands: mega caps land in [0.90, 1.0], large in [0.70, 0.90), mid in
// [0.50, 0.70), small in [0.30, 0.50), emerging below 0.30.
func MarketCapPercentile(marketCapUSD float64) float64 {
	switch {
	case marketCapUSD >= megaCapFloor:
		bonus := clamp(marketCapUSD/megaCapBonusCeiling, 0, 1)
		return 0.90 + bonus*0.10
	case marketCapUSD >= largeCapFloor:
		position := (marketCapUSD - largeCapFloor) / (megaCapFloor - largeCapFloor)
		return 0.70 + position*0.20
	case marketCapUSD >= midCapFloor:
		position := (marketCapUSD - midCapFloor) / (largeCapFloor - midCapFloor)
		return 0.50 + position*0.20
	case marketCapUSD >= smallCapFloor:
		position := (marketCapUSD - smallCapFloor) / (midCapFloor - smallCapFloor)
		return 0.30 + position*0.20
	default:
		return clamp(marketCapUSD/smallCapFloor, 0, 1) * 0.30
	}
}

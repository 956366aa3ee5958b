// Package status maps utilization percentages to severity bands.
package status

// Band is a three-level severity classification of a utilization
// percentage. It carries no state beyond its identity.
type Band int

const (
	Low Band = iota
	Medium
	High
)

// Classify maps a percentage to its band: p <= 50 is Low, p <= 80 is
// Medium, anything above is High.
func Classify(percent float64) Band {
	switch {
	case percent <= 50:
		return Low
	case percent <= 80:
		return Medium
	default:
		return High
	}
}

// Color returns the CSS color name the dashboard uses for the band.
func (b Band) Color() string {
	switch b {
	case Low:
		return "green"
	case Medium:
		return "orange"
	default:
		return "red"
	}
}

func (b Band) String() string {
	switch b {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	default:
		return "High"
	}
}

// ColorFor is shorthand for Classify(percent).Color(), which is what
// the report fragments actually need.
func ColorFor(percent float64) string {
	return Classify(percent).Color()
}

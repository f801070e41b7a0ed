package car

import "time"

type Season string

const (
	SeasonPeak Season = "peak"
	SeasonMid  Season = "mid"
	SeasonOff  Season = "off"
)

func (s Season) String() string {
	return string(s)
}

// SeasonOf maps a calendar day to its pricing season:
// peak Jun 1 - Sep 15, mid Sep 16 - Oct 31 and Mar 1 - May 31, off otherwise.
func SeasonOf(day time.Time) Season {
	month := day.Month()
	d := day.Day()

	switch {
	case month == time.June, month == time.July, month == time.August:
		return SeasonPeak
	case month == time.September && d <= 15:
		return SeasonPeak
	case month == time.September, month == time.October:
		return SeasonMid
	case month >= time.March && month <= time.May:
		return SeasonMid
	default:
		return SeasonOff
	}
}

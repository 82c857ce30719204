package workout

import (
	"strconv"
	"strings"
)

// ParsePace converts a pace in minutes per kilometer into a speed in
// meters per second. "4:30" means 4 min 30 s per km; a bare "5" means
// 5 minutes per km.
func ParsePace(text string) (float64, error) {
	var total float64
	if mins, secs, found := strings.Cut(text, ":"); found {
		m, errM := strconv.ParseFloat(strings.TrimSpace(mins), 64)
		s, errS := strconv.ParseFloat(strings.TrimSpace(secs), 64)
		if errM != nil || errS != nil {
			return 0, &InvalidPaceError{Text: text}
		}
		total = m*60 + s
	} else {
		m, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0, &InvalidPaceError{Text: text}
		}
		total = m * 60
	}
	if total <= 0 {
		return 0, &InvalidPaceError{Text: text}
	}
	return 1000 / total, nil
}

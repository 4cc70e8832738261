package forecast

import (
	"fmt"
	"strings"
)

// FormatForecast renders at most maxDays non-night entries in their original order.
func FormatForecast(days []DayEntry, maxDays int) string {
	blocks := make([]string, 0, max(maxDays, 0))
	for _, day := range days {
		if len(blocks) >= maxDays {
			break
		}
		if day.PeriodLabel == PeriodNight {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("\n%s:\nForecast: %s\n", day.Date, day.Text))
	}

	if len(blocks) == 0 {
		return MsgNoForecastData
	}

	return strings.Join(blocks, daySeparator)
}

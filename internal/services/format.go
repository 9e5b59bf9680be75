package services

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var koreanPrinter = message.NewPrinter(language.Korean)

// formatNumber renders an amount with thousand separators, dropping the
// fraction when it is whole ("1,460,800" rather than "1,460,800.0").
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return koreanPrinter.Sprintf("%d", int64(v))
	}
	return koreanPrinter.Sprintf("%.1f", v)
}

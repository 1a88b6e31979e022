package recurrence

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var codePattern = regexp.MustCompile(`^P(\d+)([DWMY])$`)

// Parse reads a recurrence code like "P1D" or "p2w". It reports false for
// anything that is not P<amount><unit> with a positive amount.
func Parse(code string) (Pattern, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !strings.HasPrefix(code, "P") {
		return Pattern{}, false
	}

	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return Pattern{}, false
	}

	amount, err := strconv.Atoi(m[1])
	if err != nil || amount <= 0 {
		return Pattern{}, false
	}

	return Pattern{Amount: amount, Unit: Unit(m[2])}, true
}

// Offset returns anchor moved forward by k intervals. The whole Amount*k step
// is applied in one AddDate call so month and year series do not drift.
func (p Pattern) Offset(anchor time.Time, k int) time.Time {
	n := p.Amount * k
	switch p.Unit {
	case Day:
		return anchor.AddDate(0, 0, n)
	case Week:
		return anchor.AddDate(0, 0, n*7)
	case Month:
		return anchor.AddDate(0, n, 0)
	case Year:
		return anchor.AddDate(n, 0, 0)
	}
	return anchor
}

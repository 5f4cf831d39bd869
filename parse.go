package balance

import "regexp"

// Amounts are extracted from free-form annotated text like "lunch-10" or
// "+50". An amount is a run of digits with an optional fractional part,
// preceded by its sign; whitespace between sign and digits is tolerated.

var (
	expensePattern = regexp.MustCompile(`-\s*(\d+(?:\.\d+)?)`)
	incomePattern  = regexp.MustCompile(`\+?\s*(\d+(?:\.\d+)?)`)
)

// ExpenseAmounts extracts every '-'-signed magnitude from text, unsigned and
// in order of appearance. It returns an empty slice when nothing matches.
func ExpenseAmounts(text string) []Amount {
	return collect(expensePattern, text)
}

// IncomeAmounts extracts every magnitude from text. A bare number with no
// explicit '+' counts as income too.
func IncomeAmounts(text string) []Amount {
	return collect(incomePattern, text)
}

func collect(pattern *regexp.Regexp, text string) []Amount {
	var amounts []Amount
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		a, err := ParseAmount(m[1])
		if err != nil {
			// The pattern only matches valid decimal literals.
			continue
		}
		amounts = append(amounts, a)
	}
	return amounts
}

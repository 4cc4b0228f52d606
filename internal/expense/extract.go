package expense

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownItem is returned by ExtractItem when nothing is left of the text.
const UnknownItem = "Unknown Item"

// StopWords are removed from the text when extracting the item. Matching
// is case sensitive and runs on the lowercased text.
var StopWords = []string{
	"bought", "paid", "for", "a", "an", "the", "rs", "rupees", "was", "of",
	"my", "recharged", "new", "got",
}

// amountPattern matches digits, optionally followed by a decimal point and more digits.
var amountPattern = regexp.MustCompile(`\d+\.?\d*`)

// ExtractAmount returns the first number in the text, scanning left to right.
//
// Only the first match counts, "2 items for 50" yields 2. The boolean is
// false if the text contains no number.
func ExtractAmount(text string) (float64, bool) {
	match := amountPattern.FindString(text)
	if match == "" {
		return 0, false
	}

	amount, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsInf(amount, 0) {
		return 0, false
	}

	return amount, true
}

// FormatAmount renders the amount in its shortest form: without a decimal
// point if it has no fractional part, e.g. "250" and "12.5".
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).String()
}

// ExtractItem guesses the purchased item. It removes the first occurrence of
// the amount from the lowercased text, drops the stop words and title cases
// what is left.
func ExtractItem(text string, amount float64, stopWords []string) string {
	text = strings.Replace(strings.ToLower(text), FormatAmount(amount), "", 1)

	words := slices.DeleteFunc(strings.Fields(text), func(word string) bool {
		return slices.Contains(stopWords, word)
	})

	if len(words) == 0 {
		return UnknownItem
	}

	return cases.Title(language.English).String(strings.Join(words, " "))
}

package scores

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultScore is used for any metric that cannot be located in the
// evaluation text.
const DefaultScore = 50

// ScoreSet holds the four metrics extracted from one algorithm evaluation.
// All values are in [0,100].
type ScoreSet struct {
	Reach         int
	Engagement    int
	Virality      int
	WeightedTotal int
}

// DefaultScores returns a ScoreSet with every metric at DefaultScore.
func DefaultScores() ScoreSet {
	return ScoreSet{
		Reach:         DefaultScore,
		Engagement:    DefaultScore,
		Virality:      DefaultScore,
		WeightedTotal: DefaultScore,
	}
}

var (
	reachPattern      = regexp.MustCompile(`(?i)Reach\s*Score\D*?(\d+(?:\.\d+)?)`)
	engagementPattern = regexp.MustCompile(`(?i)Engagement\s*Score\D*?(\d+(?:\.\d+)?)`)
	viralityPattern   = regexp.MustCompile(`(?i)Virality\s*Score\D*?(\d+(?:\.\d+)?)`)

	weightedTotalLine = regexp.MustCompile(`(?i)Weighted\s*Total[^\n]+`)
	outOfHundred      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*100`)
	anyNumber         = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// Extract parses the algorithm simulator's free-text evaluation into a
// ScoreSet. It never fails: any metric it cannot locate keeps DefaultScore.
//
// The model is not schema-constrained, so the weighted-total line varies
// between a bare result, an "N/100" rendering, and a full expanded
// calculation. The lookup is tiered from most to least specific:
//
//  1. the first "N/100" on the line
//  2. the last number after the line's last "=" (final result of an
//     inline calculation)
//  3. the first number anywhere on the line
//
// Fractional scores round half away from zero (69.25 -> 69, 61.5 -> 62).
func Extract(evaluation string) ScoreSet {
	set := DefaultScores()

	// Strip markdown bold so "**65**" and "**69.25/100**" match like
	// their plain forms.
	clean := strings.ReplaceAll(evaluation, "**", "")

	// Reach/engagement/virality lines are simple: take the first number
	// after the label.
	if m := reachPattern.FindStringSubmatch(clean); m != nil {
		set.Reach = clampScore(m[1])
	}
	if m := engagementPattern.FindStringSubmatch(clean); m != nil {
		set.Engagement = clampScore(m[1])
	}
	if m := viralityPattern.FindStringSubmatch(clean); m != nil {
		set.Virality = clampScore(m[1])
	}

	if line := weightedTotalLine.FindString(clean); line != "" {
		set.WeightedTotal = extractWeightedTotal(line)
	}

	return set
}

func extractWeightedTotal(line string) int {
	if m := outOfHundred.FindStringSubmatch(line); m != nil {
		return clampScore(m[1])
	}

	if idx := strings.LastIndex(line, "="); idx != -1 {
		if nums := anyNumber.FindAllString(line[idx:], -1); len(nums) > 0 {
			return clampScore(nums[len(nums)-1])
		}
		return DefaultScore
	}

	if num := anyNumber.FindString(line); num != "" {
		return clampScore(num)
	}

	return DefaultScore
}

// clampScore rounds a decimal string half away from zero and clamps the
// result to [0,100]. The patterns only capture digit runs, so parsing
// cannot fail in practice.
func clampScore(raw string) int {
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return DefaultScore
	}

	score := int(math.Round(val))
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

package compliance

import "github.com/HerbHall/opticode/pkg/models"

// rule resolves a code to a label, reporting ok=false when it does not apply.
type rule struct {
	match models.Match
	apply func(code uint8) (string, bool)
}

// exact looks the code up in table.
func exact(table map[uint8]string) rule {
	return rule{
		match: models.MatchExact,
		apply: func(code uint8) (string, bool) {
			label, ok := table[code]
			return label, ok
		},
	}
}

// within labels codes in the half-open range [lo, hi). Bounds are ints so
// that hi may be 0x100.
func within(lo, hi int, label string) rule {
	return rule{
		match: models.MatchRange,
		apply: func(code uint8) (string, bool) {
			c := int(code)
			return label, lo <= c && c < hi
		},
	}
}

// resolve evaluates rules top-down; the first rule that applies wins.
// When none applies the code gets the fallback label.
func resolve(code uint8, rules []rule, fallback string) (string, models.Match) {
	for _, r := range rules {
		if label, ok := r.apply(code); ok {
			return label, r.match
		}
	}
	return fallback, models.MatchUnknown
}

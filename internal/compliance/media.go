package compliance

import (
	"strings"

	"github.com/HerbHall/opticode/pkg/models"
)

// MediaTable is the module media lookup chosen for one module type.
type MediaTable struct {
	Kind  models.MediaKind
	rules []rule
}

// SingleMode reports whether the single-mode fallback ranges apply.
func (t MediaTable) SingleMode() bool { return t.Kind == models.MediaSingleMode }

// Resolve returns the label for a module media byte.
func (t MediaTable) Resolve(code uint8) (string, models.Match) {
	return resolve(code, t.rules, LabelUnknownMedia)
}

var (
	singleModeTable = MediaTable{
		Kind: models.MediaSingleMode,
		rules: []rule{
			exact(smfMedia),
			within(0x35, 0x37, LabelReserved),
			within(0x58, 0xBF, LabelReserved),
			within(0xC0, 0xFF, LabelVendorSpecific),
		},
	}

	multiModeRanges = []rule{
		within(0x21, 0xBF, LabelReserved),
		within(0xC0, 0xFF, LabelVendorSpecific),
	}

	multiModeTable = MediaTable{
		Kind:  models.MediaMultiMode,
		rules: append([]rule{exact(mmfMedia)}, multiModeRanges...),
	}

	// Copper, active cable and BASE-T modules have no media table. Their
	// media bytes still go through the multi-mode ranges.
	noMediaTable = MediaTable{
		Kind:  models.MediaNone,
		rules: multiModeRanges,
	}
)

// SelectMediaTable picks the media table for a resolved module-type label.
// "SMF" is checked before "MMF".
func SelectMediaTable(moduleType string) MediaTable {
	switch {
	case strings.Contains(moduleType, "SMF"):
		return singleModeTable
	case strings.Contains(moduleType, "MMF"):
		return multiModeTable
	default:
		return noMediaTable
	}
}

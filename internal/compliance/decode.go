// Package compliance decodes transceiver optical compliance codes into
// module type, host electrical interface, module media interface and lane
// counts.
//
// A compliance code is a module-type byte followed by zero or more 4-byte
// lane groups, written as hex with optional ':' separators. Codes that are
// not individually tabled resolve to Reserved, Custom, Vendor Specific or
// Unknown labels instead of failing; only input that is not whole hex bytes
// is rejected with ErrMalformedInput.
//
// All functions are pure and safe for concurrent use.
package compliance

import "github.com/HerbHall/opticode/pkg/models"

// Decode parses code and resolves every field.
func Decode(code string) (models.TransceiverReport, error) {
	seq, err := Parse(code)
	if err != nil {
		return models.TransceiverReport{}, err
	}
	return DecodeSequence(seq), nil
}

// DecodeSequence resolves an already parsed sequence. Lane groups keep
// their input order.
func DecodeSequence(seq Sequence) models.TransceiverReport {
	moduleType, match := ResolveModuleType(seq.ModuleType)
	media := SelectMediaTable(moduleType)

	groups := make([]models.LaneGroup, 0, len(seq.Groups))
	for _, g := range seq.Groups {
		groups = append(groups, DecodeLaneGroup(g, media))
	}

	return models.TransceiverReport{
		ModuleTypeCode:  seq.ModuleType,
		ModuleType:      moduleType,
		ModuleTypeMatch: match,
		MediaTable:      media.Kind,
		LaneGroups:      groups,
	}
}

package compliance

import "github.com/HerbHall/opticode/pkg/models"

// Fallback labels for codes that are not individually tabled.
const (
	LabelCustom            = "Custom"
	LabelReserved          = "Reserved"
	LabelVendorSpecific    = "Vendor Specific/Custom"
	LabelUnresolvedModule  = "Could not resolve Module Type"
	LabelUnknownHost       = "Unknown Host Electrical Byte"
	LabelUnknownMedia      = "Unknown Module Media Byte"
	LabelInvalidHostLanes  = "Invalid Host Lane Count"
	LabelInvalidMediaLanes = "Invalid Media Lane Count"
)

// moduleTypeRules must keep the exact lookup first: 0xC0 and 0xFF are
// tabled but also fall inside the Reserved range.
var moduleTypeRules = []rule{
	exact(moduleTypes),
	within(0x06, 0x90, LabelCustom),
	within(0x90, 0x100, LabelReserved),
}

// ResolveModuleType returns the label for a module-type byte and how it
// was matched.
func ResolveModuleType(code uint8) (string, models.Match) {
	return resolve(code, moduleTypeRules, LabelUnresolvedModule)
}

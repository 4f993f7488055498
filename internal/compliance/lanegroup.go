package compliance

import (
	"encoding/hex"

	"github.com/HerbHall/opticode/pkg/models"
)

var hostElectricalRules = []rule{exact(hostElectrical)}

// ResolveHostElectrical returns the label for a host electrical interface byte.
func ResolveHostElectrical(code uint8) (string, models.Match) {
	return resolve(code, hostElectricalRules, LabelUnknownHost)
}

// laneCount turns a nibble into a lane count, or into marker when the
// nibble exceeds models.MaxLaneCount.
func laneCount(nibble uint8, marker string) models.LaneCount {
	if nibble > models.MaxLaneCount {
		return models.InvalidLaneCount(marker)
	}
	return models.NewLaneCount(nibble)
}

// DecodeLaneGroup decodes one 4-byte lane group:
//
//	byte 0     host electrical interface code
//	byte 1     module media interface code, looked up in media
//	byte 2     host lane count (high nibble), media lane count (low nibble)
//	byte 3     indicator bits, passed through
func DecodeLaneGroup(group [LaneGroupSize]byte, media MediaTable) models.LaneGroup {
	host, hostMatch := ResolveHostElectrical(group[0])
	medium, mediaMatch := media.Resolve(group[1])

	return models.LaneGroup{
		Raw:                 hex.EncodeToString(group[:]),
		HostElectricalCode:  group[0],
		HostElectrical:      host,
		HostElectricalMatch: hostMatch,
		ModuleMediaCode:     group[1],
		ModuleMedia:         medium,
		ModuleMediaMatch:    mediaMatch,
		HostLanes:           laneCount(group[2]>>4, LabelInvalidHostLanes),
		MediaLanes:          laneCount(group[2]&0x0F, LabelInvalidMediaLanes),
		Indicator:           models.IndicatorBits(group[3]),
	}
}

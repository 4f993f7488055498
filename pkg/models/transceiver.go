package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MaxLaneCount is the largest lane count a nibble may encode.
const MaxLaneCount = 8

// Match records how a code was turned into a label.
type Match string

const (
	MatchExact   Match = "exact"   // code found in a reference table
	MatchRange   Match = "range"   // code fell into a Reserved/Custom/Vendor range
	MatchUnknown Match = "unknown" // neither; the label is the field's unknown marker
)

// MediaKind identifies the media table selected for a module type.
type MediaKind string

const (
	MediaSingleMode MediaKind = "smf"
	MediaMultiMode  MediaKind = "mmf"
	MediaNone       MediaKind = "none"
)

// TransceiverReport is the decoded form of one optical compliance code.
type TransceiverReport struct {
	ModuleTypeCode  uint8       `json:"module_type_code" yaml:"module_type_code"`
	ModuleType      string      `json:"module_type" yaml:"module_type"`
	ModuleTypeMatch Match       `json:"module_type_match" yaml:"module_type_match"`
	MediaTable      MediaKind   `json:"media_table" yaml:"media_table"`
	LaneGroups      []LaneGroup `json:"lane_groups" yaml:"lane_groups"`
}

// LaneGroup is one decoded 4-byte host/media lane record.
type LaneGroup struct {
	Raw                 string        `json:"raw" yaml:"raw"`
	HostElectricalCode  uint8         `json:"host_electrical_code" yaml:"host_electrical_code"`
	HostElectrical      string        `json:"host_electrical" yaml:"host_electrical"`
	HostElectricalMatch Match         `json:"host_electrical_match" yaml:"host_electrical_match"`
	ModuleMediaCode     uint8         `json:"module_media_code" yaml:"module_media_code"`
	ModuleMedia         string        `json:"module_media" yaml:"module_media"`
	ModuleMediaMatch    Match         `json:"module_media_match" yaml:"module_media_match"`
	HostLanes           LaneCount     `json:"host_lanes" yaml:"host_lanes"`
	MediaLanes          LaneCount     `json:"media_lanes" yaml:"media_lanes"`
	Indicator           IndicatorBits `json:"indicator_bits" yaml:"indicator_bits"`
}

// LaneCount is either a lane count in [0, MaxLaneCount] or an invalid
// marker naming the field that could not be decoded. The zero value is a
// valid count of 0.
type LaneCount struct {
	count   uint8
	invalid string
}

// NewLaneCount returns a valid lane count. Values above MaxLaneCount are
// the caller's bug; use InvalidLaneCount for out-of-range nibbles.
func NewLaneCount(n uint8) LaneCount {
	return LaneCount{count: n}
}

// InvalidLaneCount returns a lane count carrying marker instead of a number.
func InvalidLaneCount(marker string) LaneCount {
	return LaneCount{invalid: marker}
}

// Valid reports whether c holds a numeric count.
func (c LaneCount) Valid() bool { return c.invalid == "" }

// Count returns the numeric count and whether it is valid.
func (c LaneCount) Count() (int, bool) {
	if !c.Valid() {
		return 0, false
	}
	return int(c.count), true
}

// Marker returns the invalid marker, or "" for a valid count.
func (c LaneCount) Marker() string { return c.invalid }

func (c LaneCount) String() string {
	if !c.Valid() {
		return c.invalid
	}
	return strconv.Itoa(int(c.count))
}

// MarshalJSON encodes a valid count as a number and an invalid one as its
// marker string.
func (c LaneCount) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return json.Marshal(c.invalid)
	}
	return json.Marshal(c.count)
}

// UnmarshalJSON accepts either form produced by MarshalJSON.
func (c *LaneCount) UnmarshalJSON(data []byte) error {
	var n uint8
	if err := json.Unmarshal(data, &n); err == nil {
		if n > MaxLaneCount {
			return fmt.Errorf("lane count %d out of range", n)
		}
		*c = NewLaneCount(n)
		return nil
	}
	var marker string
	if err := json.Unmarshal(data, &marker); err != nil {
		return fmt.Errorf("lane count must be a number or a marker string: %w", err)
	}
	if marker == "" {
		return fmt.Errorf("empty lane count marker")
	}
	*c = InvalidLaneCount(marker)
	return nil
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v3.
func (c LaneCount) MarshalYAML() (any, error) {
	if !c.Valid() {
		return c.invalid, nil
	}
	return int(c.count), nil
}

// IndicatorBits is the raw fourth byte of a lane group. It is carried
// through undecoded and rendered as Go-style binary text ("0b1010").
type IndicatorBits uint8

func (b IndicatorBits) String() string {
	return "0b" + strconv.FormatUint(uint64(b), 2)
}

func (b IndicatorBits) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses the "0b..." form written by MarshalText.
func (b *IndicatorBits) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) < 3 || s[:2] != "0b" {
		return fmt.Errorf("indicator bits %q: missing 0b prefix", s)
	}
	v, err := strconv.ParseUint(s[2:], 2, 8)
	if err != nil {
		return fmt.Errorf("indicator bits %q: %w", s, err)
	}
	*b = IndicatorBits(v)
	return nil
}

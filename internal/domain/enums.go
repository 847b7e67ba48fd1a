package domain

import (
	"fmt"
	"strings"
)

type ProgressStatus string

const (
	ProgressAhead   ProgressStatus = "ahead"
	ProgressBehind  ProgressStatus = "behind"
	ProgressOnTrack ProgressStatus = "on-track"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// RegionCode identifies the German federal state whose public holidays apply.
type RegionCode string

const (
	RegionBW       RegionCode = "BW"
	RegionBY       RegionCode = "BY"
	RegionBE       RegionCode = "BE"
	RegionBB       RegionCode = "BB"
	RegionHB       RegionCode = "HB"
	RegionHH       RegionCode = "HH"
	RegionHE       RegionCode = "HE"
	RegionMV       RegionCode = "MV"
	RegionNI       RegionCode = "NI"
	RegionNW       RegionCode = "NW"
	RegionRP       RegionCode = "RP"
	RegionSL       RegionCode = "SL"
	RegionSN       RegionCode = "SN"
	RegionST       RegionCode = "ST"
	RegionSH       RegionCode = "SH"
	RegionTH       RegionCode = "TH"
	RegionNational RegionCode = "NATIONAL"
)

// Regions lists all region codes in display order.
var Regions = []RegionCode{
	RegionBW, RegionBY, RegionBE, RegionBB, RegionHB, RegionHH, RegionHE, RegionMV, RegionNI,
	RegionNW, RegionRP, RegionSL, RegionSN, RegionST, RegionSH, RegionTH, RegionNational,
}

var regionNames = map[RegionCode]string{
	RegionBW:       "Baden-Württemberg",
	RegionBY:       "Bayern",
	RegionBE:       "Berlin",
	RegionBB:       "Brandenburg",
	RegionHB:       "Bremen",
	RegionHH:       "Hamburg",
	RegionHE:       "Hessen",
	RegionMV:       "Mecklenburg-Vorpommern",
	RegionNI:       "Niedersachsen",
	RegionNW:       "Nordrhein-Westfalen",
	RegionRP:       "Rheinland-Pfalz",
	RegionSL:       "Saarland",
	RegionSN:       "Sachsen",
	RegionST:       "Sachsen-Anhalt",
	RegionSH:       "Schleswig-Holstein",
	RegionTH:       "Thüringen",
	RegionNational: "Deutschlandweit",
}

// ParseRegionCode parses a region code case-insensitively.
func ParseRegionCode(s string) (RegionCode, error) {
	code := RegionCode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := regionNames[code]; !ok {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownRegion)
	}
	return code, nil
}

// Valid reports whether r is a known region code.
func (r RegionCode) Valid() bool {
	_, ok := regionNames[r]
	return ok
}

// DisplayName returns the human-readable state name.
func (r RegionCode) DisplayName() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return string(r)
}

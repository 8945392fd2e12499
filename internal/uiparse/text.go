package uiparse

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// numberSeparators are the grouping and decimal separators the client uses
// across locales.
var numberSeparators = []string{",", ".", "’", " ", "\u00a0", "\u202f"}

// ParseNumberTruncatingAfterOptionalDecimalSeparator reads the integer part
// of a number shown with any of the client's separators. A trailing group
// shorter than three characters is taken as a fraction and dropped, so
// "1,234.5" and "1 234,56" both give 1234.
func ParseNumberTruncatingAfterOptionalDecimalSeparator(text string) (int, error) {
	groups := []string{strings.TrimSpace(text)}
	for _, sep := range numberSeparators {
		var next []string
		for _, g := range groups {
			next = append(next, strings.Split(g, sep)...)
		}
		groups = next
	}
	if len(groups) > 1 && utf8.RuneCountInString(groups[len(groups)-1]) < 3 {
		groups = groups[:len(groups)-1]
	}
	integerText := strings.Join(groups, "")
	n, err := strconv.Atoi(integerText)
	if err != nil {
		return 0, parseErr("number", text, "failed to parse to integer: %s", integerText)
	}
	return n, nil
}

// DistanceUnitInMeters returns the size of a distance unit label.
func DistanceUnitInMeters(unit string) (int, bool) {
	switch strings.TrimSpace(unit) {
	case "m":
		return 1, true
	case "km":
		return 1000, true
	}
	return 0, false
}

// ParseDistanceInMeters reads texts such as "2,500 m" or "15 km".
func ParseDistanceInMeters(text string) (int, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return 0, parseErr("distance", text, "expecting at least one whitespace character separating number and unit")
	}
	unitText := tokens[len(tokens)-1]
	unit, ok := DistanceUnitInMeters(unitText)
	if !ok {
		return 0, parseErr("distance", text, "failed to parse distance unit text of '%s'", unitText)
	}
	n, err := ParseNumberTruncatingAfterOptionalDecimalSeparator(strings.Join(tokens[:len(tokens)-1], " "))
	if err != nil {
		return 0, parseErr("distance", text, "failed to parse number: %s", messageOf(err))
	}
	return n * unit, nil
}

// ParseQuantityFromDroneGroupTitle reads the count in "Drones in Bay (5)".
// A title without parentheses has no quantity.
func ParseQuantityFromDroneGroupTitle(title string) (*int, error) {
	parts := strings.Split(title, "(")
	switch len(parts) {
	case 1:
		return nil, nil
	case 2:
		inner := strings.Split(parts[1], ")")[0]
		n, err := strconv.Atoi(strings.TrimSpace(inner))
		if err != nil {
			return nil, parseErr("drone group quantity", title, "failed to parse to integer from '%s'", parts[1])
		}
		return &n, nil
	}
	return nil, parseErr("drone group quantity", title, "found unexpected number of parentheses")
}

// CapacityGauge is the fill state of an inventory container in cubic meters.
type CapacityGauge struct {
	Used     int  `yaml:"used" json:"used" msgpack:"used"`
	Maximum  *int `yaml:"maximum,omitempty" json:"maximum,omitempty" msgpack:"maximum,omitempty"`
	Selected *int `yaml:"selected,omitempty" json:"selected,omitempty" msgpack:"selected,omitempty"`
}

// ParseCapacityGaugeText reads "used/max m³" with an optional
// "(selected) " prefix.
func ParseCapacityGaugeText(text string) (CapacityGauge, error) {
	parts := strings.Split(strings.ReplaceAll(text, "m³", ""), "/")
	var before string
	var after *string
	switch len(parts) {
	case 1:
		before = parts[0]
	case 2:
		before, after = parts[0], &parts[1]
	default:
		return CapacityGauge{}, parseErr("capacity gauge", text, "unexpected number of components in capacityText '%s'", text)
	}

	var usedText string
	var selectedText *string
	beforeParts := strings.Split(strings.TrimSpace(before), ")")
	switch len(beforeParts) {
	case 1:
		usedText = beforeParts[0]
	case 2:
		usedText = beforeParts[1]
		sel := strings.ReplaceAll(beforeParts[0], "(", "")
		selectedText = &sel
	default:
		return CapacityGauge{}, parseErr("capacity gauge", text, "unexpected number of components in text before slash '%s'", before)
	}

	used, err := ParseNumberTruncatingAfterOptionalDecimalSeparator(usedText)
	if err != nil {
		return CapacityGauge{}, parseErr("capacity gauge", text, "failed to parse used number: %s", messageOf(err))
	}
	maximum, err := parseOptionalNumber(after)
	if err != nil {
		return CapacityGauge{}, parseErr("capacity gauge", text, "failed to parse maximum number: %s", messageOf(err))
	}
	selected, err := parseOptionalNumber(selectedText)
	if err != nil {
		return CapacityGauge{}, parseErr("capacity gauge", text, "failed to parse selected number: %s", messageOf(err))
	}
	return CapacityGauge{Used: used, Maximum: maximum, Selected: selected}, nil
}

// messageOf strips the What/Text framing from a nested ParseError.
func messageOf(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Msg
	}
	return err.Error()
}

func parseOptionalNumber(text *string) (*int, error) {
	if text == nil {
		return nil, nil
	}
	n, err := ParseNumberTruncatingAfterOptionalDecimalSeparator(strings.TrimSpace(*text))
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ClockTime is the in-game time shown by the neocom clock.
type ClockTime struct {
	Hour   int `yaml:"hour" json:"hour" msgpack:"hour"`
	Minute int `yaml:"minute" json:"minute" msgpack:"minute"`
}

// ParseClockText reads "HH:MM".
func ParseClockText(text string) (ClockTime, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return ClockTime{}, parseErr("clock", text, "expecting exactly two substrings separated by a colon (:)")
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ClockTime{}, parseErr("clock", text, "failed to parse hour: '%s'", parts[0])
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return ClockTime{}, parseErr("clock", text, "failed to parse minute: '%s'", parts[1])
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ParseShortcutKeys splits a tooltip shortcut such as "CTRL-F1" or
// "Alt + F3" and maps each key through keyCodes.
func ParseShortcutKeys(text string, keyCodes map[string]KeyCode) ([]KeyCode, error) {
	var keys []KeyCode
	for _, dashPart := range strings.Split(text, "-") {
		for _, keyText := range strings.Split(dashPart, "+") {
			keyText = strings.TrimSpace(keyText)
			if keyText == "" {
				continue
			}
			code, ok := keyCodes[strings.ToUpper(keyText)]
			if !ok {
				return nil, parseErr("shortcut", text, "unknown key text: '%s'", keyText)
			}
			keys = append(keys, code)
		}
	}
	return keys, nil
}

// SubstringBetweenXMLTagsAfterMarker returns the text content of the first
// tag following marker, as in `marker>content<`.
func SubstringBetweenXMLTagsAfterMarker(text, marker string) (string, bool) {
	_, afterMarker, found := strings.Cut(text, marker)
	if !found {
		return "", false
	}
	afterMarker, _, _ = strings.Cut(afterMarker, marker)
	_, content, found := strings.Cut(afterMarker, ">")
	if !found {
		return "", false
	}
	content, _, _ = strings.Cut(content, ">")
	content, _, _ = strings.Cut(content, "<")
	return content, true
}

func firstSubstringAfterMarkers(text string, markers ...string) (string, bool) {
	for _, m := range markers {
		if s, ok := SubstringBetweenXMLTagsAfterMarker(text, m); ok {
			return s, true
		}
	}
	return "", false
}

// ParseSecurityStatusPercent reads the solar system security status from
// the location info label, as a percentage.
func ParseSecurityStatusPercent(text string) (int, bool) {
	s, ok := firstSubstringAfterMarkers(text,
		"hint='Security status'",
		`hint="Security status"><color=`)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return uitree.Round(f * 100), true
}

// ParseCurrentSolarSystemName reads the solar system name from the location
// info label.
func ParseCurrentSolarSystemName(text string) (string, bool) {
	s, ok := firstSubstringAfterMarkers(text,
		"alt='Current Solar System'",
		`alt="Current Solar System"`)
	return strings.TrimSpace(s), ok
}

// ParseCurrentStationName reads the docked station from the expanded
// location info label.
func ParseCurrentStationName(text string) (string, bool) {
	s, ok := SubstringBetweenXMLTagsAfterMarker(text, "alt='Current Station'")
	return strings.TrimSpace(s), ok
}

var optimalRangePattern = regexp.MustCompile(`Optimal range (|within)\s*([\d\.]+\s*[km]+)`)

// optimalRangeText finds the range value in a module tooltip line.
func optimalRangeText(text string) (string, bool) {
	m := optimalRangePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[2]), true
}

package uiparse

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// KeyCode is a Windows virtual-key code.
type KeyCode int

const (
	VKLShift   KeyCode = 0xA0
	VKLControl KeyCode = 0xA2
	VKLMenu    KeyCode = 0xA4
	VKF1       KeyCode = 0x70
)

var keyCodeNames = map[KeyCode]string{
	VKLShift:   "LSHIFT",
	VKLControl: "LCONTROL",
	VKLMenu:    "LMENU",
}

func (k KeyCode) String() string {
	if name, ok := keyCodeNames[k]; ok {
		return name
	}
	if k >= VKF1 && k < VKF1+12 {
		return fmt.Sprintf("F%d", int(k-VKF1)+1)
	}
	return fmt.Sprintf("0x%02X", int(k))
}

// ParseKeyCode accepts a key name as printed by String, or a hex code
// such as 0x41.
func ParseKeyCode(s string) (KeyCode, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for k, name := range keyCodeNames {
		if name == upper {
			return k, nil
		}
	}
	var fn int
	if _, err := fmt.Sscanf(upper, "F%d", &fn); err == nil && fn >= 1 && fn <= 12 && upper == fmt.Sprintf("F%d", fn) {
		return VKF1 + KeyCode(fn-1), nil
	}
	var code int
	if _, err := fmt.Sscanf(upper, "0X%X", &code); err == nil {
		return KeyCode(code), nil
	}
	return 0, fmt.Errorf("unknown key code %q", s)
}

// ManeuverType is the movement the ship indication reports.
type ManeuverType string

const (
	ManeuverWarp     ManeuverType = "warp"
	ManeuverJump     ManeuverType = "jump"
	ManeuverOrbit    ManeuverType = "orbit"
	ManeuverApproach ManeuverType = "approach"
)

// ParseManeuverType accepts the lower-case names above, case-insensitively.
func ParseManeuverType(s string) (ManeuverType, error) {
	switch m := ManeuverType(strings.ToLower(strings.TrimSpace(s))); m {
	case ManeuverWarp, ManeuverJump, ManeuverOrbit, ManeuverApproach:
		return m, nil
	}
	return "", fmt.Errorf("unknown maneuver type %q", s)
}

// ManeuverPattern maps a substring of the ship indication text to a
// maneuver. Patterns are tried in order; the first match wins.
type ManeuverPattern struct {
	Pattern string
	Type    ManeuverType
}

// Config carries the tables that differ between game client localizations.
type Config struct {
	// KeyCodes maps upper-case key labels shown in tooltips to key codes.
	KeyCodes map[string]KeyCode
	// ManeuverPatterns are matched against NFC-normalized indication texts.
	ManeuverPatterns []ManeuverPattern
	// ModuleRowThreshold is the distance in pixels from the capacitor's
	// vertical center beyond which a module belongs to the top or bottom row.
	ModuleRowThreshold int
}

// DefaultConfig returns the tables for the English, German and Korean
// clients.
func DefaultConfig() Config {
	keys := map[string]KeyCode{
		"CTRL":  VKLControl,
		"STRG":  VKLControl,
		"ALT":   VKLMenu,
		"SHIFT": VKLShift,
		"UMSCH": VKLShift,
	}
	for i := 0; i < 12; i++ {
		keys[fmt.Sprintf("F%d", i+1)] = VKF1 + KeyCode(i)
	}
	return Config{
		KeyCodes: keys,
		ManeuverPatterns: []ManeuverPattern{
			{Pattern: "Warp", Type: ManeuverWarp},
			{Pattern: "Jump", Type: ManeuverJump},
			{Pattern: "Orbit", Type: ManeuverOrbit},
			{Pattern: "Approach", Type: ManeuverApproach},
			{Pattern: "워프 드라이브 가동", Type: ManeuverWarp},
			{Pattern: "점프 중", Type: ManeuverJump},
		},
		ModuleRowThreshold: 20,
	}
}

// maneuverFromTexts returns the maneuver of the first pattern found in any
// of texts.
func (c Config) maneuverFromTexts(texts []string) (ManeuverType, bool) {
	normalized := make([]string, len(texts))
	for i, t := range texts {
		normalized[i] = norm.NFC.String(t)
	}
	for _, p := range c.ManeuverPatterns {
		pattern := norm.NFC.String(p.Pattern)
		for _, t := range normalized {
			if strings.Contains(t, pattern) {
				return p.Type, true
			}
		}
	}
	return "", false
}

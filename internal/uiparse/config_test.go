package uiparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestKeyCode_String(t *testing.T) {
	assert.Equal(t, "LCONTROL", VKLControl.String())
	assert.Equal(t, "F1", VKF1.String())
	assert.Equal(t, "F12", (VKF1 + 11).String())
	assert.Equal(t, "0x41", KeyCode(0x41).String())
}

func TestParseKeyCode(t *testing.T) {
	tests := []struct {
		in   string
		want KeyCode
	}{
		{"LSHIFT", VKLShift},
		{"lcontrol", VKLControl},
		{" LMENU ", VKLMenu},
		{"F3", VKF1 + 2},
		{"f12", VKF1 + 11},
		{"0x41", 0x41},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKeyCode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "F13", "F0", "META", "F1X"} {
		_, err := ParseKeyCode(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseManeuverType(t *testing.T) {
	m, err := ParseManeuverType("Orbit")
	require.NoError(t, err)
	assert.Equal(t, ManeuverOrbit, m)

	_, err = ParseManeuverType("dock")
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 20, cfg.ModuleRowThreshold)
	assert.Len(t, cfg.KeyCodes, 17)
	assert.Equal(t, VKLControl, cfg.KeyCodes["STRG"])
	assert.Equal(t, VKF1+11, cfg.KeyCodes["F12"])
}

func TestConfig_ManeuverFromTexts(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		texts []string
		want  ManeuverType
		found bool
	}{
		{"warp", []string{"Warp Drive Active"}, ManeuverWarp, true},
		{"jump", []string{"", "Jumping"}, ManeuverJump, true},
		{"orbit", []string{"Orbiting Venture"}, ManeuverOrbit, true},
		{"approach", []string{"Approaching"}, ManeuverApproach, true},
		{"pattern order wins", []string{"Jump", "Warp"}, ManeuverWarp, true},
		{"korean", []string{"워프 드라이브 가동"}, ManeuverWarp, true},
		{"korean decomposed", []string{norm.NFD.String("점프 중")}, ManeuverJump, true},
		{"case sensitive", []string{"warping"}, "", false},
		{"none", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cfg.maneuverFromTexts(tt.texts)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_CustomManeuverPatterns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ManeuverPatterns = []ManeuverPattern{{Pattern: "Warpantrieb", Type: ManeuverWarp}}

	got, ok := cfg.maneuverFromTexts([]string{"Warpantrieb aktiv"})
	require.True(t, ok)
	assert.Equal(t, ManeuverWarp, got)

	_, ok = cfg.maneuverFromTexts([]string{"Warp Drive Active"})
	assert.False(t, ok)
}

package uiparse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberTruncatingAfterOptionalDecimalSeparator(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"12", 12},
		{"1,234", 1234},
		{"1.234", 1234},
		{"1 234", 1234},
		{"1\u00a0234", 1234},
		{"1\u202f234", 1234},
		{"1’234", 1234},
		{"1,234.5", 1234},
		{"1 234,56", 1234},
		{"1.234.567", 1234567},
		{" 42 ", 42},
		{"-7", -7},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseNumberTruncatingAfterOptionalDecimalSeparator(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumberTruncatingAfterOptionalDecimalSeparator_Invalid(t *testing.T) {
	for _, text := range []string{"", "abc", "12a", "1,2x4"} {
		_, err := ParseNumberTruncatingAfterOptionalDecimalSeparator(text)
		require.Error(t, err, text)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "number", pe.What)
		assert.Equal(t, text, pe.Text)
	}
}

func TestDistanceUnitInMeters(t *testing.T) {
	m, ok := DistanceUnitInMeters("m")
	assert.True(t, ok)
	assert.Equal(t, 1, m)

	km, ok := DistanceUnitInMeters(" km ")
	assert.True(t, ok)
	assert.Equal(t, 1000, km)

	_, ok = DistanceUnitInMeters("AU")
	assert.False(t, ok)
}

func TestParseDistanceInMeters(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"15 km", 15000},
		{"250 m", 250},
		{"2,500 m", 2500},
		{"1 234 m", 1234},
		{"12,3 km", 12000},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseDistanceInMeters(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDistanceInMeters_Invalid(t *testing.T) {
	tests := []struct {
		text string
		msg  string
	}{
		{"bogus", "failed to parse distance unit text of 'bogus'"},
		{"", "expecting at least one whitespace character"},
		{"3 AU", "failed to parse distance unit text of 'AU'"},
		{"x km", "failed to parse number"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseDistanceInMeters(tt.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseQuantityFromDroneGroupTitle(t *testing.T) {
	q, err := ParseQuantityFromDroneGroupTitle("Drones in Bay (5)")
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, 5, *q)

	q, err = ParseQuantityFromDroneGroupTitle("Drones in Bay")
	require.NoError(t, err)
	assert.Nil(t, q)

	_, err = ParseQuantityFromDroneGroupTitle("Drones in Bay (five)")
	assert.Error(t, err)

	_, err = ParseQuantityFromDroneGroupTitle("Drones (1) (2)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected number of parentheses")
}

func TestParseCapacityGaugeText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want CapacityGauge
	}{
		{
			name: "used only",
			text: "120 m³",
			want: CapacityGauge{Used: 120},
		},
		{
			name: "used and maximum",
			text: "1,234.5/5,000.0 m³",
			want: CapacityGauge{Used: 1234, Maximum: ptr(5000)},
		},
		{
			name: "with selection",
			text: "(12.5) 30/100 m³",
			want: CapacityGauge{Used: 30, Maximum: ptr(100), Selected: ptr(12)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCapacityGaugeText(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCapacityGaugeText_Invalid(t *testing.T) {
	_, err := ParseCapacityGaugeText("1/2/3 m³")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected number of components")

	_, err = ParseCapacityGaugeText("full/100 m³")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse used number: failed to parse to integer")
}

func TestParseClockText(t *testing.T) {
	got, err := ParseClockText("12:34")
	require.NoError(t, err)
	assert.Equal(t, ClockTime{Hour: 12, Minute: 34}, got)

	_, err = ParseClockText("1234")
	assert.Error(t, err)
	_, err = ParseClockText("ab:12")
	assert.Error(t, err)
	_, err = ParseClockText("12:cd")
	assert.Error(t, err)
}

func TestParseShortcutKeys(t *testing.T) {
	keyCodes := DefaultConfig().KeyCodes

	keys, err := ParseShortcutKeys("CTRL-F1", keyCodes)
	require.NoError(t, err)
	assert.Equal(t, []KeyCode{VKLControl, VKF1}, keys)

	keys, err = ParseShortcutKeys("Alt + F3", keyCodes)
	require.NoError(t, err)
	assert.Equal(t, []KeyCode{VKLMenu, VKF1 + 2}, keys)

	keys, err = ParseShortcutKeys("Strg-Umsch-F12", keyCodes)
	require.NoError(t, err)
	assert.Equal(t, []KeyCode{VKLControl, VKLShift, VKF1 + 11}, keys)

	_, err = ParseShortcutKeys("Meta-F1", keyCodes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key text: 'Meta'")
}

const locationInfoText = `<url=showinfo:5//30000142 alt='Current Solar System'>Jita</url></b> <color=0xff4cffccL><hint='Security status'>0.9</hint></color>`

func TestLocationInfoTexts(t *testing.T) {
	name, ok := ParseCurrentSolarSystemName(locationInfoText)
	require.True(t, ok)
	assert.Equal(t, "Jita", name)

	status, ok := ParseSecurityStatusPercent(locationInfoText)
	require.True(t, ok)
	assert.Equal(t, 90, status)

	status, ok = ParseSecurityStatusPercent(`<hint="Security status"><color=0xffff0000>-0.2</color>`)
	require.True(t, ok)
	assert.Equal(t, -20, status)

	_, ok = ParseSecurityStatusPercent("no status here")
	assert.False(t, ok)

	station, ok := ParseCurrentStationName(`<url=showinfo:1529//60003760 alt='Current Station'>Jita IV - Moon 4 - Caldari Navy Assembly Plant</url>`)
	require.True(t, ok)
	assert.Equal(t, "Jita IV - Moon 4 - Caldari Navy Assembly Plant", station)
}

func TestOptimalRangeText(t *testing.T) {
	got, ok := optimalRangeText("Optimal range within 15 km")
	require.True(t, ok)
	assert.Equal(t, "15 km", got)

	got, ok = optimalRangeText("Optimal range 2.5 km")
	require.True(t, ok)
	assert.Equal(t, "2.5 km", got)

	_, ok = optimalRangeText("Falloff 10 km")
	assert.False(t, ok)
}

func TestParsed(t *testing.T) {
	good := parsed[int](ParseDistanceInMeters("15 km"))
	assert.True(t, good.OK())
	assert.Equal(t, 15000, good.Value)

	bad := parsed[int](ParseDistanceInMeters("bogus"))
	assert.False(t, bad.OK())
	v, err := bad.Get()
	assert.Zero(t, v)
	assert.Error(t, err)
}

package uitree

import (
	"math"
	"unicode/utf8"
)

// ColorPercent is a color with each channel given in percent.
type ColorPercent struct {
	A int `yaml:"a" json:"a" msgpack:"a"`
	R int `yaml:"r" json:"r" msgpack:"r"`
	G int `yaml:"g" json:"g" msgpack:"g"`
	B int `yaml:"b" json:"b" msgpack:"b"`
}

// OffsetWidth is a horizontal offset from the parent and a width.
type OffsetWidth struct {
	Offset int
	Width  int
}

func stringProp(n *RawNode, name string) (string, bool) {
	v, ok := n.Prop(name)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// DisplayText returns the longer of _setText and _text. On equal length
// _setText wins.
func DisplayText(n *RawNode) (string, bool) {
	set, hasSet := stringProp(n, "_setText")
	text, hasText := stringProp(n, "_text")
	switch {
	case hasSet && hasText:
		if utf8.RuneCountInString(text) > utf8.RuneCountInString(set) {
			return text, true
		}
		return set, true
	case hasSet:
		return set, true
	case hasText:
		return text, true
	}
	return "", false
}

// AllDisplayTexts returns the display text of n and every readable
// descendant, including nodes that have no display region.
func AllDisplayTexts(n *RawNode) []string {
	var texts []string
	if t, ok := DisplayText(n); ok {
		texts = append(texts, t)
	}
	n.walk(func(d *RawNode) {
		if t, ok := DisplayText(d); ok {
			texts = append(texts, t)
		}
	})
	return texts
}

// Name reads _name.
func Name(n *RawNode) (string, bool) { return stringProp(n, "_name") }

// Hint reads _hint.
func Hint(n *RawNode) (string, bool) { return stringProp(n, "_hint") }

// TexturePath reads texturePath.
func TexturePath(n *RawNode) (string, bool) { return stringProp(n, "texturePath") }

// ColorPercentOf decodes _color. All four channels must decode.
func ColorPercentOf(n *RawNode) (ColorPercent, bool) {
	v, ok := n.Prop("_color")
	if !ok {
		return ColorPercent{}, false
	}
	var channels [4]int
	for i, name := range [4]string{"aPercent", "rPercent", "gPercent", "bPercent"} {
		f, ok := v.Field(name)
		if !ok {
			return ColorPercent{}, false
		}
		c, ok := f.AsInt()
		if !ok {
			return ColorPercent{}, false
		}
		channels[i] = c
	}
	return ColorPercent{A: channels[0], R: channels[1], G: channels[2], B: channels[3]}, true
}

// Rotation reads _rotation as a float.
func Rotation(n *RawNode) (float64, bool) { return floatProp(n, "_rotation") }

// LastValue reads a gauge's _lastValue.
func LastValue(n *RawNode) (float64, bool) { return floatProp(n, "_lastValue") }

// BoolProp reads a boolean property such as ramp_active.
func BoolProp(n *RawNode, name string) (bool, bool) {
	v, ok := n.Prop(name)
	if !ok {
		return false, false
	}
	return v.AsBool()
}

func floatProp(n *RawNode, name string) (float64, bool) {
	v, ok := n.Prop(name)
	if !ok {
		return 0, false
	}
	return v.AsFloat()
}

func roundedProp(n *RawNode, name string) (int, bool) {
	f, ok := floatProp(n, name)
	if !ok {
		return 0, false
	}
	return Round(f), true
}

// HorizontalOffsetAndWidth reads _displayX and _width, rounded.
func HorizontalOffsetAndWidth(n *RawNode) (OffsetWidth, bool) {
	offset, ok := roundedProp(n, "_displayX")
	if !ok {
		return OffsetWidth{}, false
	}
	width, ok := roundedProp(n, "_width")
	if !ok {
		return OffsetWidth{}, false
	}
	return OffsetWidth{Offset: offset, Width: width}, true
}

// VerticalOffset reads _displayY, rounded.
func VerticalOffset(n *RawNode) (int, bool) { return roundedProp(n, "_displayY") }

// Round rounds half up, so Round(-0.5) is 0.
func Round(f float64) int {
	return int(math.Floor(f + 0.5))
}

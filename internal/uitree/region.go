package uitree

// Region is an axis-aligned rectangle in client window coordinates.
type Region struct {
	X      int `yaml:"x"      json:"x"      msgpack:"x"`
	Y      int `yaml:"y"      json:"y"      msgpack:"y"`
	Width  int `yaml:"width"  json:"width"  msgpack:"width"`
	Height int `yaml:"height" json:"height" msgpack:"height"`
}

// Point is a location in client window coordinates.
type Point struct {
	X int `yaml:"x" json:"x" msgpack:"x"`
	Y int `yaml:"y" json:"y" msgpack:"y"`
}

// Area returns width*height. A region with a negative side has no area.
func (r Region) Area() (int, bool) {
	if r.Width < 0 || r.Height < 0 {
		return 0, false
	}
	return r.Width * r.Height, true
}

// AreaOrZero is Area with the undefined case mapped to 0, the order key
// used when picking the smallest labelled node.
func (r Region) AreaOrZero() int {
	a, _ := r.Area()
	return a
}

// Center returns the midpoint, rounding toward the origin.
func (r Region) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// VerticalCenter is Center().Y.
func (r Region) VerticalCenter() int {
	return r.Y + r.Height/2
}

// UpperRight returns the top right corner.
func (r Region) UpperRight() Point {
	return Point{X: r.X + r.Width, Y: r.Y}
}

// Bounds returns the region as [x, y, width, height].
func (r Region) Bounds() [4]int {
	return [4]int{r.X, r.Y, r.Width, r.Height}
}

// displayRegionProps are the properties every annotated node must carry.
var displayRegionProps = [4]string{"_displayX", "_displayY", "_displayWidth", "_displayHeight"}

// RegionFromProps decodes the node's own display region. Each of the four
// properties may be an int, a numeric string, or an object whose int_low32
// field is one of those; anything else makes the whole region undecodable.
func RegionFromProps(n *RawNode) (Region, bool) {
	var vals [4]int
	for i, name := range displayRegionProps {
		v, ok := n.Prop(name)
		if !ok {
			return Region{}, false
		}
		num, ok := fixedNumber(v)
		if !ok {
			return Region{}, false
		}
		vals[i] = num
	}
	return Region{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, true
}

func fixedNumber(v Value) (int, bool) {
	if n, ok := v.AsInt(); ok {
		return n, true
	}
	if low, ok := v.Field("int_low32"); ok {
		return low.AsInt()
	}
	return 0, false
}

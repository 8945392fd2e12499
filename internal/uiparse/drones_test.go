package uiparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/eve-ui-reader/internal/testutil"
	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

const expandedTexture = "res:/UI/Texture/Icons/38_16_229.png"

func droneGroupHeader(title string, expanderX, y int) *uitree.RawNode {
	return testutil.Node("DroneMainGroup", 0, y, 300, 20, testutil.Children(
		testutil.Node("Sprite", expanderX, 2, 16, 16, testutil.Name("expander"), testutil.Texture(expandedTexture)),
		testutil.Node("EveLabelMedium", expanderX+20, 2, 200, 16, testutil.Text(title)),
	))
}

func droneGauge(name string, barWidth, damageWidth int) *uitree.RawNode {
	return testutil.Node("Container", 200, 0, 50, 5, testutil.Name(name), testutil.Children(
		testutil.Node("Fill", 0, 0, barWidth, 5, testutil.Name("droneGaugeBar")),
		testutil.Node("Fill", 0, 0, damageWidth, 5, testutil.Name("droneGaugeBarDmg")),
	))
}

func droneEntry(name string, y int, gauges ...*uitree.RawNode) *uitree.RawNode {
	children := append([]*uitree.RawNode{
		testutil.Node("EveLabelMedium", 30, 2, 150, 16, testutil.Text(name)),
	}, gauges...)
	return testutil.Node("DroneEntry", 0, y, 300, 20, testutil.Children(children...))
}

func dronesWindow(children ...*uitree.RawNode) *uitree.Node {
	return testutil.Annotated(testutil.Node("DroneView", 100, 100, 320, 400, testutil.Children(children...)))
}

func maintext(t *testing.T, g *DronesWindowGroup) string {
	t.Helper()
	require.NotNil(t, g.Header.Maintext)
	return *g.Header.Maintext
}

func TestParseDronesWindow_SiblingGroups(t *testing.T) {
	root := dronesWindow(
		droneGroupHeader("Drones in Bay (2)", 5, 0),
		droneEntry("Hobgoblin I", 20),
		droneEntry("Hammerhead I", 40),
		droneGroupHeader("Drones in Local Space (0)", 5, 60),
	)
	w := ParseDronesWindow(root)
	require.NotNil(t, w)
	require.Len(t, w.DroneGroups, 2)

	bay := w.DroneGroups[0]
	assert.Equal(t, "Drones in Bay (2)", maintext(t, bay))
	require.Len(t, bay.Children, 2)
	for i, want := range []string{"Hobgoblin I", "Hammerhead I"} {
		drone, ok := bay.Children[i].(*DronesWindowDrone)
		require.True(t, ok)
		require.NotNil(t, drone.Maintext)
		assert.Equal(t, want, *drone.Maintext)
	}

	quantity, err := bay.Header.QuantityFromTitle.Get()
	require.NoError(t, err)
	require.NotNil(t, quantity)
	assert.Equal(t, 2, *quantity)
	require.NotNil(t, bay.Header.Expander.IsExpanded)
	assert.True(t, *bay.Header.Expander.IsExpanded)

	space := w.DroneGroups[1]
	assert.Equal(t, "Drones in Local Space (0)", maintext(t, space))
	assert.Empty(t, space.Children)

	assert.Same(t, bay, w.DroneGroupInBay)
	assert.Same(t, space, w.DroneGroupInLocalSpace)
}

func TestParseDronesWindow_NestedGroups(t *testing.T) {
	root := dronesWindow(
		droneGroupHeader("Drones in Bay (3)", 5, 0),
		droneGroupHeader("Light Drones (2)", 20, 20),
		droneEntry("Hobgoblin I", 40),
		droneEntry("Warrior I", 60),
		droneGroupHeader("Medium Drones (1)", 20, 80),
		droneEntry("Hammerhead I", 100),
		droneGroupHeader("Drones in Local Space (0)", 5, 120),
	)
	w := ParseDronesWindow(root)
	require.NotNil(t, w)
	require.Len(t, w.DroneGroups, 2)

	bay := w.DroneGroups[0]
	require.Len(t, bay.Children, 2)
	light, ok := bay.Children[0].(*DronesWindowGroup)
	require.True(t, ok)
	assert.Equal(t, "Light Drones (2)", maintext(t, light))
	assert.Len(t, light.Children, 2)

	medium, ok := bay.Children[1].(*DronesWindowGroup)
	require.True(t, ok)
	assert.Equal(t, "Medium Drones (1)", maintext(t, medium))
	assert.Len(t, medium.Children, 1)

	var names []string
	for _, d := range EnumerateAllDrones(bay) {
		names = append(names, *d.Maintext)
	}
	assert.Equal(t, []string{"Hobgoblin I", "Warrior I", "Hammerhead I"}, names)
	assert.Len(t, EnumerateDescendants(bay), 5)

	assert.Equal(t, "Drones in Local Space (0)", maintext(t, w.DroneGroups[1]))
}

func TestParseDronesWindow_DronesBeforeAnyGroupAreDropped(t *testing.T) {
	root := dronesWindow(
		droneEntry("Stray", 0),
		droneGroupHeader("Drones in Bay", 5, 20),
		droneEntry("Hobgoblin I", 40),
	)
	w := ParseDronesWindow(root)
	require.NotNil(t, w)
	require.Len(t, w.DroneGroups, 1)
	assert.Len(t, w.DroneGroups[0].Children, 1)

	quantity, err := w.DroneGroups[0].Header.QuantityFromTitle.Get()
	require.NoError(t, err)
	assert.Nil(t, quantity)
	assert.Nil(t, w.DroneGroupInLocalSpace)
}

func TestParseDronesWindow_Hitpoints(t *testing.T) {
	root := dronesWindow(
		droneGroupHeader("Drones in Local Space (2)", 5, 0),
		droneEntry("Hobgoblin I", 20,
			droneGauge("gauge_shield", 40, 10),
			droneGauge("gauge_armor", 40, 0),
			droneGauge("gauge_struct", 40, 20),
		),
		droneEntry("Warrior I", 40,
			droneGauge("gauge_shield", 0, 0),
			droneGauge("gauge_armor", 40, 0),
			droneGauge("gauge_struct", 40, 0),
		),
	)
	w := ParseDronesWindow(root)
	require.NotNil(t, w)
	require.NotNil(t, w.DroneGroupInLocalSpace)
	drones := EnumerateAllDrones(w.DroneGroupInLocalSpace)
	require.Len(t, drones, 2)

	require.NotNil(t, drones[0].HitpointsPercent)
	assert.Equal(t, Hitpoints{Structure: 50, Armor: 100, Shield: 75}, *drones[0].HitpointsPercent)
	assert.Nil(t, drones[1].HitpointsPercent)
}

func TestParseDronesWindow_Absent(t *testing.T) {
	assert.Nil(t, ParseDronesWindow(testutil.Annotated()))

	w := ParseDronesWindow(dronesWindow())
	require.NotNil(t, w)
	assert.Empty(t, w.DroneGroups)
	assert.Nil(t, w.DroneGroupInBay)
}

func TestDroneGroupFromHeaderTextPart_PrefersShortestTitle(t *testing.T) {
	title := func(s string) *DronesWindowGroup {
		return &DronesWindowGroup{Header: DronesWindowGroupHeader{Maintext: &s}}
	}
	long := title("Drones in Bay (with a long suffix)")
	short := title("Drones in Bay")
	other := title("Drones in Local Space")

	got := droneGroupFromHeaderTextPart([]*DronesWindowGroup{long, other, short}, "in bay")
	assert.Same(t, short, got)
	assert.Nil(t, droneGroupFromHeaderTextPart([]*DronesWindowGroup{other}, "in bay"))
}

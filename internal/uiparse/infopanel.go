package uiparse

import (
	"strings"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// InfoPanelContainer is the stack of info panels in the upper left corner.
type InfoPanelContainer struct {
	Node          *uitree.Node
	Icons         *InfoPanelIcons
	LocationInfo  *InfoPanelLocationInfo
	Route         *InfoPanelRoute
	AgentMissions *InfoPanelAgentMissions
}

// InfoPanelIcons are the buttons that toggle the individual panels.
type InfoPanelIcons struct {
	Node           *uitree.Node
	Search         *uitree.Node
	LocationInfo   *uitree.Node
	Route          *uitree.Node
	AgentMissions  *uitree.Node
	DailyChallenge *uitree.Node
}

type InfoPanelLocationInfo struct {
	Node                   *uitree.Node
	ListSurroundingsButton *uitree.Node
	CurrentSolarSystemName *string
	SecurityStatusPercent  *int
	ExpandedContent        *InfoPanelLocationInfoExpandedContent
}

type InfoPanelLocationInfoExpandedContent struct {
	CurrentStationName *string
}

type InfoPanelRoute struct {
	Node                *uitree.Node
	RouteElementMarkers []*uitree.Node
}

type InfoPanelAgentMissions struct {
	Node    *uitree.Node
	Entries []*uitree.Node
}

// ParseInfoPanelContainer picks the most populated InfoPanelContainer; the
// client keeps stale empty copies around.
func ParseInfoPanelContainer(root *uitree.Node) *InfoPanelContainer {
	var container *uitree.Node
	best := -1
	for _, n := range root.Find(uitree.OfType("InfoPanelContainer")) {
		if c := n.Raw.CountDescendants(); c > best {
			container, best = n, c
		}
	}
	if container == nil {
		return nil
	}
	return &InfoPanelContainer{
		Node:          container,
		Icons:         parseInfoPanelIcons(container),
		LocationInfo:  parseInfoPanelLocationInfo(container),
		Route:         parseInfoPanelRoute(container),
		AgentMissions: parseInfoPanelAgentMissions(container),
	}
}

func parseInfoPanelIcons(container *uitree.Node) *InfoPanelIcons {
	iconCont, ok := firstSortedBy(container.Find(uitree.Named("iconCont")), uitree.ByTotalY)
	if !ok {
		return nil
	}
	icon := func(suffix string) *uitree.Node {
		return findFirst(iconCont, uitree.TexturePathEndsWith(suffix))
	}
	return &InfoPanelIcons{
		Node:           iconCont,
		Search:         icon("search.png"),
		LocationInfo:   icon("LocationInfo.png"),
		Route:          icon("Route.png"),
		AgentMissions:  icon("Missions.png"),
		DailyChallenge: icon("dailyChallenge.png"),
	}
}

// parseInfoPanelLocationInfo requires the list-surroundings button; without
// it the panel is collapsed to its header and carries nothing useful.
func parseInfoPanelLocationInfo(container *uitree.Node) *InfoPanelLocationInfo {
	panel, ok := container.First(uitree.OfType("InfoPanelLocationInfo"))
	if !ok {
		return nil
	}
	button, ok := panel.First(uitree.OfType("ListSurroundingsBtn"))
	if !ok {
		return nil
	}
	info := &InfoPanelLocationInfo{Node: panel, ListSurroundingsButton: button}
	texts := uitree.AllDisplayTexts(panel.Raw)
	for _, t := range texts {
		if status, ok := ParseSecurityStatusPercent(t); ok {
			info.SecurityStatusPercent = &status
			break
		}
	}
	for _, t := range texts {
		if name, ok := ParseCurrentSolarSystemName(t); ok {
			info.CurrentSolarSystemName = &name
			break
		}
	}
	expanded, ok := panel.First(func(n *uitree.Node) bool {
		name, _ := uitree.Name(n.Raw)
		return strings.Contains(n.TypeName(), "Container") && strings.Contains(name, "mainCont")
	})
	if ok {
		content := &InfoPanelLocationInfoExpandedContent{}
		for _, t := range uitree.AllDisplayTexts(expanded.Raw) {
			if station, ok := ParseCurrentStationName(t); ok {
				content.CurrentStationName = &station
				break
			}
		}
		info.ExpandedContent = content
	}
	return info
}

func parseInfoPanelRoute(container *uitree.Node) *InfoPanelRoute {
	panel, ok := container.First(uitree.OfType("InfoPanelRoute"))
	if !ok {
		return nil
	}
	return &InfoPanelRoute{
		Node:                panel,
		RouteElementMarkers: panel.Find(uitree.OfType("AutopilotDestinationIcon")),
	}
}

func parseInfoPanelAgentMissions(container *uitree.Node) *InfoPanelAgentMissions {
	panel, ok := container.First(uitree.OfType("InfoPanelAgentMissions"))
	if !ok {
		return nil
	}
	return &InfoPanelAgentMissions{
		Node:    panel,
		Entries: panel.Find(uitree.OfType("MissionEntry")),
	}
}

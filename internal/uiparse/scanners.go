package uiparse

import (
	"strings"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

type ProbeScannerWindow struct {
	Node        *uitree.Node
	ScanResults []ProbeScanResult
}

type ProbeScanResult struct {
	Node             *uitree.Node
	TextsLeftToRight []string
	CellsTexts       map[string]string
	WarpButton       *uitree.Node
}

type DirectionalScannerWindow struct {
	Node        *uitree.Node
	ScrollNode  *uitree.Node
	ScanResults []*uitree.Node
}

func ParseProbeScannerWindow(root *uitree.Node) *ProbeScannerWindow {
	window, ok := root.First(uitree.OfType("ProbeScannerWindow"))
	if !ok {
		return nil
	}
	var scrolls []*uitree.Node
	for _, results := range window.Find(uitree.NameContains("ResultsContainer")) {
		scrolls = append(scrolls, results.Find(uitree.TypeContainsFold("scroll"))...)
	}
	var headers []uitree.TextWithNode
	if scroll, ok := first(scrolls); ok {
		if h, ok := scroll.First(uitree.TypeContainsFold("header")); ok {
			headers = uitree.AllDisplayTextsWithRegion(h)
		}
	}
	w := &ProbeScannerWindow{Node: window}
	for _, n := range window.Find(uitree.OfType("ScanResultNew")) {
		w.ScanResults = append(w.ScanResults, ProbeScanResult{
			Node:             n,
			TextsLeftToRight: textsSortedBy(n, textByTotalX),
			CellsTexts:       cellsTexts(headers, n),
			WarpButton:       findFirst(n, uitree.TexturePathEndsWith("44_32_18.png")),
		})
	}
	return w
}

// ParseDirectionalScannerWindow takes results from the largest scroll area
// in the window.
func ParseDirectionalScannerWindow(root *uitree.Node) *DirectionalScannerWindow {
	window, ok := root.First(uitree.OfType("DirectionalScanner"))
	if !ok {
		return nil
	}
	w := &DirectionalScannerWindow{Node: window}
	scroll, ok := firstSortedBy(window.Find(uitree.TypeContainsFold("scroll")), func(n *uitree.Node) int { return -n.Total.AreaOrZero() })
	if ok {
		w.ScrollNode = scroll
		w.ScanResults = scroll.Find(uitree.OfType("DirectionalScanResultEntry"))
	}
	return w
}

type StationWindow struct {
	Node              *uitree.Node
	UndockButton      *uitree.Node
	AbortUndockButton *uitree.Node
}

func ParseStationWindow(root *uitree.Node) *StationWindow {
	window, ok := root.First(uitree.OfType("LobbyWnd"))
	if !ok {
		return nil
	}
	buttons := window.Find(uitree.OfType("Button"))
	buttonFromDisplayText := func(text string) *uitree.Node {
		text = strings.ToLower(text)
		for _, b := range buttons {
			for _, t := range normalizedTexts(b) {
				if t == text || strings.Contains(t, ">"+text+"<") {
					return b
				}
			}
		}
		return nil
	}
	return &StationWindow{
		Node:              window,
		UndockButton:      buttonFromDisplayText("undock"),
		AbortUndockButton: buttonFromDisplayText("undocking"),
	}
}

package uiparse

import (
	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// Neocom is the sidebar with the application icons and the clock.
type Neocom struct {
	Node          *uitree.Node
	IconInventory *uitree.Node
	Clock         *NeocomClock
}

type NeocomClock struct {
	Node       *uitree.Node
	Text       string
	ParsedText Parsed[ClockTime]
}

func ParseNeocom(root *uitree.Node) *Neocom {
	neocom, ok := root.First(uitree.OfType("Neocom"))
	if !ok {
		return nil
	}
	n := &Neocom{
		Node:          neocom,
		IconInventory: findFirst(neocom, uitree.TexturePathEndsWith("items.png")),
	}
	for _, clock := range neocom.Find(uitree.OfType("InGameClock")) {
		if texts := uitree.AllDisplayTextsWithRegion(clock); len(texts) > 0 {
			n.Clock = &NeocomClock{
				Node:       texts[0].Node,
				Text:       texts[0].Text,
				ParsedText: parsed[ClockTime](ParseClockText(texts[0].Text)),
			}
			break
		}
	}
	return n
}

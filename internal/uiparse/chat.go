package uiparse

import (
	"unicode/utf8"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

type ChatWindowStack struct {
	Node       *uitree.Node
	ChatWindow *ChatWindow
}

type ChatWindow struct {
	Node     *uitree.Node
	Name     *string
	Userlist *ChatWindowUserlist
}

type ChatWindowUserlist struct {
	Node           *uitree.Node
	VisibleUsers   []ChatUserEntry
	ScrollControls *ScrollControls
}

type ChatUserEntry struct {
	Node             *uitree.Node
	Name             *string
	StandingIconHint *string
}

func ParseChatWindowStacks(root *uitree.Node) []ChatWindowStack {
	var stacks []ChatWindowStack
	for _, n := range root.Find(uitree.OfType("ChatWindowStack")) {
		stack := ChatWindowStack{Node: n}
		if w, ok := n.First(uitree.OfType("XmppChatWindow")); ok {
			stack.ChatWindow = parseChatWindow(w)
		}
		stacks = append(stacks, stack)
	}
	return stacks
}

func parseChatWindow(n *uitree.Node) *ChatWindow {
	w := &ChatWindow{Node: n, Name: optString(uitree.Name(n.Raw))}
	if list, ok := n.First(uitree.NameContainsFold("userlist")); ok {
		w.Userlist = parseChatWindowUserlist(list)
	}
	return w
}

func parseChatWindowUserlist(n *uitree.Node) *ChatWindowUserlist {
	l := &ChatWindowUserlist{Node: n, ScrollControls: scrollControlsIn(n)}
	for _, u := range n.Find(uitree.OfAnyType("XmppChatSimpleUserEntry", "XmppChatUserEntry")) {
		l.VisibleUsers = append(l.VisibleUsers, parseChatUserEntry(u))
	}
	return l
}

func parseChatUserEntry(n *uitree.Node) ChatUserEntry {
	u := ChatUserEntry{Node: n}
	// The name is the longest text; on ties the last one wins.
	texts := uitree.AllDisplayTexts(n.Raw)
	for i := range texts {
		t := texts[i]
		if u.Name == nil || utf8.RuneCountInString(t) >= utf8.RuneCountInString(*u.Name) {
			u.Name = &t
		}
	}
	if icon, ok := n.First(uitree.OfType("FlagIconWithState")); ok {
		u.StandingIconHint = optString(uitree.Hint(icon.Raw))
	}
	return u
}

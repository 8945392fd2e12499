// Package search finds nodes of an annotated tree by their display text.
package search

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/mj1618/eve-ui-reader/internal/output"
	"github.com/mj1618/eve-ui-reader/internal/uiparse"
	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// DefaultThreshold is the lowest Jaro-Winkler similarity a fuzzy match may
// have.
const DefaultThreshold = 0.85

var ErrEmptyQuery = errors.New("search text is empty")

type Options struct {
	Text string
	// Exact requires the whole text to equal Text, ignoring case and markup.
	Exact bool
	// Fuzzy also accepts texts similar to Text, scored with Jaro-Winkler.
	Fuzzy     bool
	Threshold float64
	// Types restricts matches to nodes of these type names.
	Types []string
	// Limit caps the number of matches; 0 means no limit.
	Limit int
}

// Match is a node whose display text matched.
type Match struct {
	Text      string        `yaml:"t"                   json:"t"`
	Type      string        `yaml:"type"                json:"type"`
	Address   string        `yaml:"a,omitempty"         json:"a,omitempty"`
	Region    uitree.Region `yaml:"b"                   json:"b"`
	Score     float64       `yaml:"score"               json:"score"`
	Component string        `yaml:"component,omitempty" json:"component,omitempty"`
}

type Matches []Match

var markup = regexp.MustCompile(`<[^>]*>`)

// plain strips markup such as <center> and lower-cases text.
func plain(text string) string {
	return strings.ToLower(strings.TrimSpace(markup.ReplaceAllString(text, "")))
}

// Find searches ui's tree. Each match names the innermost recognised
// component that holds it. Matches are ordered by score, then tree order.
func Find(ui *uiparse.UserInterface, opts Options) (Matches, error) {
	query := plain(opts.Text)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	types := make(map[string]bool, len(opts.Types))
	for _, t := range opts.Types {
		types[t] = true
	}
	components := make(map[string]string)
	for _, c := range output.Components(ui) {
		if c.Address != "" {
			components[c.Address] = c.Path
		}
	}

	var found Matches
	var visit func(n *uitree.Node, component string)
	visit = func(n *uitree.Node, component string) {
		if path, ok := components[n.Raw.Address]; ok {
			component = path
		}
		if len(types) == 0 || types[n.TypeName()] {
			if text, ok := uitree.DisplayText(n.Raw); ok {
				if score, ok := matchScore(query, plain(text), opts.Exact, opts.Fuzzy, threshold); ok {
					found = append(found, Match{
						Text:      text,
						Type:      n.TypeName(),
						Address:   n.Raw.Address,
						Region:    n.Total,
						Score:     score,
						Component: component,
					})
				}
			}
		}
		for _, c := range n.Children {
			visit(c, component)
		}
	}
	if ui.UITree != nil {
		visit(ui.UITree, "")
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].Score > found[j].Score })
	if opts.Limit > 0 && len(found) > opts.Limit {
		found = found[:opts.Limit]
	}
	if found == nil {
		found = Matches{}
	}
	return found, nil
}

// matchScore decides whether text matches query. Substring matches score
// by how much of text the query covers; fuzzy matches score their
// similarity.
func matchScore(query, text string, exact, fuzzy bool, threshold float64) (float64, bool) {
	if text == "" {
		return 0, false
	}
	if text == query {
		return 1, true
	}
	if exact {
		return 0, false
	}
	if strings.Contains(text, query) {
		return 0.5 + 0.5*float64(len(query))/float64(len(text)), true
	}
	if !fuzzy {
		return 0, false
	}
	similarity, err := edlib.StringsSimilarity(query, text, edlib.JaroWinkler)
	if err != nil || float64(similarity) < threshold {
		return 0, false
	}
	// Fuzzy matches rank below every substring match.
	return 0.5 * float64(similarity), true
}

func (ms Matches) WriteText(w io.Writer) error {
	if len(ms) == 0 {
		_, err := fmt.Fprintln(w, "no matches")
		return err
	}
	for _, m := range ms {
		component := m.Component
		if component == "" {
			component = "-"
		}
		if _, err := fmt.Fprintf(w, "%.2f  %-40q %-24s %v  %s\n", m.Score, m.Text, m.Type, m.Region, component); err != nil {
			return err
		}
	}
	return nil
}

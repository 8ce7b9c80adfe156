package newick

import "strings"

const nhxPrefix = "&&NHX:"

// Properties returns the key/value annotations embedded in the node's
// comments. Both the NHX form (&&NHX:k=v:k=v) and the ampersand form
// (&k=v,k=v) used by BEAST and MrBayes are recognized; pairs from all
// comments are merged into one map. Values are opaque text and are returned
// raw, including any quotes or braces. The map is computed on access, so it
// always reflects the current comments.
func (n *Node) Properties() map[string]string {
	props := make(map[string]string)
	for _, c := range n.Comments {
		switch {
		case strings.HasPrefix(c.Text, nhxPrefix):
			for _, pair := range strings.Split(c.Text[len(nhxPrefix):], ":") {
				addProperty(props, pair)
			}
		case strings.HasPrefix(c.Text, "&"):
			for _, pair := range splitPairs(c.Text[1:]) {
				addProperty(props, pair)
			}
		}
	}
	return props
}

func addProperty(props map[string]string, pair string) {
	key, value, ok := strings.Cut(pair, "=")
	if !ok || key == "" {
		return
	}
	props[key] = value
}

// splitPairs splits an ampersand comment payload on commas, ignoring commas
// nested inside braces (BEAST range values like {0.003,0.625}) or inside
// double quotes.
func splitPairs(s string) []string {
	var pairs []string
	var depth int
	var quoted bool
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
		case '{':
			if !quoted {
				depth++
			}
		case '}':
			if !quoted && depth > 0 {
				depth--
			}
		case ',':
			if !quoted && depth == 0 {
				pairs = append(pairs, s[start:i])
				start = i + 1
			}
		}
	}
	return append(pairs, s[start:])
}

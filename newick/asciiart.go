package newick

import (
	"strings"

	"github.com/rivo/uniseg"
)

// ASCIIArtOptions controls tree rendering.
type ASCIIArtOptions struct {
	// Strict restricts output to plain ASCII glyphs instead of box-drawing
	// characters.
	Strict bool
	// HideInternal omits the labels of internal nodes.
	HideInternal bool
}

// ASCIIArt renders the tree as multi-line text art, one row per leaf, with
// box-drawing connectors and internal labels shown.
func (n *Node) ASCIIArt() string {
	return n.ASCIIArtWithOptions(ASCIIArtOptions{})
}

// ASCIIArtWithOptions renders the tree as multi-line text art. Internal
// nodes are drawn as vertical connectors spanning their children's rows,
// with the connector placed at (firstChildRow+lastChildRow)/2, rounding
// toward the earlier child. The output is a presentation artifact and is
// never re-parsed; a node without a name renders as an empty label.
func (n *Node) ASCIIArtWithOptions(opts ASCIIArtOptions) string {
	showInternal := !opts.HideInternal

	// Column width is driven by the widest rendered label. Box glyphs and
	// spaces are all one cell wide; only labels can be wider than their
	// rune count, so widths come from uniseg.
	maxw := 0
	for _, node := range n.Walk() {
		if node.Name == "" || (!showInternal && !node.IsLeaf()) {
			continue
		}
		if w := uniseg.StringWidth(node.Name); w > maxw {
			maxw = w
		}
	}

	l := &asciiLayout{padWidth: maxw + 3, showInternal: showInternal}
	lines, _ := l.render(n, '─')

	var out []string
	for _, line := range lines {
		if onlySpacesAndPipes(line) {
			continue
		}
		s := normalizeArt(line)
		if opts.Strict {
			s = strictGlyphs.Replace(s)
		}
		out = append(out, s)
	}
	return strings.Join(out, "\n")
}

type asciiLayout struct {
	padWidth     int
	showInternal bool
}

// render lays out the subtree, returning its rows and the row index of the
// node's own connector. char1 is the glyph linking the node to its parent's
// vertical connector.
func (l *asciiLayout) render(n *Node, char1 rune) ([][]rune, int) {
	namestr := append([]rune{'─'}, []rune(n.Name)...)
	nameWidth := 1 + uniseg.StringWidth(n.Name)

	if len(n.children) == 0 {
		return [][]rune{append([]rune{char1}, namestr...)}, 0
	}

	pad := []rune(strings.Repeat(" ", l.padWidth))

	var result [][]rune
	var mids []int
	for i, c := range n.children {
		char2 := '─'
		switch {
		case len(n.children) == 1:
			char2 = '─'
		case i == 0:
			char2 = '┌'
		case i == len(n.children)-1:
			char2 = '└'
		}
		clines, mid := l.render(c, char2)
		mids = append(mids, mid+len(result))
		result = append(result, clines...)
		result = append(result, []rune{})
	}
	result = result[:len(result)-1]

	lo, hi, end := mids[0], mids[len(mids)-1], len(result)
	prefixes := make([][]rune, end)
	for i := 0; i < end; i++ {
		if i > lo && i < hi {
			prefixes[i] = append(append([]rune{}, pad...), '│')
		} else {
			prefixes[i] = pad
		}
	}

	mid := (lo + hi) / 2
	conn := make([]rune, 0, len(prefixes[mid]))
	conn = append(conn, char1)
	for i := 0; i < len(prefixes[mid])-2; i++ {
		conn = append(conn, '─')
	}
	conn = append(conn, prefixes[mid][len(prefixes[mid])-1])
	prefixes[mid] = conn

	for i := range result {
		result[i] = append(append([]rune{}, prefixes[i]...), result[i]...)
	}

	if l.showInternal {
		stem := result[mid]
		row := make([]rune, 0, len(stem))
		row = append(row, stem[0])
		row = append(row, namestr...)
		row = append(row, stem[nameWidth+1:]...)
		result[mid] = row
	}
	return result, mid
}

// normalizeArt tightens the raw layout: a connector immediately right of a
// vertical line loses one space of slack, and junction glyphs replace the
// line/connector collisions that the two-pass layout produces.
func normalizeArt(line []rune) string {
	out := make([]rune, 0, len(line))
	for i := 0; i < len(line); {
		out = append(out, line[i])
		if line[i] == '│' {
			j := i + 1
			for j < len(line) && line[j] == ' ' {
				j++
			}
			if j > i+1 && j < len(line) && (line[j] == '┌' || line[j] == '└' || line[j] == '│') {
				out = append(out, line[i+2:j]...)
				i = j
				continue
			}
		}
		i++
	}

	s := string(out)
	s = strings.ReplaceAll(s, "─│", "─┤")
	s = strings.ReplaceAll(s, "│─", "├")
	s = strings.ReplaceAll(s, "┤─", "┼")
	return s
}

// onlySpacesAndPipes reports whether the row carries no content beyond
// vertical-line continuation, in which case it is dropped from the output.
func onlySpacesAndPipes(line []rune) bool {
	var hasSpace, hasPipe bool
	for _, r := range line {
		switch r {
		case ' ':
			hasSpace = true
		case '│':
			hasPipe = true
		default:
			return false
		}
	}
	return hasSpace && hasPipe
}

var strictGlyphs = strings.NewReplacer(
	"─", "-",
	"│", "|",
	"┌", "/",
	"└", "\\",
	"├", "|",
	"┤", "|",
	"┼", "+",
)

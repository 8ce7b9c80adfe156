package newick

import (
	"strconv"
	"strings"
)

// commentJoin separates multiple same-position comments inside one bracket
// pair. Newick has no way to keep adjacent comments distinct, so they are
// merged on output.
const commentJoin = "|"

// NeedsQuoting reports whether a label must be quoted to survive a
// parse/serialize round trip.
func NeedsQuoting(name string) bool {
	return strings.ContainsAny(name, reserved+" \t\r\n")
}

// Quote wraps a label in single quotes, doubling every literal quote.
func Quote(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// Unquote strips one level of quoting from a label: surrounding quotes are
// removed and escaped quotes ('' or \') become literal ones. Labels that are
// not well-formed quoted labels are returned unchanged.
func Unquote(name string) string {
	if !isQuotedName(name) {
		return name
	}
	inner := name[1 : len(name)-1]
	var sb strings.Builder
	for i := 0; i < len(inner); i++ {
		ch := inner[i]
		if (ch == '\\' || ch == '\'') && i+1 < len(inner) && inner[i+1] == '\'' {
			sb.WriteByte('\'')
			i++
			continue
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

// isQuotedName reports whether name is a single well-formed quoted label:
// it opens with a quote, every interior quote is escaped, and the closing
// quote is the final character.
func isQuotedName(name string) bool {
	if len(name) < 2 || name[0] != '\'' {
		return false
	}
	for i := 1; i < len(name); i++ {
		switch name[i] {
		case '\\':
			i++
		case '\'':
			if i+1 < len(name) && name[i+1] == '\'' {
				i++
				continue
			}
			return i == len(name)-1
		}
	}
	return false
}

// formatLength is the fixed branch-length formatting rule: the shortest
// decimal representation that round-trips the float64. Integral lengths
// therefore print without a trailing ".0".
func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Newick returns the subtree rooted at n in Newick format, without the
// statement terminator. Descendants are emitted as a parenthesized,
// comma-joined list followed by the node's own label, length and comments.
func (n *Node) Newick() string {
	var sb strings.Builder
	n.writeNewick(&sb)
	return sb.String()
}

func (n *Node) writeNewick(sb *strings.Builder) {
	if len(n.children) > 0 {
		sb.WriteByte('(')
		for i, c := range n.children {
			if i > 0 {
				sb.WriteByte(',')
			}
			c.writeNewick(sb)
		}
		sb.WriteByte(')')
	}
	sb.WriteString(n.Name)

	var before, after []string
	for _, c := range n.Comments {
		// Without a length there is no colon to re-attach after-colon
		// comments to, so everything is emitted before it.
		if c.AfterColon && n.length != nil {
			after = append(after, c.Text)
		} else {
			before = append(before, c.Text)
		}
	}
	if len(before) > 0 {
		sb.WriteByte('[')
		sb.WriteString(strings.Join(before, commentJoin))
		sb.WriteByte(']')
	}
	if n.length != nil {
		sb.WriteByte(':')
		if len(after) > 0 {
			sb.WriteByte('[')
			sb.WriteString(strings.Join(after, commentJoin))
			sb.WriteByte(']')
		}
		sb.WriteString(formatLength(*n.length))
	}
}

// Format serializes one or more trees as Newick statements, one per line,
// each terminated with ';'. Re-parsing the result yields trees equivalent in
// topology, names, lengths and comment content.
func Format(trees ...*Node) string {
	parts := make([]string, len(trees))
	for i, t := range trees {
		parts[i] = t.Newick()
	}
	return strings.Join(parts, ";\n") + ";"
}

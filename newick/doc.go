// Package newick reads and writes the Newick serialization format for
// phylogenetic trees and provides structural operations over the parsed
// trees: pruning, redundant-node collapsing, visitation, and ASCII-art
// rendering.
//
// The reader is structured as a hand-rolled recursive-descent parser with
// three layers:
//
//   - Lexer: converts raw bytes into a token stream, tracking quote state
//     and nested bracket comments.
//   - Parser: consumes tokens according to the Newick grammar and builds
//     one tree per ';'-terminated statement.
//   - Node: the output data structure, mutated in place by the structural
//     operations.
//
// Usage:
//
//	trees, err := newick.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(trees[0].ASCIIArt())
//	fmt.Println(newick.Format(trees...))
//
// Labels are stored raw: a quoted label keeps its quotes, and
// Node.UnquotedName resolves the escaping on access. Parsing is strict —
// unbalanced parentheses, misplaced commas, unterminated quotes or comments,
// and non-numeric branch lengths fail with a position-tagged error rather
// than producing a best-effort tree.
//
// Trees are not synchronized. Concurrent read-only traversal is safe;
// concurrent mutation of one tree requires external locking. Independent
// statements parse independently and may be parsed in parallel by the
// caller.
package newick

package newick

import (
	"fmt"
	"strconv"
)

// maxDepth bounds parenthesis nesting so that adversarial input fails with a
// ParseError instead of exhausting the stack.
const maxDepth = 100000

// Options controls parsing behavior.
type Options struct {
	// StripComments discards bracketed comments instead of attaching them
	// to nodes.
	StripComments bool
}

// Parse parses Newick source text and returns one root node per
// ';'-terminated statement, in source order. The final statement may omit
// its terminator. Parsing is atomic: a malformed statement fails the whole
// call and no trees are returned.
//
// Returns a *LexError or *ParseError on failure.
func Parse(src []byte) ([]*Node, error) {
	return ParseWithOptions(src, Options{})
}

// ParseString parses Newick source text given as a string.
func ParseString(s string) ([]*Node, error) {
	return Parse([]byte(s))
}

// ParseWithOptions parses Newick source text with explicit options.
func ParseWithOptions(src []byte, opts Options) ([]*Node, error) {
	p := &parser{lex: NewLexer(src), opts: opts}
	return p.parseTrees()
}

type parser struct {
	lex  *Lexer
	opts Options
}

func (p *parser) peek() (Token, error) {
	return p.lex.Peek()
}

func (p *parser) next() (Token, error) {
	return p.lex.Next()
}

func (p *parser) parseTrees() ([]*Node, error) {
	var trees []*Node
	for {
		// Comments before a statement's first token (rooting markers like
		// [&R]) have no node to attach to and are discarded.
		for {
			tok, err := p.peek()
			if err != nil {
				return nil, err
			}
			if tok.Kind != TokenComment {
				break
			}
			_, _ = p.next()
		}

		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenEOF:
			return trees, nil
		case TokenSemicolon:
			// Empty statement.
			_, _ = p.next()
			continue
		}

		root, err := p.parseSubtree(0)
		if err != nil {
			return nil, err
		}
		trees = append(trees, root)

		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenSemicolon:
		case TokenEOF:
			return trees, nil
		default:
			return nil, &ParseError{
				Message: fmt.Sprintf("expected ';' after tree, got %s (%q)", tok.Kind, tok.Literal),
				Pos:     tok.Pos,
			}
		}
	}
}

// parseSubtree parses either a leaf label or a parenthesized descendant list
// followed by the node's own label.
func (p *parser) parseSubtree(depth int) (*Node, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if depth > maxDepth {
		return nil, &ParseError{
			Message: fmt.Sprintf("parenthesis nesting exceeds %d levels", maxDepth),
			Pos:     tok.Pos,
		}
	}

	n := &Node{}
	if tok.Kind == TokenOpenParen {
		_, _ = p.next()
		for {
			child, err := p.parseSubtree(depth + 1)
			if err != nil {
				return nil, err
			}
			child.parent = n
			n.children = append(n.children, child)

			tok, err = p.next()
			if err != nil {
				return nil, err
			}
			if tok.Kind == TokenComma {
				continue
			}
			if tok.Kind == TokenCloseParen {
				break
			}
			return nil, &ParseError{
				Message: fmt.Sprintf("expected ',' or ')' in descendant list, got %s (%q)", tok.Kind, tok.Literal),
				Pos:     tok.Pos,
			}
		}
	}

	if err := p.parseLabel(n); err != nil {
		return nil, err
	}
	return n, nil
}

// parseLabel parses a node's optional name, comments and branch length:
//
//	name? comment* (':' comment* length comment*)?
//
// Comments may precede the name; every comment is tagged with its position
// relative to the length separator.
func (p *parser) parseLabel(n *Node) error {
	seenName := false
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case TokenWord, TokenQuotedLabel:
			if seenName {
				return &ParseError{
					Message: fmt.Sprintf("unexpected second label %q after node name", tok.Literal),
					Pos:     tok.Pos,
				}
			}
			seenName = true
			n.Name = tok.Literal
			_, _ = p.next()
		case TokenComment:
			p.addComment(n, tok.Literal, false)
			_, _ = p.next()
		default:
			if tok.Kind != TokenColon {
				return nil
			}
			_, _ = p.next()
			return p.parseLength(n)
		}
	}
}

// parseLength parses the branch length after a ':', with comments allowed on
// either side of the numeric value.
func (p *parser) parseLength(n *Node) error {
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Kind != TokenComment {
			break
		}
		p.addComment(n, tok.Literal, true)
		_, _ = p.next()
	}

	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind != TokenWord {
		return &ParseError{
			Message: fmt.Sprintf("expected branch length after ':', got %s (%q)", tok.Kind, tok.Literal),
			Pos:     tok.Pos,
		}
	}
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return &ParseError{
			Message: fmt.Sprintf("invalid branch length %q", tok.Literal),
			Pos:     tok.Pos,
			Cause:   err,
		}
	}
	n.SetLength(v)

	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Kind != TokenComment {
			return nil
		}
		p.addComment(n, tok.Literal, true)
		_, _ = p.next()
	}
}

func (p *parser) addComment(n *Node, text string, afterColon bool) {
	if p.opts.StripComments {
		return
	}
	n.Comments = append(n.Comments, Comment{Text: text, AfterColon: afterColon})
}

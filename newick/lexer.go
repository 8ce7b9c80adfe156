package newick

import (
	"strings"
)

// reserved punctuation that terminates an unquoted word.
const reserved = "()[],:;'"

// Lexer tokenizes Newick source text into a stream of tokens.
type Lexer struct {
	src    []byte
	pos    int // current byte offset
	line   int // current line (1-based)
	col    int // current column (1-based)
	peeked *Token
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

// Next returns the next token and advances the lexer.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespace()

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: l.currentPos()}, nil
	}

	pos := l.currentPos()
	ch := l.peek()

	switch ch {
	case '(':
		l.advance()
		return Token{Kind: TokenOpenParen, Literal: "(", Pos: pos}, nil
	case ')':
		l.advance()
		return Token{Kind: TokenCloseParen, Literal: ")", Pos: pos}, nil
	case ',':
		l.advance()
		return Token{Kind: TokenComma, Literal: ",", Pos: pos}, nil
	case ':':
		l.advance()
		return Token{Kind: TokenColon, Literal: ":", Pos: pos}, nil
	case ';':
		l.advance()
		return Token{Kind: TokenSemicolon, Literal: ";", Pos: pos}, nil
	case '\'':
		return l.scanQuoted()
	case '[':
		return l.scanComment()
	case ']':
		l.advance()
		return Token{}, &LexError{ParseError{
			Message: "unexpected ']' outside comment",
			Pos:     pos,
		}}
	}

	return l.scanWord(), nil
}

// scanQuoted consumes a quoted label, returning the raw text including the
// surrounding quotes. A doubled quote ('') and a backslash-escaped quote (\')
// both stand for a literal quote and do not close the label. Square brackets
// inside a quoted label are ordinary characters, never comments.
func (l *Lexer) scanQuoted() (Token, error) {
	pos := l.currentPos()
	var sb strings.Builder
	sb.WriteByte(l.advance()) // opening '

	for {
		if l.atEnd() {
			return Token{}, &LexError{ParseError{
				Message: "unterminated quoted label",
				Pos:     pos,
			}}
		}
		ch := l.advance()
		sb.WriteByte(ch)
		if ch == '\\' {
			if l.atEnd() {
				return Token{}, &LexError{ParseError{
					Message: "unterminated quoted label",
					Pos:     pos,
				}}
			}
			sb.WriteByte(l.advance())
			continue
		}
		if ch == '\'' {
			if l.peek() == '\'' {
				// Doubled quote: one literal quote, keep scanning.
				sb.WriteByte(l.advance())
				continue
			}
			return Token{Kind: TokenQuotedLabel, Literal: sb.String(), Pos: pos}, nil
		}
	}
}

// scanComment consumes a [...] comment, tracking bracket nesting. The
// returned literal excludes the outermost brackets only.
func (l *Lexer) scanComment() (Token, error) {
	pos := l.currentPos()
	l.advance() // consume opening [

	var sb strings.Builder
	depth := 1
	for {
		if l.atEnd() {
			return Token{}, &LexError{ParseError{
				Message: "unterminated comment",
				Pos:     pos,
			}}
		}
		ch := l.advance()
		switch ch {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return Token{Kind: TokenComment, Literal: sb.String(), Pos: pos}, nil
			}
		}
		sb.WriteByte(ch)
	}
}

// scanWord consumes a maximal run of unquoted, non-reserved characters.
func (l *Lexer) scanWord() Token {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			break
		}
		if strings.IndexByte(reserved, ch) >= 0 {
			break
		}
		l.advance()
	}

	return Token{Kind: TokenWord, Literal: string(l.src[start:l.pos]), Pos: pos}
}

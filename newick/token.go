package newick

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenOpenParen   // (
	TokenCloseParen  // )
	TokenComma       // ,
	TokenColon       // :
	TokenSemicolon   // ;
	TokenComment     // [...] with surrounding brackets stripped
	TokenQuotedLabel // '...' kept verbatim, surrounding quotes included
	TokenWord        // maximal run of unquoted non-reserved characters
)

var tokenNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenOpenParen:   "'('",
	TokenCloseParen:  "')'",
	TokenComma:       "','",
	TokenColon:       "':'",
	TokenSemicolon:   "';'",
	TokenComment:     "comment",
	TokenQuotedLabel: "quoted label",
	TokenWord:        "word",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // comment text without brackets, quoted labels verbatim, words raw
	Pos     Position
}

/*
File    : vela/internal/lexer/lexer.go

The character-scanning primitives (peek/peekN/advance, whitespace-and-
comment skipping, the next-token dispatch switch) follow the shape of
a classic hand-rolled scanner. The INDENT/DEDENT/NEWLINE protocol and
the brace-depth mode switch let a single file mix brace-delimited and
indentation-delimited blocks.
*/
package lexer

import (
	"strings"

	"github.com/rickenator/vela/internal/diag"
	"github.com/rickenator/vela/internal/source"
)

// Lexer converts Vela source text into a token stream. It supports two
// block styles within a single file: brace mode (whitespace
// insignificant while braceDepth > 0) and indentation mode (an
// INDENT/DEDENT stack, active while braceDepth == 0).
type Lexer struct {
	src  []byte
	file string

	pos  int
	line int
	col  int

	braceDepth  int
	indentStack []int

	// lineStart is true when the next token request begins a new
	// logical line in indentation mode, so the indentation-transition
	// scan (handleIndentation) must run before any ordinary token.
	lineStart bool

	pending []Token
	diags   *diag.Bag
}

// New creates a Lexer over src, attributing all locations to file.
func New(src, file string) *Lexer {
	return &Lexer{
		src:         []byte(src),
		file:        file,
		pos:         0,
		line:        1,
		col:         1,
		indentStack: []int{0},
		lineStart:   true,
		diags:       diag.NewBag(),
	}
}

// Diagnostics returns the lexical diagnostics recorded while scanning
// (unterminated strings, tab-indentation, inconsistent dedents,
// unmatched braces). The lexer itself never aborts; these are
// surfaced alongside the ILLEGAL tokens.
func (l *Lexer) Diagnostics() *diag.Bag {
	return l.diags
}

// Tokenize runs the lexer to completion and returns the full token
// sequence, always ending in a single END_OF_FILE token.
func (l *Lexer) Tokenize() []Token {
	var out []Token
	for {
		tok := l.next()
		out = append(out, tok)
		if tok.Kind == END_OF_FILE {
			break
		}
	}
	return out
}

// Lex is the package-level convenience entry point: lex(source,
// file_path) -> sequence of Token.
func Lex(src, filePath string) []Token {
	return New(src, filePath).Tokenize()
}

func (l *Lexer) loc() source.Location {
	return source.New(l.file, l.line, l.col)
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

// advance consumes the current byte and updates line/column tracking.
// Newlines are consumed explicitly by callers (they carry lexer-mode
// significance), so advance never special-cases '\n'; callers that
// cross a newline call l.crossNewline.
func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	l.col++
	return c
}

func (l *Lexer) crossNewline() {
	l.line++
	l.col = 1
}

// next produces the next token, draining the pending queue (filled by
// handleIndentation) before scanning fresh input.
func (l *Lexer) next() Token {
	if len(l.pending) > 0 {
		t := l.pending[0]
		l.pending = l.pending[1:]
		return t
	}

	if l.lineStart && l.braceDepth == 0 {
		l.lineStart = false
		l.handleIndentation()
		if len(l.pending) > 0 {
			t := l.pending[0]
			l.pending = l.pending[1:]
			return t
		}
	}

	l.skipIntraLineWhitespace()

	if l.atEOF() {
		if l.braceDepth == 0 && len(l.indentStack) > 1 {
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			return Token{Kind: DEDENT, Location: l.loc()}
		}
		if l.braceDepth > 0 {
			l.diags.Errorf(l.loc(), diag.CodeUnmatchedBrace, "unmatched '{' at end of file (%d unclosed)", l.braceDepth)
			l.braceDepth = 0
		}
		return Token{Kind: END_OF_FILE, Location: l.loc()}
	}

	c := l.peek()

	if c == '\n' {
		loc := l.loc()
		l.advance()
		l.crossNewline()
		if l.braceDepth == 0 {
			l.lineStart = true
			return Token{Kind: NEWLINE, Location: loc}
		}
		return l.next()
	}

	if c == '/' && l.peekN(1) == '/' {
		return l.scanLineComment()
	}

	if isLetter(c) {
		return l.scanIdentifier()
	}
	if isDigit(c) {
		return l.scanNumber()
	}
	if c == '"' {
		return l.scanString()
	}
	if c == '\'' {
		return l.scanChar()
	}

	return l.scanOperator()
}

// skipIntraLineWhitespace skips spaces and tabs that are not part of a
// line's leading indentation (that case is handled by
// handleIndentation). Newlines are never skipped here — they always
// reach next()'s '\n' branch so NEWLINE/INDENT/DEDENT bookkeeping is
// never bypassed.
func (l *Lexer) skipIntraLineWhitespace() {
	for !l.atEOF() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		default:
			return
		}
	}
}

// handleIndentation scans forward over blank lines, then measures the
// leading whitespace of the next non-blank line and reconciles it
// against the indentation stack, queuing INDENT/DEDENT tokens. It is
// only invoked at braceDepth == 0.
func (l *Lexer) handleIndentation() {
	for {
		width := 0
		sawTab := false
		for !l.atEOF() {
			switch l.peek() {
			case ' ':
				width++
				l.advance()
			case '\t':
				sawTab = true
				l.advance()
			default:
				goto measured
			}
		}
	measured:
		if l.atEOF() {
			return
		}
		if l.peek() == '\r' {
			l.advance()
		}
		if l.peek() == '\n' {
			// Blank line: does not affect the indentation stack.
			loc := l.loc()
			l.advance()
			l.crossNewline()
			_ = loc
			continue
		}

		if sawTab {
			loc := source.New(l.file, l.line, 1)
			l.diags.Errorf(loc, diag.CodeTabIndent, "tab in leading whitespace")
			l.pending = append(l.pending, Token{Kind: ILLEGAL, Lexeme: "tab in leading whitespace", Location: loc})
			return
		}

		top := l.indentStack[len(l.indentStack)-1]
		switch {
		case width > top:
			l.indentStack = append(l.indentStack, width)
			l.pending = append(l.pending, Token{Kind: INDENT, Location: source.New(l.file, l.line, 1)})
		case width < top:
			for len(l.indentStack) > 1 && l.indentStack[len(l.indentStack)-1] > width {
				l.indentStack = l.indentStack[:len(l.indentStack)-1]
				l.pending = append(l.pending, Token{Kind: DEDENT, Location: source.New(l.file, l.line, 1)})
			}
			if l.indentStack[len(l.indentStack)-1] != width {
				loc := source.New(l.file, l.line, 1)
				l.diags.Errorf(loc, diag.CodeBadIndent, "inconsistent dedent: no enclosing block matches column %d", width+1)
			}
		}
		return
	}
}

func (l *Lexer) scanLineComment() Token {
	loc := l.loc()
	var b strings.Builder
	for !l.atEOF() && l.peek() != '\n' {
		b.WriteByte(l.advance())
	}
	return Token{Kind: COMMENT, Lexeme: b.String(), Location: loc}
}

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isAlnum(c byte) bool {
	return isLetter(c) || isDigit(c)
}

func (l *Lexer) scanIdentifier() Token {
	loc := l.loc()
	start := l.pos
	for !l.atEOF() && isAlnum(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	return Token{Kind: lookupIdent(lexeme), Lexeme: lexeme, Location: loc}
}

func (l *Lexer) scanNumber() Token {
	loc := l.loc()
	start := l.pos

	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		l.advance()
		l.advance()
		for !l.atEOF() && (isHexDigit(l.peek()) || l.peek() == '_') {
			l.advance()
		}
		return Token{Kind: INT, Lexeme: string(l.src[start:l.pos]), Location: loc}
	}

	for !l.atEOF() && (isDigit(l.peek()) || l.peek() == '_') {
		l.advance()
	}

	isFloat := false
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		isFloat = true
		l.advance()
		for !l.atEOF() && (isDigit(l.peek()) || l.peek() == '_') {
			l.advance()
		}
	}

	kind := INT
	if isFloat {
		kind = FLOAT
	}
	return Token{Kind: kind, Lexeme: string(l.src[start:l.pos]), Location: loc}
}

var simpleEscapes = map[byte]byte{
	'n': '\n', 'r': '\r', 't': '\t', '\\': '\\', '"': '"', '\'': '\'', '0': 0,
}

func (l *Lexer) scanString() Token {
	loc := l.loc()
	l.advance() // opening quote
	var b strings.Builder
	for !l.atEOF() && l.peek() != '"' && l.peek() != '\n' {
		c := l.advance()
		if c == '\\' && !l.atEOF() {
			esc := l.advance()
			if mapped, ok := simpleEscapes[esc]; ok {
				b.WriteByte(mapped)
			} else {
				b.WriteByte('\\')
				b.WriteByte(esc)
			}
			continue
		}
		b.WriteByte(c)
	}
	if l.atEOF() || l.peek() != '"' {
		msg := "unterminated string literal: " + b.String()
		l.diags.Errorf(loc, diag.CodeUnterminatedString, "unterminated string literal")
		return Token{Kind: ILLEGAL, Lexeme: msg, Location: loc}
	}
	l.advance() // closing quote
	return Token{Kind: STRING, Lexeme: b.String(), Location: loc}
}

func (l *Lexer) scanChar() Token {
	loc := l.loc()
	l.advance() // opening quote
	var value byte
	if l.atEOF() {
		l.diags.Errorf(loc, diag.CodeUnterminatedString, "unterminated character literal")
		return Token{Kind: ILLEGAL, Lexeme: "unterminated character literal", Location: loc}
	}
	if l.peek() == '\\' && l.pos+1 < len(l.src) {
		l.advance()
		esc := l.advance()
		if mapped, ok := simpleEscapes[esc]; ok {
			value = mapped
		} else {
			value = esc
		}
	} else {
		value = l.advance()
	}
	if l.atEOF() || l.peek() != '\'' {
		l.diags.Errorf(loc, diag.CodeUnterminatedString, "unterminated character literal")
		return Token{Kind: ILLEGAL, Lexeme: "unterminated character literal", Location: loc}
	}
	l.advance() // closing quote
	return Token{Kind: CHAR, Lexeme: string(value), Location: loc}
}

// threeCharOps and twoCharOps are tried longest-first so multi-
// character operators match greedily.
var threeCharOps = map[string]TokenType{
	"<<=": SHL_ASSIGN, ">>=": SHR_ASSIGN,
}

var twoCharOps = map[string]TokenType{
	"&&": AND_AND, "||": OR_OR, "==": EQ, "!=": NEQ, "<=": LE, ">=": GE,
	"<<": SHL, ">>": SHR, "->": ARROW, "=>": FATARROW, "::": COLONCOLON,
	"..": DOTDOT, "+=": PLUS_ASSIGN, "-=": MINUS_ASSIGN, "*=": STAR_ASSIGN,
	"/=": SLASH_ASSIGN, "%=": PERCENT_ASSIGN, "&=": AMP_ASSIGN,
	"|=": PIPE_ASSIGN, "^=": CARET_ASSIGN, ":=": WALRUS,
}

var oneCharOps = map[byte]TokenType{
	'+': PLUS, '-': MINUS, '*': STAR, '/': SLASH, '%': PERCENT,
	'<': LT, '>': GT, '=': ASSIGN, '!': BANG, '&': AMP, '|': PIPE,
	'^': CARET, '~': TILDE,
	'(': LPAREN, ')': RPAREN, '[': LBRACKET, ']': RBRACKET,
	',': COMMA, ';': SEMI, ':': COLON, '.': DOT, '?': QUESTION,
}

func (l *Lexer) scanOperator() Token {
	loc := l.loc()

	if l.pos+3 <= len(l.src) {
		s := string(l.src[l.pos : l.pos+3])
		if kind, ok := threeCharOps[s]; ok {
			l.pos += 3
			l.col += 3
			return Token{Kind: kind, Lexeme: s, Location: loc}
		}
	}
	if l.pos+2 <= len(l.src) {
		s := string(l.src[l.pos : l.pos+2])
		if kind, ok := twoCharOps[s]; ok {
			l.pos += 2
			l.col += 2
			return Token{Kind: kind, Lexeme: s, Location: loc}
		}
	}

	c := l.peek()
	if c == '{' {
		l.advance()
		l.braceDepth++
		return Token{Kind: LBRACE, Lexeme: "{", Location: loc}
	}
	if c == '}' {
		l.advance()
		if l.braceDepth > 0 {
			l.braceDepth--
		} else {
			l.diags.Errorf(loc, diag.CodeUnmatchedBrace, "unmatched '}'")
		}
		return Token{Kind: RBRACE, Lexeme: "}", Location: loc}
	}
	if kind, ok := oneCharOps[c]; ok {
		l.advance()
		return Token{Kind: kind, Lexeme: string(c), Location: loc}
	}

	l.advance()
	msg := "unexpected character"
	l.diags.Errorf(loc, diag.CodeIllegalToken, "%s: %q", msg, rune(c))
	return Token{Kind: ILLEGAL, Lexeme: string(c), Location: loc}
}

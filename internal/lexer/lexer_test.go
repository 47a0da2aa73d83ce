/*
File    : vela/internal/lexer/lexer_test.go

Lexer tests, covering the token kinds defined in token.go and the
INDENT/DEDENT/brace protocol a Vela source file can mix.
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize_Operators(t *testing.T) {
	toks := Lex("123 + 2 - 12 <= 31", "t.vela")
	require.Equal(t, []TokenType{INT, PLUS, INT, MINUS, INT, LE, INT, END_OF_FILE}, kinds(toks))
}

func TestTokenize_BraceModeSuppressesIndentation(t *testing.T) {
	src := "fn main() {\n  let x = 1;\n}\n"
	toks := Lex(src, "t.vela")
	for _, tok := range toks {
		assert.NotEqual(t, INDENT, tok.Kind)
		assert.NotEqual(t, DEDENT, tok.Kind)
	}
}

func TestTokenize_IndentationMode(t *testing.T) {
	src := "fn main()\n  let x = 1\n"
	toks := Lex(src, "t.vela")
	k := kinds(toks)
	require.Contains(t, k, INDENT)
	require.Contains(t, k, DEDENT)
	// the final DEDENT must land before END_OF_FILE.
	require.Equal(t, END_OF_FILE, k[len(k)-1])
	require.Equal(t, DEDENT, k[len(k)-2])
}

func TestTokenize_TabIndentationIsIllegal(t *testing.T) {
	src := "fn main()\n\tlet x = 1\n"
	toks := Lex(src, "t.vela")
	foundIllegal := false
	for _, tok := range toks {
		if tok.Kind == ILLEGAL {
			foundIllegal = true
			assert.Equal(t, 2, tok.Location.Line)
			assert.Equal(t, 1, tok.Location.Column)
		}
	}
	assert.True(t, foundIllegal, "expected an ILLEGAL token for tab-indented line")
}

func TestTokenize_UnterminatedString(t *testing.T) {
	toks := Lex(`"abc`, "t.vela")
	require.NotEmpty(t, toks)
	assert.Equal(t, ILLEGAL, toks[0].Kind)
}

func TestTokenize_EmptyInputYieldsOnlyEOF(t *testing.T) {
	toks := Lex("", "t.vela")
	require.Len(t, toks, 1)
	assert.Equal(t, END_OF_FILE, toks[0].Kind)
}

func TestTokenize_StringEscapes(t *testing.T) {
	toks := Lex(`"a\nb\tc\\\""`, "t.vela")
	require.Len(t, toks, 2)
	assert.Equal(t, STRING, toks[0].Kind)
	assert.Equal(t, "a\nb\tc\\\"", toks[0].Lexeme)
}

func TestTokenize_MultiCharOperatorsGreedy(t *testing.T) {
	toks := Lex("<<= >>= << >> <= >= == != && || -> => :: .. :=", "t.vela")
	want := []TokenType{
		SHL_ASSIGN, SHR_ASSIGN, SHL, SHR, LE, GE, EQ, NEQ, AND_AND, OR_OR,
		ARROW, FATARROW, COLONCOLON, DOTDOT, WALRUS, END_OF_FILE,
	}
	require.Equal(t, want, kinds(toks))
}

func TestTokenize_KeywordsVersusIdentifiers(t *testing.T) {
	toks := Lex("fn let loc addr at from myfunc", "t.vela")
	want := []TokenType{FN, LET, IDENT, IDENT, IDENT, IDENT, IDENT, END_OF_FILE}
	require.Equal(t, want, kinds(toks))
	for _, name := range []string{"loc", "addr", "at", "from"} {
		assert.True(t, IsReservedIntrinsicName(name))
	}
	assert.False(t, IsReservedIntrinsicName("myfunc"))
}

func TestTokenize_CommentsAreEmitted(t *testing.T) {
	toks := Lex("// a comment\nlet x = 1", "t.vela")
	require.Equal(t, COMMENT, toks[0].Kind)
	require.Equal(t, "// a comment", toks[0].Lexeme)
}

func TestTokenize_AlwaysTerminatesWithEOF(t *testing.T) {
	inputs := []string{"", "   ", "\n\n\n", "fn x() {}", "let y = [1,2,]"}
	for _, src := range inputs {
		toks := Lex(src, "t.vela")
		require.NotEmpty(t, toks)
		assert.Equal(t, END_OF_FILE, toks[len(toks)-1].Kind)
	}
}

package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stax/scanner"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1 add",
	"{dup mul}",
	`"a string" prt // commented `,
	"1,22,333",
}

var TokenCounts = []int{1, 2, 4, 2, 3}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stax.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(testLexer, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		sc.SetErrorHandler(func(e error) {
			t.Errorf("unexpected scanner error: %v", e)
		})
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != TokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, TokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestSpans(t *testing.T) {
	LM, err := NewLMAdapter(testLexer, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("ab  {")
	tok := sc.NextToken()
	if tok.Span().From() != 0 || tok.Span().To() != 2 {
		t.Errorf("expected span (0…2) for 'ab', is %v", tok.Span())
	}
	tok = sc.NextToken()
	if int(tok.TokType()) != '{' || tok.Span().From() != 4 {
		t.Errorf("expected '{' at 4, is %q at %v", tok.Lexeme(), tok.Span())
	}
}

func TestUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stax.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(testLexer, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("a $ b")
	var errs []error
	sc.SetErrorHandler(func(e error) {
		errs = append(errs, e)
	})
	count := 0
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		count++
	}
	if len(errs) == 0 {
		t.Errorf("expected an error for '$'")
	}
	if count != 2 {
		t.Errorf("expected scanner to skip bad input and find 2 tokens, found %d", count)
	}
}

var literals = []string{"{", "}"} // The tokens representing literal strings
var keywords = []string{"nil"}    // The keyword tokens
var tokenIds = map[string]int{    // A map from the token names to their int ids
	"COMMENT": scanner.Comment,
	"ID":      scanner.Ident,
	"NUM":     scanner.Int,
	"STRING":  scanner.String,
	"nil":     10,
	"{":       '{',
	"}":       '}',
}

func testLexer(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`//[^\n]*\n?`), Skip)
	lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
	lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("ID", tokenIds["ID"]))
	lexer.Add([]byte(`[0-9]+`), MakeToken("NUM", tokenIds["NUM"]))
	lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
}

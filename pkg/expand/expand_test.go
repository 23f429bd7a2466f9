package expand

import (
	"reflect"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	toks, err := Tokenize(`cp  a.txt "b c.txt" 'd e.txt'`)
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[2].Text != "b c.txt" || !toks[2].DoubleQuoted {
		t.Fatalf("unexpected token 2: %+v", toks[2])
	}
	if toks[3].Text != "d e.txt" || !toks[3].SingleQuoted {
		t.Fatalf("unexpected token 3: %+v", toks[3])
	}
}

func TestTokenizeUnterminatedQuote(t *testing.T) {
	if _, err := Tokenize(`echo "unterminated`); err == nil {
		t.Fatalf("expected an unterminated-quote error")
	}
}

func TestExpandAliasDepthLimit(t *testing.T) {
	aliases := map[string]string{}
	for i := 0; i < 10; i++ {
		aliases[itoa(i)] = itoa(i + 1)
	}
	toks := []Token{{Text: "0"}}
	if _, err := ExpandAlias(toks, aliases); err == nil {
		t.Fatalf("expected alias depth limit to trigger")
	}
}

func itoa(n int) string {
	digits := "0123456789"
	if n < 10 {
		return string(digits[n])
	}
	return string(digits[n/10]) + string(digits[n%10])
}

func TestExpandAliasSimple(t *testing.T) {
	aliases := map[string]string{"ll": "ls -l"}
	toks := []Token{{Text: "ll"}, {Text: "/tmp"}}
	out, err := ExpandAlias(toks, aliases)
	if err != nil {
		t.Fatal(err)
	}
	var texts []string
	for _, tk := range out {
		texts = append(texts, tk.Text)
	}
	if !reflect.DeepEqual(texts, []string{"ls", "-l", "/tmp"}) {
		t.Fatalf("unexpected expansion: %v", texts)
	}
}

func TestExpandBraceCartesian(t *testing.T) {
	got := ExpandBrace("{a,b,c}{1..2}")
	want := []string{"a1", "a2", "b1", "b2", "c1", "c2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExpandBraceNoGroupReturnsLiteral(t *testing.T) {
	got := ExpandBrace("plain.txt")
	if !reflect.DeepEqual(got, []string{"plain.txt"}) {
		t.Fatalf("expected literal passthrough, got %v", got)
	}
}

func TestExpandBraceDescendingRange(t *testing.T) {
	got := ExpandBrace("{3..1}")
	want := []string{"3", "2", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExpandVariableFromUserVars(t *testing.T) {
	got := ExpandVariable("hello $NAME!", map[string]string{"NAME": "shelf"})
	if got != "hello shelf!" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandVariableBraced(t *testing.T) {
	got := ExpandVariable("${FOO}bar", map[string]string{"FOO": "baz"})
	if got != "bazbar" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandELNSingle(t *testing.T) {
	names := []string{"a.txt", "b.txt", "sub"}
	got, ok := ExpandELN("2", names)
	if !ok || len(got) != 1 || got[0] != "b.txt" {
		t.Fatalf("got %v, ok=%v", got, ok)
	}
}

func TestExpandELNRange(t *testing.T) {
	names := []string{"a.txt", "b.txt", "sub"}
	got, ok := ExpandELN("1-3", names)
	if !ok || len(got) != 3 {
		t.Fatalf("got %v, ok=%v", got, ok)
	}
}

func TestExpandELNOutOfRange(t *testing.T) {
	names := []string{"a.txt"}
	if _, ok := ExpandELN("5", names); ok {
		t.Fatalf("expected out-of-range ELN to fail")
	}
}

func TestExpandFastback(t *testing.T) {
	got, ok := ExpandFastback("...")
	if !ok || got != "../.." {
		t.Fatalf("got %q, ok=%v", got, ok)
	}
	got, ok = ExpandFastback("....")
	if !ok || got != "../../.." {
		t.Fatalf("got %q, ok=%v", got, ok)
	}
}

func TestExpandFullPipelineELNNeverAppliesToCommand(t *testing.T) {
	ctx := Context{Dir: t.TempDir(), Names: []string{"a.txt", "b.txt"}}
	argv, err := Expand("2 1", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if argv[0] != "2" {
		t.Fatalf("expected argv[0] to stay literal '2', got %q", argv[0])
	}
	if argv[1] != "a.txt" {
		t.Fatalf("expected argv[1] ELN-expanded to a.txt, got %q", argv[1])
	}
}

func TestExpandSingleQuotedSuppressesExpansion(t *testing.T) {
	ctx := Context{Dir: t.TempDir(), Names: []string{"a.txt"}}
	argv, err := Expand(`echo '1'`, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if argv[1] != "1" {
		t.Fatalf("expected single-quoted '1' to stay literal, got %q", argv[1])
	}
}

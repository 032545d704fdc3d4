package glob

import (
	"errors"
	"regexp/syntax"
	"testing"
)

func parse(t *testing.T, pattern string, cfg Config) *syntax.Regexp {
	t.Helper()
	re, err := Parse(pattern, cfg)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return re
}

func TestLiteralRuns(t *testing.T) {
	re := parse(t, "abc", Config{})
	if re.Op != syntax.OpLiteral || string(re.Rune) != "abc" {
		t.Fatalf("abc lowered to %v", re)
	}
}

func TestWildcards(t *testing.T) {
	re := parse(t, "a?b", Config{})
	if re.Op != syntax.OpConcat || len(re.Sub) != 3 {
		t.Fatalf("a?b lowered to %v", re)
	}
	if re.Sub[1].Op != syntax.OpCharClass {
		t.Errorf("? should be a class excluding the separator, got %v", re.Sub[1].Op)
	}

	re = parse(t, "a*b", Config{})
	if re.Sub[1].Op != syntax.OpStar {
		t.Errorf("* should be a star, got %v", re.Sub[1].Op)
	}
	if re.Sub[1].Sub[0].Op != syntax.OpCharClass {
		t.Errorf("* should stay within a component")
	}

	re = parse(t, "a**b", Config{})
	if re.Sub[1].Op != syntax.OpStar || re.Sub[1].Sub[0].Op != syntax.OpAnyChar {
		t.Errorf("** should be a star over any char, got %v", re.Sub[1])
	}
}

func TestSeparatorDialects(t *testing.T) {
	// Unix: backslash escapes.
	re := parse(t, `a\*b`, Config{Separator: SeparatorUnix})
	if re.Op != syntax.OpLiteral || string(re.Rune) != "a*b" {
		t.Errorf(`escaped * should be literal, got %v`, re)
	}

	// Windows: backslash is the separator, never an escape.
	re = parse(t, `a\b`, Config{Separator: SeparatorWindows})
	if re.Op != syntax.OpLiteral || string(re.Rune) != `a\b` {
		t.Errorf(`windows backslash should be a literal separator, got %v`, re)
	}
}

func TestAnchorAssembly(t *testing.T) {
	// Trailing wildcard anchors the start.
	re := parse(t, "foo*", Config{})
	if re.Sub[0].Op != syntax.OpBeginText {
		t.Errorf("foo* should begin with a start anchor, got %v", re.Sub[0].Op)
	}

	// Leading wildcard anchors the end.
	re = parse(t, "*.mp4", Config{})
	if re.Sub[len(re.Sub)-1].Op != syntax.OpEndText {
		t.Errorf("*.mp4 should end with an end anchor")
	}

	// AnchorWhole brackets the pattern.
	re = parse(t, "ab", Config{Anchor: AnchorWhole})
	if re.Sub[0].Op != syntax.OpBeginText || re.Sub[len(re.Sub)-1].Op != syntax.OpEndText {
		t.Errorf("AnchorWhole should bracket the pattern, got %v", re)
	}

	// A bare * stays unanchored.
	re = parse(t, "*", Config{})
	if re.Op != syntax.OpStar {
		t.Errorf("bare * lowered to %v", re)
	}
}

func TestClasses(t *testing.T) {
	re := parse(t, "[abc]", Config{})
	if re.Op != syntax.OpCharClass || len(re.Rune) != 6 {
		t.Fatalf("[abc] lowered to %v (%d pairs)", re, len(re.Rune)/2)
	}

	re = parse(t, "[a-z]", Config{})
	if len(re.Rune) != 2 || re.Rune[0] != 'a' || re.Rune[1] != 'z' {
		t.Fatalf("[a-z] lowered to %v", re.Rune)
	}

	// Negation covers the complement.
	re = parse(t, "[!b]", Config{})
	if len(re.Rune) != 4 || re.Rune[1] != 'a' || re.Rune[2] != 'c' {
		t.Fatalf("[!b] lowered to %v", re.Rune)
	}

	// A ] right after the opening bracket is literal.
	re = parse(t, "[]]", Config{})
	if re.Op != syntax.OpCharClass || re.Rune[0] != ']' {
		t.Fatalf("[]] lowered to %v", re)
	}
}

func TestClassErrors(t *testing.T) {
	if _, err := Parse("a[b", Config{}); !errors.Is(err, ErrUnterminatedClass) {
		t.Errorf("a[b: err = %v", err)
	}
	if _, err := Parse(`a\`, Config{Separator: SeparatorUnix}); !errors.Is(err, ErrTrailingEscape) {
		t.Errorf(`a\: err = %v`, err)
	}
	if _, err := Parse("[z-a]", Config{}); err == nil {
		t.Error("[z-a]: expected invalid range error")
	}
}

func TestSeparatorAny(t *testing.T) {
	re := parse(t, "?", Config{Separator: SeparatorAny})
	if re.Op != syntax.OpCharClass {
		t.Fatalf("? lowered to %v", re)
	}
	in := func(r rune) bool {
		for i := 0; i+1 < len(re.Rune); i += 2 {
			if r >= re.Rune[i] && r <= re.Rune[i+1] {
				return true
			}
		}
		return false
	}
	if in('/') || in('\\') {
		t.Error("? must not match either separator")
	}
	if !in('a') || !in('中') {
		t.Error("? should match ordinary code points")
	}
}

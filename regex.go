package ibmatch

import (
	"regexp/syntax"
	"strings"
	"sync"

	"github.com/coregx/ibmatch/glob"
	"github.com/coregx/ibmatch/nfa"
)

// Regex is a compiled regular expression (or glob) whose literal atoms
// are transliteration-aware: "pysou.*?(any|every)thing" matches
// 拼音搜索Everything.
//
// A Regex is safe for concurrent use; per-search scratch state is pooled.
type Regex struct {
	pattern string
	prog    *nfa.NFA
	pool    sync.Pool
}

// CallbackFunc reports the haystack rune counts a %{name} callback atom
// accepts at rs[at]. Callbacks must be pure and must not modify the
// haystack.
type CallbackFunc = nfa.CallbackFunc

// RegexOption configures regex compilation.
type RegexOption func(*regexOptions)

type regexOptions struct {
	callbacks map[string]nfa.CallbackFunc
	maxStates int
	separator rune
}

// WithCallback registers a named callback usable as a %{name} atom in
// the pattern. The automaton treats the atom as a transition whose
// accepted lengths are supplied by fn.
func WithCallback(name string, fn CallbackFunc) RegexOption {
	return func(o *regexOptions) {
		if o.callbacks == nil {
			o.callbacks = make(map[string]nfa.CallbackFunc)
		}
		o.callbacks[name] = fn
	}
}

// WithMaxStates caps the compiled automaton size. Exceeding the cap is a
// build error (resource limit), never an unbounded allocation.
func WithMaxStates(n int) RegexOption {
	return func(o *regexOptions) { o.maxStates = n }
}

// CompileRegex compiles an ERE-style pattern under cfg. The syntax is
// regexp/syntax's Perl dialect with non-capturing semantics (capture
// groups are accepted but not reported), plus a leading (?x) flag for
// verbose mode and %{name} callback atoms.
//
// Errors surface at build time; a successfully built Regex never fails
// at search time.
func CompileRegex(pattern string, cfg MatchConfig, opts ...RegexOption) (*Regex, error) {
	var o regexOptions
	for _, opt := range opts {
		opt(&o)
	}

	src := pattern
	if rest, ok := strings.CutPrefix(src, "(?x)"); ok {
		src = stripVerbose(rest)
	}

	parts, err := splitCallbacks(src)
	if err != nil {
		return nil, err
	}

	if cfg.AnchoredEnd {
		parts = append(parts, nfa.Part{Re: &syntax.Regexp{Op: syntax.OpEndText}})
	}

	return compileParts(pattern, parts, cfg, o)
}

// MustCompileRegex is CompileRegex that panics on invalid patterns, for
// patterns known valid at compile time.
func MustCompileRegex(pattern string, cfg MatchConfig, opts ...RegexOption) *Regex {
	re, err := CompileRegex(pattern, cfg, opts...)
	if err != nil {
		panic("ibmatch: CompileRegex(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileGlob lowers a glob pattern and compiles it under cfg. Literal
// runs transliterate exactly as in CompileRegex.
func CompileGlob(pattern string, cfg MatchConfig, globCfg glob.Config, opts ...RegexOption) (*Regex, error) {
	re, err := glob.Parse(pattern, globCfg)
	if err != nil {
		return nil, err
	}

	var o regexOptions
	for _, opt := range opts {
		opt(&o)
	}
	if globCfg.PathAnchors {
		sep := '/'
		if globCfg.Separator == glob.SeparatorWindows {
			sep = '\\'
		}
		o.separator = sep
	}

	return compileParts(pattern, []nfa.Part{{Re: re}}, cfg, o)
}

func compileParts(pattern string, parts []nfa.Part, cfg MatchConfig, o regexOptions) (*Regex, error) {
	comp := nfa.NewCompiler(nfa.CompilerConfig{
		MaxStates:       o.maxStates,
		CaseInsensitive: cfg.CaseInsensitive,
		Anchored:        cfg.AnchoredStart,
		Separator:       o.separator,
		Atoms:           atomCompiler{cfg: cfg},
		Callbacks:       o.callbacks,
	})
	prog, err := comp.CompileParts(parts)
	if err != nil {
		return nil, err
	}

	re := &Regex{pattern: pattern, prog: prog}
	re.pool.New = func() any {
		return nfa.NewBoundedBacktracker(prog)
	}
	return re, nil
}

// Pattern returns the pattern the Regex was compiled from.
func (re *Regex) Pattern() string { return re.pattern }

// IsMatch reports whether the pattern matches anywhere in the haystack.
func (re *Regex) IsMatch(haystack string) bool {
	_, ok := re.Find(haystack)
	return ok
}

// Find returns the leftmost match with byte offsets into the UTF-8
// haystack.
func (re *Regex) Find(haystack string) (Match, bool) {
	rs, offs := decodeString(haystack)
	return re.findRunes(rs, offs)
}

// FindUTF16 returns the leftmost match with offsets in 16-bit units.
func (re *Regex) FindUTF16(haystack []uint16) (Match, bool) {
	rs, offs := decodeUTF16(haystack)
	return re.findRunes(rs, offs)
}

// FindRunes returns the leftmost match with offsets in code points.
func (re *Regex) FindRunes(haystack []rune) (Match, bool) {
	offs := make([]int, len(haystack)+1)
	for i := range offs {
		offs[i] = i
	}
	return re.findRunes(haystack, offs)
}

func (re *Regex) findRunes(rs []rune, offs []int) (Match, bool) {
	bt := re.pool.Get().(*nfa.BoundedBacktracker)
	defer re.pool.Put(bt)

	start, end, ok := bt.Search(rs)
	if !ok {
		return Match{}, false
	}
	return Match{start: offs[start], end: offs[end]}, true
}

// stripVerbose removes unescaped whitespace and #-comments outside
// character classes, implementing the (?x) verbose mode that
// regexp/syntax lacks.
func stripVerbose(src string) string {
	var b strings.Builder
	inClass := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\\' && i+1 < len(src):
			b.WriteByte(c)
			b.WriteByte(src[i+1])
			i++
		case c == '[':
			inClass = true
			b.WriteByte(c)
		case c == ']':
			inClass = false
			b.WriteByte(c)
		case inClass:
			b.WriteByte(c)
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			// dropped
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// splitCallbacks cuts %{name} atoms out of the pattern and parses the
// regex segments around them.
func splitCallbacks(src string) ([]nfa.Part, error) {
	var parts []nfa.Part
	var seg strings.Builder
	inClass := false

	flush := func() error {
		if seg.Len() == 0 {
			return nil
		}
		re, err := syntax.Parse(seg.String(), syntax.Perl)
		if err != nil {
			return &nfa.CompileError{Pattern: seg.String(), Err: err}
		}
		parts = append(parts, nfa.Part{Re: re})
		seg.Reset()
		return nil
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\\' && i+1 < len(src):
			seg.WriteByte(c)
			seg.WriteByte(src[i+1])
			i++
		case c == '[' && !inClass:
			inClass = true
			seg.WriteByte(c)
		case c == ']' && inClass:
			inClass = false
			seg.WriteByte(c)
		case c == '%' && !inClass && i+1 < len(src) && src[i+1] == '{':
			end := strings.IndexByte(src[i+2:], '}')
			if end < 0 {
				seg.WriteByte(c)
				continue
			}
			if err := flush(); err != nil {
				return nil, err
			}
			parts = append(parts, nfa.Part{Callback: src[i+2 : i+2+end]})
			i += 2 + end
		default:
			seg.WriteByte(c)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		re, _ := syntax.Parse("", syntax.Perl)
		parts = append(parts, nfa.Part{Re: re})
	}
	return parts, nil
}

package nfa

import (
	"regexp/syntax"
)

// AtomCompiler builds transliteration atoms for literal runs. The matcher
// front-end provides one; when absent, literals compile to plain rune
// chains.
type AtomCompiler interface {
	CompileAtom(literal string) TranslitAtom
}

// CompilerConfig configures NFA compilation.
type CompilerConfig struct {
	// MaxStates caps the compiled automaton size; exceeding it returns
	// ErrTooComplex. 0 means DefaultMaxStates.
	MaxStates int

	// DotNewline makes '.' match '\n'.
	DotNewline bool

	// CaseInsensitive applies simple case folding on rune transitions.
	CaseInsensitive bool

	// Anchored forces matches to begin at the haystack start.
	Anchored bool

	// Separator, when non-zero, makes start/end assertions also match
	// at path component boundaries (glob path anchor mode).
	Separator rune

	// Atoms lowers literal runs into transliteration meta-states. Nil
	// compiles literals as plain rune chains.
	Atoms AtomCompiler

	// Callbacks resolves %{name} atoms.
	Callbacks map[string]CallbackFunc

	// MaxRecursionDepth limits compile recursion. 0 means 100.
	MaxRecursionDepth int
}

// Compiler compiles regexp/syntax trees into NFAs.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	depth   int
}

// NewCompiler creates a compiler with the given configuration.
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxRecursionDepth == 0 {
		config.MaxRecursionDepth = 100
	}
	return &Compiler{config: config}
}

// Part is one element of a compiled sequence: either a parsed regex tree
// or a named callback atom.
type Part struct {
	Re       *syntax.Regexp
	Callback string
}

// frag is a compiled fragment: an entry state and the states with
// dangling outgoing edges to patch.
type frag struct {
	start StateID
	outs  []StateID
}

// Compile parses and compiles a pattern. Parse errors are wrapped in
// CompileError around ErrInvalidPattern semantics (the syntax error is
// preserved for Unwrap).
func (c *Compiler) Compile(pattern string) (*NFA, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return c.CompileRegexp(re)
}

// CompileRegexp compiles a parsed tree.
func (c *Compiler) CompileRegexp(re *syntax.Regexp) (*NFA, error) {
	return c.CompileParts([]Part{{Re: re}})
}

// CompileParts compiles a sequence of regex trees and callback atoms
// into one automaton.
func (c *Compiler) CompileParts(parts []Part) (*NFA, error) {
	c.builder = NewBuilder(c.config.MaxStates)
	c.depth = 0

	var f frag
	first := true
	for _, part := range parts {
		var pf frag
		var err error
		if part.Callback != "" {
			pf, err = c.compileCallback(part.Callback)
		} else {
			pf, err = c.compile(part.Re)
		}
		if err != nil {
			return nil, err
		}
		if first {
			f = pf
			first = false
			continue
		}
		c.patchAll(f.outs, pf.start)
		f.outs = pf.outs
	}
	if first {
		// Empty sequence matches everywhere.
		id, err := c.builder.AddMatch()
		if err != nil {
			return nil, &CompileError{Err: err}
		}
		c.builder.SetStart(id)
		return c.builder.Build(c.buildOptions()...)
	}

	matchID, err := c.builder.AddMatch()
	if err != nil {
		return nil, &CompileError{Err: err}
	}
	c.patchAll(f.outs, matchID)
	c.builder.SetStart(f.start)

	return c.builder.Build(c.buildOptions()...)
}

func (c *Compiler) buildOptions() []BuildOption {
	return []BuildOption{
		WithAnchoredStart(c.config.Anchored),
		WithCaseInsensitive(c.config.CaseInsensitive),
		WithSeparator(c.config.Separator),
	}
}

func (c *Compiler) patchAll(outs []StateID, target StateID) {
	for _, out := range outs {
		c.builder.Patch(out, target)
	}
}

func (c *Compiler) compileCallback(name string) (frag, error) {
	fn, ok := c.config.Callbacks[name]
	if !ok {
		return frag{}, &CompileError{Pattern: "%{" + name + "}", Err: ErrUnknownCallback}
	}
	id, err := c.builder.AddCallback(name, fn, InvalidState)
	if err != nil {
		return frag{}, &CompileError{Err: err}
	}
	return frag{start: id, outs: []StateID{id}}, nil
}

// compile recursively compiles a syntax tree node.
func (c *Compiler) compile(re *syntax.Regexp) (frag, error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.config.MaxRecursionDepth {
		return frag{}, &CompileError{Err: ErrTooComplex}
	}

	switch re.Op {
	case syntax.OpEmptyMatch, syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		// Word boundaries are not meaningful under transliteration;
		// they compile to empty matches like the stdlib's (?i) folds.
		return c.compileEmpty()

	case syntax.OpBeginText:
		return c.compileLook(LookStart)

	case syntax.OpEndText:
		return c.compileLook(LookEnd)

	case syntax.OpLiteral:
		return c.compileLiteral(re.Rune)

	case syntax.OpCharClass:
		return c.compileClass(re.Rune)

	case syntax.OpAnyChar:
		return c.compileAny(true)

	case syntax.OpAnyCharNotNL:
		return c.compileAny(c.config.DotNewline)

	case syntax.OpCapture:
		// Captures are treated as non-capturing groups.
		return c.compile(re.Sub[0])

	case syntax.OpConcat:
		return c.compileConcat(re.Sub)

	case syntax.OpAlternate:
		return c.compileAlternate(re.Sub)

	case syntax.OpStar:
		return c.compileStar(re.Sub[0], re.Flags&syntax.NonGreedy != 0)

	case syntax.OpPlus:
		return c.compilePlus(re.Sub[0], re.Flags&syntax.NonGreedy != 0)

	case syntax.OpQuest:
		return c.compileQuest(re.Sub[0], re.Flags&syntax.NonGreedy != 0)

	case syntax.OpRepeat:
		return c.compileRepeat(re, re.Flags&syntax.NonGreedy != 0)

	case syntax.OpNoMatch:
		id, err := c.builder.AddFail()
		if err != nil {
			return frag{}, &CompileError{Err: err}
		}
		return frag{start: id, outs: nil}, nil
	}

	return frag{}, &CompileError{Err: ErrInvalidPattern}
}

func (c *Compiler) compileEmpty() (frag, error) {
	id, err := c.builder.AddEpsilon(InvalidState)
	if err != nil {
		return frag{}, &CompileError{Err: err}
	}
	return frag{start: id, outs: []StateID{id}}, nil
}

func (c *Compiler) compileLook(look Look) (frag, error) {
	id, err := c.builder.AddLook(look, InvalidState)
	if err != nil {
		return frag{}, &CompileError{Err: err}
	}
	return frag{start: id, outs: []StateID{id}}, nil
}

// compileLiteral lowers a literal run. With an atom compiler configured
// the whole run becomes a single transliteration meta-state; otherwise a
// chain of rune states.
func (c *Compiler) compileLiteral(runes []rune) (frag, error) {
	if len(runes) == 0 {
		return c.compileEmpty()
	}

	if c.config.Atoms != nil {
		atom := c.config.Atoms.CompileAtom(string(runes))
		id, err := c.builder.AddTranslit(atom, InvalidState)
		if err != nil {
			return frag{}, &CompileError{Err: err}
		}
		return frag{start: id, outs: []StateID{id}}, nil
	}

	var start, prev StateID
	for i, r := range runes {
		id, err := c.builder.AddRuneRange(r, r, InvalidState)
		if err != nil {
			return frag{}, &CompileError{Err: err}
		}
		if i == 0 {
			start = id
		} else {
			c.builder.Patch(prev, id)
		}
		prev = id
	}
	return frag{start: start, outs: []StateID{prev}}, nil
}

// compileClass compiles a character class given as inclusive rune pairs.
func (c *Compiler) compileClass(pairs []rune) (frag, error) {
	if len(pairs) == 0 {
		id, err := c.builder.AddFail()
		if err != nil {
			return frag{}, &CompileError{Err: err}
		}
		return frag{start: id}, nil
	}
	if len(pairs) == 2 {
		id, err := c.builder.AddRuneRange(pairs[0], pairs[1], InvalidState)
		if err != nil {
			return frag{}, &CompileError{Err: err}
		}
		return frag{start: id, outs: []StateID{id}}, nil
	}

	trans := make([]Transition, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		trans = append(trans, Transition{Lo: pairs[i], Hi: pairs[i+1], Next: InvalidState})
	}
	id, err := c.builder.AddSparse(trans)
	if err != nil {
		return frag{}, &CompileError{Err: err}
	}
	return frag{start: id, outs: []StateID{id}}, nil
}

func (c *Compiler) compileAny(withNewline bool) (frag, error) {
	if withNewline {
		return c.compileClass([]rune{0, 0x10FFFF})
	}
	return c.compileClass([]rune{0, '\n' - 1, '\n' + 1, 0x10FFFF})
}

func (c *Compiler) compileConcat(subs []*syntax.Regexp) (frag, error) {
	if len(subs) == 0 {
		return c.compileEmpty()
	}
	f, err := c.compile(subs[0])
	if err != nil {
		return frag{}, err
	}
	for _, sub := range subs[1:] {
		sf, err := c.compile(sub)
		if err != nil {
			return frag{}, err
		}
		c.patchAll(f.outs, sf.start)
		f.outs = sf.outs
	}
	return f, nil
}

func (c *Compiler) compileAlternate(subs []*syntax.Regexp) (frag, error) {
	if len(subs) == 0 {
		return c.compileEmpty()
	}
	if len(subs) == 1 {
		return c.compile(subs[0])
	}

	// Right-leaning split chain preserves leftmost-first priority.
	last, err := c.compile(subs[len(subs)-1])
	if err != nil {
		return frag{}, err
	}
	f := last
	for i := len(subs) - 2; i >= 0; i-- {
		sf, err := c.compile(subs[i])
		if err != nil {
			return frag{}, err
		}
		split, err := c.builder.AddSplit(sf.start, f.start)
		if err != nil {
			return frag{}, &CompileError{Err: err}
		}
		f = frag{start: split, outs: append(sf.outs, f.outs...)}
	}
	return f, nil
}

// compileStar builds sub* (or sub*? when lazy).
func (c *Compiler) compileStar(sub *syntax.Regexp, lazy bool) (frag, error) {
	sf, err := c.compile(sub)
	if err != nil {
		return frag{}, err
	}
	left, right := sf.start, InvalidState
	if lazy {
		left, right = InvalidState, sf.start
	}
	split, err := c.builder.AddSplit(left, right)
	if err != nil {
		return frag{}, &CompileError{Err: err}
	}
	c.patchAll(sf.outs, split)
	return frag{start: split, outs: []StateID{split}}, nil
}

// compilePlus builds sub+ (or sub+? when lazy).
func (c *Compiler) compilePlus(sub *syntax.Regexp, lazy bool) (frag, error) {
	sf, err := c.compile(sub)
	if err != nil {
		return frag{}, err
	}
	left, right := sf.start, InvalidState
	if lazy {
		left, right = InvalidState, sf.start
	}
	split, err := c.builder.AddSplit(left, right)
	if err != nil {
		return frag{}, &CompileError{Err: err}
	}
	c.patchAll(sf.outs, split)
	return frag{start: sf.start, outs: []StateID{split}}, nil
}

// compileQuest builds sub? (or sub?? when lazy).
func (c *Compiler) compileQuest(sub *syntax.Regexp, lazy bool) (frag, error) {
	sf, err := c.compile(sub)
	if err != nil {
		return frag{}, err
	}
	var split StateID
	if lazy {
		split, err = c.builder.AddSplit(InvalidState, sf.start)
	} else {
		split, err = c.builder.AddSplit(sf.start, InvalidState)
	}
	if err != nil {
		return frag{}, &CompileError{Err: err}
	}
	return frag{start: split, outs: append(sf.outs, split)}, nil
}

// compileRepeat expands sub{min,max} into copies; max < 0 means
// unbounded.
func (c *Compiler) compileRepeat(re *syntax.Regexp, lazy bool) (frag, error) {
	sub := re.Sub[0]
	min, max := re.Min, re.Max

	var f frag
	have := false
	appendFrag := func(nf frag) {
		if !have {
			f = nf
			have = true
			return
		}
		c.patchAll(f.outs, nf.start)
		f.outs = nf.outs
	}

	for i := 0; i < min; i++ {
		sf, err := c.compile(sub)
		if err != nil {
			return frag{}, err
		}
		appendFrag(sf)
	}

	if max < 0 {
		sf, err := c.compileStar(sub, lazy)
		if err != nil {
			return frag{}, err
		}
		appendFrag(sf)
		return f, nil
	}

	for i := min; i < max; i++ {
		sf, err := c.compileQuest(sub, lazy)
		if err != nil {
			return frag{}, err
		}
		appendFrag(sf)
	}

	if !have {
		return c.compileEmpty()
	}
	return f, nil
}

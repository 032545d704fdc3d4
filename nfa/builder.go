package nfa

// Builder constructs NFAs incrementally. The compiler drives it; tests
// use it directly for hand-built automata.
type Builder struct {
	states    []State
	start     StateID
	maxStates int
}

// NewBuilder creates a builder. maxStates caps the automaton size; 0
// means DefaultMaxStates.
func NewBuilder(maxStates int) *Builder {
	if maxStates == 0 {
		maxStates = DefaultMaxStates
	}
	return &Builder{
		states:    make([]State, 0, 16),
		start:     InvalidState,
		maxStates: maxStates,
	}
}

// DefaultMaxStates is the default compiled-state limit. Patterns
// exceeding it fail to build with ErrTooComplex instead of allocating
// unbounded memory.
const DefaultMaxStates = 10000

func (b *Builder) add(s State) (StateID, error) {
	if len(b.states) >= b.maxStates {
		return InvalidState, ErrTooComplex
	}
	id := StateID(len(b.states))
	s.id = id
	b.states = append(b.states, s)
	return id, nil
}

// AddMatch adds an accepting state.
func (b *Builder) AddMatch() (StateID, error) {
	return b.add(State{kind: StateMatch})
}

// AddRuneRange adds a state transitioning on one code point in [lo, hi].
func (b *Builder) AddRuneRange(lo, hi rune, next StateID) (StateID, error) {
	return b.add(State{kind: StateRuneRange, lo: lo, hi: hi, next: next})
}

// AddSparse adds a character class state. The transitions are copied.
func (b *Builder) AddSparse(transitions []Transition) (StateID, error) {
	trans := make([]Transition, len(transitions))
	copy(trans, transitions)
	return b.add(State{kind: StateSparse, transitions: trans})
}

// AddSplit adds an epsilon split; the left branch has priority.
func (b *Builder) AddSplit(left, right StateID) (StateID, error) {
	return b.add(State{kind: StateSplit, left: left, right: right})
}

// AddEpsilon adds an epsilon transition.
func (b *Builder) AddEpsilon(next StateID) (StateID, error) {
	return b.add(State{kind: StateEpsilon, next: next})
}

// AddTranslit adds a transliteration meta-state.
func (b *Builder) AddTranslit(atom TranslitAtom, next StateID) (StateID, error) {
	return b.add(State{kind: StateTranslit, atom: atom, next: next})
}

// AddCallback adds a callback transition state.
func (b *Builder) AddCallback(name string, fn CallbackFunc, next StateID) (StateID, error) {
	return b.add(State{kind: StateCallback, cbName: name, callback: fn, next: next})
}

// AddLook adds a zero-width assertion state.
func (b *Builder) AddLook(look Look, next StateID) (StateID, error) {
	return b.add(State{kind: StateLook, look: look, next: next})
}

// AddFail adds a dead state.
func (b *Builder) AddFail() (StateID, error) {
	return b.add(State{kind: StateFail})
}

// Patch points every dangling (InvalidState) outgoing edge of stateID at
// target.
func (b *Builder) Patch(stateID, target StateID) {
	s := &b.states[stateID]
	switch s.kind {
	case StateRuneRange, StateEpsilon, StateTranslit, StateCallback, StateLook:
		if s.next == InvalidState {
			s.next = target
		}
	case StateSparse:
		for i := range s.transitions {
			if s.transitions[i].Next == InvalidState {
				s.transitions[i].Next = target
			}
		}
	case StateSplit:
		if s.left == InvalidState {
			s.left = target
		}
		if s.right == InvalidState {
			s.right = target
		}
	}
}

// SetStart sets the start state.
func (b *Builder) SetStart(start StateID) { b.start = start }

// States returns the number of states added so far.
func (b *Builder) States() int { return len(b.states) }

// Build finalizes the NFA.
func (b *Builder) Build(opts ...BuildOption) (*NFA, error) {
	if b.start == InvalidState {
		return nil, &CompileError{Err: ErrInvalidPattern}
	}
	n := &NFA{
		states: b.states,
		start:  b.start,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// BuildOption configures the built NFA.
type BuildOption func(*NFA)

// WithAnchoredStart forces matches to begin at the haystack start.
func WithAnchoredStart(anchored bool) BuildOption {
	return func(n *NFA) { n.anchoredStart = anchored }
}

// WithCaseInsensitive applies simple case folding on rune transitions.
func WithCaseInsensitive(ci bool) BuildOption {
	return func(n *NFA) { n.caseInsensitive = ci }
}

// WithSeparator makes LookStart/LookEnd also match at path component
// boundaries delimited by sep.
func WithSeparator(sep rune) BuildOption {
	return func(n *NFA) { n.separator = sep }
}

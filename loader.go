package automaton

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// ErrInvalidNumber A state or destination field is not a decimal number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrStateOrder A state number does not match the position of its line.
	ErrStateOrder = errors.New("invalid state number")
	// ErrStateRange A destination refers to a state that is never declared.
	ErrStateRange = errors.New("state out of range")
)

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "List", Pattern: `[0-9,]+`},
	{Name: "Blank", Pattern: `_`},
	{Name: "Mark", Pattern: `[>*]`},
	{Name: "Space", Pattern: `[ \t]+`},
})

// entry One line of the text format: [>]n[*] <ws> dests0 <ws> dests1.
type entry struct {
	Initial bool   `parser:"@'>'?"`
	State   string `parser:"@List"`
	Final   bool   `parser:"@'*'? Space"`
	Dests0  string `parser:"@(List | Blank) Space"`
	Dests1  string `parser:"@(List | Blank)"`
}

var lineParser = participle.MustBuild[entry](participle.Lexer(lineLexer))

type loadOptions struct {
	logger *slog.Logger
}

type LoadOption func(*loadOptions)

// WithLogger Sets the logger that receives skipped-line notices.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		o.logger = logger
	}
}

func newLoadOptions(opts ...LoadOption) *loadOptions {
	o := &loadOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// LoadFile Reads an automaton from the named file. See Load.
func LoadFile(path string, opts ...LoadOption) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, opts...)
}

// Load Reads an automaton in the line format written by Dump. Lines that do not match the format are
// skipped and logged. If every state has exactly one destination per label and exactly one state is
// marked initial, the lines are taken as the automaton itself; otherwise they describe a
// non-deterministic automaton, which is determinized.
func Load(r io.Reader, opts ...LoadOption) (*Automaton, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return LoadLines(lines, opts...)
}

// LoadLines Same as Load, for input already split into lines.
func LoadLines(lines []string, opts ...LoadOption) (*Automaton, error) {
	o := newLoadOptions(opts...)

	var (
		initial []int
		accept  []int
		dests   [][numLabels][]int
	)
	deterministic := true
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		e, err := lineParser.ParseString("", line)
		if err != nil || strings.Contains(e.State, ",") {
			o.logger.Info("skip line", "line", line)
			continue
		}

		state := len(dests)
		n, err := strconv.Atoi(e.State)
		if err != nil {
			return nil, fmt.Errorf("%w: state %q", ErrInvalidNumber, e.State)
		}
		if n != state {
			return nil, fmt.Errorf("%w: %d != %d", ErrStateOrder, n, state)
		}

		var d [numLabels][]int
		for label, field := range [numLabels]string{e.Dests0, e.Dests1} {
			if d[label], err = parseDests(field); err != nil {
				return nil, err
			}
			if len(d[label]) != 1 {
				deterministic = false
			}
		}
		dests = append(dests, d)
		if e.Initial {
			initial = append(initial, state)
		}
		if e.Final {
			accept = append(accept, state)
		}
	}

	for s, d := range dests {
		for label := range d {
			for _, dest := range d[label] {
				if dest >= len(dests) {
					return nil, fmt.Errorf("%w: state %d has destination %d on %d, but only %d states are declared",
						ErrStateRange, s, dest, label, len(dests))
				}
			}
		}
	}

	if deterministic && len(initial) == 1 {
		delta := make([][2]int, len(dests))
		for s, d := range dests {
			delta[s] = [2]int{d[0][0], d[1][0]}
		}
		o.logger.Debug("loaded deterministic automaton", "states", len(delta))
		return NewAutomaton(initial[0], accept, delta), nil
	}

	b := NewBuilder()
	for range dests {
		b.CreateState()
	}
	for s, d := range dests {
		for label := range d {
			for _, dest := range d[label] {
				if err := b.AddTransition(s, dest, label); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, s := range initial {
		b.SetInitial(s, true)
	}
	for _, s := range accept {
		b.SetAccept(s, true)
	}
	a := Determinize(b)
	o.logger.Debug("determinized automaton", "nfaStates", len(dests), "states", a.GetNumStates())
	return a, nil
}

// parseDests Parses "_" or a comma-separated list of state numbers.
func parseDests(field string) ([]int, error) {
	if field == "_" {
		return nil, nil
	}
	parts := strings.Split(field, ",")
	dests := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: expected comma separated states, got %q", ErrInvalidNumber, field)
		}
		dests = append(dests, n)
	}
	return dests, nil
}

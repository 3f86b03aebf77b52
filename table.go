package qgate

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/theapemachine/errnie"
)

/*
Table is a closed automaton over exact states: every state reachable from
the identity columns under the five generators, numbered in canonical order,
with the successor of every (state, generator) pair.

Once built, a Table turns generator application into an integer lookup.
*/
type Table struct {
	States []Qubit
	Next   [][NumGenerators]int
	index  map[Qubit]int
}

// normTolerance bounds |α|²+|β|² - 1 for a materialized state.
const normTolerance = 1e-12

// maxTableStates is the number of distinct tag quadruples.
const maxTableStates = len(Domain) * len(Domain) * len(Domain) * len(Domain)

// tableHeader prefixes the state count in the text format.
const tableHeader = "Qubits:"

// stateDumper shows the amplitude tags rather than their String forms.
var stateDumper = spew.ConfigState{Indent: " ", DisableMethods: true}

type exploreOptions struct {
	verbose bool
}

// TableOption is a function type for configuring a table build.
type TableOption func(*exploreOptions)

// WithExploreLogging logs the size of the explored state set.
func WithExploreLogging(verbose bool) TableOption {
	return func(o *exploreOptions) {
		o.verbose = verbose
	}
}

func newExploreOptions(opts ...TableOption) exploreOptions {
	var o exploreOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// BuildTable explores the states reachable from |0⟩ and |1⟩.
func BuildTable(opts ...TableOption) *Table {
	id := Identity()
	return Explore([]Qubit{id.C1, id.C2}, opts...)
}

/*
Explore runs the reachability search from the given seeds to a fixed point.
The domain has seven values per component, so the search always terminates.
Indices follow Qubit.Compare, which makes the numbering independent of the
seeds' discovery order.
*/
func Explore(seeds []Qubit, opts ...TableOption) *Table {
	discovered := make(map[Qubit]struct{}, len(seeds))
	frontier := make([]Qubit, 0, len(seeds))

	for _, seed := range seeds {
		if _, ok := discovered[seed]; !ok {
			discovered[seed] = struct{}{}
			frontier = append(frontier, seed)
		}
	}

	for len(frontier) > 0 {
		state := frontier[0]
		frontier = frontier[1:]

		for _, g := range Generators {
			next := state.Apply(g)
			if _, ok := discovered[next]; !ok {
				discovered[next] = struct{}{}
				frontier = append(frontier, next)
			}
		}
	}

	states := make([]Qubit, 0, len(discovered))
	for state := range discovered {
		states = append(states, state)
	}
	slices.SortFunc(states, Qubit.Compare)

	t := newTable(states)
	for i, state := range t.States {
		for j, g := range Generators {
			t.Next[i][j] = t.index[state.Apply(g)]
		}
	}

	if newExploreOptions(opts...).verbose {
		errnie.Info("Explore - %d seeds, %d reachable states", len(seeds), len(t.States))
	}
	return t
}

func newTable(states []Qubit) *Table {
	t := &Table{
		States: states,
		Next:   make([][NumGenerators]int, len(states)),
		index:  make(map[Qubit]int, len(states)),
	}
	for i, state := range states {
		t.index[state] = i
	}
	return t
}

func (t *Table) Len() int {
	return len(t.States)
}

// Index returns the canonical index of q.
func (t *Table) Index(q Qubit) (int, bool) {
	i, ok := t.index[q]
	return i, ok
}

// Step returns the successor of state i under g.
func (t *Table) Step(i int, g Gate) int {
	return t.Next[i][g.Index()]
}

// Walk follows seq from state i.
func (t *Table) Walk(i int, seq Sequence) int {
	for _, g := range seq {
		i = t.Next[i][g.Index()]
	}
	return i
}

func (t *Table) mustIndex(q Qubit) int {
	i, ok := t.index[q]
	if !ok {
		invariant(ErrInvalidTable, "state %v is not in the table", q)
	}
	return i
}

// Simulate evaluates seq from |0⟩ by table lookups alone.
func (t *Table) Simulate(seq Sequence) Amplitudes {
	return t.States[t.Walk(t.mustIndex(Basis0()), seq)].Materialize()
}

// Compose returns the unitary of seq by walking both identity columns.
func (t *Table) Compose(seq Sequence) GateMatrix {
	id := Identity()
	return GateMatrix{
		C1: t.States[t.Walk(t.mustIndex(id.C1), seq)],
		C2: t.States[t.Walk(t.mustIndex(id.C2), seq)],
	}
}

// Validate checks that the table is closed, consistent, and in canonical
// order.
func (t *Table) Validate() error {
	if len(t.Next) != len(t.States) {
		return fmt.Errorf("%w: %d states but %d rows", ErrInvalidTable, len(t.States), len(t.Next))
	}

	for i, state := range t.States {
		if err := state.Validate(); err != nil {
			return fmt.Errorf("%w: state %d: %w", ErrInvalidTable, i, err)
		}
		if i > 0 && t.States[i-1].Compare(state) >= 0 {
			return fmt.Errorf("%w: state %d is out of order", ErrInvalidTable, i)
		}
		for j, next := range t.Next[i] {
			if next < 0 || next >= len(t.States) {
				return fmt.Errorf("%w: transition %d/%v points to %d", ErrInvalidTable, i, Generators[j], next)
			}
			want, err := tryApply(state, Generators[j])
			if err != nil {
				return fmt.Errorf("%w: state %d: %v", ErrInvalidTable, i, err)
			}
			if t.States[next] != want {
				return fmt.Errorf("%w: transition %d/%v is %d, want %v", ErrInvalidTable, i, Generators[j], next, want)
			}
		}
	}

	id := Identity()
	for _, col := range []Qubit{id.C1, id.C2} {
		if _, ok := t.index[col]; !ok {
			return fmt.Errorf("%w: missing identity column %v", ErrInvalidTable, col)
		}
	}
	return nil
}

func tryApply(q Qubit, g Gate) (next Qubit, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return q.Apply(g), nil
}

/*
WriteTo writes the table as text: a "Qubits: K" line, one line per state with
its index and the tag codes of Alpha.Real, Alpha.Imag, Beta.Real, Beta.Imag,
a blank line, then one line per state with its index and its H X Y Z S
successors.
*/
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64

	write := func(format string, args ...any) error {
		n, err := fmt.Fprintf(bw, format, args...)
		total += int64(n)
		return err
	}

	if err := write("%s %d\n", tableHeader, len(t.States)); err != nil {
		return total, err
	}
	for i, q := range t.States {
		if err := write("%d %d %d %d %d\n", i,
			q.Alpha.Real.Code(), q.Alpha.Imag.Code(), q.Beta.Real.Code(), q.Beta.Imag.Code(),
		); err != nil {
			return total, err
		}
	}
	if err := write("\n"); err != nil {
		return total, err
	}
	for i, row := range t.Next {
		if err := write("%d %d %d %d %d %d\n", i, row[0], row[1], row[2], row[3], row[4]); err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}

// ReadTable parses the WriteTo format and validates the result.
func ReadTable(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	line := 0

	nextFields := func(want int) ([]int, error) {
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			fields := strings.Fields(text)
			if len(fields) != want {
				return nil, fmt.Errorf("%w: line %d has %d fields, want %d", ErrInvalidTable, line, len(fields), want)
			}
			values := make([]int, want)
			for i, f := range fields {
				v, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidTable, line, err)
				}
				values[i] = v
			}
			return values, nil
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: unexpected end of input after line %d", ErrInvalidTable, line)
	}

	k, err := readHeader(scanner, &line)
	if err != nil {
		return nil, err
	}
	if k <= 0 || k > maxTableStates {
		return nil, fmt.Errorf("%w: state count %d", ErrInvalidTable, k)
	}

	states := make([]Qubit, 0, k)
	for i := 0; i < k; i++ {
		fields, err := nextFields(5)
		if err != nil {
			return nil, err
		}
		if fields[0] != i {
			return nil, fmt.Errorf("%w: state row %d has index %d", ErrInvalidTable, i, fields[0])
		}
		var codes [4]Amplitude
		for j := range codes {
			if codes[j], err = ParseAmplitude(fields[j+1]); err != nil {
				return nil, fmt.Errorf("%w: state %d: %w", ErrInvalidTable, i, err)
			}
		}
		states = append(states, Qubit{
			Alpha: Complex{codes[0], codes[1]},
			Beta:  Complex{codes[2], codes[3]},
		})
	}

	t := newTable(states)
	if len(t.index) != k {
		return nil, fmt.Errorf("%w: duplicate states", ErrInvalidTable)
	}

	for i := 0; i < k; i++ {
		fields, err := nextFields(1 + NumGenerators)
		if err != nil {
			return nil, err
		}
		if fields[0] != i {
			return nil, fmt.Errorf("%w: transition row %d has index %d", ErrInvalidTable, i, fields[0])
		}
		copy(t.Next[i][:], fields[1:])
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func readHeader(scanner *bufio.Scanner, line *int) (int, error) {
	for scanner.Scan() {
		*line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		count, ok := strings.CutPrefix(text, tableHeader)
		if !ok {
			return 0, fmt.Errorf("%w: line %d: want %q header", ErrInvalidTable, *line, tableHeader)
		}
		k, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return 0, fmt.Errorf("%w: line %d: %v", ErrInvalidTable, *line, err)
		}
		return k, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("%w: empty input", ErrInvalidTable)
}

// Dump writes every state with its four component tags, for inspection.
func (t *Table) Dump(w io.Writer) {
	stateDumper.Fdump(w, t.States)
}

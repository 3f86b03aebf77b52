package qgate

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

// referenceTable is the canonical 48-state automaton in WriteTo format.
const referenceTable = `Qubits: 48
0 -4 -4 -4 -4
1 -4 -4 -4 4
2 -4 -4 4 -4
3 -4 -4 4 4
4 -4 4 -4 -4
5 -4 4 -4 4
6 -4 4 4 -4
7 -4 4 4 4
8 -2 -2 0 0
9 -2 0 -2 0
10 -2 0 0 -2
11 -2 0 0 2
12 -2 0 2 0
13 -2 2 0 0
14 -1 0 0 0
15 0 -2 -2 0
16 0 -2 0 -2
17 0 -2 0 2
18 0 -2 2 0
19 0 -1 0 0
20 0 0 -2 -2
21 0 0 -2 2
22 0 0 -1 0
23 0 0 0 -1
24 0 0 0 1
25 0 0 1 0
26 0 0 2 -2
27 0 0 2 2
28 0 1 0 0
29 0 2 -2 0
30 0 2 0 -2
31 0 2 0 2
32 0 2 2 0
33 1 0 0 0
34 2 -2 0 0
35 2 0 -2 0
36 2 0 0 -2
37 2 0 0 2
38 2 0 2 0
39 2 2 0 0
40 4 -4 -4 -4
41 4 -4 -4 4
42 4 -4 4 -4
43 4 -4 4 4
44 4 4 -4 -4
45 4 4 -4 4
46 4 4 4 -4
47 4 4 4 4

0 8 0 6 3 2
1 10 4 46 2 0
2 15 40 2 1 3
3 20 44 42 0 1
4 11 1 4 7 6
5 13 5 44 6 4
6 21 41 0 5 7
7 29 45 40 4 5
8 0 20 26 8 8
9 14 9 30 12 10
10 1 15 10 11 12
11 4 29 36 10 9
12 22 35 16 9 11
13 5 21 20 13 13
14 9 22 23 14 14
15 2 10 32 18 16
16 19 16 12 17 18
17 23 30 38 16 15
18 40 36 18 15 17
19 16 23 25 19 19
20 3 8 13 27 26
21 6 13 39 26 20
22 12 14 28 25 23
23 17 19 14 24 25
24 30 28 33 23 22
25 35 33 19 22 24
26 41 34 8 21 27
27 44 39 34 20 21
28 31 24 22 28 28
29 7 11 29 32 30
30 24 17 9 31 32
31 28 31 35 30 29
32 45 37 15 29 31
33 38 25 24 33 33
34 42 26 27 34 34
35 25 12 31 38 36
36 43 18 11 37 38
37 46 32 37 36 35
38 33 38 17 35 37
39 47 27 21 39 39
40 18 2 7 43 42
41 26 6 47 42 40
42 34 42 3 41 43
43 36 46 43 40 41
44 27 3 5 47 46
45 32 7 45 46 44
46 37 43 1 45 47
47 39 47 41 44 45
`

func TestTable(t *testing.T) {
	Convey("Given the transition table built from the identity columns", t, func() {
		table := BuildTable()

		Convey("It should hold the 48 reachable states", func() {
			So(table.Len(), ShouldEqual, 48)
			So(table.Validate(), ShouldBeNil)
		})

		Convey("Every transition should be defined and in range", func() {
			So(len(table.Next), ShouldEqual, table.Len())
			for i, row := range table.Next {
				for j, next := range row {
					So(next, ShouldBeBetweenOrEqual, 0, table.Len()-1)
					So(table.States[next], ShouldResemble, table.States[i].Apply(Generators[j]))
				}
			}
		})

		Convey("It should match the reference table line for line", func() {
			var buf bytes.Buffer
			_, err := table.WriteTo(&buf)
			So(err, ShouldBeNil)
			So(buf.String(), ShouldEqual, referenceTable)
		})

		Convey("The basis states should have their reference indices", func() {
			i, ok := table.Index(Basis0())
			So(ok, ShouldBeTrue)
			So(i, ShouldEqual, 33)

			i, ok = table.Index(Basis1())
			So(ok, ShouldBeTrue)
			So(i, ShouldEqual, 25)

			_, ok = table.Index(Qubit{ComplexOne, ComplexOne})
			So(ok, ShouldBeFalse)
		})

		Convey("Step should agree with Apply", func() {
			i, _ := table.Index(Basis0())
			So(table.States[table.Step(i, H)], ShouldResemble, Basis0().Apply(H))
			So(table.States[table.Step(i, Y)], ShouldResemble, Basis0().Apply(Y))
		})

		Convey("Exploring from a single seed should reach the same states", func() {
			single := Explore([]Qubit{Basis0()})
			So(single.States, ShouldResemble, table.States)
			So(single.Next, ShouldResemble, table.Next)
		})

		Convey("Its states should dump with their exact component tags", func() {
			var buf bytes.Buffer
			table.Dump(&buf)
			dump := buf.String()

			So(dump, ShouldContainSubstring, "Alpha")
			So(dump, ShouldContainSubstring, "Imag")
			So(dump, ShouldContainSubstring, "(qgate.Amplitude) -4")
			So(dump, ShouldNotContainSubstring, "|0⟩")
			So(dump, ShouldEqual, stateDumper.Sdump(table.States))
			So(spew.Sdump(table.States[0]), ShouldContainSubstring, "|0⟩")
		})

		Convey("Exploration should only log when asked to", func() {
			So(newExploreOptions().verbose, ShouldBeFalse)
			So(newExploreOptions(WithExploreLogging(true)).verbose, ShouldBeTrue)

			logged := BuildTable(WithExploreLogging(true))
			So(logged.Next, ShouldResemble, table.Next)
		})

		Convey("Table-driven evaluation should match the sequential evaluator", func() {
			for seed := uint64(0); seed < 30; seed++ {
				seq := RandomSequence(1000+int(seed), seed)
				So(table.Simulate(seq) == Simulate(seq), ShouldBeTrue)
				So(table.Compose(seq), ShouldResemble, MatrixOf(seq))
			}
			So(table.Simulate(nil), ShouldResemble, Ground())
		})

		Convey("Reading the written table back should give the same automaton", func() {
			var buf bytes.Buffer
			_, err := table.WriteTo(&buf)
			So(err, ShouldBeNil)

			read, err := ReadTable(&buf)
			So(err, ShouldBeNil)
			So(read.States, ShouldResemble, table.States)
			So(read.Next, ShouldResemble, table.Next)
		})
	})

	Convey("Given a malformed table", t, func() {
		Convey("A wrong successor should be rejected", func() {
			broken := strings.Replace(referenceTable, "\n33 38 25 24 33 33\n", "\n33 38 25 24 33 32\n", 1)
			_, err := ReadTable(strings.NewReader(broken))
			So(errors.Is(err, ErrInvalidTable), ShouldBeTrue)
		})

		Convey("An out-of-range successor should be rejected", func() {
			broken := strings.Replace(referenceTable, "\n47 39 47 41 44 45\n", "\n47 39 48 41 44 45\n", 1)
			_, err := ReadTable(strings.NewReader(broken))
			So(errors.Is(err, ErrInvalidTable), ShouldBeTrue)
		})

		Convey("An amplitude outside the domain should be rejected", func() {
			broken := strings.Replace(referenceTable, "\n14 -1 0 0 0\n", "\n14 -3 0 0 0\n", 1)
			_, err := ReadTable(strings.NewReader(broken))
			So(errors.Is(err, ErrInvalidTable), ShouldBeTrue)
			So(errors.Is(err, ErrInvalidAmplitude), ShouldBeTrue)
		})

		Convey("A state that is not normalized should be rejected", func() {
			_, err := ReadTable(strings.NewReader("Qubits: 1\n0 4 0 0 0\n\n0 0 0 0 0 0\n"))
			So(errors.Is(err, ErrInvalidTable), ShouldBeTrue)
			So(errors.Is(err, ErrInvalidState), ShouldBeTrue)
		})

		Convey("A bare state count without its header should be rejected", func() {
			broken := strings.Replace(referenceTable, "Qubits: 48\n", "48\n", 1)
			_, err := ReadTable(strings.NewReader(broken))
			So(errors.Is(err, ErrInvalidTable), ShouldBeTrue)

			_, err = ReadTable(strings.NewReader(""))
			So(errors.Is(err, ErrInvalidTable), ShouldBeTrue)
		})

		Convey("A truncated table should be rejected", func() {
			_, err := ReadTable(strings.NewReader("Qubits: 48\n0 -4 -4 -4 -4\n"))
			So(errors.Is(err, ErrInvalidTable), ShouldBeTrue)
		})
	})
}

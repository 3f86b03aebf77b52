package qgate

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGate(t *testing.T) {
	Convey("Given the generator set", t, func() {
		Convey("Index should follow the table column order", func() {
			for i, g := range Generators {
				So(g.Index(), ShouldEqual, i)
				So(g.Valid(), ShouldBeTrue)
			}
			So(func() { Gate('h').Index() }, ShouldPanic)
		})

		Convey("Sequences should print as their symbols", func() {
			seq := MustParseSequence("HXYZS")
			So(seq.String(), ShouldEqual, "HXYZS")
			So(seq[2].String(), ShouldEqual, "Y")
			So(seq.Validate(), ShouldBeNil)
		})

		Convey("Parsing should reject lowercase and unknown symbols", func() {
			_, err := ParseSequence("HXz")
			So(errors.Is(err, ErrInvalidGate), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "position 2")

			_, err = ParseGate('T')
			So(errors.Is(err, ErrInvalidGate), ShouldBeTrue)

			So(func() { MustParseSequence("HT") }, ShouldPanic)
		})

		Convey("Validate should report the first bad position", func() {
			err := Sequence{H, X, Gate(0), Gate('Q')}.Validate()
			So(errors.Is(err, ErrInvalidGate), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "position 2")
		})

		Convey("Random sequences should be reproducible and valid", func() {
			a := RandomSequence(1000, 7)
			So(a, ShouldResemble, RandomSequence(1000, 7))
			So(a, ShouldNotResemble, RandomSequence(1000, 8))
			So(a.Validate(), ShouldBeNil)
			So(RandomSequence(0, 7), ShouldBeEmpty)
		})
	})
}

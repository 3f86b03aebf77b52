package qgate

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSimulateFloating(t *testing.T) {
	Convey("Given the double precision evaluator", t, func() {
		Convey("Single generators should match the exact table", func() {
			for _, g := range Generators {
				So(closeTo(SimulateFloating(Sequence{g}), Simulate(Sequence{g})), ShouldBeTrue)
			}
			So(SimulateFloating(nil), ShouldResemble, Ground())
		})

		Convey("It should stay within 1e-12 of the exact evaluator on short sequences", func() {
			for n := 0; n <= 200; n++ {
				seq := RandomSequence(n, uint64(n)+1000)
				So(closeTo(SimulateFloating(seq), Simulate(seq)), ShouldBeTrue)
			}
		})

		Convey("Rounding should leave HH away from |0⟩ where exact tracking returns to it", func() {
			floating := SimulateFloating(MustParseSequence("HH"))
			So(real(floating.Alpha), ShouldEqual, 1.0000000000000002)
			So(floating.Norm(), ShouldNotEqual, 1.0)

			exact := Simulate(MustParseSequence("HH"))
			So(exact, ShouldResemble, Ground())
			So(exact.Norm(), ShouldEqual, 1.0)
		})

		Convey("The rounding error should persist over a long sequence", func() {
			seq := MustParseSequence(strings.Repeat("HH", 500000))

			floating := SimulateFloating(seq)
			So(floating.Norm(), ShouldNotEqual, 1.0)
			So(floating.Norm(), ShouldAlmostEqual, 1.0, 1e-12)
			So(Simulate(seq).Norm(), ShouldEqual, 1.0)
		})

		Convey("An invalid generator should panic", func() {
			defer func() {
				err, ok := recover().(*InvariantError)
				So(ok, ShouldBeTrue)
				So(errors.Is(err, ErrInvalidGate), ShouldBeTrue)
			}()
			SimulateFloating(Sequence{H, Gate('T')})
		})
	})
}

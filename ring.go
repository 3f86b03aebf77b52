package qgate

/*
surd is an element (p + q√2)/16 of Z[√2]/16. Every product of two domain
values, and every sum of such products that a 2×2 matrix product needs, is
exact in this ring, which lets two GateMatrix values be multiplied without
leaving exact arithmetic.
*/
type surd struct {
	p, q int
}

// surdOf lifts a domain value into the ring, scaled by 4 so that products
// land on the common denominator 16.
func surdOf(a Amplitude) surd {
	switch a {
	case Zero:
		return surd{}
	case PosOne:
		return surd{4, 0}
	case NegOne:
		return surd{-4, 0}
	case PosHalf:
		return surd{2, 0}
	case NegHalf:
		return surd{-2, 0}
	case PosInvSqrt2:
		return surd{0, 2}
	case NegInvSqrt2:
		return surd{0, -2}
	}
	invariant(ErrInvalidAmplitude, "lift %d", int8(a))
	return surd{}
}

func (x surd) mul(y surd) surd {
	return surd{x.p*y.p + 2*x.q*y.q, x.p*y.q + x.q*y.p}
}

func (x surd) add(y surd) surd {
	return surd{x.p + y.p, x.q + y.q}
}

func (x surd) sub(y surd) surd {
	return surd{x.p - y.p, x.q - y.q}
}

// amplitude projects a product sum back onto the domain.
func (x surd) amplitude() Amplitude {
	switch x {
	case surd{0, 0}:
		return Zero
	case surd{16, 0}:
		return PosOne
	case surd{-16, 0}:
		return NegOne
	case surd{8, 0}:
		return PosHalf
	case surd{-8, 0}:
		return NegHalf
	case surd{0, 8}:
		return PosInvSqrt2
	case surd{0, -8}:
		return NegInvSqrt2
	}
	invariant(ErrMagnitudeMismatch, "(%d + %d√2)/16 is outside the domain", x.p, x.q)
	return Zero
}

// mulAdd returns a·b + c·d for exact complex operands.
func mulAdd(a, b, c, d Complex) Complex {
	ar, ai := surdOf(a.Real), surdOf(a.Imag)
	br, bi := surdOf(b.Real), surdOf(b.Imag)
	cr, ci := surdOf(c.Real), surdOf(c.Imag)
	dr, di := surdOf(d.Real), surdOf(d.Imag)

	re := ar.mul(br).sub(ai.mul(bi)).add(cr.mul(dr)).sub(ci.mul(di))
	im := ar.mul(bi).add(ai.mul(br)).add(cr.mul(di)).add(ci.mul(dr))
	return Complex{re.amplitude(), im.amplitude()}
}

// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package expr

import (
	"github.com/rise-lang/arithexpr/pkg/util/math"
)

// Symbolic bound propagation.  Every helper here is a sound
// over-approximation: whenever a bound cannot be justified it degrades to
// Unknown (or an infinity), never to a tighter guess.

// unaryBound pushes a monotone operation through a bound, leaving infinities
// and Unknown untouched.
func unaryBound(bound Expr, fn func(Expr) Expr) Expr {
	switch bound.Kind() {
	case UnknownKind, PosInfKind, NegInfKind:
		return bound
	default:
		return fn(bound)
	}
}

// sumOfBounds sums the selected bound of every term.  Opposing infinities,
// or any unknown, collapse to Unknown.
func sumOfBounds(terms []Expr, sel func(Expr) Expr) Expr {
	var (
		pos, neg bool
		finite   []Expr
	)
	//
	for _, t := range terms {
		b := sel(t)
		//
		switch b.Kind() {
		case UnknownKind:
			return Unknown
		case PosInfKind:
			pos = true
		case NegInfKind:
			neg = true
		default:
			finite = append(finite, b)
		}
	}
	//
	switch {
	case pos && neg:
		return Unknown
	case pos:
		return PosInf
	case neg:
		return NegInf
	default:
		return Sum(finite...)
	}
}

// productBounds determines symbolic bounds of a product.  The constant
// coefficient decides which corner of the body participates; beyond that,
// only products of non-negative factors propagate bounds.
func productBounds(p *Mul) (Expr, Expr) {
	if coeff, body := splitCoeff(p); coeff != 1 {
		lo, hi := body.Min(), body.Max()
		//
		if coeff < 0 {
			lo, hi = hi, lo
		}
		//
		return scaleBound(coeff, lo), scaleBound(coeff, hi)
	}
	// All factors non-negative.
	for _, f := range p.Factors {
		if f.Sign() != SignPositive {
			return Unknown, Unknown
		}
	}
	//
	return prodOfBounds(p.Factors, Expr.Min), prodOfBounds(p.Factors, Expr.Max)
}

// prodOfBounds multiplies the selected bound of every (non-negative) factor.
func prodOfBounds(factors []Expr, sel func(Expr) Expr) Expr {
	var (
		inf    bool
		finite []Expr
	)
	//
	for _, f := range factors {
		b := sel(f)
		//
		switch b.Kind() {
		case UnknownKind, NegInfKind:
			return Unknown
		case PosInfKind:
			inf = true
		default:
			finite = append(finite, b)
		}
	}
	//
	if inf {
		return PosInf
	}
	//
	return Product(finite...)
}

func scaleBound(coeff int64, bound Expr) Expr {
	switch bound.Kind() {
	case UnknownKind:
		return Unknown
	case PosInfKind:
		if coeff > 0 {
			return PosInf
		}
		//
		return NegInf
	case NegInfKind:
		if coeff > 0 {
			return NegInf
		}
		//
		return PosInf
	default:
		return Product(Const(coeff), bound)
	}
}

// powBounds determines symbolic bounds of a power: only a non-negative base
// raised to a positive constant propagates, by monotonicity.
func powBounds(p *Pow) (Expr, Expr) {
	if c, ok := p.Exponent.(*Constant); ok && c.Val > 0 && p.Base.Sign() == SignPositive {
		fn := func(e Expr) Expr { return PowOf(e, Const(c.Val)) }
		//
		return unaryBound(p.Base.Min(), fn), unaryBound(p.Base.Max(), fn)
	}
	//
	return Unknown, Unknown
}

// divBounds determines symbolic bounds of a floor division by a positive
// constant, by monotonicity in the numerator.
func divBounds(p *Div) (Expr, Expr) {
	if c, ok := p.Den.(*Constant); ok && c.Val > 0 {
		fn := func(e Expr) Expr { return IntDiv(e, Const(c.Val)) }
		//
		return unaryBound(p.Num.Min(), fn), unaryBound(p.Num.Max(), fn)
	}
	//
	return Unknown, Unknown
}

// modBounds derives [0, |divisor|-1] with a sign adjustment for negative
// dividends.
func modBounds(p *Mod) (Expr, Expr) {
	if p.Divisor.Sign() != SignPositive {
		return Unknown, Unknown
	}
	//
	limit := unaryBound(p.Divisor.Max(), func(e Expr) Expr { return Sub(e, Const(1)) })
	//
	switch p.Dividend.Sign() {
	case SignPositive:
		return Const(0), limit
	case SignNegative:
		return scaleBound(-1, limit), Const(0)
	default:
		return scaleBound(-1, limit), limit
	}
}

// pointwiseBound takes the pointwise minimum (or maximum) of two bounds,
// degrading to Unknown when they cannot be ordered.
func pointwiseBound(a Expr, b Expr, wantMin bool) Expr {
	if Equals(a, b) {
		return a
	}
	//
	if a.Kind() == UnknownKind || b.Kind() == UnknownKind {
		return Unknown
	}
	// Infinities order against everything.
	switch {
	case a == PosInf:
		return pickBound(b, a, wantMin)
	case b == PosInf:
		return pickBound(a, b, wantMin)
	case a == NegInf:
		return pickBound(a, b, wantMin)
	case b == NegInf:
		return pickBound(b, a, wantMin)
	}
	//
	va, err1 := Eval(a)
	vb, err2 := Eval(b)
	//
	if err1 == nil && err2 == nil {
		if wantMin {
			return Const(math.Min64(va, vb))
		}
		//
		return Const(math.Max64(va, vb))
	}
	//
	return Unknown
}

func pickBound(smaller Expr, greater Expr, wantMin bool) Expr {
	if wantMin {
		return smaller
	}
	//
	return greater
}

// BoundsOf projects the symbolic bounds of an expression onto a numeric
// interval, degrading unevaluable bounds to infinities.
func BoundsOf(e Expr) math.Interval {
	lo, hi := math.NegInfinity, math.PosInfinity
	//
	if v, err := Eval(e.Min()); err == nil {
		lo = math.NewBound(v)
	}
	//
	if v, err := Eval(e.Max()); err == nil {
		hi = math.NewBound(v)
	}
	// Loose range maxima (e.g. of stepped ranges) can cross an exact
	// minimum; the projection then knows nothing.
	if lo.Cmp(hi) > 0 {
		return math.TOP
	}
	//
	return math.NewIntervalFromBounds(lo, hi)
}

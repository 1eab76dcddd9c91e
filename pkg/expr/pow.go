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
	"fmt"

	"github.com/rise-lang/arithexpr/pkg/util/collection/array"
	"github.com/rise-lang/arithexpr/pkg/util/math"
)

// Pow represents a power.  A negative constant exponent encodes a reciprocal
// and is retained symbolically; in particular Pow(b, -1) is how division by
// an expression is represented inside a product.
type Pow struct {
	exprBase
	// Base of this power.
	Base Expr
	// Exponent of this power.
	Exponent Expr
}

// PowOf raises a base to an exponent, producing the canonical form.  Trivial
// powers are eliminated, nested powers merge their exponents, constant powers
// fold when the result is integral, and a power of a product becomes a
// product of powers.
func PowOf(base Expr, exponent Expr) Expr {
	if c, ok := exponent.(*Constant); ok {
		switch {
		case c.Val == 0:
			// Note x^0 == 1 includes 0^0 == 1.
			return Const(1)
		case c.Val == 1:
			return base
		}
	}
	//
	if b, ok := base.(*Constant); ok {
		if b.Val == 1 {
			return Const(1)
		}
		// Constant folding, provided the result is integral.
		if c, ok := exponent.(*Constant); ok {
			switch {
			case c.Val >= 0:
				return Const(math.PowInt64(b.Val, uint64(c.Val)))
			case b.Val == -1:
				// (-1)^(-k) == (-1)^k
				return Const(math.PowInt64(-1, uint64(-c.Val)))
			}
		}
		// 0^x == 0 for provably positive x.
		if b.Val == 0 {
			if v, err := Eval(exponent.Min()); err == nil && v >= 1 {
				return Const(0)
			}
		}
	}
	// Merge nested powers: (x^a)^b == x^(a*b).
	if p, ok := base.(*Pow); ok {
		return PowOf(p.Base, Product(p.Exponent, exponent))
	}
	// Distribute over a product base: (a*b)^n == a^n * b^n.
	if m, ok := base.(*Mul); ok {
		if _, ok := exponent.(*Constant); ok {
			return Product(array.Map(m.Factors, func(f Expr) Expr {
				return PowOf(f, exponent)
			})...)
		}
	}
	//
	return rawPow(base, exponent)
}

func rawPow(base Expr, exponent Expr) *Pow {
	return &Pow{
		newBase(digestOf(PowKind, base.Digest(), ^exponent.Digest())),
		base, exponent,
	}
}

// Kind implementation for the Expr interface.
func (p *Pow) Kind() Kind { return PowKind }

// Children implementation for the Expr interface.
func (p *Pow) Children() []Expr { return []Expr{p.Base, p.Exponent} }

// Sign implementation for the Expr interface.  With a positive even
// constant exponent the power is positive; with a positive odd one it takes
// the base's sign.  Anything else, including a negative constant exponent or
// a positive base with unknown exponent, is reported unknown.
func (p *Pow) Sign() Sign {
	if c, ok := p.Exponent.(*Constant); ok && c.Val > 0 {
		if c.Val%2 == 0 {
			return SignPositive
		}
		//
		return p.Base.Sign()
	}
	//
	return SignUnknown
}

// Min implementation for the Expr interface.
func (p *Pow) Min() Expr {
	min, _ := powBounds(p)
	return min
}

// Max implementation for the Expr interface.
func (p *Pow) Max() Expr {
	_, max := powBounds(p)
	return max
}

func (p *Pow) String() string {
	if c, ok := p.Exponent.(*Constant); ok && c.Val == -1 {
		return fmt.Sprintf("1/^(%s)", p.Base.String())
	}
	//
	return fmt.Sprintf("pow(%s,%s)", p.Base.String(), p.Exponent.String())
}

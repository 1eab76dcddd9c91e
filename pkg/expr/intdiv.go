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

	"github.com/rise-lang/arithexpr/pkg/util/math"
)

// Div represents floor integer division: the quotient rounds towards
// negative infinity.  The denominator must be non-zero.
type Div struct {
	exprBase
	// Num is the numerator.
	Num Expr
	// Den is the denominator.
	Den Expr
}

// IntDiv divides one expression by another under floor semantics, producing
// the canonical form.  Division by a zero constant panics with an error
// wrapping ErrArithmeticDomain.
func IntDiv(num Expr, den Expr) Expr {
	if c, ok := den.(*Constant); ok {
		switch c.Val {
		case 0:
			domainPanic("division of %s by zero", num.String())
		case 1:
			return num
		case -1:
			return Neg(num)
		}
	}
	//
	if c, ok := num.(*Constant); ok {
		if c.Val == 0 {
			return Const(0)
		}
		//
		if d, ok := den.(*Constant); ok {
			return Const(math.FloorDiv(c.Val, d.Val))
		}
	}
	//
	if Equals(num, den) && provablyNonZero(den) {
		return Const(1)
	}
	// 0 <= n < |d| implies n/d == 0.
	if !MightBeNegative(num) && isSmallerTrue(AbsOf(num), AbsOf(den)) {
		return Const(0)
	}
	// Exact symbolic quotient.
	if q := exactDiv(num, den); q.HasValue() {
		return q.Unwrap()
	}
	// Split off the divisible terms of a sum, provided the remaining terms
	// cannot be negative.
	if add, ok := num.(*Add); ok {
		divisible, rest := partitionDivisible(add.Terms, den)
		//
		if len(divisible) > 0 && len(rest) > 0 && !MightBeNegative(Sum(rest...)) {
			quotients := make([]Expr, 0, len(divisible)+1)
			//
			for _, t := range divisible {
				quotients = append(quotients, exactDiv(t, den).Unwrap())
			}
			//
			quotients = append(quotients, IntDiv(Sum(rest...), den))
			//
			return Sum(quotients...)
		}
	}
	//
	return rawDiv(num, den)
}

func rawDiv(num Expr, den Expr) *Div {
	return &Div{
		newBase(digestOf(DivKind, num.Digest(), ^den.Digest())),
		num, den,
	}
}

// provablyNonZero determines whether an expression is known to be non-zero.
func provablyNonZero(e Expr) bool {
	if c, ok := e.(*Constant); ok {
		return c.Val != 0
	}
	//
	if v, err := Eval(e.Min()); err == nil && v >= 1 {
		return true
	}
	//
	if v, err := Eval(e.Max()); err == nil && v <= -1 {
		return true
	}
	//
	return false
}

// Kind implementation for the Expr interface.
func (p *Div) Kind() Kind { return DivKind }

// Children implementation for the Expr interface.
func (p *Div) Children() []Expr { return []Expr{p.Num, p.Den} }

// Sign implementation for the Expr interface.
func (p *Div) Sign() Sign {
	num, den := p.Num.Sign(), p.Den.Sign()
	//
	if num == SignUnknown || den == SignUnknown {
		return SignUnknown
	} else if num == den {
		return SignPositive
	}
	//
	return SignNegative
}

// Min implementation for the Expr interface.
func (p *Div) Min() Expr {
	min, _ := divBounds(p)
	return min
}

// Max implementation for the Expr interface.
func (p *Div) Max() Expr {
	_, max := divBounds(p)
	return max
}

func (p *Div) String() string {
	return fmt.Sprintf("(%s / %s)", p.Num.String(), p.Den.String())
}

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

// Mod represents the C-semantics remainder: the sign of the result matches
// the sign of the dividend.  The divisor must be non-zero.
type Mod struct {
	exprBase
	// Dividend of this remainder.
	Dividend Expr
	// Divisor of this remainder.
	Divisor Expr
}

// Rem takes the C remainder of one expression by another, producing the
// canonical form.  Remainder by a zero constant panics with an error
// wrapping ErrArithmeticDomain.
func Rem(dividend Expr, divisor Expr) Expr {
	if c, ok := divisor.(*Constant); ok {
		switch c.Val {
		case 0:
			domainPanic("remainder of %s by zero", dividend.String())
		case 1, -1:
			return Const(0)
		}
	}
	//
	if c, ok := dividend.(*Constant); ok {
		if d, ok := divisor.(*Constant); ok {
			return Const(math.CRem(c.Val, d.Val))
		}
		// 0 and 1 are fixed by any remaining divisor.
		if c.Val == 0 || c.Val == 1 {
			return dividend
		}
	}
	//
	if Equals(dividend, divisor) {
		return Const(0)
	}
	// 0 <= n < |d| implies n%d == n.
	if !MightBeNegative(dividend) && isSmallerTrue(AbsOf(dividend), AbsOf(divisor)) {
		return dividend
	}
	// Idempotence: (x % d) % d == x % d.
	if m, ok := dividend.(*Mod); ok && Equals(m.Divisor, divisor) {
		return dividend
	}
	//
	if MultipleOf(dividend, divisor) {
		return Const(0)
	}
	// Discard the multiples of the divisor inside a non-negative sum.
	if add, ok := dividend.(*Add); ok && !MightBeNegative(dividend) {
		divisible, rest := partitionDivisible(add.Terms, divisor)
		//
		if len(divisible) > 0 {
			return Rem(Sum(rest...), divisor)
		}
	}
	//
	return rawMod(dividend, divisor)
}

func rawMod(dividend Expr, divisor Expr) *Mod {
	return &Mod{
		newBase(digestOf(ModKind, dividend.Digest(), ^divisor.Digest())),
		dividend, divisor,
	}
}

// Kind implementation for the Expr interface.
func (p *Mod) Kind() Kind { return ModKind }

// Children implementation for the Expr interface.
func (p *Mod) Children() []Expr { return []Expr{p.Dividend, p.Divisor} }

// Sign implementation for the Expr interface: C semantics give the remainder
// the sign of its dividend.
func (p *Mod) Sign() Sign { return p.Dividend.Sign() }

// Min implementation for the Expr interface.
func (p *Mod) Min() Expr {
	min, _ := modBounds(p)
	return min
}

// Max implementation for the Expr interface.
func (p *Mod) Max() Expr {
	_, max := modBounds(p)
	return max
}

func (p *Mod) String() string {
	return fmt.Sprintf("(%s %% (%s))", p.Dividend.String(), p.Divisor.String())
}

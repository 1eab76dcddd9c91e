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
	"github.com/rise-lang/arithexpr/pkg/util"
	"github.com/rise-lang/arithexpr/pkg/util/math"
)

// MultipleOf returns true only when divisibility of a by b is provable.
// Refusal is sound: a false result carries no information.
func MultipleOf(a Expr, b Expr) bool {
	return exactDiv(a, b).HasValue()
}

// exactDiv determines the exact symbolic quotient of a by b, when
// divisibility is provable.  This is the shared engine behind MultipleOf and
// the symbolic rules of IntDiv.
func exactDiv(a Expr, b Expr) util.Option[Expr] {
	// Constant divisibility reduces to a modular check.
	if ca, ok := a.(*Constant); ok {
		if cb, ok := b.(*Constant); ok && cb.Val != 0 && ca.Val%cb.Val == 0 {
			return util.Some(Const(ca.Val / cb.Val))
		}
	}
	// Everything divides itself.
	if Equals(a, b) {
		return util.Some[Expr](Const(1))
	}
	//
	switch t := b.(type) {
	case *Mul:
		return exactDivByProduct(a, t)
	case *Pow:
		// Dividing by a reciprocal multiplies by its base.
		if c, ok := t.Exponent.(*Constant); ok && c.Val == -1 {
			return util.Some(Product(a, t.Base))
		}
	}
	//
	switch t := a.(type) {
	case *Mul:
		return exactDivProduct(t, b)
	case *Add:
		return exactDivSum(t, b)
	}
	//
	return util.None[Expr]()
}

// exactDivProduct divides a product by a single divisor, by dividing exactly
// one of its factors.
func exactDivProduct(a *Mul, b Expr) util.Option[Expr] {
	for i, f := range a.Factors {
		if q := exactDiv(f, b); q.HasValue() {
			nfactors := make([]Expr, 0, len(a.Factors))
			nfactors = append(nfactors, a.Factors[:i]...)
			nfactors = append(nfactors, q.Unwrap())
			nfactors = append(nfactors, a.Factors[i+1:]...)
			//
			return util.Some(Product(nfactors...))
		}
	}
	//
	return util.None[Expr]()
}

// exactDivSum divides a sum by a divisor, requiring every term to divide.
func exactDivSum(a *Add, b Expr) util.Option[Expr] {
	quotients := make([]Expr, len(a.Terms))
	//
	for i, t := range a.Terms {
		q := exactDiv(t, b)
		if q.IsEmpty() {
			return util.None[Expr]()
		}
		//
		quotients[i] = q.Unwrap()
	}
	//
	return util.Some(Sum(quotients...))
}

// exactDivByProduct divides by a product, factor by factor.  Reciprocal
// factors of the divisor must be matched by reciprocal factors of the
// dividend; the remaining factors divide in sequence.
func exactDivByProduct(a Expr, b *Mul) util.Option[Expr] {
	q := a
	//
	for _, f := range b.Factors {
		if isReciprocal(f) && !hasReciprocalFactor(q, f) {
			return util.None[Expr]()
		}
		//
		r := exactDiv(q, f)
		if r.IsEmpty() {
			return util.None[Expr]()
		}
		//
		q = r.Unwrap()
	}
	//
	return util.Some(q)
}

func isReciprocal(e Expr) bool {
	if p, ok := e.(*Pow); ok {
		if c, ok := p.Exponent.(*Constant); ok {
			return c.Val < 0
		}
	}
	//
	return false
}

func hasReciprocalFactor(e Expr, rec Expr) bool {
	if m, ok := e.(*Mul); ok {
		for _, f := range m.Factors {
			if Equals(f, rec) {
				return true
			}
		}
	}
	//
	return Equals(e, rec)
}

// partitionDivisible splits the terms of a sum into those provably divisible
// by a given divisor and the rest.
func partitionDivisible(terms []Expr, divisor Expr) ([]Expr, []Expr) {
	var divisible, rest []Expr
	//
	for _, t := range terms {
		if MultipleOf(t, divisor) {
			divisible = append(divisible, t)
		} else {
			rest = append(rest, t)
		}
	}
	//
	return divisible, rest
}

// GCD determines the greatest common divisor of two expressions.  For
// constants this is the usual integer GCD; for symbolic trees it is the
// largest expression provably dividing both, defaulting to one.
func GCD(a Expr, b Expr) Expr {
	if ca, ok := a.(*Constant); ok {
		if cb, ok := b.(*Constant); ok {
			return Const(math.Gcd64(ca.Val, cb.Val))
		}
	}
	//
	if Equals(a, b) {
		return a
	}
	// A sum's divisors are the common divisors of its terms.
	if add, ok := a.(*Add); ok {
		g := b
		//
		for _, t := range add.Terms {
			g = GCD(t, g)
		}
		//
		return g
	}
	//
	if add, ok := b.(*Add); ok {
		return GCD(add, a)
	}
	// Products share their common factors.
	if ma, ok := a.(*Mul); ok {
		if mb, ok := b.(*Mul); ok {
			return commonFactors(ma, mb)
		}
	}
	//
	if MultipleOf(a, b) {
		return b
	}
	//
	if MultipleOf(b, a) {
		return a
	}
	//
	return Const(1)
}

// commonFactors intersects the factor multisets of two products, pairing the
// constant factors by their integer GCD.
func commonFactors(a *Mul, b *Mul) Expr {
	var (
		common []Expr
		used   = make([]bool, len(b.Factors))
	)
	//
	for _, f := range a.Factors {
		if ca, ok := f.(*Constant); ok {
			for j, g := range b.Factors {
				if cb, ok := g.(*Constant); ok && !used[j] {
					used[j] = true
					//
					common = append(common, Const(math.Gcd64(ca.Val, cb.Val)))

					break
				}
			}
			//
			continue
		}
		//
		for j, g := range b.Factors {
			if !used[j] && Equals(f, g) {
				used[j] = true
				//
				common = append(common, f)

				break
			}
		}
	}
	//
	return Product(common...)
}

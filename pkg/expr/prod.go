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
	"strings"

	"github.com/rise-lang/arithexpr/pkg/util/collection/array"
)

// Mul represents a commutative, associative product of at least two factors,
// held in canonical order.  A normalised product contains no nested product
// and at most one constant factor, which is neither zero nor one.
type Mul struct {
	exprBase
	// Factors of this product, in canonical order.
	Factors []Expr
}

// baseGroup collects the exponents attached to a shared base, used to merge
// x^a * x^b into x^(a+b).
type baseGroup struct {
	base Expr
	exps []Expr
}

// Product multiplies zero or more expressions together, producing the
// canonical form of their product.  Nested products are flattened, constants
// folded into a single factor, zero absorbs, and factors sharing a base merge
// by summing their exponents.  A product of constants with a single sum
// distributes over that sum.
func Product(factors ...Expr) Expr {
	var (
		acc    = int64(1)
		groups []baseGroup
	)
	// Flatten any nested products
	factors = array.Flatten(factors, flattenProd)
	// Fold constants, group factors by base
	for _, f := range factors {
		if c, ok := f.(*Constant); ok {
			if c.Val == 0 {
				return Const(0)
			}
			//
			acc *= c.Val
			//
			continue
		}
		//
		base, exp := splitPow(f)
		groups = mergeBase(groups, base, exp)
	}
	// Rebuild one factor per base
	nfactors := make([]Expr, 0, len(groups))
	//
	for _, g := range groups {
		p := PowOf(g.base, Sum(g.exps...))
		// Merging exponents can collapse a factor to a constant, or expand it
		// into a further product.
		switch t := p.(type) {
		case *Constant:
			if t.Val == 0 {
				return Const(0)
			}
			//
			acc *= t.Val
		case *Mul:
			for _, f := range t.Factors {
				if c, ok := f.(*Constant); ok {
					acc *= c.Val
				} else {
					nfactors = append(nfactors, f)
				}
			}
		default:
			nfactors = append(nfactors, p)
		}
	}
	//
	if acc == 0 {
		return Const(0)
	}
	// Distribute over a single sum factor when every cofactor is constant.
	if len(nfactors) == 1 {
		if add, ok := nfactors[0].(*Add); ok {
			return distribute(acc, add)
		}
	}
	//
	if acc != 1 {
		nfactors = append(nfactors, newConst(acc))
	}
	// Sort and re-wrap
	sortExprs(nfactors)
	//
	switch len(nfactors) {
	case 0:
		return Const(1)
	case 1:
		return nfactors[0]
	default:
		return rawMul(nfactors)
	}
}

// Neg negates an expression.
func Neg(e Expr) Expr {
	return Product(Const(-1), e)
}

// OrdinalDiv is ordinal division, modelled as a * b^(-1).
func OrdinalDiv(a Expr, b Expr) Expr {
	return Product(a, PowOf(b, Const(-1)))
}

func flattenProd(factor Expr) []Expr {
	if t, ok := factor.(*Mul); ok {
		return t.Factors
	}
	//
	return nil
}

func mergeBase(groups []baseGroup, base Expr, exp Expr) []baseGroup {
	for i := range groups {
		if Equals(groups[i].base, base) {
			groups[i].exps = append(groups[i].exps, exp)
			return groups
		}
	}
	//
	return append(groups, baseGroup{base, []Expr{exp}})
}

// splitPow factorises an expression as base and exponent, defaulting the
// exponent to one.
func splitPow(f Expr) (Expr, Expr) {
	if p, ok := f.(*Pow); ok {
		return p.Base, p.Exponent
	}
	//
	return f, Const(1)
}

// splitCoeff factorises a term as an integer coefficient and a constant-free
// body, defaulting the coefficient to one.
func splitCoeff(t Expr) (int64, Expr) {
	if m, ok := t.(*Mul); ok {
		if c, ok := m.Factors[0].(*Constant); ok {
			if rest := m.Factors[1:]; len(rest) == 1 {
				return c.Val, rest[0]
			} else {
				return c.Val, rawMul(rest)
			}
		}
	}
	//
	return 1, t
}

// scaleOf rebuilds a term from its coefficient and body.  The body is never a
// constant, a sum, or scaled itself.
func scaleOf(coeff int64, body Expr) Expr {
	if coeff == 1 {
		return body
	}
	//
	var factors []Expr
	//
	if m, ok := body.(*Mul); ok {
		factors = append([]Expr{newConst(coeff)}, m.Factors...)
	} else {
		factors = []Expr{newConst(coeff), body}
	}
	//
	return rawMul(factors)
}

func distribute(coeff int64, sum *Add) Expr {
	return Sum(array.Map(sum.Terms, func(t Expr) Expr {
		return Product(Const(coeff), t)
	})...)
}

func rawMul(factors []Expr) *Mul {
	return &Mul{newBase(digestOf(ProdKind, digestsOf(factors)...)), factors}
}

// Kind implementation for the Expr interface.
func (p *Mul) Kind() Kind { return ProdKind }

// Children implementation for the Expr interface.
func (p *Mul) Children() []Expr { return p.Factors }

// Sign implementation for the Expr interface: factor signs fold
// multiplicatively, with any unknown factor poisoning the result.
func (p *Mul) Sign() Sign { return signOfProduct(p.Factors) }

// Min implementation for the Expr interface.
func (p *Mul) Min() Expr {
	min, _ := productBounds(p)
	return min
}

// Max implementation for the Expr interface.
func (p *Mul) Max() Expr {
	_, max := productBounds(p)
	return max
}

func (p *Mul) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, f := range p.Factors {
		if i != 0 {
			builder.WriteString("*")
		}
		//
		builder.WriteString(f.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

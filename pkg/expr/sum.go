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

// Add represents a commutative, associative sum of at least two terms, held
// in canonical order.  A normalised sum contains no nested sum and at most
// one (non-zero) constant term.
type Add struct {
	exprBase
	// Terms of this sum, in canonical order.
	Terms []Expr
}

// likeTerm is the factorisation of a sum term into an integer coefficient and
// a constant-free body, used to combine like terms.
type likeTerm struct {
	coeff int64
	body  Expr
}

// Sum zero or more expressions together, producing the canonical form of
// their sum.  Nested sums are flattened, constants folded into a single term,
// and terms sharing a body coalesce by adding their coefficients.
func Sum(terms ...Expr) Expr {
	var (
		acc    int64
		groups []likeTerm
	)
	// Flatten any nested sums
	terms = array.Flatten(terms, flattenSum)
	// Fold constants, combine like terms
	for _, t := range terms {
		if c, ok := t.(*Constant); ok {
			acc += c.Val
			continue
		}
		//
		coeff, body := splitCoeff(t)
		merged := false
		//
		for i := range groups {
			if Equals(groups[i].body, body) {
				groups[i].coeff += coeff
				merged = true

				break
			}
		}
		//
		if !merged {
			groups = append(groups, likeTerm{coeff, body})
		}
	}
	// Recombine quotient/remainder pairs, restarting when one fires since the
	// recombined term can coalesce further.
	if nterms, ok := recombineDivMod(groups, acc); ok {
		return Sum(nterms...)
	}
	// Rebuild
	nterms := make([]Expr, 0, len(groups)+1)
	//
	for _, g := range groups {
		if g.coeff != 0 {
			nterms = append(nterms, scaleOf(g.coeff, g.body))
		}
	}
	//
	if acc != 0 {
		nterms = append(nterms, newConst(acc))
	}
	// Sort and re-wrap
	sortExprs(nterms)
	//
	switch len(nterms) {
	case 0:
		return Const(0)
	case 1:
		return nterms[0]
	default:
		return rawAdd(nterms)
	}
}

// Sub subtracts one expression from another.
func Sub(a Expr, b Expr) Expr {
	return Sum(a, Neg(b))
}

func flattenSum(term Expr) []Expr {
	if t, ok := term.(*Add); ok {
		return t.Terms
	}
	//
	return nil
}

// recombineDivMod recognises the pair k*d*(y/d) + k*(y%d) within a combined
// term list and replaces it by k*y.  On a match the caller restarts, since
// the identity strictly reduces the node count.
func recombineDivMod(groups []likeTerm, acc int64) ([]Expr, bool) {
	for i := range groups {
		d, ok := groups[i].body.(*Div)
		if !ok {
			continue
		}
		//
		dc, ok := d.Den.(*Constant)
		if !ok {
			continue
		}
		//
		for j := range groups {
			m, ok := groups[j].body.(*Mod)
			if !ok {
				continue
			}
			//
			mc, ok := m.Divisor.(*Constant)
			if !ok || mc.Val != dc.Val {
				continue
			}
			//
			if !Equals(d.Num, m.Dividend) || groups[i].coeff != groups[j].coeff*dc.Val {
				continue
			}
			// Matched: rebuild the whole term list.
			nterms := []Expr{Product(Const(groups[j].coeff), d.Num), Const(acc)}
			//
			for k, g := range groups {
				if k != i && k != j && g.coeff != 0 {
					nterms = append(nterms, scaleOf(g.coeff, g.body))
				}
			}
			//
			return nterms, true
		}
	}
	//
	return nil, false
}

func rawAdd(terms []Expr) *Add {
	return &Add{newBase(digestOf(SumKind, digestsOf(terms)...)), terms}
}

// Kind implementation for the Expr interface.
func (p *Add) Kind() Kind { return SumKind }

// Children implementation for the Expr interface.
func (p *Add) Children() []Expr { return p.Terms }

// Sign implementation for the Expr interface: a sum takes the sign shared by
// all of its terms.
func (p *Add) Sign() Sign { return signOfAll(p.Terms) }

// Min implementation for the Expr interface.
func (p *Add) Min() Expr {
	return sumOfBounds(p.Terms, Expr.Min)
}

// Max implementation for the Expr interface.
func (p *Add) Max() Expr {
	return sumOfBounds(p.Terms, Expr.Max)
}

func (p *Add) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, t := range p.Terms {
		if i != 0 {
			builder.WriteString("+")
		}
		//
		builder.WriteString(t.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

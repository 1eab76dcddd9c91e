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

import "fmt"

// BigSum represents the symbolic closed form of the summation of a body over
// an iteration variable, inclusive on both ends.  The digest deliberately
// excludes the body: bodies are compared up to renaming of the iteration
// variable, so a body-dependent digest would reject alpha-equivalent sums
// before the structural check could accept them.
type BigSum struct {
	exprBase
	// From is the inclusive lower summation bound.
	From Expr
	// UpTo is the inclusive upper summation bound.
	UpTo Expr
	// Iter is the bound iteration variable.
	Iter *Variable
	// Body is the summand, expressed over Iter.
	Body Expr
}

// NewBigSum constructs the sum of a body over an inclusive range, applying
// the closed-form rules where they fit.
func NewBigSum(from Expr, upTo Expr, body func(Expr) Expr) Expr {
	iter := mkVar(nextVarID(), "i", RangeAdd{from, upTo, Const(1)})
	//
	return bigSumOf(from, upTo, iter, body(iter))
}

func bigSumOf(from Expr, upTo Expr, iter *Variable, body Expr) Expr {
	// An empty range sums to zero.
	if isSmallerTrue(upTo, from) {
		return Const(0)
	}
	// A singleton range is its body.
	if Equals(upTo, from) {
		return Substitute(body, Binding{iter, from})
	}
	//
	rangeLen := Sum(upTo, Neg(from), Const(1))
	// A body independent of the iterator scales by the range length.
	if !Contains(body, iter) {
		return Product(body, rangeLen)
	}
	// A sum body splits into one summation per term.
	if add, ok := body.(*Add); ok {
		sums := make([]Expr, len(add.Terms))
		//
		for i, t := range add.Terms {
			sums[i] = bigSumOf(from, upTo, iter, t)
		}
		//
		return Sum(sums...)
	}
	// The iterator itself is an arithmetic series.
	if Equals(body, iter) {
		return IntDiv(Product(Sum(from, upTo), rangeLen), Const(2))
	}
	// A constant coefficient hoists out.
	if coeff, rest := splitCoeff(body); coeff != 1 {
		return Product(Const(coeff), bigSumOf(from, upTo, iter, rest))
	}
	// A conditional on the iterator splits the range at the pivot.
	if ite, ok := body.(*Ite); ok {
		if e, ok := splitConditional(from, upTo, iter, ite); ok {
			return e
		}
	}
	//
	return &BigSum{
		newBase(digestOf(BigSumKind, from.Digest(), ^upTo.Digest())),
		from, upTo, iter, body,
	}
}

// splitConditional rewrites the summation of a conditional whose guard
// compares the iterator against a pivot free of it, by summing each branch
// over its own subrange.
func splitConditional(from Expr, upTo Expr, iter *Variable, ite *Ite) (Expr, bool) {
	var (
		op    = ite.Cond.Op
		pivot Expr
	)
	//
	switch {
	case Equals(ite.Cond.Lhs, iter) && !Contains(ite.Cond.Rhs, iter):
		pivot = ite.Cond.Rhs
	case Equals(ite.Cond.Rhs, iter) && !Contains(ite.Cond.Lhs, iter):
		pivot, op = ite.Cond.Lhs, flipCmp(op)
	default:
		return nil, false
	}
	// Determine the last iterate satisfying the guard (for prefix guards) or
	// the first one (for suffix guards).
	var thenHi, elseLo Expr
	//
	switch op {
	case OpLt:
		thenHi, elseLo = Sub(pivot, Const(1)), pivot
	case OpLe:
		thenHi, elseLo = pivot, Sum(pivot, Const(1))
	case OpGt:
		// Guard holds on the suffix: swap the branches around the pivot.
		return sumPieces(from, pivot, iter, ite.Else, Sum(pivot, Const(1)), upTo, ite.Then), true
	case OpGe:
		return sumPieces(from, Sub(pivot, Const(1)), iter, ite.Else, pivot, upTo, ite.Then), true
	default:
		return nil, false
	}
	//
	return sumPieces(from, thenHi, iter, ite.Then, elseLo, upTo, ite.Else), true
}

func sumPieces(lo1, hi1 Expr, iter *Variable, body1 Expr, lo2, hi2, body2 Expr) Expr {
	return Sum(
		bigSumOf(lo1, hi1, iter, body1),
		bigSumOf(lo2, hi2, iter, body2),
	)
}

func flipCmp(op CmpOp) CmpOp {
	switch op {
	case OpLt:
		return OpGt
	case OpLe:
		return OpGe
	case OpGt:
		return OpLt
	case OpGe:
		return OpLe
	default:
		return op
	}
}

// Kind implementation for the Expr interface.
func (p *BigSum) Kind() Kind { return BigSumKind }

// Children implementation for the Expr interface.
func (p *BigSum) Children() []Expr { return []Expr{p.From, p.UpTo, p.Body} }

// Sign implementation for the Expr interface.
func (p *BigSum) Sign() Sign { return SignUnknown }

// Min implementation for the Expr interface.
func (p *BigSum) Min() Expr { return Unknown }

// Max implementation for the Expr interface.
func (p *BigSum) Max() Expr { return Unknown }

func (p *BigSum) String() string {
	return fmt.Sprintf("sum_{%s=%s}^{%s} %s",
		p.Iter.String(), p.From.String(), p.UpTo.String(), p.Body.String())
}

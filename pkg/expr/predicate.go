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

	"github.com/rise-lang/arithexpr/pkg/util"
)

// CmpOp enumerates the comparison operators of a predicate.
type CmpOp uint8

// The comparison operators.
const (
	// OpLt is strictly-less-than.
	OpLt CmpOp = iota
	// OpLe is less-than-or-equal.
	OpLe
	// OpGt is strictly-greater-than.
	OpGt
	// OpGe is greater-than-or-equal.
	OpGe
	// OpEq is equality.
	OpEq
	// OpNe is disequality.
	OpNe
)

var cmpOpStrings = [...]string{"<", "<=", ">", ">=", "==", "!="}

func (op CmpOp) String() string {
	return cmpOpStrings[op]
}

// holds applies a comparison operator to a concrete pair of integers.
func (op CmpOp) holds(lhs int64, rhs int64) bool {
	switch op {
	case OpLt:
		return lhs < rhs
	case OpLe:
		return lhs <= rhs
	case OpGt:
		return lhs > rhs
	case OpGe:
		return lhs >= rhs
	case OpEq:
		return lhs == rhs
	default:
		return lhs != rhs
	}
}

// Predicate is an immutable comparison atom between two expressions.  A
// predicate only becomes decidable once both sides evaluate to constants.
type Predicate struct {
	// Lhs is the left-hand side of the comparison.
	Lhs Expr
	// Rhs is the right-hand side of the comparison.
	Rhs Expr
	// Op is the comparison operator.
	Op CmpOp
}

// Less constructs the predicate lhs < rhs.
func Less(lhs Expr, rhs Expr) Predicate { return Predicate{lhs, rhs, OpLt} }

// LessEq constructs the predicate lhs <= rhs.
func LessEq(lhs Expr, rhs Expr) Predicate { return Predicate{lhs, rhs, OpLe} }

// Greater constructs the predicate lhs > rhs.
func Greater(lhs Expr, rhs Expr) Predicate { return Predicate{lhs, rhs, OpGt} }

// GreaterEq constructs the predicate lhs >= rhs.
func GreaterEq(lhs Expr, rhs Expr) Predicate { return Predicate{lhs, rhs, OpGe} }

// EqualTo constructs the predicate lhs == rhs.
func EqualTo(lhs Expr, rhs Expr) Predicate { return Predicate{lhs, rhs, OpEq} }

// NotEqual constructs the predicate lhs != rhs.
func NotEqual(lhs Expr, rhs Expr) Predicate { return Predicate{lhs, rhs, OpNe} }

// Digest returns a seed-salted digest of this predicate.
func (p Predicate) Digest() uint64 {
	return digestOf(IteKind, uint64(p.Op), p.Lhs.Digest(), ^p.Rhs.Digest())
}

// Equals determines whether two predicates are structurally identical.
func (p Predicate) Equals(o Predicate) bool {
	return p.Op == o.Op && Equals(p.Lhs, o.Lhs) && Equals(p.Rhs, o.Rhs)
}

// Eval decides this predicate when both sides evaluate to constants.
func (p Predicate) Eval() util.Option[bool] {
	lhs, err1 := Eval(p.Lhs)
	rhs, err2 := Eval(p.Rhs)
	//
	if err1 != nil || err2 != nil {
		return util.None[bool]()
	}
	//
	return util.Some(p.Op.holds(lhs, rhs))
}

// Substitute applies a set of bindings to both sides of this predicate.
func (p Predicate) Substitute(bindings ...Binding) Predicate {
	return Predicate{
		Substitute(p.Lhs, bindings...),
		Substitute(p.Rhs, bindings...),
		p.Op,
	}
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s %s %s", p.Lhs.String(), p.Op.String(), p.Rhs.String())
}

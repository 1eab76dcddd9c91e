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
)

// IsSmaller decides whether a < b, returning an empty option when the
// question cannot be settled.  The procedure is incomplete but sound: a
// definite answer holds for every assignment of the free variables
// consistent with their ranges.
func IsSmaller(a Expr, b Expr) util.Option[bool] {
	return isSmaller(a, b, true)
}

func isSmaller(a Expr, b Expr, freeze bool) util.Option[bool] {
	// Unknown operands settle nothing.
	if containsUnknown(a) || containsUnknown(b) {
		return util.None[bool]()
	}
	// Infinities order against everything.
	if r := infinityOrder(a, b); r.HasValue() {
		return r
	}
	// A constant difference settles the question directly.
	if v, err := Eval(Sub(b, a)); err == nil {
		return util.Some(v > 0)
	}
	// Disjoint numeric bounds settle it too.
	ia, ib := BoundsOf(a), BoundsOf(b)
	//
	if ia.Below(ib) {
		return util.Some(true)
	}
	//
	if ia.Min().Cmp(ib.Max()) >= 0 {
		return util.Some(false)
	}
	// Structural catalogue.
	if r := smallerPattern(a, b); r.HasValue() {
		return r
	}
	// Freeze the variables common to both sides and compare the frozen
	// extremes.  Frozen variables bound themselves, so this recursion cannot
	// re-enter itself.
	if freeze {
		if r := freezeAndCompare(a, b); r.HasValue() {
			return r
		}
	}
	//
	return util.None[bool]()
}

// isSmallerTrue is a convenience collapsing the undecided case to false.
func isSmallerTrue(a Expr, b Expr) bool {
	r := IsSmaller(a, b)
	return r.HasValue() && r.Unwrap()
}

func containsUnknown(e Expr) bool {
	return VisitUntil(e, func(x Expr) bool {
		return x.Kind() == UnknownKind
	})
}

func infinityOrder(a Expr, b Expr) util.Option[bool] {
	switch {
	case a == PosInf:
		return util.Some(false)
	case b == NegInf:
		return util.Some(false)
	case a == NegInf:
		return util.Some(b != NegInf)
	case b == PosInf:
		return util.Some(a != PosInf)
	default:
		return util.None[bool]()
	}
}

// smallerPattern is a small catalogue of shapes decidable without numeric
// bounds.
func smallerPattern(a Expr, b Expr) util.Option[bool] {
	// v/k < v, for positive v and k > 1.
	if d, ok := a.(*Div); ok {
		if k, ok := d.Den.(*Constant); ok && k.Val > 1 {
			if Equals(d.Num, b) && provablyPositive(b) {
				return util.Some(true)
			}
		}
	}
	// c*(v/k) < v, for positive v and 0 < c < k.
	if m, ok := a.(*Mul); ok {
		if c, rest := splitCoeff(m); c > 0 {
			if d, ok := rest.(*Div); ok {
				if k, ok := d.Den.(*Constant); ok && c < k.Val {
					if Equals(d.Num, b) && provablyPositive(b) {
						return util.Some(true)
					}
				}
			}
		}
	}
	// x % v < v, for a positive divisor and non-negative dividend.
	if m, ok := a.(*Mod); ok {
		if Equals(m.Divisor, b) && provablyPositive(b) && !MightBeNegative(m.Dividend) {
			return util.Some(true)
		}
	}
	// |x| < n reduces to -n < x < n.
	if abs, ok := a.(*Abs); ok {
		lo := isSmaller(Neg(b), abs.Arg, true)
		hi := isSmaller(abs.Arg, b, true)
		//
		if lo.HasValue() && hi.HasValue() && lo.Unwrap() && hi.Unwrap() {
			return util.Some(true)
		}
	}
	// A variable is below whatever its upper bound is below, and above
	// whatever its lower bound is above.
	if v, ok := a.(*Variable); ok {
		if max := v.Max(); max.Kind() != UnknownKind && !Equals(max, a) {
			if r := isSmaller(max, b, true); r.HasValue() && r.Unwrap() {
				return r
			}
		}
	}
	//
	if v, ok := b.(*Variable); ok {
		if min := v.Min(); min.Kind() != UnknownKind && !Equals(min, b) {
			if r := isSmaller(a, min, true); r.HasValue() && r.Unwrap() {
				return r
			}
		}
	}
	//
	return util.None[bool]()
}

// freezeAndCompare replaces the variables occurring on both sides by opaque
// variables, whose min and max are themselves, then compares the maximum of
// the left side against the minimum of the right.
func freezeAndCompare(a Expr, b Expr) util.Option[bool] {
	var bindings []Binding
	//
	vb := VarList(b)
	//
	for _, v := range VarList(a).Slice() {
		if vb.Contains(v) {
			bindings = append(bindings, Binding{v, NewOpaque(v)})
		}
	}
	//
	if len(bindings) == 0 {
		return util.None[bool]()
	}
	//
	fa := Substitute(a, bindings...)
	fb := Substitute(b, bindings...)
	//
	amax, bmin := fa.Max(), fb.Min()
	//
	if amax.Kind() == UnknownKind || bmin.Kind() == UnknownKind {
		return util.None[bool]()
	}
	//
	if r := isSmaller(amax, bmin, false); r.HasValue() && r.Unwrap() {
		return r
	}
	//
	return util.None[bool]()
}

// provablyPositive determines whether an expression is known to be strictly
// positive.
func provablyPositive(e Expr) bool {
	if v, err := Eval(e.Min()); err == nil && v >= 1 {
		return true
	}
	//
	if c, ok := e.(*Constant); ok {
		return c.Val > 0
	}
	// A frozen variable is as positive as the variable it freezes.
	if o, ok := e.(*Opaque); ok {
		return provablyPositive(o.V)
	}
	//
	return false
}

// MightBeNegative conservatively determines whether an expression could take
// a negative value.  A false result is a proof of non-negativity.
func MightBeNegative(e Expr) bool {
	switch e.Sign() {
	case SignPositive:
		return false
	case SignNegative:
		// A sign is only reported negative when the expression cannot be
		// positive; zero remains possible, negativity certainly is.
		return true
	}
	//
	if v, err := Eval(e.Min()); err == nil && v >= 0 {
		return false
	}
	//
	return true
}

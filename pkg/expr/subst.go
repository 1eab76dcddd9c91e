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

import "github.com/rise-lang/arithexpr/pkg/util/collection/array"

// Binding maps one expression to its replacement during substitution.
type Binding struct {
	// From is the expression being replaced.
	From Expr
	// To is its replacement.
	To Expr
}

// Substitute applies a set of bindings to an expression, consulting them at
// every node including inside variable ranges.  The result is rebuilt
// through the smart constructors and is therefore in normal form.
func Substitute(e Expr, bindings ...Binding) Expr {
	if len(bindings) == 0 {
		return e
	}
	//
	return subst(e, bindings)
}

func subst(e Expr, bindings []Binding) Expr {
	for _, b := range bindings {
		if Equals(e, b.From) {
			return b.To
		}
	}
	//
	switch t := e.(type) {
	case *Variable:
		// Substituting inside the range produces a new variable with the
		// same identity.
		return simplifyVar(mkVar(t.Id, t.Name, t.Range.Substitute(bindings)))
	case *NamedFunc:
		return NewNamedFunc(t.Name, t.Range.Substitute(bindings))
	case *Lookup:
		table := array.Map(t.Table, func(x Expr) Expr { return subst(x, bindings) })
		//
		return NewLookup(table, subst(t.Index, bindings), t.Id)
	case *Add:
		return Sum(array.Map(t.Terms, func(x Expr) Expr { return subst(x, bindings) })...)
	case *Mul:
		return Product(array.Map(t.Factors, func(x Expr) Expr { return subst(x, bindings) })...)
	case *Pow:
		return PowOf(subst(t.Base, bindings), subst(t.Exponent, bindings))
	case *Div:
		return IntDiv(subst(t.Num, bindings), subst(t.Den, bindings))
	case *Mod:
		return Rem(subst(t.Dividend, bindings), subst(t.Divisor, bindings))
	case *Log:
		return LogOf(subst(t.Base, bindings), subst(t.Arg, bindings))
	case *Floor:
		return FloorOf(subst(t.Arg, bindings))
	case *Ceil:
		return CeilOf(subst(t.Arg, bindings))
	case *Abs:
		return AbsOf(subst(t.Arg, bindings))
	case *Ite:
		return NewIte(
			t.Cond.Substitute(bindings...),
			subst(t.Then, bindings),
			subst(t.Else, bindings),
		)
	case *BigSum:
		return bigSumOf(
			subst(t.From, bindings),
			subst(t.UpTo, bindings),
			t.Iter,
			subst(t.Body, bindings),
		)
	default:
		// Remaining leaves are fixed points.
		return e
	}
}

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

// Ite represents a conditional expression guarded by a comparison predicate.
type Ite struct {
	exprBase
	// Cond guards the choice of branch.
	Cond Predicate
	// Then is the value when the condition holds.
	Then Expr
	// Else is the value when the condition fails.
	Else Expr
}

// NewIte constructs a conditional expression.  A decidable predicate
// short-circuits to the chosen branch; identical branches collapse.
func NewIte(cond Predicate, then Expr, els Expr) Expr {
	if r := cond.Eval(); r.HasValue() {
		if r.Unwrap() {
			return then
		}
		//
		return els
	}
	//
	if Equals(then, els) {
		return then
	}
	//
	return &Ite{
		newBase(digestOf(IteKind, cond.Digest(), then.Digest(), ^els.Digest())),
		cond, then, els,
	}
}

// Kind implementation for the Expr interface.
func (p *Ite) Kind() Kind { return IteKind }

// Children implementation for the Expr interface.  Both sides of the guard
// participate in traversals.
func (p *Ite) Children() []Expr {
	return []Expr{p.Cond.Lhs, p.Cond.Rhs, p.Then, p.Else}
}

// Sign implementation for the Expr interface: a conditional has a sign only
// when its branches agree.
func (p *Ite) Sign() Sign {
	if sign := p.Then.Sign(); sign == p.Else.Sign() {
		return sign
	}
	//
	return SignUnknown
}

// Min implementation for the Expr interface: pointwise minimum of the
// branches.
func (p *Ite) Min() Expr {
	return pointwiseBound(p.Then.Min(), p.Else.Min(), true)
}

// Max implementation for the Expr interface: pointwise maximum of the
// branches.
func (p *Ite) Max() Expr {
	return pointwiseBound(p.Then.Max(), p.Else.Max(), false)
}

func (p *Ite) String() string {
	return fmt.Sprintf("((%s) ? (%s) : (%s))", p.Cond.String(), p.Then.String(), p.Else.String())
}

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
	"github.com/rise-lang/arithexpr/pkg/util/collection/hash"
	log "github.com/sirupsen/logrus"
)

// DefaultFuel bounds the number of fixpoint iterations of the driver.
// Smart constructors already return normal forms, so well-behaved inputs
// stabilise within a handful of steps; the budget exists to turn a rewrite
// cycle into a diagnostic instead of a hang.
const DefaultFuel = 1000

// Simplify re-normalises an expression, dispatching on the root kind to the
// matching smart constructor and iterating to a fixpoint.  It reports
// ErrFixpointExhausted if the default fuel budget runs out.
func Simplify(e Expr) (Expr, error) {
	return SimplifyWithFuel(e, DefaultFuel)
}

// SimplifyWithFuel is Simplify under an explicit fuel budget.  Detected
// rewrite cycles log a diagnostic and return the current expression rather
// than looping.
func SimplifyWithFuel(e Expr, fuel uint) (Expr, error) {
	seen := hash.NewSet[exprKey](16)
	cur := e
	//
	for i := uint(0); i < fuel; i++ {
		next := oneStep(cur)
		//
		if Equals(next, cur) {
			return next, nil
		}
		//
		if seen.Insert(exprKey{next}) {
			log.Warnf("rewrite cycle detected after %d steps on %s", i, next.String())
			return next, nil
		}
		//
		cur = next
	}
	//
	log.Errorf("fuel exhausted after %d rewriting steps on %s", fuel, cur.String())
	//
	return cur, ErrFixpointExhausted
}

// oneStep pushes an expression through the smart constructor of its root
// kind, rebuilding children first.
func oneStep(e Expr) Expr {
	switch t := e.(type) {
	case *Add:
		return Sum(oneStepAll(t.Terms)...)
	case *Mul:
		return Product(oneStepAll(t.Factors)...)
	case *Pow:
		return PowOf(oneStep(t.Base), oneStep(t.Exponent))
	case *Div:
		return IntDiv(oneStep(t.Num), oneStep(t.Den))
	case *Mod:
		return Rem(oneStep(t.Dividend), oneStep(t.Divisor))
	case *Log:
		return LogOf(oneStep(t.Base), oneStep(t.Arg))
	case *Floor:
		return FloorOf(oneStep(t.Arg))
	case *Ceil:
		return CeilOf(oneStep(t.Arg))
	case *Abs:
		return AbsOf(oneStep(t.Arg))
	case *Ite:
		cond := Predicate{oneStep(t.Cond.Lhs), oneStep(t.Cond.Rhs), t.Cond.Op}
		return NewIte(cond, oneStep(t.Then), oneStep(t.Else))
	case *BigSum:
		return bigSumOf(oneStep(t.From), oneStep(t.UpTo), t.Iter, oneStep(t.Body))
	case *Lookup:
		return NewLookup(t.Table, oneStep(t.Index), t.Id)
	case *Variable:
		return simplifyVar(t)
	default:
		return e
	}
}

func oneStepAll(exprs []Expr) []Expr {
	nexprs := make([]Expr, len(exprs))
	//
	for i, e := range exprs {
		nexprs[i] = oneStep(e)
	}
	//
	return nexprs
}

// exprKey adapts an expression for membership in the driver's visited set.
type exprKey struct {
	expr Expr
}

// Equals implementation for the hash.Hasher interface.
func (p exprKey) Equals(o exprKey) bool {
	return Equals(p.expr, o.expr)
}

// Hash implementation for the hash.Hasher interface.
func (p exprKey) Hash() uint64 {
	return p.expr.Digest()
}

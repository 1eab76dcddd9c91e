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
	gomath "math"

	"github.com/rise-lang/arithexpr/pkg/util/math"
)

// Eval fully evaluates a closed expression to an integer.  Any variable,
// named function, lookup, conditional, unknown or infinity fails with an
// error wrapping ErrNotEvaluable; the error is always recoverable at the
// call site.
func Eval(e Expr) (int64, error) {
	switch t := e.(type) {
	case *Constant:
		return t.Val, nil
	case *Add:
		var acc int64
		//
		for _, term := range t.Terms {
			v, err := Eval(term)
			if err != nil {
				return 0, err
			}
			//
			acc += v
		}
		//
		return acc, nil
	case *Mul:
		acc := int64(1)
		//
		for _, f := range t.Factors {
			v, err := Eval(f)
			if err != nil {
				return 0, err
			}
			//
			acc *= v
		}
		//
		return acc, nil
	case *Pow:
		return evalPow(t)
	case *Div:
		return evalDivMod(t.Num, t.Den, math.FloorDiv)
	case *Mod:
		return evalDivMod(t.Dividend, t.Divisor, math.CRem)
	case *Log:
		return evalLog(t)
	case *Floor:
		if v, err := EvalDouble(t.Arg); err == nil {
			return int64(gomath.Floor(v)), nil
		}
		//
		return 0, notEvaluable(e)
	case *Ceil:
		if v, err := EvalDouble(t.Arg); err == nil {
			return int64(gomath.Ceil(v)), nil
		}
		//
		return 0, notEvaluable(e)
	case *Abs:
		v, err := Eval(t.Arg)
		//
		return math.Abs64(v), err
	case *BigSum:
		return evalBigSum(t)
	default:
		return 0, notEvaluable(e)
	}
}

// IsEvaluable determines whether an expression is closed, i.e. evaluates to
// an integer.
func IsEvaluable(e Expr) bool {
	_, err := Eval(e)
	return err == nil
}

func evalPow(p *Pow) (int64, error) {
	base, err := Eval(p.Base)
	if err != nil {
		return 0, err
	}
	//
	exp, err := Eval(p.Exponent)
	if err != nil {
		return 0, err
	}
	//
	if exp >= 0 {
		return math.PowInt64(base, uint64(exp)), nil
	}
	// A negative exponent only has an integral value on a base of magnitude
	// one, where the reciprocal is the base itself.
	if math.Abs64(base) == 1 {
		return math.PowInt64(base, uint64(-exp)), nil
	}
	//
	return 0, notEvaluable(p)
}

func evalDivMod(num Expr, den Expr, fn func(int64, int64) int64) (int64, error) {
	n, err := Eval(num)
	if err != nil {
		return 0, err
	}
	//
	d, err := Eval(den)
	if err != nil {
		return 0, err
	}
	//
	if d == 0 {
		return 0, fmt.Errorf("%w: zero divisor", ErrArithmeticDomain)
	}
	//
	return fn(n, d), nil
}

func evalLog(p *Log) (int64, error) {
	base, err := Eval(p.Base)
	if err != nil {
		return 0, err
	}
	//
	arg, err := Eval(p.Arg)
	if err != nil {
		return 0, err
	}
	//
	if base >= 2 && arg >= 1 {
		if k, exact := intLog(base, arg); exact {
			return k, nil
		}
	}
	//
	return 0, notEvaluable(p)
}

func evalBigSum(p *BigSum) (int64, error) {
	from, err := Eval(p.From)
	if err != nil {
		return 0, err
	}
	//
	upTo, err := Eval(p.UpTo)
	if err != nil {
		return 0, err
	}
	//
	var acc int64
	//
	for i := from; i <= upTo; i++ {
		v, err := Eval(Substitute(p.Body, Binding{p.Iter, Const(i)}))
		if err != nil {
			return 0, err
		}
		//
		acc += v
	}
	//
	return acc, nil
}

// EvalDouble evaluates a closed expression to a double, used for fast
// feasibility probes during simplification.  Fractional intermediates, such
// as reciprocal powers, are permitted.
func EvalDouble(e Expr) (float64, error) {
	switch t := e.(type) {
	case *Constant:
		return float64(t.Val), nil
	case *Add:
		var acc float64
		//
		for _, term := range t.Terms {
			v, err := EvalDouble(term)
			if err != nil {
				return 0, err
			}
			//
			acc += v
		}
		//
		return acc, nil
	case *Mul:
		acc := float64(1)
		//
		for _, f := range t.Factors {
			v, err := EvalDouble(f)
			if err != nil {
				return 0, err
			}
			//
			acc *= v
		}
		//
		return acc, nil
	case *Pow:
		base, err1 := EvalDouble(t.Base)
		exp, err2 := EvalDouble(t.Exponent)
		//
		if err1 != nil || err2 != nil {
			return 0, notEvaluable(e)
		}
		//
		return gomath.Pow(base, exp), nil
	case *Div:
		return evalDoubleDivMod(t.Num, t.Den, func(n, d float64) float64 {
			return gomath.Floor(n / d)
		})
	case *Mod:
		return evalDoubleDivMod(t.Dividend, t.Divisor, gomath.Mod)
	case *Log:
		base, err1 := EvalDouble(t.Base)
		arg, err2 := EvalDouble(t.Arg)
		//
		if err1 != nil || err2 != nil || base <= 0 || arg <= 0 {
			return 0, notEvaluable(e)
		}
		//
		return gomath.Log(arg) / gomath.Log(base), nil
	case *Floor:
		v, err := EvalDouble(t.Arg)
		return gomath.Floor(v), err
	case *Ceil:
		v, err := EvalDouble(t.Arg)
		return gomath.Ceil(v), err
	case *Abs:
		v, err := EvalDouble(t.Arg)
		return gomath.Abs(v), err
	case *BigSum:
		v, err := evalBigSum(t)
		return float64(v), err
	default:
		return 0, notEvaluable(e)
	}
}

func evalDoubleDivMod(num Expr, den Expr, fn func(float64, float64) float64) (float64, error) {
	n, err := EvalDouble(num)
	if err != nil {
		return 0, err
	}
	//
	d, err := EvalDouble(den)
	if err != nil {
		return 0, err
	}
	//
	if d == 0 {
		return 0, fmt.Errorf("%w: zero divisor", ErrArithmeticDomain)
	}
	//
	return fn(n, d), nil
}

// AtMin substitutes every variable by the lower bound of its range, where
// known, giving a partial evaluation of the expression at its minimum.
func AtMin(e Expr) Expr {
	return atBound(e, (*Variable).Min)
}

// AtMax substitutes every variable by the upper bound of its range, where
// known.
func AtMax(e Expr) Expr {
	return atBound(e, (*Variable).Max)
}

func atBound(e Expr, sel func(*Variable) Expr) Expr {
	var bindings []Binding
	//
	for _, v := range VarList(e).Slice() {
		if b := sel(v); b.Kind() != UnknownKind {
			bindings = append(bindings, Binding{v, b})
		}
	}
	//
	return Substitute(e, bindings...)
}

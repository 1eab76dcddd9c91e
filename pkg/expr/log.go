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

// Log represents a logarithm of an expression in a given base.
type Log struct {
	exprBase
	// Base of this logarithm.
	Base Expr
	// Arg is the expression whose logarithm is taken.
	Arg Expr
}

// LogOf takes the logarithm of an expression in a given base, folding only
// exact constant logarithms.
func LogOf(base Expr, arg Expr) Expr {
	if b, ok := base.(*Constant); ok && b.Val >= 2 {
		if a, ok := arg.(*Constant); ok && a.Val >= 1 {
			if k, exact := intLog(b.Val, a.Val); exact {
				return Const(k)
			}
		}
	}
	//
	return &Log{
		newBase(digestOf(LogKind, base.Digest(), ^arg.Digest())),
		base, arg,
	}
}

// intLog determines k such that base^k == arg, if such k exists.
func intLog(base int64, arg int64) (int64, bool) {
	var k int64
	//
	for v := int64(1); v <= arg; v *= base {
		if v == arg {
			return k, true
		}
		//
		k++
	}
	//
	return 0, false
}

// Kind implementation for the Expr interface.
func (p *Log) Kind() Kind { return LogKind }

// Children implementation for the Expr interface.
func (p *Log) Children() []Expr { return []Expr{p.Base, p.Arg} }

// Sign implementation for the Expr interface.
func (p *Log) Sign() Sign { return SignUnknown }

// Min implementation for the Expr interface, using monotonicity of the
// logarithm in its argument.
func (p *Log) Min() Expr {
	return logBound(p.Base, p.Arg.Min())
}

// Max implementation for the Expr interface.
func (p *Log) Max() Expr {
	return logBound(p.Base, p.Arg.Max())
}

func logBound(base Expr, bound Expr) Expr {
	if b, ok := base.(*Constant); ok && b.Val >= 2 {
		return unaryBound(bound, func(e Expr) Expr { return LogOf(base, e) })
	}
	//
	return Unknown
}

func (p *Log) String() string {
	return fmt.Sprintf("log(%s,%s)", p.Base.String(), p.Arg.String())
}

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
	"errors"
	"fmt"
)

// ErrArithmeticDomain indicates division or modulo by zero, or construction
// of an otherwise malformed expression.  Smart constructors panic with an
// error wrapping this sentinel; the panic is not caught anywhere inside the
// engine.
var ErrArithmeticDomain = errors.New("arithmetic domain violation")

// ErrNotEvaluable indicates Eval or EvalDouble was invoked on a tree
// containing unknowns, infinities, free variables or undecidable
// conditionals.  Always recoverable at the call site.
var ErrNotEvaluable = errors.New("expression is not evaluable")

// ErrFixpointExhausted indicates the simplification driver ran out of fuel,
// which points at a rewrite-engine bug.
var ErrFixpointExhausted = errors.New("simplification fuel exhausted")

func domainPanic(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrArithmeticDomain, fmt.Sprintf(format, args...)))
}

func notEvaluable(e Expr) error {
	return fmt.Errorf("%w: %s", ErrNotEvaluable, e.String())
}

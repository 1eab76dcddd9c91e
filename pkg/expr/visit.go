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

import set "github.com/hashicorp/go-set/v3"

// Visit applies a function to every node of an expression, in preorder.
// Traversal does not descend into variable ranges.
func Visit(e Expr, fn func(Expr)) {
	fn(e)
	//
	for _, c := range e.Children() {
		Visit(c, fn)
	}
}

// VisitUntil applies a function to nodes of an expression in preorder,
// short-circuiting as soon as the function returns true.  The result
// indicates whether the traversal was cut short.
func VisitUntil(e Expr, fn func(Expr) bool) bool {
	if fn(e) {
		return true
	}
	//
	for _, c := range e.Children() {
		if VisitUntil(c, fn) {
			return true
		}
	}
	//
	return false
}

// Contains determines whether an expression structurally contains another.
func Contains(e Expr, sub Expr) bool {
	return VisitUntil(e, func(x Expr) bool {
		return Equals(x, sub)
	})
}

// VarList collects the variables occurring in an expression, keyed by
// identity.  Frozen (opaque) variables are not included.
func VarList(e Expr) *set.HashSet[*Variable, uint64] {
	vars := set.NewHashSet[*Variable](8)
	//
	Visit(e, func(x Expr) {
		if v, ok := x.(*Variable); ok {
			vars.Insert(v)
		}
	})
	//
	return vars
}

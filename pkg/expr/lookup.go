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

// Lookup represents an indexed read into a literal table of expressions.
// The id identifies the table; two lookups are equal when their ids and
// indices match.
type Lookup struct {
	exprBase
	// Table holds the candidate expressions.
	Table []Expr
	// Index selects an entry of the table.
	Index Expr
	// Id identifies the table.
	Id int
}

// NewLookup constructs an indexed read into a table.  A constant index within
// bounds collapses to the selected entry.
func NewLookup(table []Expr, index Expr, id int) Expr {
	if c, ok := index.(*Constant); ok && c.Val >= 0 && c.Val < int64(len(table)) {
		return table[c.Val]
	}
	//
	return &Lookup{
		newBase(digestOf(LookupKind, uint64(id), index.Digest())),
		table, index, id,
	}
}

// Kind implementation for the Expr interface.
func (p *Lookup) Kind() Kind { return LookupKind }

// Children implementation for the Expr interface.
func (p *Lookup) Children() []Expr { return []Expr{p.Index} }

// Sign implementation for the Expr interface.
func (p *Lookup) Sign() Sign { return SignUnknown }

// Min implementation for the Expr interface.
func (p *Lookup) Min() Expr { return Unknown }

// Max implementation for the Expr interface.
func (p *Lookup) Max() Expr { return Unknown }

func (p *Lookup) String() string {
	return fmt.Sprintf("lookup%d(%s)", p.Id, p.Index.String())
}

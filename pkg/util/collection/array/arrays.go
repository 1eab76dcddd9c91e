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
package array

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Flatten expands items within an array as determined by a given expansion
// function.  Items are only expanded when the function returns a non-nil
// result.  If no item expands, the original array is returned untouched.
func Flatten[T any](items []T, fn func(T) []T) []T {
	for _, t := range items {
		if fn(t) != nil {
			return forceFlatten(items, fn)
		}
	}
	// no change
	return items
}

func forceFlatten[T any](items []T, fn func(T) []T) []T {
	nitems := make([]T, 0, len(items))
	//
	for _, t := range items {
		if ts := fn(t); ts != nil {
			nitems = append(nitems, ts...)
		} else {
			nitems = append(nitems, t)
		}
	}
	//
	return nitems
}

// RemoveMatching removes all elements from an array matching a given
// predicate.  If no element matches, the original array is returned untouched.
func RemoveMatching[T any](items []T, predicate Predicate[T]) []T {
	count := 0
	// Check how many matches we have
	for _, r := range items {
		if !predicate(r) {
			count++
		}
	}
	// Check for stuff to remove
	if count != len(items) {
		nitems := make([]T, 0, count)
		// Remove items
		for _, r := range items {
			if !predicate(r) {
				nitems = append(nitems, r)
			}
		}
		//
		items = nitems
	}
	//
	return items
}

// ContainsMatching checks whether at least one element of an array matches a
// given predicate.
func ContainsMatching[T any](items []T, predicate Predicate[T]) bool {
	for _, r := range items {
		if predicate(r) {
			return true
		}
	}
	//
	return false
}

// Map applies a given function to every element of an array, producing a new
// array.
func Map[S, T any](items []S, fn func(S) T) []T {
	nitems := make([]T, len(items))
	//
	for i, s := range items {
		nitems[i] = fn(s)
	}
	//
	return nitems
}

/*
 * Cinder - A statically-typed programming language
 *
 * Copyright Cinder Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fir

// TypeRef is a resolved type reference. Exactly one of Class,
// TypeParameter, and Alias is set. Resolution guarantees this;
// the lowering does not re-check it.
type TypeRef struct {
	Class         *Class
	TypeParameter *TypeParameter
	Alias         *TypeAlias
	IsNullable    bool
	Arguments     []*TypeRef
	Range
}

// TypeAlias is a named indirection to another type reference.
// Aliases never survive lowering: every consumer expands them first.
type TypeAlias struct {
	Name       string
	Underlying *TypeRef
	Range
}

// Expanded follows alias indirections until a class or type-parameter
// reference is reached. Nullability is sticky: a nullable alias of a
// non-nullable type expands to a nullable reference.
func (t *TypeRef) Expanded() *TypeRef {
	if t == nil || t.Alias == nil {
		return t
	}

	expanded := t.Alias.Underlying.Expanded()
	if t.IsNullable && !expanded.IsNullable {
		nullable := *expanded
		nullable.IsNullable = true
		return &nullable
	}
	return expanded
}

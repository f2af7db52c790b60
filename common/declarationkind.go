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

package common

type DeclarationKind int

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindClass
	DeclarationKindFunction
	DeclarationKindConstructor
	DeclarationKindProperty
	DeclarationKindPropertyAccessor
	DeclarationKindField
	DeclarationKindValueParameter
	DeclarationKindVariable
	DeclarationKindTypeParameter
	DeclarationKindFile
)

func (k DeclarationKind) IsCallableDeclaration() bool {
	switch k {
	case DeclarationKindFunction,
		DeclarationKindConstructor,
		DeclarationKindPropertyAccessor:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindClass:
		return "class"
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindConstructor:
		return "constructor"
	case DeclarationKindProperty:
		return "property"
	case DeclarationKindPropertyAccessor:
		return "property accessor"
	case DeclarationKindField:
		return "field"
	case DeclarationKindValueParameter:
		return "parameter"
	case DeclarationKindVariable:
		return "variable"
	case DeclarationKindTypeParameter:
		return "type parameter"
	case DeclarationKindFile:
		return "file"
	}

	return "unknown"
}

func (k DeclarationKind) String() string {
	return k.Name()
}

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

package ir

// DeclarationOrigin records why a declaration exists:
// written in source, or synthesized during lowering.
type DeclarationOrigin int

const (
	DeclarationOriginDefined DeclarationOrigin = iota
	DeclarationOriginFakeOverride
	DeclarationOriginDefaultPropertyAccessor
	DeclarationOriginPropertyBackingField
	DeclarationOriginThisReceiver
	DeclarationOriginTemporary
	DeclarationOriginAnonymousObject
)

func (o DeclarationOrigin) String() string {
	switch o {
	case DeclarationOriginDefined:
		return "defined"
	case DeclarationOriginFakeOverride:
		return "fake override"
	case DeclarationOriginDefaultPropertyAccessor:
		return "default property accessor"
	case DeclarationOriginPropertyBackingField:
		return "property backing field"
	case DeclarationOriginThisReceiver:
		return "this receiver"
	case DeclarationOriginTemporary:
		return "temporary"
	case DeclarationOriginAnonymousObject:
		return "anonymous object"
	}

	return "unknown"
}

// StatementOrigin distinguishes otherwise identical expression shapes,
// e.g. a read of a constructor parameter which initializes a property.
type StatementOrigin int

const (
	StatementOriginNone StatementOrigin = iota
	StatementOriginInitializePropertyFromParameter
	StatementOriginWhenSubject
)

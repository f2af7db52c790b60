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

import (
	"github.com/cinderlang/cinder/common"
)

// The built-in declarations every lowered file may reference.
// They live in their own external package fragment and are immutable:
// sharing them across lowering runs is safe.

const BuiltinsPackage = common.PackageName("cinder")

var BuiltinsFragment = NewExternalPackageFragment(BuiltinsPackage)

func newBuiltinClass(name string) *Class {
	class := NewClass(
		NewClassSymbol(),
		name,
		common.ClassKindClass,
		common.VisibilityPublic,
		common.ModalityFinal,
		DeclarationOriginDefined,
		Coordinates{},
	)
	class.SetParent(BuiltinsFragment)
	BuiltinsFragment.Declarations = append(BuiltinsFragment.Declarations, class)
	return class
}

var (
	AnyClass     = newBuiltinClass("Any")
	BooleanClass = newBuiltinClass("Boolean")
	IntClass     = newBuiltinClass("Int")
	StringClass  = newBuiltinClass("String")
	UnitClass    = newBuiltinClass("Unit")
	NothingClass = newBuiltinClass("Nothing")
)

var (
	AnyType         = AnyClass.DefaultType()
	NullableAnyType = AnyType.WithNullability(true)
	BooleanType     = BooleanClass.DefaultType()
	IntType         = IntClass.DefaultType()
	StringType      = StringClass.DefaultType()
	UnitType        = UnitClass.DefaultType()
	NothingType     = NothingClass.DefaultType()

	// NullType is the type of the null literal.
	NullType = NothingType.WithNullability(true)
)

func newBuiltinFunction(name string, parameterType Type, returnType Type) *Function {
	function := NewFunction(
		NewFunctionSymbol(),
		name,
		common.VisibilityPublic,
		common.ModalityFinal,
		returnType,
		DeclarationOriginDefined,
		Coordinates{},
	)
	function.IsExternal = true

	for index, parameterName := range []string{"a", "b"} {
		parameter := NewValueParameter(
			NewValueParameterSymbol(),
			parameterName,
			index,
			parameterType,
			DeclarationOriginDefined,
			Coordinates{},
		)
		parameter.SetParent(function)
		function.ValueParameters = append(function.ValueParameters, parameter)
	}

	function.SetParent(BuiltinsFragment)
	BuiltinsFragment.Declarations = append(BuiltinsFragment.Declarations, function)

	return function
}

// The built-in operations binary operators lower to.
// EqualsFunction is the structural equality operation every equality
// comparison lowers to; the arithmetic and ordering operations cover
// the built-in integer type.
var (
	EqualsFunction = newBuiltinFunction("equals", NullableAnyType, BooleanType)

	PlusFunction  = newBuiltinFunction("plus", IntType, IntType)
	MinusFunction = newBuiltinFunction("minus", IntType, IntType)
	TimesFunction = newBuiltinFunction("times", IntType, IntType)
	DivFunction   = newBuiltinFunction("div", IntType, IntType)
	RemFunction   = newBuiltinFunction("rem", IntType, IntType)

	LessFunction         = newBuiltinFunction("less", IntType, BooleanType)
	LessEqualFunction    = newBuiltinFunction("lessEqual", IntType, BooleanType)
	GreaterFunction      = newBuiltinFunction("greater", IntType, BooleanType)
	GreaterEqualFunction = newBuiltinFunction("greaterEqual", IntType, BooleanType)
)

// EqualsSymbol is the fixed symbol equality comparisons call.
var EqualsSymbol = EqualsFunction.Symbol

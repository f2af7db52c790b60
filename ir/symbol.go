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
	"github.com/cinderlang/cinder/errors"
)

// A symbol is a forward-reference handle to a declaration. Symbols may be
// allocated and passed around before the referenced declaration is fully
// built: a class references its member functions, which reference the
// enclosing class. Binding is one-shot; dereferencing an unbound symbol
// is an internal error.
type symbol struct {
	owner Declaration
	bound bool
}

func (s *symbol) IsBound() bool {
	return s.bound
}

func (s *symbol) bind(owner Declaration) {
	if s.bound {
		panic(errors.NewUnexpectedError(
			"%s symbol is already bound",
			owner.DeclarationKind(),
		))
	}
	s.owner = owner
	s.bound = true
}

func (s *symbol) ownerDeclaration() Declaration {
	if !s.bound {
		panic(errors.NewUnexpectedError("symbol is not bound"))
	}
	return s.owner
}

// ValueSymbol is a symbol whose owner holds a runtime value:
// a value parameter or a local variable.
type ValueSymbol interface {
	isValueSymbol()
	IsBound() bool
	ValueDeclarationName() string
}

// ReturnTargetSymbol is a symbol a return expression may target.
type ReturnTargetSymbol interface {
	isReturnTargetSymbol()
	IsBound() bool
}

// CallableSymbol is the symbol of a callable declaration:
// a plain function or a constructor. No other declaration kind is
// callable across module boundaries.
type CallableSymbol interface {
	isCallableSymbol()
	IsBound() bool
}

// ClassSymbol

type ClassSymbol struct {
	symbol
}

func NewClassSymbol() *ClassSymbol {
	return &ClassSymbol{}
}

func (s *ClassSymbol) Bind(owner *Class) {
	s.bind(owner)
}

func (s *ClassSymbol) Owner() *Class {
	return s.ownerDeclaration().(*Class)
}

// FunctionSymbol

type FunctionSymbol struct {
	symbol
}

var _ ReturnTargetSymbol = &FunctionSymbol{}
var _ CallableSymbol = &FunctionSymbol{}

func NewFunctionSymbol() *FunctionSymbol {
	return &FunctionSymbol{}
}

func (*FunctionSymbol) isReturnTargetSymbol() {}
func (*FunctionSymbol) isCallableSymbol()     {}

func (s *FunctionSymbol) Bind(owner *Function) {
	s.bind(owner)
}

func (s *FunctionSymbol) Owner() *Function {
	return s.ownerDeclaration().(*Function)
}

// ConstructorSymbol

type ConstructorSymbol struct {
	symbol
}

var _ ReturnTargetSymbol = &ConstructorSymbol{}
var _ CallableSymbol = &ConstructorSymbol{}

func NewConstructorSymbol() *ConstructorSymbol {
	return &ConstructorSymbol{}
}

func (*ConstructorSymbol) isReturnTargetSymbol() {}
func (*ConstructorSymbol) isCallableSymbol()     {}

func (s *ConstructorSymbol) Bind(owner *Constructor) {
	s.bind(owner)
}

func (s *ConstructorSymbol) Owner() *Constructor {
	return s.ownerDeclaration().(*Constructor)
}

// PropertySymbol

type PropertySymbol struct {
	symbol
}

func NewPropertySymbol() *PropertySymbol {
	return &PropertySymbol{}
}

func (s *PropertySymbol) Bind(owner *Property) {
	s.bind(owner)
}

func (s *PropertySymbol) Owner() *Property {
	return s.ownerDeclaration().(*Property)
}

// FieldSymbol

type FieldSymbol struct {
	symbol
}

func NewFieldSymbol() *FieldSymbol {
	return &FieldSymbol{}
}

func (s *FieldSymbol) Bind(owner *Field) {
	s.bind(owner)
}

func (s *FieldSymbol) Owner() *Field {
	return s.ownerDeclaration().(*Field)
}

// ValueParameterSymbol

type ValueParameterSymbol struct {
	symbol
}

var _ ValueSymbol = &ValueParameterSymbol{}

func NewValueParameterSymbol() *ValueParameterSymbol {
	return &ValueParameterSymbol{}
}

func (*ValueParameterSymbol) isValueSymbol() {}

func (s *ValueParameterSymbol) Bind(owner *ValueParameter) {
	s.bind(owner)
}

func (s *ValueParameterSymbol) Owner() *ValueParameter {
	return s.ownerDeclaration().(*ValueParameter)
}

func (s *ValueParameterSymbol) ValueDeclarationName() string {
	return s.Owner().Name
}

// VariableSymbol

type VariableSymbol struct {
	symbol
}

var _ ValueSymbol = &VariableSymbol{}

func NewVariableSymbol() *VariableSymbol {
	return &VariableSymbol{}
}

func (*VariableSymbol) isValueSymbol() {}

func (s *VariableSymbol) Bind(owner *Variable) {
	s.bind(owner)
}

func (s *VariableSymbol) Owner() *Variable {
	return s.ownerDeclaration().(*Variable)
}

func (s *VariableSymbol) ValueDeclarationName() string {
	return s.Owner().Name
}

// TypeParameterSymbol

type TypeParameterSymbol struct {
	symbol
}

func NewTypeParameterSymbol() *TypeParameterSymbol {
	return &TypeParameterSymbol{}
}

func (s *TypeParameterSymbol) Bind(owner *TypeParameter) {
	s.bind(owner)
}

func (s *TypeParameterSymbol) Owner() *TypeParameter {
	return s.ownerDeclaration().(*TypeParameter)
}

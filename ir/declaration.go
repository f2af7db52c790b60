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
	"github.com/cinderlang/cinder/errors"
)

// Coordinates is the source span stamped onto every produced node:
// byte offsets into the originating file.
type Coordinates struct {
	StartOffset int
	EndOffset   int
}

// Declaration is a lowered declaration. Declarations are created at most
// once per resolved declaration, mutated while the enclosing construct is
// being lowered, and frozen afterwards.
type Declaration interface {
	Statement
	isDeclaration()
	DeclarationKind() common.DeclarationKind
	DeclarationName() string
	Parent() DeclarationParent
	SetParent(parent DeclarationParent)
	Origin() DeclarationOrigin
}

// DeclarationParent is a declaration which may contain other declarations.
type DeclarationParent interface {
	isDeclarationParent()
}

type declarationBase struct {
	parent DeclarationParent
	origin DeclarationOrigin
	Coordinates
}

func (d *declarationBase) isStatement()   {}
func (d *declarationBase) isDeclaration() {}

func (d *declarationBase) Parent() DeclarationParent {
	return d.parent
}

// SetParent links the declaration into its container. The parent is set
// at most once; a second call is an internal error, re-entrant lowering
// must check Parent() first.
func (d *declarationBase) SetParent(parent DeclarationParent) {
	if parent == nil {
		panic(errors.NewUnexpectedError("cannot set nil declaration parent"))
	}
	if d.parent != nil {
		panic(errors.NewUnexpectedError("declaration parent is already set"))
	}
	d.parent = parent
}

func (d *declarationBase) Origin() DeclarationOrigin {
	return d.origin
}

// File

// File is one lowered top-level unit, the output of a lowering run.
type File struct {
	Package      common.PackageName
	Name         string
	Declarations []Declaration
	Coordinates
}

var _ DeclarationParent = &File{}

func NewFile(pkg common.PackageName, name string, coords Coordinates) *File {
	return &File{
		Package:     pkg,
		Name:        name,
		Coordinates: coords,
	}
}

func (*File) isDeclarationParent() {}

// ExternalPackageFragment

// ExternalPackageFragment is the container for declarations referenced
// across module boundaries: one fragment per distinct package name.
type ExternalPackageFragment struct {
	Package      common.PackageName
	Declarations []Declaration
}

var _ DeclarationParent = &ExternalPackageFragment{}

func NewExternalPackageFragment(pkg common.PackageName) *ExternalPackageFragment {
	return &ExternalPackageFragment{
		Package: pkg,
	}
}

func (*ExternalPackageFragment) isDeclarationParent() {}

// Class

type Class struct {
	declarationBase
	Symbol     *ClassSymbol
	Name       string
	Kind       common.ClassKind
	Visibility common.Visibility
	Modality   common.Modality
	// ThisReceiver is the synthesized self-reference parameter:
	// its type is the class's own type, without variance arguments.
	ThisReceiver   *ValueParameter
	TypeParameters []*TypeParameter
	Supertypes     []Type
	Declarations   []Declaration
}

var _ Declaration = &Class{}
var _ DeclarationParent = &Class{}

func NewClass(
	symbol *ClassSymbol,
	name string,
	kind common.ClassKind,
	visibility common.Visibility,
	modality common.Modality,
	origin DeclarationOrigin,
	coords Coordinates,
) *Class {
	class := &Class{
		Symbol:     symbol,
		Name:       name,
		Kind:       kind,
		Visibility: visibility,
		Modality:   modality,
	}
	class.origin = origin
	class.Coordinates = coords
	symbol.Bind(class)
	return class
}

func (*Class) isDeclarationParent() {}
func (*Class) isStatement()         {}

func (d *Class) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindClass
}

func (d *Class) DeclarationName() string {
	return d.Name
}

// DefaultType is the class's self-reference type,
// without variance arguments.
func (d *Class) DefaultType() *ClassType {
	return NewClassType(d.Symbol, false, nil)
}

func (d *Class) IsInterface() bool {
	return d.Kind == common.ClassKindInterface
}

// PrimaryConstructor returns the class's primary constructor, or nil.
func (d *Class) PrimaryConstructor() *Constructor {
	for _, declaration := range d.Declarations {
		constructor, ok := declaration.(*Constructor)
		if ok && constructor.IsPrimary {
			return constructor
		}
	}
	return nil
}

// Function

type Function struct {
	declarationBase
	Symbol     *FunctionSymbol
	Name       string
	Visibility common.Visibility
	Modality   common.Modality
	ReturnType Type
	// DispatchReceiver is set for member functions:
	// the implicit receiver parameter typed as the enclosing class.
	DispatchReceiver *ValueParameter
	TypeParameters   []*TypeParameter
	ValueParameters  []*ValueParameter
	Body             *Block
	IsInline         bool
	IsExternal       bool
	IsTailRec        bool
	IsSuspend        bool
	// CorrespondingProperty links an accessor back to its property.
	CorrespondingProperty *PropertySymbol
	// Overridden holds the symbols a fake override stands in for.
	Overridden []*FunctionSymbol
}

var _ Declaration = &Function{}
var _ DeclarationParent = &Function{}

func NewFunction(
	symbol *FunctionSymbol,
	name string,
	visibility common.Visibility,
	modality common.Modality,
	returnType Type,
	origin DeclarationOrigin,
	coords Coordinates,
) *Function {
	function := &Function{
		Symbol:     symbol,
		Name:       name,
		Visibility: visibility,
		Modality:   modality,
		ReturnType: returnType,
	}
	function.origin = origin
	function.Coordinates = coords
	symbol.Bind(function)
	return function
}

func (*Function) isDeclarationParent() {}

func (d *Function) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindFunction
}

func (d *Function) DeclarationName() string {
	return d.Name
}

// Constructor

type Constructor struct {
	declarationBase
	Symbol          *ConstructorSymbol
	Name            string
	IsPrimary       bool
	Visibility      common.Visibility
	ReturnType      Type
	ValueParameters []*ValueParameter
	Body            *Block
}

var _ Declaration = &Constructor{}
var _ DeclarationParent = &Constructor{}

func NewConstructor(
	symbol *ConstructorSymbol,
	name string,
	isPrimary bool,
	visibility common.Visibility,
	returnType Type,
	coords Coordinates,
) *Constructor {
	constructor := &Constructor{
		Symbol:     symbol,
		Name:       name,
		IsPrimary:  isPrimary,
		Visibility: visibility,
		ReturnType: returnType,
	}
	constructor.Coordinates = coords
	symbol.Bind(constructor)
	return constructor
}

func (*Constructor) isDeclarationParent() {}

func (d *Constructor) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindConstructor
}

func (d *Constructor) DeclarationName() string {
	return d.Name
}

// Property

type Property struct {
	declarationBase
	Symbol       *PropertySymbol
	Name         string
	Visibility   common.Visibility
	Modality     common.Modality
	IsVar        bool
	IsConst      bool
	IsLateinit   bool
	IsDelegated  bool
	BackingField *Field
	Getter       *Function
	Setter       *Function
}

var _ Declaration = &Property{}
var _ DeclarationParent = &Property{}

func NewProperty(
	symbol *PropertySymbol,
	name string,
	visibility common.Visibility,
	modality common.Modality,
	coords Coordinates,
) *Property {
	property := &Property{
		Symbol:     symbol,
		Name:       name,
		Visibility: visibility,
		Modality:   modality,
	}
	property.Coordinates = coords
	symbol.Bind(property)
	return property
}

func (*Property) isDeclarationParent() {}

func (d *Property) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindProperty
}

func (d *Property) DeclarationName() string {
	return d.Name
}

// Field

type Field struct {
	declarationBase
	Symbol      *FieldSymbol
	Name        string
	Type        Type
	Visibility  common.Visibility
	IsFinal     bool
	Initializer Expression
}

var _ Declaration = &Field{}

func NewField(
	symbol *FieldSymbol,
	name string,
	fieldType Type,
	visibility common.Visibility,
	isFinal bool,
	coords Coordinates,
) *Field {
	field := &Field{
		Symbol:     symbol,
		Name:       name,
		Type:       fieldType,
		Visibility: visibility,
		IsFinal:    isFinal,
	}
	field.origin = DeclarationOriginPropertyBackingField
	field.Coordinates = coords
	symbol.Bind(field)
	return field
}

func (d *Field) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindField
}

func (d *Field) DeclarationName() string {
	return d.Name
}

// ValueParameter

// UnknownParameterIndex marks a value parameter created outside of a
// positional context, e.g. through a pure cross-reference.
const UnknownParameterIndex = -1

type ValueParameter struct {
	declarationBase
	Symbol *ValueParameterSymbol
	Name   string
	// Index is the parameter's position, assigned at creation,
	// never changed afterwards.
	Index        int
	Type         Type
	DefaultValue Expression
}

var _ Declaration = &ValueParameter{}

func NewValueParameter(
	symbol *ValueParameterSymbol,
	name string,
	index int,
	parameterType Type,
	origin DeclarationOrigin,
	coords Coordinates,
) *ValueParameter {
	parameter := &ValueParameter{
		Symbol: symbol,
		Name:   name,
		Index:  index,
		Type:   parameterType,
	}
	parameter.origin = origin
	parameter.Coordinates = coords
	symbol.Bind(parameter)
	return parameter
}

func (d *ValueParameter) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindValueParameter
}

func (d *ValueParameter) DeclarationName() string {
	return d.Name
}

// Variable

type Variable struct {
	declarationBase
	Symbol      *VariableSymbol
	Name        string
	Type        Type
	IsVar       bool
	IsLateinit  bool
	Initializer Expression
}

var _ Declaration = &Variable{}

func NewVariable(
	symbol *VariableSymbol,
	name string,
	variableType Type,
	isVar bool,
	origin DeclarationOrigin,
	coords Coordinates,
) *Variable {
	variable := &Variable{
		Symbol: symbol,
		Name:   name,
		Type:   variableType,
		IsVar:  isVar,
	}
	variable.origin = origin
	variable.Coordinates = coords
	symbol.Bind(variable)
	return variable
}

func (d *Variable) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindVariable
}

func (d *Variable) DeclarationName() string {
	return d.Name
}

// TypeParameter

type TypeParameter struct {
	declarationBase
	Symbol    *TypeParameterSymbol
	Name      string
	Index     int
	IsReified bool
	Variance  common.Variance
}

var _ Declaration = &TypeParameter{}

func NewTypeParameter(
	symbol *TypeParameterSymbol,
	name string,
	index int,
	isReified bool,
	variance common.Variance,
	coords Coordinates,
) *TypeParameter {
	typeParameter := &TypeParameter{
		Symbol:    symbol,
		Name:      name,
		Index:     index,
		IsReified: isReified,
		Variance:  variance,
	}
	typeParameter.Coordinates = coords
	symbol.Bind(typeParameter)
	return typeParameter
}

func (d *TypeParameter) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindTypeParameter
}

func (d *TypeParameter) DeclarationName() string {
	return d.Name
}

// DefaultType is the type-parameter reference type.
func (d *TypeParameter) DefaultType() *TypeParameterType {
	return NewTypeParameterType(d.Symbol, false)
}

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

import (
	"github.com/cinderlang/cinder/common"
)

// Declaration is a resolved source declaration. Declarations are immutable
// after resolution and outlive a lowering run. Their pointer identity is
// the cache key of the declaration store: two mentions of the same source
// declaration are mentions of the same node.
type Declaration interface {
	HasPosition
	isDeclaration()
	DeclarationKind() common.DeclarationKind
	DeclarationName() string
}

// File

// File is one resolved top-level unit, the entry point of a lowering run.
type File struct {
	FileName     string
	Package      common.PackageName
	Declarations []Declaration
	Range
}

var _ Declaration = &File{}

func (*File) isDeclaration() {}

func (d *File) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindFile
}

func (d *File) DeclarationName() string {
	return d.FileName
}

// Class

type Class struct {
	QualifiedName  common.QualifiedName
	Kind           common.ClassKind
	Visibility     common.Visibility
	Modality       common.Modality
	TypeParameters []*TypeParameter
	Supertypes     []*TypeRef
	Declarations   []Declaration
	Range
}

var _ Declaration = &Class{}

func (*Class) isDeclaration() {}

func (d *Class) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindClass
}

func (d *Class) DeclarationName() string {
	return d.QualifiedName.Name
}

func (d *Class) IsInterface() bool {
	return d.Kind == common.ClassKindInterface
}

// FunctionsByName returns the class's directly declared member functions,
// grouped by name.
func (d *Class) FunctionsByName() map[string][]*Function {
	functions := make(map[string][]*Function)
	for _, declaration := range d.Declarations {
		function, ok := declaration.(*Function)
		if !ok {
			continue
		}
		name := function.DeclarationName()
		functions[name] = append(functions[name], function)
	}
	return functions
}

// Constructors returns the class's constructors in declaration order,
// the primary constructor first if one exists.
func (d *Class) Constructors() []*Constructor {
	var constructors []*Constructor
	for _, declaration := range d.Declarations {
		constructor, ok := declaration.(*Constructor)
		if !ok {
			continue
		}
		if constructor.IsPrimary {
			constructors = append([]*Constructor{constructor}, constructors...)
		} else {
			constructors = append(constructors, constructor)
		}
	}
	return constructors
}

// PrimaryConstructor returns the class's primary constructor,
// or nil if the class only has secondary constructors.
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
	QualifiedName   common.QualifiedName
	Visibility      common.Visibility
	Modality        common.Modality
	ReturnType      *TypeRef
	TypeParameters  []*TypeParameter
	ValueParameters []*ValueParameter
	Body            *Block
	IsInline        bool
	IsExternal      bool
	IsTailRec       bool
	IsSuspend       bool
	Range
}

var _ Declaration = &Function{}

func (*Function) isDeclaration() {}

func (d *Function) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindFunction
}

func (d *Function) DeclarationName() string {
	return d.QualifiedName.Name
}

// Constructor

const ConstructorName = "<init>"

type Constructor struct {
	// Class is the constructed class.
	Class           *Class
	IsPrimary       bool
	Visibility      common.Visibility
	ValueParameters []*ValueParameter
	Body            *Block
	Range
}

var _ Declaration = &Constructor{}

func (*Constructor) isDeclaration() {}

func (d *Constructor) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindConstructor
}

func (d *Constructor) DeclarationName() string {
	return ConstructorName
}

// Property

type Property struct {
	QualifiedName common.QualifiedName
	Visibility    common.Visibility
	Modality      common.Modality
	Type          *TypeRef
	IsVar         bool
	IsConst       bool
	IsLateinit    bool
	HasDelegate   bool
	Initializer   Expression
	Getter        *PropertyAccessor
	Setter        *PropertyAccessor
	Range
}

var _ Declaration = &Property{}

func (*Property) isDeclaration() {}

func (d *Property) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindProperty
}

func (d *Property) DeclarationName() string {
	return d.QualifiedName.Name
}

// HasDefaultGetter returns true if the property's getter is
// compiler-synthesized rather than written in source.
func (d *Property) HasDefaultGetter() bool {
	return d.Getter == nil || d.Getter.IsDefault
}

// HasDefaultSetter returns true if the property is mutable and its setter
// is compiler-synthesized rather than written in source.
func (d *Property) HasDefaultSetter() bool {
	return d.IsVar && (d.Setter == nil || d.Setter.IsDefault)
}

// PropertyAccessor

type PropertyAccessor struct {
	IsGetter bool
	// IsDefault marks a compiler-synthesized accessor:
	// the accessor exists in the resolved tree but has no source body.
	IsDefault       bool
	Visibility      common.Visibility
	ValueParameters []*ValueParameter
	Body            *Block
	Range
}

var _ Declaration = &PropertyAccessor{}

func (*PropertyAccessor) isDeclaration() {}

func (d *PropertyAccessor) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindPropertyAccessor
}

func (d *PropertyAccessor) DeclarationName() string {
	if d.IsGetter {
		return "get"
	}
	return "set"
}

// ValueParameter

type ValueParameter struct {
	Name         string
	Type         *TypeRef
	DefaultValue Expression
	Range
}

var _ Declaration = &ValueParameter{}

func (*ValueParameter) isDeclaration() {}

func (d *ValueParameter) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindValueParameter
}

func (d *ValueParameter) DeclarationName() string {
	return d.Name
}

// Variable

type Variable struct {
	Name        string
	Type        *TypeRef
	IsVar       bool
	IsLateinit  bool
	Initializer Expression
	Range
}

var _ Declaration = &Variable{}
var _ Expression = &Variable{}

func (*Variable) isDeclaration() {}
func (*Variable) isExpression()  {}

func (d *Variable) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindVariable
}

func (d *Variable) DeclarationName() string {
	return d.Name
}

// TypeParameter

type TypeParameter struct {
	Name      string
	Index     int
	IsReified bool
	Variance  common.Variance
	Range
}

var _ Declaration = &TypeParameter{}

func (*TypeParameter) isDeclaration() {}

func (d *TypeParameter) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindTypeParameter
}

func (d *TypeParameter) DeclarationName() string {
	return d.Name
}

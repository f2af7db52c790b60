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

package lower

import (
	"fmt"

	"github.com/cinderlang/cinder/common"
	"github.com/cinderlang/cinder/errors"
	"github.com/cinderlang/cinder/fir"
	"github.com/cinderlang/cinder/ir"
)

// DeclarationStore creates and memoizes the lowered counterpart of each
// resolved declaration. Creation is lazy: a counterpart comes into
// existence the first time something mentions it, and every later mention
// returns the same node. The store lives for exactly one lowering run.
type DeclarationStore struct {
	config *Config

	classes        map[*fir.Class]*ir.Class
	functions      map[*fir.Function]*ir.Function
	constructors   map[*fir.Constructor]*ir.Constructor
	properties     map[*fir.Property]*ir.Property
	parameters     map[*fir.ValueParameter]*ir.ValueParameter
	variables      map[*fir.Variable]*ir.Variable
	typeParameters map[*fir.TypeParameter]*ir.TypeParameter
	fragments      map[common.PackageName]*ir.ExternalPackageFragment

	scopeStack *Stack[ir.Declaration]

	tempIndex int
}

func NewDeclarationStore(config *Config) *DeclarationStore {
	return &DeclarationStore{
		config:         config,
		classes:        map[*fir.Class]*ir.Class{},
		functions:      map[*fir.Function]*ir.Function{},
		constructors:   map[*fir.Constructor]*ir.Constructor{},
		properties:     map[*fir.Property]*ir.Property{},
		parameters:     map[*fir.ValueParameter]*ir.ValueParameter{},
		variables:      map[*fir.Variable]*ir.Variable{},
		typeParameters: map[*fir.TypeParameter]*ir.TypeParameter{},
		fragments:      map[common.PackageName]*ir.ExternalPackageFragment{},
		scopeStack:     &Stack[ir.Declaration]{},
	}
}

func coordinates(node fir.HasPosition) ir.Coordinates {
	return ir.Coordinates{
		StartOffset: node.StartPosition().Offset,
		EndOffset:   node.EndPosition().Offset,
	}
}

// CallableOptions controls the creation of a function or constructor.
type CallableOptions struct {
	// SetParent resolves and links the containing declaration,
	// for counterparts created through a cross-reference rather than
	// while their container is being lowered.
	SetParent bool
	// LeaveScopeOpen keeps the callable's declaration scope open after
	// parameter binding, for callers that subsequently lower a body in
	// the same scope. The caller must close it with LeaveScope.
	// Ignored on a memoization hit.
	LeaveScopeOpen bool
}

// EnterScope opens a declaration scope.
func (d *DeclarationStore) EnterScope(declaration ir.Declaration) {
	d.scopeStack.push(declaration)
}

// LeaveScope closes the innermost declaration scope,
// which must belong to the given declaration.
func (d *DeclarationStore) LeaveScope(declaration ir.Declaration) {
	if d.scopeStack.isEmpty() || d.scopeStack.pop() != declaration {
		panic(errors.NewUnexpectedError(
			"unbalanced declaration scope: %s",
			declaration.DeclarationName(),
		))
	}
}

// OpenScopeCount returns the number of currently open declaration scopes.
func (d *DeclarationStore) OpenScopeCount() int {
	return d.scopeStack.depth()
}

// GetOrCreateExternalPackageFragment returns the container for
// cross-module declarations of the given package, one per package name.
func (d *DeclarationStore) GetOrCreateExternalPackageFragment(
	pkg common.PackageName,
) *ir.ExternalPackageFragment {
	if pkg == ir.BuiltinsPackage {
		return ir.BuiltinsFragment
	}
	if existing, ok := d.fragments[pkg]; ok {
		return existing
	}
	fragment := ir.NewExternalPackageFragment(pkg)
	d.fragments[pkg] = fragment
	return fragment
}

// resolveParent links a cross-referenced declaration into its container:
// the lowered enclosing class if the identity is nested, the package
// fragment otherwise.
func (d *DeclarationStore) resolveParent(
	declaration ir.Declaration,
	name common.QualifiedName,
) {
	if declaration.Parent() != nil {
		return
	}

	enclosing, nested := name.EnclosingClass()
	if !nested {
		fragment := d.GetOrCreateExternalPackageFragment(name.Package)
		declaration.SetParent(fragment)
		fragment.Declarations = append(fragment.Declarations, declaration)
		return
	}

	resolved := d.config.DeclarationProvider(enclosing)
	enclosingClass, ok := resolved.(*fir.Class)
	if !ok {
		panic(errors.NewUnexpectedError(
			"enclosing class %s of %s cannot be resolved",
			enclosing, name.Name,
		))
	}

	declaration.SetParent(d.GetOrCreateClass(enclosingClass, true))
}

// GetOrCreateClass returns the lowered counterpart of the given class.
func (d *DeclarationStore) GetOrCreateClass(class *fir.Class, setParent bool) *ir.Class {
	if existing, ok := d.classes[class]; ok {
		if setParent {
			d.resolveParent(existing, class.QualifiedName)
		}
		return existing
	}

	origin := ir.DeclarationOriginDefined
	if class.Kind == common.ClassKindObject && class.Visibility == common.VisibilityLocal {
		origin = ir.DeclarationOriginAnonymousObject
	}

	irClass := ir.NewClass(
		ir.NewClassSymbol(),
		class.QualifiedName.Name,
		class.Kind,
		class.Visibility,
		class.Modality,
		origin,
		coordinates(class),
	)

	// Memoize before recursing: the class's own type parameters and
	// supertypes may mention the class again.
	d.classes[class] = irClass

	for _, typeParameter := range class.TypeParameters {
		irTypeParameter := d.GetOrCreateTypeParameter(typeParameter)
		if irTypeParameter.Parent() == nil {
			irTypeParameter.SetParent(irClass)
		}
		irClass.TypeParameters = append(irClass.TypeParameters, irTypeParameter)
	}

	for _, supertype := range class.Supertypes {
		irClass.Supertypes = append(irClass.Supertypes, d.ConvertType(supertype))
	}

	thisReceiver := ir.NewValueParameter(
		ir.NewValueParameterSymbol(),
		"this",
		ir.UnknownParameterIndex,
		irClass.DefaultType(),
		ir.DeclarationOriginThisReceiver,
		coordinates(class),
	)
	thisReceiver.SetParent(irClass)
	irClass.ThisReceiver = thisReceiver

	if setParent {
		d.resolveParent(irClass, class.QualifiedName)
	}

	return irClass
}

// GetOrCreateTypeParameter returns the lowered counterpart of the given
// type parameter. The parent is linked by whoever owns the parameter.
func (d *DeclarationStore) GetOrCreateTypeParameter(
	typeParameter *fir.TypeParameter,
) *ir.TypeParameter {
	if existing, ok := d.typeParameters[typeParameter]; ok {
		return existing
	}

	irTypeParameter := ir.NewTypeParameter(
		ir.NewTypeParameterSymbol(),
		typeParameter.Name,
		typeParameter.Index,
		typeParameter.IsReified,
		typeParameter.Variance,
		coordinates(typeParameter),
	)
	d.typeParameters[typeParameter] = irTypeParameter
	return irTypeParameter
}

// GetOrCreateFunction returns the lowered counterpart of the given
// function: signature and parameters, the body is attached by the caller.
func (d *DeclarationStore) GetOrCreateFunction(
	function *fir.Function,
	options CallableOptions,
) *ir.Function {
	if existing, ok := d.functions[function]; ok {
		if options.SetParent {
			d.resolveParent(existing, function.QualifiedName)
		}
		return existing
	}

	irFunction := ir.NewFunction(
		ir.NewFunctionSymbol(),
		function.QualifiedName.Name,
		function.Visibility,
		function.Modality,
		d.ConvertType(function.ReturnType),
		ir.DeclarationOriginDefined,
		coordinates(function),
	)
	irFunction.IsInline = function.IsInline
	irFunction.IsExternal = function.IsExternal
	irFunction.IsTailRec = function.IsTailRec
	irFunction.IsSuspend = function.IsSuspend

	d.functions[function] = irFunction

	d.EnterScope(irFunction)

	for _, typeParameter := range function.TypeParameters {
		irTypeParameter := d.GetOrCreateTypeParameter(typeParameter)
		if irTypeParameter.Parent() == nil {
			irTypeParameter.SetParent(irFunction)
		}
		irFunction.TypeParameters = append(irFunction.TypeParameters, irTypeParameter)
	}

	d.declareParameters(irFunction, function.ValueParameters, &irFunction.ValueParameters)

	if options.SetParent {
		d.resolveParent(irFunction, function.QualifiedName)
	}

	if !options.LeaveScopeOpen {
		d.LeaveScope(irFunction)
	}

	return irFunction
}

// GetOrCreateConstructor returns the lowered counterpart of the given
// constructor. Its return type is the constructed class's own type.
func (d *DeclarationStore) GetOrCreateConstructor(
	constructor *fir.Constructor,
	options CallableOptions,
) *ir.Constructor {
	if existing, ok := d.constructors[constructor]; ok {
		if options.SetParent && existing.Parent() == nil {
			existing.SetParent(d.GetOrCreateClass(constructor.Class, true))
		}
		return existing
	}

	irClass := d.GetOrCreateClass(constructor.Class, options.SetParent)

	irConstructor := ir.NewConstructor(
		ir.NewConstructorSymbol(),
		fir.ConstructorName,
		constructor.IsPrimary,
		constructor.Visibility,
		irClass.DefaultType(),
		coordinates(constructor),
	)

	d.constructors[constructor] = irConstructor

	d.EnterScope(irConstructor)

	d.declareParameters(irConstructor, constructor.ValueParameters, &irConstructor.ValueParameters)

	if options.SetParent {
		irConstructor.SetParent(irClass)
	}

	if !options.LeaveScopeOpen {
		d.LeaveScope(irConstructor)
	}

	return irConstructor
}

func (d *DeclarationStore) declareParameters(
	parent ir.DeclarationParent,
	parameters []*fir.ValueParameter,
	target *[]*ir.ValueParameter,
) {
	for index, parameter := range parameters {
		irParameter := d.GetOrCreateValueParameter(parameter, index)
		if irParameter.Parent() == nil {
			irParameter.SetParent(parent)
		}
		*target = append(*target, irParameter)
	}
}

// GetOrCreateProperty returns the lowered counterpart of the given
// property, with accessor skeletons in place. Accessor bodies and the
// backing field are attached by the caller.
func (d *DeclarationStore) GetOrCreateProperty(
	property *fir.Property,
	setParent bool,
) *ir.Property {
	if existing, ok := d.properties[property]; ok {
		if setParent {
			d.resolveParent(existing, property.QualifiedName)
		}
		return existing
	}

	irProperty := ir.NewProperty(
		ir.NewPropertySymbol(),
		property.QualifiedName.Name,
		property.Visibility,
		property.Modality,
		coordinates(property),
	)
	irProperty.IsVar = property.IsVar
	irProperty.IsConst = property.IsConst
	irProperty.IsLateinit = property.IsLateinit
	irProperty.IsDelegated = property.HasDelegate

	d.properties[property] = irProperty

	propertyType := d.ConvertType(property.Type)

	irProperty.Getter = d.createAccessor(irProperty, property, property.Getter, propertyType, true)
	if property.IsVar {
		irProperty.Setter = d.createAccessor(irProperty, property, property.Setter, propertyType, false)
	}

	if setParent {
		d.resolveParent(irProperty, property.QualifiedName)
	}

	return irProperty
}

// createAccessor builds a property accessor function. A nil or default
// source accessor yields a compiler-synthesized one; accessor bodies are
// lowered later, by whoever lowers the property declaration.
func (d *DeclarationStore) createAccessor(
	irProperty *ir.Property,
	property *fir.Property,
	accessor *fir.PropertyAccessor,
	propertyType ir.Type,
	isGetter bool,
) *ir.Function {
	origin := ir.DeclarationOriginDefined
	visibility := property.Visibility
	coords := coordinates(property)
	if accessor == nil || accessor.IsDefault {
		origin = ir.DeclarationOriginDefaultPropertyAccessor
	}
	if accessor != nil {
		visibility = accessor.Visibility
		coords = coordinates(accessor)
	}

	var name string
	var returnType ir.Type = ir.UnitType
	if isGetter {
		name = fmt.Sprintf("<get-%s>", property.QualifiedName.Name)
		returnType = propertyType
	} else {
		name = fmt.Sprintf("<set-%s>", property.QualifiedName.Name)
	}

	function := ir.NewFunction(
		ir.NewFunctionSymbol(),
		name,
		visibility,
		property.Modality,
		returnType,
		origin,
		coords,
	)
	function.CorrespondingProperty = irProperty.Symbol
	function.SetParent(irProperty)

	if !isGetter {
		if accessor != nil && len(accessor.ValueParameters) > 0 {
			d.declareParameters(function, accessor.ValueParameters, &function.ValueParameters)
		} else {
			parameter := ir.NewValueParameter(
				ir.NewValueParameterSymbol(),
				"value",
				0,
				propertyType,
				ir.DeclarationOriginDefaultPropertyAccessor,
				coords,
			)
			parameter.SetParent(function)
			function.ValueParameters = append(function.ValueParameters, parameter)
		}
	}

	return function
}

// GetOrCreateValueParameter returns the lowered counterpart of the given
// value parameter. The positional index is assigned on creation and never
// changes on later mentions; cross-references that do not know the
// position pass ir.UnknownParameterIndex.
func (d *DeclarationStore) GetOrCreateValueParameter(
	parameter *fir.ValueParameter,
	index int,
) *ir.ValueParameter {
	if existing, ok := d.parameters[parameter]; ok {
		return existing
	}

	irParameter := ir.NewValueParameter(
		ir.NewValueParameterSymbol(),
		parameter.Name,
		index,
		d.ConvertType(parameter.Type),
		ir.DeclarationOriginDefined,
		coordinates(parameter),
	)
	d.parameters[parameter] = irParameter
	return irParameter
}

// GetOrCreateVariable returns the lowered counterpart of the given local
// variable. The initializer is attached by the caller.
func (d *DeclarationStore) GetOrCreateVariable(variable *fir.Variable) *ir.Variable {
	if existing, ok := d.variables[variable]; ok {
		return existing
	}

	irVariable := ir.NewVariable(
		ir.NewVariableSymbol(),
		variable.Name,
		d.ConvertType(variable.Type),
		variable.IsVar,
		ir.DeclarationOriginDefined,
		coordinates(variable),
	)
	irVariable.IsLateinit = variable.IsLateinit
	d.variables[variable] = irVariable
	return irVariable
}

// CreateTemporaryVariable creates a fresh compiler-introduced local
// holding the given initializer. Temporaries are never memoized: every
// call mints a new variable with a unique name, tmp<N>, or
// tmp<N>_<hint> when a name hint is given.
func (d *DeclarationStore) CreateTemporaryVariable(
	initializer ir.Expression,
	nameHint string,
	coords ir.Coordinates,
) *ir.Variable {
	index := d.tempIndex
	d.tempIndex++

	var name string
	if nameHint == "" {
		name = fmt.Sprintf("tmp%d", index)
	} else {
		name = fmt.Sprintf("tmp%d_%s", index, nameHint)
	}

	variable := ir.NewVariable(
		ir.NewVariableSymbol(),
		name,
		initializer.StaticType(),
		false,
		ir.DeclarationOriginTemporary,
		coords,
	)
	variable.Initializer = initializer
	return variable
}

// GetCallableSymbol resolves a qualified identity to the symbol of its
// callable counterpart. Returns nil if the identity is unknown. An
// identity naming a non-callable declaration kind is an internal error:
// only plain functions and constructors are callable across modules.
func (d *DeclarationStore) GetCallableSymbol(name common.QualifiedName) ir.CallableSymbol {
	declaration := d.config.DeclarationProvider(name)
	if declaration == nil {
		return nil
	}

	options := CallableOptions{SetParent: true}

	switch declaration := declaration.(type) {
	case *fir.Function:
		return d.GetOrCreateFunction(declaration, options).Symbol

	case *fir.Constructor:
		return d.GetOrCreateConstructor(declaration, options).Symbol

	default:
		panic(errors.NewUnexpectedError(
			"cannot reference %s %s as a callable",
			declaration.DeclarationKind(),
			name,
		))
	}
}

// ConvertType converts a resolved type reference using the configured
// converter. A nil reference converts to Unit.
func (d *DeclarationStore) ConvertType(typeRef *fir.TypeRef) ir.Type {
	if typeRef == nil {
		return ir.UnitType
	}
	if d.config.TypeConverter != nil {
		return d.config.TypeConverter(typeRef, d)
	}
	return DefaultTypeConverter(typeRef, d)
}

// DefaultTypeConverter expands aliases and maps class and type-parameter
// references onto their lowered counterparts.
func DefaultTypeConverter(typeRef *fir.TypeRef, store *DeclarationStore) ir.Type {
	expanded := typeRef.Expanded()

	switch {
	case expanded.Class != nil:
		var arguments []ir.Type
		for _, argument := range expanded.Arguments {
			arguments = append(arguments, store.ConvertType(argument))
		}
		class := store.GetOrCreateClass(expanded.Class, false)
		return ir.NewClassType(class.Symbol, expanded.IsNullable, arguments)

	case expanded.TypeParameter != nil:
		typeParameter := store.GetOrCreateTypeParameter(expanded.TypeParameter)
		return ir.NewTypeParameterType(typeParameter.Symbol, expanded.IsNullable)

	default:
		return ir.ErrorType{}
	}
}

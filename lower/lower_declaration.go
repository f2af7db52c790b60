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
	"time"

	"github.com/cinderlang/cinder/common"
	"github.com/cinderlang/cinder/fir"
	"github.com/cinderlang/cinder/ir"
)

func (l *Lowerer) VisitClass(declaration *fir.Class) ir.Declaration {
	irClass := l.store.GetOrCreateClass(declaration, false)

	l.classStack.push(&classContext{
		source:  declaration,
		lowered: irClass,
	})
	defer l.classStack.pop()

	l.parentStack.push(irClass)
	defer l.parentStack.pop()

	// Constructors first, the primary one leading: property initializers
	// may read constructor parameters, which must exist by then.
	for _, constructor := range declaration.Constructors() {
		irClass.Declarations = append(
			irClass.Declarations,
			l.lowerDeclaration(constructor),
		)
	}

	for _, member := range declaration.Declarations {
		if _, ok := member.(*fir.Constructor); ok {
			continue
		}
		irClass.Declarations = append(
			irClass.Declarations,
			l.lowerDeclaration(member),
		)
	}

	l.addFakeOverrides(declaration, irClass)

	return irClass
}

// addFakeOverrides appends a stand-in member function for every inherited
// function name the class does not re-declare itself. A fake override
// carries no body; it records which inherited symbol a dispatch through
// this class lands on. Declared members always win, and fake overrides
// always come after them.
func (l *Lowerer) addFakeOverrides(declaration *fir.Class, irClass *ir.Class) {
	if len(declaration.Supertypes) == 0 {
		return
	}

	tracer := l.config.Tracer
	count := 0
	if tracer.TracingEnabled {
		startTime := time.Now()
		defer func() {
			tracer.reportFakeOverridesTrace(
				l,
				irClass.Name,
				count,
				time.Since(startTime),
			)
		}()
	}

	// Only a locally declared function shadows an inherited one:
	// a declared property of the same name does not.
	declared := make(map[string]struct{})
	for _, member := range declaration.Declarations {
		if _, ok := member.(*fir.Function); !ok {
			continue
		}
		declared[member.DeclarationName()] = struct{}{}
	}

	scope := l.useSiteScope(declaration)

	for _, name := range scope.MemberNames() {
		if _, ok := declared[name]; ok {
			continue
		}

		candidates := scope.MembersNamed(name)
		if len(candidates) == 0 {
			continue
		}

		// The first candidate wins. Only functions get a fake override;
		// other member kinds are passed over.
		inherited, ok := candidates[0].(*fir.Function)
		if !ok {
			continue
		}

		overridden := l.store.GetOrCreateFunction(inherited, CallableOptions{SetParent: true})

		fake := ir.NewFunction(
			ir.NewFunctionSymbol(),
			name,
			inherited.Visibility,
			inherited.Modality,
			overridden.ReturnType,
			ir.DeclarationOriginFakeOverride,
			irClass.Coordinates,
		)
		fake.Overridden = []*ir.FunctionSymbol{overridden.Symbol}

		for _, overriddenParameter := range overridden.ValueParameters {
			parameter := ir.NewValueParameter(
				ir.NewValueParameterSymbol(),
				overriddenParameter.Name,
				overriddenParameter.Index,
				overriddenParameter.Type,
				ir.DeclarationOriginFakeOverride,
				irClass.Coordinates,
			)
			parameter.SetParent(fake)
			fake.ValueParameters = append(fake.ValueParameters, parameter)
		}

		l.attachDispatchReceiver(fake)

		fake.SetParent(irClass)
		irClass.Declarations = append(irClass.Declarations, fake)
		count++
	}
}

// attachDispatchReceiver gives a member callable its `this` parameter,
// typed as the innermost enclosing class. Top-level callables have none.
func (l *Lowerer) attachDispatchReceiver(function *ir.Function) {
	if l.classStack.isEmpty() || function.DispatchReceiver != nil {
		return
	}

	enclosing := l.classStack.top().lowered
	receiver := ir.NewValueParameter(
		ir.NewValueParameterSymbol(),
		"this",
		ir.UnknownParameterIndex,
		enclosing.DefaultType(),
		ir.DeclarationOriginThisReceiver,
		function.Coordinates,
	)
	receiver.SetParent(function)
	function.DispatchReceiver = receiver
}

// dispatchReceiverRead reads the callable's dispatch receiver,
// or nil for top-level callables, which have none.
func dispatchReceiverRead(function *ir.Function) ir.Expression {
	receiver := function.DispatchReceiver
	if receiver == nil {
		return nil
	}

	read := &ir.GetValue{
		Symbol: receiver.Symbol,
		Type:   receiver.Type,
	}
	read.Coordinates = function.Coordinates
	return read
}

func (l *Lowerer) VisitFunction(declaration *fir.Function) ir.Declaration {
	irFunction := l.store.GetOrCreateFunction(declaration, CallableOptions{})

	if !declaration.QualifiedName.IsTopLevel() {
		l.attachDispatchReceiver(irFunction)
	}

	l.store.EnterScope(irFunction)
	defer l.store.LeaveScope(irFunction)

	l.parentStack.push(irFunction)
	defer l.parentStack.pop()

	l.functionStack.push(&functionContext{
		label:  declaration.QualifiedName.Name,
		target: irFunction.Symbol,
	})
	defer l.functionStack.pop()

	for index, parameter := range declaration.ValueParameters {
		if parameter.DefaultValue == nil {
			continue
		}
		irParameter := irFunction.ValueParameters[index]
		if irParameter.DefaultValue == nil {
			irParameter.DefaultValue = l.lowerExpression(parameter.DefaultValue)
		}
	}

	if declaration.Body != nil && irFunction.Body == nil {
		irFunction.Body = l.lowerBlock(declaration.Body, irFunction.ReturnType)
	}

	return irFunction
}

func (l *Lowerer) VisitConstructor(declaration *fir.Constructor) ir.Declaration {
	irConstructor := l.store.GetOrCreateConstructor(declaration, CallableOptions{})

	l.store.EnterScope(irConstructor)
	defer l.store.LeaveScope(irConstructor)

	l.parentStack.push(irConstructor)
	defer l.parentStack.pop()

	l.functionStack.push(&functionContext{
		label:  fir.ConstructorName,
		target: irConstructor.Symbol,
	})
	defer l.functionStack.pop()

	for index, parameter := range declaration.ValueParameters {
		if parameter.DefaultValue == nil {
			continue
		}
		irParameter := irConstructor.ValueParameters[index]
		if irParameter.DefaultValue == nil {
			irParameter.DefaultValue = l.lowerExpression(parameter.DefaultValue)
		}
	}

	if declaration.Body != nil && irConstructor.Body == nil {
		irConstructor.Body = l.lowerBlock(declaration.Body, ir.UnitType)
	}

	return irConstructor
}

func (l *Lowerer) VisitProperty(declaration *fir.Property) ir.Declaration {
	irProperty := l.store.GetOrCreateProperty(declaration, false)

	l.propertyStack.push(irProperty)
	defer l.propertyStack.pop()

	l.parentStack.push(irProperty)
	defer l.parentStack.pop()

	propertyType := l.store.ConvertType(declaration.Type)

	if l.needsBackingField(declaration) && irProperty.BackingField == nil {
		field := ir.NewField(
			ir.NewFieldSymbol(),
			declaration.QualifiedName.Name,
			propertyType,
			common.VisibilityPrivate,
			!declaration.IsVar,
			coordinates(declaration),
		)
		field.SetParent(irProperty)
		if declaration.Initializer != nil {
			field.Initializer = l.lowerExpression(declaration.Initializer)
		}
		irProperty.BackingField = field
	}

	l.lowerGetter(declaration, irProperty, propertyType)
	if declaration.IsVar {
		l.lowerSetter(declaration, irProperty, propertyType)
	}

	return irProperty
}

// needsBackingField decides whether the property stores its own value.
// Abstract properties, interface members, and delegated properties never
// do; everything else does as soon as an initializer or a default
// accessor requires storage.
func (l *Lowerer) needsBackingField(declaration *fir.Property) bool {
	if declaration.Modality == common.ModalityAbstract {
		return false
	}
	if declaration.HasDelegate {
		return false
	}
	if !l.classStack.isEmpty() && l.classStack.top().source.IsInterface() {
		return false
	}
	return declaration.Initializer != nil ||
		declaration.HasDefaultGetter() ||
		declaration.HasDefaultSetter()
}

func (l *Lowerer) lowerGetter(
	declaration *fir.Property,
	irProperty *ir.Property,
	propertyType ir.Type,
) {
	getter := irProperty.Getter
	if getter == nil || getter.Body != nil {
		return
	}

	l.attachDispatchReceiver(getter)

	l.parentStack.push(getter)
	defer l.parentStack.pop()

	l.functionStack.push(&functionContext{
		label:  getter.Name,
		target: getter.Symbol,
	})
	defer l.functionStack.pop()

	if declaration.Getter != nil && !declaration.Getter.IsDefault && declaration.Getter.Body != nil {
		getter.Body = l.lowerBlock(declaration.Getter.Body, getter.ReturnType)
		return
	}

	field := irProperty.BackingField
	if field == nil {
		return
	}

	read := &ir.GetField{
		Symbol:   field.Symbol,
		Receiver: dispatchReceiverRead(getter),
		Type:     propertyType,
	}
	read.Coordinates = getter.Coordinates

	result := &ir.Return{
		Target: getter.Symbol,
		Value:  read,
		Type:   ir.NothingType,
	}
	result.Coordinates = getter.Coordinates

	body := &ir.Block{
		Statements: []ir.Statement{result},
		Type:       getter.ReturnType,
	}
	body.Coordinates = getter.Coordinates
	getter.Body = body
}

func (l *Lowerer) lowerSetter(
	declaration *fir.Property,
	irProperty *ir.Property,
	propertyType ir.Type,
) {
	setter := irProperty.Setter
	if setter == nil || setter.Body != nil {
		return
	}

	l.attachDispatchReceiver(setter)

	l.parentStack.push(setter)
	defer l.parentStack.pop()

	l.functionStack.push(&functionContext{
		label:  setter.Name,
		target: setter.Symbol,
	})
	defer l.functionStack.pop()

	if declaration.Setter != nil && !declaration.Setter.IsDefault && declaration.Setter.Body != nil {
		setter.Body = l.lowerBlock(declaration.Setter.Body, setter.ReturnType)
		return
	}

	field := irProperty.BackingField
	if field == nil {
		return
	}

	value := &ir.GetValue{
		Symbol: setter.ValueParameters[0].Symbol,
		Type:   propertyType,
	}
	value.Coordinates = setter.Coordinates

	write := &ir.SetField{
		Symbol:   field.Symbol,
		Receiver: dispatchReceiverRead(setter),
		Value:    value,
		Type:     ir.UnitType,
	}
	write.Coordinates = setter.Coordinates

	body := &ir.Block{
		Statements: []ir.Statement{write},
		Type:       setter.ReturnType,
	}
	body.Coordinates = setter.Coordinates
	setter.Body = body
}

func (l *Lowerer) VisitVariableDeclaration(declaration *fir.Variable) ir.Declaration {
	irVariable := l.store.GetOrCreateVariable(declaration)
	if declaration.Initializer != nil && irVariable.Initializer == nil {
		irVariable.Initializer = l.lowerExpression(declaration.Initializer)
	}
	return irVariable
}

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

func (l *Lowerer) VisitBlock(expression *fir.Block) ir.Expression {
	irBlock := l.lowerBlock(expression, nil)

	// A block in expression position produces its last expression,
	// or Unit if it ends in a non-expression statement.
	var blockType ir.Type = ir.UnitType
	if count := len(irBlock.Statements); count > 0 {
		if last, ok := irBlock.Statements[count-1].(ir.Expression); ok {
			blockType = last.StaticType()
		}
	}
	irBlock.Type = blockType

	return irBlock
}

func (l *Lowerer) VisitCall(expression *fir.Call) ir.Expression {
	resolved := l.config.ReferenceResolver(expression.Callee)
	if resolved == nil {
		return l.reportUnresolved(expression.Callee.Name, expression.Range)
	}

	var receiver ir.Expression
	if expression.Receiver != nil {
		receiver = l.lowerExpression(expression.Receiver)
	}

	var arguments []ir.Expression
	for _, argument := range expression.Arguments {
		arguments = append(arguments, l.lowerExpression(argument))
	}

	var typeArguments []ir.Type
	for _, typeArgument := range expression.TypeArguments {
		typeArguments = append(typeArguments, l.store.ConvertType(typeArgument))
	}

	callType := l.store.ConvertType(expression.Type)

	switch resolved := resolved.(type) {
	case ResolvedFunction:
		function := l.store.GetOrCreateFunction(resolved.Function, CallableOptions{})
		call := &ir.Call{
			Callee:        function.Symbol,
			Receiver:      receiver,
			Arguments:     arguments,
			TypeArguments: typeArguments,
			Type:          callType,
		}
		call.Coordinates = coordinates(expression)
		return call

	case ResolvedConstructor:
		constructor := l.store.GetOrCreateConstructor(resolved.Constructor, CallableOptions{})
		call := &ir.ConstructorCall{
			Callee:    constructor.Symbol,
			Arguments: arguments,
			Type:      callType,
		}
		call.Coordinates = coordinates(expression)
		return call

	case ResolvedProperty:
		return l.reportUnsupportedUse(
			fmt.Sprintf("cannot call property `%s`", expression.Callee.Name),
			expression.Callee.Name,
			expression.Range,
		)

	case ResolvedValue:
		return l.reportUnsupportedUse(
			fmt.Sprintf(
				"cannot call %s `%s`",
				resolved.Declaration.DeclarationKind().Name(),
				expression.Callee.Name,
			),
			expression.Callee.Name,
			expression.Range,
		)

	default:
		panic(errors.NewUnreachableError())
	}
}

func (l *Lowerer) VisitQualifiedAccess(expression *fir.QualifiedAccess) ir.Expression {
	resolved := l.config.ReferenceResolver(expression.Reference)
	if resolved == nil {
		return l.reportUnresolved(expression.Reference.Name, expression.Range)
	}

	accessType := l.store.ConvertType(expression.Type)

	switch resolved := resolved.(type) {
	case ResolvedValue:
		symbol, origin := l.lowerValueAccess(resolved.Declaration)
		read := &ir.GetValue{
			Symbol: symbol,
			Type:   accessType,
			Origin: origin,
		}
		read.Coordinates = coordinates(expression)
		return read

	case ResolvedProperty:
		property := l.store.GetOrCreateProperty(resolved.Property, false)

		var receiver ir.Expression
		if expression.Receiver != nil {
			receiver = l.lowerExpression(expression.Receiver)
		}

		call := &ir.Call{
			Callee:   property.Getter.Symbol,
			Receiver: receiver,
			Type:     accessType,
		}
		call.Coordinates = coordinates(expression)
		return call

	case ResolvedFunction:
		return l.reportUnsupportedUse(
			fmt.Sprintf("cannot use function `%s` as a value", expression.Reference.Name),
			expression.Reference.Name,
			expression.Range,
		)

	case ResolvedConstructor:
		return l.reportUnsupportedUse(
			fmt.Sprintf("cannot use constructor `%s` as a value", expression.Reference.Name),
			expression.Reference.Name,
			expression.Range,
		)

	default:
		panic(errors.NewUnreachableError())
	}
}

// lowerValueAccess maps a resolved value declaration onto its symbol.
// A read of a constructor parameter inside a property declaration is
// tagged: it initializes the property from the parameter.
func (l *Lowerer) lowerValueAccess(declaration fir.Declaration) (ir.ValueSymbol, ir.StatementOrigin) {
	switch declaration := declaration.(type) {
	case *fir.ValueParameter:
		parameter := l.store.GetOrCreateValueParameter(declaration, ir.UnknownParameterIndex)

		origin := ir.StatementOriginNone
		if !l.propertyStack.isEmpty() {
			if _, ok := parameter.Parent().(*ir.Constructor); ok {
				origin = ir.StatementOriginInitializePropertyFromParameter
			}
		}
		return parameter.Symbol, origin

	case *fir.Variable:
		return l.store.GetOrCreateVariable(declaration).Symbol, ir.StatementOriginNone

	default:
		panic(errors.NewUnexpectedError(
			"%s resolved to a value",
			declaration.DeclarationKind(),
		))
	}
}

func (l *Lowerer) VisitAssignment(expression *fir.Assignment) ir.Expression {
	target := expression.Target
	resolved := l.config.ReferenceResolver(target.Reference)
	if resolved == nil {
		return l.reportUnresolved(target.Reference.Name, expression.Range)
	}

	value := l.lowerExpression(expression.Value)

	switch resolved := resolved.(type) {
	case ResolvedValue:
		symbol, _ := l.lowerValueAccess(resolved.Declaration)
		write := &ir.SetValue{
			Symbol: symbol,
			Value:  value,
			Type:   ir.UnitType,
		}
		write.Coordinates = coordinates(expression)
		return write

	case ResolvedProperty:
		property := l.store.GetOrCreateProperty(resolved.Property, false)
		if property.Setter == nil {
			panic(errors.NewUnexpectedError(
				"assignment to read-only property `%s`",
				property.Name,
			))
		}

		var receiver ir.Expression
		if target.Receiver != nil {
			receiver = l.lowerExpression(target.Receiver)
		}

		call := &ir.Call{
			Callee:    property.Setter.Symbol,
			Receiver:  receiver,
			Arguments: []ir.Expression{value},
			Type:      ir.UnitType,
		}
		call.Coordinates = coordinates(expression)
		return call

	default:
		panic(errors.NewUnexpectedError(
			"assignment to a non-assignable target `%s`",
			target.Reference.Name,
		))
	}
}

func (l *Lowerer) VisitReturn(expression *fir.Return) ir.Expression {
	context := l.currentReturnTarget(expression.TargetLabel)

	var value ir.Expression
	if expression.Expression != nil {
		value = l.lowerExpression(expression.Expression)
	}

	result := &ir.Return{
		Target: context.target,
		Value:  value,
		Type:   ir.NothingType,
	}
	result.Coordinates = coordinates(expression)
	return result
}

func (l *Lowerer) VisitWhen(expression *fir.When) ir.Expression {
	whenType := l.store.ConvertType(expression.Type)

	var subject *ir.Variable
	switch {
	case expression.Subject != nil:
		subject = l.store.GetOrCreateVariable(expression.Subject)
		if expression.Subject.Initializer != nil && subject.Initializer == nil {
			subject.Initializer = l.lowerExpression(expression.Subject.Initializer)
		}

	case expression.SubjectExpression != nil:
		subject = l.store.CreateTemporaryVariable(
			l.lowerExpression(expression.SubjectExpression),
			"subject",
			coordinates(expression.SubjectExpression),
		)
	}

	if subject != nil {
		if subject.Parent() == nil {
			subject.SetParent(l.parentStack.top())
		}
		l.whenSubjectStack.push(subject)
		defer l.whenSubjectStack.pop()
	}

	irWhen := &ir.When{
		Type: whenType,
	}
	irWhen.Coordinates = coordinates(expression)

	for _, branch := range expression.Branches {
		_, isElse := branch.Condition.(*fir.ElseCondition)
		if isElse && branch.Result.IsEmpty() {
			continue
		}

		irBranch := &ir.Branch{
			Condition:   l.lowerExpression(branch.Condition),
			Result:      l.lowerBlock(branch.Result, whenType),
			Coordinates: coordinates(branch),
		}
		irWhen.Branches = append(irWhen.Branches, irBranch)
	}

	// A when without a subject lowers to the conditional alone. With a
	// subject, the binding must be evaluated exactly once, before any
	// branch condition: the two become a block.
	if subject == nil {
		return irWhen
	}

	block := &ir.Block{
		Statements: []ir.Statement{subject, irWhen},
		Type:       whenType,
	}
	block.Coordinates = coordinates(expression)
	return block
}

func (l *Lowerer) VisitWhenSubjectExpression(expression *fir.WhenSubjectExpression) ir.Expression {
	if l.whenSubjectStack.isEmpty() {
		panic(errors.NewUnexpectedError("when subject read outside of a when"))
	}

	subject := l.whenSubjectStack.top()
	read := &ir.GetValue{
		Symbol: subject.Symbol,
		Type:   subject.Type,
		Origin: ir.StatementOriginWhenSubject,
	}
	read.Coordinates = coordinates(expression)
	return read
}

func (l *Lowerer) VisitElseCondition(expression *fir.ElseCondition) ir.Expression {
	condition := &ir.Const{
		Kind:  ir.ConstKindBoolean,
		Value: true,
		Type:  ir.BooleanType,
	}
	condition.Coordinates = coordinates(expression)
	return condition
}

func (l *Lowerer) VisitTry(expression *fir.Try) ir.Expression {
	tryType := l.store.ConvertType(expression.Type)

	irTry := &ir.Try{
		Body: l.lowerBlock(expression.Body, tryType),
		Type: tryType,
	}
	irTry.Coordinates = coordinates(expression)

	// The catch binding goes through the store: references to the
	// parameter inside the catch body must land on the same counterpart.
	for _, catch := range expression.Catches {
		parameter := l.store.GetOrCreateValueParameter(catch.Parameter, 0)
		if parameter.Parent() == nil {
			parameter.SetParent(l.parentStack.top())
		}

		irTry.Catches = append(
			irTry.Catches,
			&ir.Catch{
				Parameter:   parameter,
				Body:        l.lowerBlock(catch.Body, tryType),
				Coordinates: coordinates(catch),
			},
		)
	}

	if expression.Finally != nil {
		irTry.Finally = l.lowerBlock(expression.Finally, ir.UnitType)
	}

	return irTry
}

func (l *Lowerer) VisitWhile(expression *fir.While) ir.Expression {
	loop := &ir.While{
		Condition: l.lowerExpression(expression.Condition),
		Body:      l.lowerBlock(expression.Body, ir.UnitType),
		Type:      ir.UnitType,
	}
	loop.Coordinates = coordinates(expression)
	return loop
}

func (l *Lowerer) VisitDoWhile(expression *fir.DoWhile) ir.Expression {
	loop := &ir.DoWhile{
		Body:      l.lowerBlock(expression.Body, ir.UnitType),
		Condition: l.lowerExpression(expression.Condition),
		Type:      ir.UnitType,
	}
	loop.Coordinates = coordinates(expression)
	return loop
}

// binaryOperationFunctions maps each supported binary operator onto the
// built-in operation it lowers to. Operators without an entry are
// intentionally unimplemented: negated equality, identity, and the
// short-circuiting connectives still lack an assigned IR shape.
var binaryOperationFunctions = map[fir.Operation]*ir.Function{
	fir.OperationEqual:        ir.EqualsFunction,
	fir.OperationPlus:         ir.PlusFunction,
	fir.OperationMinus:        ir.MinusFunction,
	fir.OperationMul:          ir.TimesFunction,
	fir.OperationDiv:          ir.DivFunction,
	fir.OperationMod:          ir.RemFunction,
	fir.OperationLess:         ir.LessFunction,
	fir.OperationLessEqual:    ir.LessEqualFunction,
	fir.OperationGreater:      ir.GreaterFunction,
	fir.OperationGreaterEqual: ir.GreaterEqualFunction,
}

func (l *Lowerer) VisitBinaryOperation(expression *fir.BinaryOperation) ir.Expression {
	left := l.lowerExpression(expression.Left)
	right := l.lowerExpression(expression.Right)

	function, ok := binaryOperationFunctions[expression.Operation]
	if !ok {
		panic(errors.NewUnimplementedError(
			"binary operation `%s`",
			expression.Operation.Symbol(),
		))
	}

	call := &ir.Call{
		Callee:    function.Symbol,
		Arguments: []ir.Expression{left, right},
		Type:      function.ReturnType,
	}
	call.Coordinates = coordinates(expression)
	return call
}

func (l *Lowerer) VisitTypeOperation(expression *fir.TypeOperation) ir.Expression {
	argument := l.lowerExpression(expression.Expression)
	operand := l.store.ConvertType(expression.Type)

	var operator ir.TypeOperatorKind
	var resultType ir.Type

	switch expression.Operation {
	case fir.OperationIs:
		operator = ir.TypeOperatorInstanceOf
		resultType = ir.BooleanType

	case fir.OperationNotIs:
		operator = ir.TypeOperatorNotInstanceOf
		resultType = ir.BooleanType

	case fir.OperationCast:
		operator = ir.TypeOperatorCast
		resultType = operand

	case fir.OperationSafeCast:
		operator = ir.TypeOperatorSafeCast
		resultType = operand.WithNullability(true)

	default:
		panic(errors.NewUnexpectedError(
			"`%s` is not a type operation",
			expression.Operation.Symbol(),
		))
	}

	result := &ir.TypeOperator{
		Operator:    operator,
		Argument:    argument,
		TypeOperand: operand,
		Type:        resultType,
	}
	result.Coordinates = coordinates(expression)
	return result
}

func (l *Lowerer) VisitConst(expression *fir.Const) ir.Expression {
	var kind ir.ConstKind
	var constType ir.Type

	switch expression.Kind {
	case fir.ConstKindNull:
		kind = ir.ConstKindNull
		constType = ir.NullType

	case fir.ConstKindBoolean:
		kind = ir.ConstKindBoolean
		constType = ir.BooleanType

	case fir.ConstKindInt:
		kind = ir.ConstKindInt
		constType = ir.IntType

	case fir.ConstKindString:
		kind = ir.ConstKindString
		constType = ir.StringType

	default:
		panic(errors.NewUnexpectedError(
			"constant of unknown kind: %v",
			expression.Value,
		))
	}

	result := &ir.Const{
		Kind:  kind,
		Value: expression.Value,
		Type:  constType,
	}
	result.Coordinates = coordinates(expression)
	return result
}

func (l *Lowerer) VisitAnonymousObject(expression *fir.AnonymousObject) ir.Expression {
	irClass := l.lowerDeclaration(expression.Class).(*ir.Class)

	constructor := irClass.PrimaryConstructor()
	if constructor == nil {
		// Object literals without an explicit constructor still need one
		// to instantiate through.
		constructor = ir.NewConstructor(
			ir.NewConstructorSymbol(),
			fir.ConstructorName,
			true,
			common.VisibilityPublic,
			irClass.DefaultType(),
			irClass.Coordinates,
		)
		constructor.SetParent(irClass)
		irClass.Declarations = append(irClass.Declarations, constructor)
	}

	instantiation := &ir.ConstructorCall{
		Callee: constructor.Symbol,
		Type:   irClass.DefaultType(),
	}
	instantiation.Coordinates = coordinates(expression)

	block := &ir.Block{
		Statements: []ir.Statement{irClass, instantiation},
		Type:       irClass.DefaultType(),
	}
	block.Coordinates = coordinates(expression)
	return block
}

func (l *Lowerer) VisitLocalVariable(expression *fir.Variable) ir.Expression {
	// Variable declarations are handled in statement position by the
	// enclosing block, and as when subjects by the enclosing when.
	panic(errors.NewUnexpectedError(
		"variable declaration `%s` in expression position",
		expression.Name,
	))
}

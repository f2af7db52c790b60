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

package lower_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinderlang/cinder/common"
	"github.com/cinderlang/cinder/errors"
	"github.com/cinderlang/cinder/fir"
	"github.com/cinderlang/cinder/ir"
	"github.com/cinderlang/cinder/lower"
)

// lowerFunctionBody lowers a file holding one top-level function whose
// body consists of the given expressions.
func lowerFunctionBody(
	t *testing.T,
	resolver *testResolver,
	expressions ...fir.Expression,
) (
	*ir.Function,
	*lower.Lowerer,
) {
	function := newTestFunction("f")
	function.Body = &fir.Block{
		Expressions: expressions,
	}

	lowerer := lower.NewLowerer(resolver.config())
	irFile := lowerer.LowerFile(newTestFile(function))

	require.Len(t, irFile.Declarations, 1)
	irFunction, ok := irFile.Declarations[0].(*ir.Function)
	require.True(t, ok)
	require.NotNil(t, irFunction.Body)

	return irFunction, lowerer
}

func TestLowerClassWithPropertyFromConstructorParameter(t *testing.T) {

	t.Parallel()

	// class C(x: Int) { val y = x + 1 }

	class := newTestClass("C")

	parameter := newTestParameter("x")
	constructor := newTestConstructor(class, parameter)

	reference := &fir.Reference{Name: "x"}
	property := newTestNestedProperty(
		class,
		"y",
		&fir.BinaryOperation{
			Operation: fir.OperationPlus,
			Left: &fir.QualifiedAccess{
				Reference: reference,
			},
			Right: &fir.Const{
				Kind:  fir.ConstKindInt,
				Value: 1,
			},
		},
	)

	// Source order puts the property first: the lowered class must still
	// lead with the constructor.
	class.Declarations = []fir.Declaration{property, constructor}

	resolver := newTestResolver()
	resolver.resolve(reference, lower.ResolvedValue{Declaration: parameter})

	lowerer := lower.NewLowerer(resolver.config())
	irFile := lowerer.LowerFile(newTestFile(class))

	require.Len(t, irFile.Declarations, 1)
	irClass, ok := irFile.Declarations[0].(*ir.Class)
	require.True(t, ok)

	require.Len(t, irClass.Declarations, 2)
	irConstructor, ok := irClass.Declarations[0].(*ir.Constructor)
	require.True(t, ok)
	require.Len(t, irConstructor.ValueParameters, 1)

	irProperty, ok := irClass.Declarations[1].(*ir.Property)
	require.True(t, ok)
	assert.Equal(t, "y", irProperty.Name)
	assert.Same(t, irClass, irProperty.Parent())

	field := irProperty.BackingField
	require.NotNil(t, field)

	sum, ok := field.Initializer.(*ir.Call)
	require.True(t, ok)
	assert.Same(t, ir.PlusFunction.Symbol, sum.Callee)
	require.Len(t, sum.Arguments, 2)

	read, ok := sum.Arguments[0].(*ir.GetValue)
	require.True(t, ok)
	assert.Same(t, irConstructor.ValueParameters[0].Symbol, read.Symbol)
	assert.Equal(t, ir.StatementOriginInitializePropertyFromParameter, read.Origin)

	assert.Empty(t, lowerer.Diagnostics())
	assert.Equal(t, 0, lowerer.Store().OpenScopeCount())
}

func TestLowerSubjectlessWhen(t *testing.T) {

	t.Parallel()

	// when { c -> 1 else -> 2 }

	when := &fir.When{
		Branches: []*fir.WhenBranch{
			{
				Condition: &fir.Const{
					Kind:  fir.ConstKindBoolean,
					Value: true,
				},
				Result: &fir.Block{
					Expressions: []fir.Expression{
						&fir.Const{Kind: fir.ConstKindInt, Value: 1},
					},
				},
			},
			{
				Condition: &fir.ElseCondition{},
				Result: &fir.Block{
					Expressions: []fir.Expression{
						&fir.Const{Kind: fir.ConstKindInt, Value: 2},
					},
				},
			},
		},
	}

	irFunction, lowerer := lowerFunctionBody(t, newTestResolver(), when)

	require.Len(t, irFunction.Body.Statements, 1)

	// No subject binding, no wrapping block
	irWhen, ok := irFunction.Body.Statements[0].(*ir.When)
	require.True(t, ok)
	require.Len(t, irWhen.Branches, 2)

	elseCondition, ok := irWhen.Branches[1].Condition.(*ir.Const)
	require.True(t, ok)
	assert.Equal(t, ir.ConstKindBoolean, elseCondition.Kind)
	assert.Equal(t, true, elseCondition.Value)

	assert.Empty(t, lowerer.Diagnostics())
}

func TestLowerWhenWithSubjectBinding(t *testing.T) {

	t.Parallel()

	// when (val s = g()) { else -> s }

	callee := newTestFunction("g")
	calleeReference := &fir.Reference{Name: "g"}

	subject := &fir.Variable{
		Name: "s",
		Initializer: &fir.Call{
			Callee: calleeReference,
		},
	}

	when := &fir.When{
		Subject: subject,
		Branches: []*fir.WhenBranch{
			{
				Condition: &fir.ElseCondition{},
				Result: &fir.Block{
					Expressions: []fir.Expression{
						&fir.WhenSubjectExpression{},
					},
				},
			},
		},
	}

	resolver := newTestResolver()
	resolver.resolve(calleeReference, lower.ResolvedFunction{Function: callee})

	irFunction, lowerer := lowerFunctionBody(t, resolver, when)

	require.Len(t, irFunction.Body.Statements, 1)

	block, ok := irFunction.Body.Statements[0].(*ir.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)

	variable, ok := block.Statements[0].(*ir.Variable)
	require.True(t, ok)
	assert.Equal(t, "s", variable.Name)

	initializer, ok := variable.Initializer.(*ir.Call)
	require.True(t, ok)
	irCallee := lowerer.Store().GetOrCreateFunction(callee, lower.CallableOptions{})
	assert.Same(t, irCallee.Symbol, initializer.Callee)

	irWhen, ok := block.Statements[1].(*ir.When)
	require.True(t, ok)
	require.Len(t, irWhen.Branches, 1)

	// The branch result reads the subject binding
	result := irWhen.Branches[0].Result
	require.Len(t, result.Statements, 1)
	read, ok := result.Statements[0].(*ir.GetValue)
	require.True(t, ok)
	assert.Same(t, variable.Symbol, read.Symbol)
	assert.Equal(t, ir.StatementOriginWhenSubject, read.Origin)
}

func TestLowerWhenWithSubjectExpression(t *testing.T) {

	t.Parallel()

	// when (1) { subject == 2 -> 3 }

	when := &fir.When{
		SubjectExpression: &fir.Const{
			Kind:  fir.ConstKindInt,
			Value: 1,
		},
		Branches: []*fir.WhenBranch{
			{
				Condition: &fir.BinaryOperation{
					Operation: fir.OperationEqual,
					Left:      &fir.WhenSubjectExpression{},
					Right: &fir.Const{
						Kind:  fir.ConstKindInt,
						Value: 2,
					},
				},
				Result: &fir.Block{
					Expressions: []fir.Expression{
						&fir.Const{Kind: fir.ConstKindInt, Value: 3},
					},
				},
			},
		},
	}

	irFunction, _ := lowerFunctionBody(t, newTestResolver(), when)

	require.Len(t, irFunction.Body.Statements, 1)

	block, ok := irFunction.Body.Statements[0].(*ir.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)

	temporary, ok := block.Statements[0].(*ir.Variable)
	require.True(t, ok)
	assert.Equal(t, "tmp0_subject", temporary.Name)
	assert.Equal(t, ir.DeclarationOriginTemporary, temporary.Origin())

	irWhen, ok := block.Statements[1].(*ir.When)
	require.True(t, ok)
	require.Len(t, irWhen.Branches, 1)

	comparison, ok := irWhen.Branches[0].Condition.(*ir.Call)
	require.True(t, ok)
	assert.Same(t, ir.EqualsSymbol, comparison.Callee)
	require.Len(t, comparison.Arguments, 2)

	read, ok := comparison.Arguments[0].(*ir.GetValue)
	require.True(t, ok)
	assert.Same(t, temporary.Symbol, read.Symbol)
	assert.Equal(t, ir.StatementOriginWhenSubject, read.Origin)
}

func TestLowerWhenDropsEmptyElse(t *testing.T) {

	t.Parallel()

	when := &fir.When{
		Branches: []*fir.WhenBranch{
			{
				Condition: &fir.Const{
					Kind:  fir.ConstKindBoolean,
					Value: true,
				},
				Result: &fir.Block{
					Expressions: []fir.Expression{
						&fir.Const{Kind: fir.ConstKindInt, Value: 1},
					},
				},
			},
			{
				Condition: &fir.ElseCondition{},
				Result:    &fir.Block{},
			},
		},
	}

	irFunction, _ := lowerFunctionBody(t, newTestResolver(), when)

	require.Len(t, irFunction.Body.Statements, 1)
	irWhen, ok := irFunction.Body.Statements[0].(*ir.When)
	require.True(t, ok)
	assert.Len(t, irWhen.Branches, 1)
}

func TestFakeOverrides(t *testing.T) {

	t.Parallel()

	t.Run("inherited function", func(t *testing.T) {
		t.Parallel()

		base := newTestClass("A")
		inherited := newTestNestedFunction(base, "m", newTestParameter("p"))
		base.Declarations = []fir.Declaration{inherited}

		derived := newTestClass("B")
		derived.Supertypes = []*fir.TypeRef{
			{Class: base},
		}

		resolver := newTestResolver()
		resolver.declare(base.QualifiedName, base)

		lowerer := lower.NewLowerer(resolver.config())
		irFile := lowerer.LowerFile(newTestFile(derived))

		irClass, ok := irFile.Declarations[0].(*ir.Class)
		require.True(t, ok)
		require.Len(t, irClass.Declarations, 1)

		fake, ok := irClass.Declarations[0].(*ir.Function)
		require.True(t, ok)
		assert.Equal(t, "m", fake.Name)
		assert.Equal(t, ir.DeclarationOriginFakeOverride, fake.Origin())
		assert.Same(t, irClass, fake.Parent())
		assert.Nil(t, fake.Body)

		overridden := lowerer.Store().GetOrCreateFunction(inherited, lower.CallableOptions{})
		require.Len(t, fake.Overridden, 1)
		assert.Same(t, overridden.Symbol, fake.Overridden[0])

		require.Len(t, fake.ValueParameters, 1)
		assert.Equal(t, "p", fake.ValueParameters[0].Name)
		assert.Equal(t, 0, fake.ValueParameters[0].Index)
		assert.Equal(t, ir.DeclarationOriginFakeOverride, fake.ValueParameters[0].Origin())

		receiver := fake.DispatchReceiver
		require.NotNil(t, receiver)
		assert.Equal(t, "this", receiver.Name)
		assert.Equal(t, ir.DeclarationOriginThisReceiver, receiver.Origin())

		receiverType, ok := receiver.Type.(*ir.ClassType)
		require.True(t, ok)
		assert.Same(t, irClass.Symbol, receiverType.Symbol)
	})

	t.Run("declared property does not hide an inherited function", func(t *testing.T) {
		t.Parallel()

		base := newTestClass("A")
		inherited := newTestNestedFunction(base, "m")
		base.Declarations = []fir.Declaration{inherited}

		derived := newTestClass("B")
		derived.Supertypes = []*fir.TypeRef{
			{Class: base},
		}
		declared := newTestNestedProperty(derived, "m", &fir.Const{
			Kind:  fir.ConstKindInt,
			Value: 1,
		})
		derived.Declarations = []fir.Declaration{declared}

		resolver := newTestResolver()
		resolver.declare(base.QualifiedName, base)

		lowerer := lower.NewLowerer(resolver.config())
		irFile := lowerer.LowerFile(newTestFile(derived))

		irClass, ok := irFile.Declarations[0].(*ir.Class)
		require.True(t, ok)
		require.Len(t, irClass.Declarations, 2)

		_, ok = irClass.Declarations[0].(*ir.Property)
		require.True(t, ok)

		fake, ok := irClass.Declarations[1].(*ir.Function)
		require.True(t, ok)
		assert.Equal(t, "m", fake.Name)
		assert.Equal(t, ir.DeclarationOriginFakeOverride, fake.Origin())
	})

	t.Run("declared member wins", func(t *testing.T) {
		t.Parallel()

		base := newTestClass("A")
		inherited := newTestNestedFunction(base, "m")
		base.Declarations = []fir.Declaration{inherited}

		derived := newTestClass("B")
		derived.Supertypes = []*fir.TypeRef{
			{Class: base},
		}
		declared := newTestNestedFunction(derived, "m")
		derived.Declarations = []fir.Declaration{declared}

		resolver := newTestResolver()
		resolver.declare(base.QualifiedName, base)

		lowerer := lower.NewLowerer(resolver.config())
		irFile := lowerer.LowerFile(newTestFile(derived))

		irClass, ok := irFile.Declarations[0].(*ir.Class)
		require.True(t, ok)
		require.Len(t, irClass.Declarations, 1)

		member, ok := irClass.Declarations[0].(*ir.Function)
		require.True(t, ok)
		assert.Equal(t, ir.DeclarationOriginDefined, member.Origin())
	})

	t.Run("first supertype wins", func(t *testing.T) {
		t.Parallel()

		first := newTestClass("A1")
		firstMember := newTestNestedFunction(first, "m")
		first.Declarations = []fir.Declaration{firstMember}

		second := newTestClass("A2")
		secondMember := newTestNestedFunction(second, "m")
		second.Declarations = []fir.Declaration{secondMember}

		derived := newTestClass("B")
		derived.Supertypes = []*fir.TypeRef{
			{Class: first},
			{Class: second},
		}

		resolver := newTestResolver()
		resolver.declare(first.QualifiedName, first)
		resolver.declare(second.QualifiedName, second)

		lowerer := lower.NewLowerer(resolver.config())
		irFile := lowerer.LowerFile(newTestFile(derived))

		irClass, ok := irFile.Declarations[0].(*ir.Class)
		require.True(t, ok)
		require.Len(t, irClass.Declarations, 1)

		fake, ok := irClass.Declarations[0].(*ir.Function)
		require.True(t, ok)

		overridden := lowerer.Store().GetOrCreateFunction(firstMember, lower.CallableOptions{})
		require.Len(t, fake.Overridden, 1)
		assert.Same(t, overridden.Symbol, fake.Overridden[0])
	})

	t.Run("inherited property is passed over", func(t *testing.T) {
		t.Parallel()

		base := newTestClass("A")
		inherited := newTestNestedProperty(base, "p", nil)
		base.Declarations = []fir.Declaration{inherited}

		derived := newTestClass("B")
		derived.Supertypes = []*fir.TypeRef{
			{Class: base},
		}

		resolver := newTestResolver()
		resolver.declare(base.QualifiedName, base)

		lowerer := lower.NewLowerer(resolver.config())
		irFile := lowerer.LowerFile(newTestFile(derived))

		irClass, ok := irFile.Declarations[0].(*ir.Class)
		require.True(t, ok)
		assert.Empty(t, irClass.Declarations)
	})
}

func TestLowerUnresolvedReference(t *testing.T) {

	t.Parallel()

	// The unresolved call lowers to a placeholder, the sibling statement
	// still lowers, and exactly one problem is reported.

	class := newTestClass("C")
	member := newTestNestedFunction(class, "count")

	reference := &fir.Reference{Name: "coun"}
	main := newTestNestedFunction(class, "main")
	main.Body = &fir.Block{
		Expressions: []fir.Expression{
			&fir.Call{Callee: reference},
			&fir.Const{Kind: fir.ConstKindInt, Value: 1},
		},
	}

	class.Declarations = []fir.Declaration{member, main}

	lowerer := lower.NewLowerer(newTestResolver().config())
	irFile := lowerer.LowerFile(newTestFile(class))

	irClass, ok := irFile.Declarations[0].(*ir.Class)
	require.True(t, ok)

	var irMain *ir.Function
	for _, declaration := range irClass.Declarations {
		if function, ok := declaration.(*ir.Function); ok && function.Name == "main" {
			irMain = function
		}
	}
	require.NotNil(t, irMain)
	require.NotNil(t, irMain.Body)
	require.Len(t, irMain.Body.Statements, 2)

	placeholder, ok := irMain.Body.Statements[0].(*ir.ErrorExpression)
	require.True(t, ok)
	assert.Equal(t, "unresolved reference `coun`", placeholder.Description)
	assert.Equal(t, ir.ErrorType{}, placeholder.StaticType())

	_, ok = irMain.Body.Statements[1].(*ir.Const)
	require.True(t, ok)

	diagnostics := lowerer.Diagnostics()
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "cannot find `coun` in this scope", diagnostics[0].Message)
	assert.Equal(t, "did you mean `count`?", diagnostics[0].SecondaryError())
}

func TestLowerReturn(t *testing.T) {

	t.Parallel()

	t.Run("plain return targets the innermost function", func(t *testing.T) {
		t.Parallel()

		irFunction, _ := lowerFunctionBody(t, newTestResolver(), &fir.Return{})

		require.Len(t, irFunction.Body.Statements, 1)
		result, ok := irFunction.Body.Statements[0].(*ir.Return)
		require.True(t, ok)
		assert.Same(t, irFunction.Symbol, result.Target)
		assert.Same(t, ir.NothingType, result.Type)
	})

	t.Run("unknown label falls back to the innermost function", func(t *testing.T) {
		t.Parallel()

		irFunction, _ := lowerFunctionBody(t, newTestResolver(), &fir.Return{
			TargetLabel: "missing",
		})

		result, ok := irFunction.Body.Statements[0].(*ir.Return)
		require.True(t, ok)
		assert.Same(t, irFunction.Symbol, result.Target)
	})

	t.Run("return in a declared getter targets the getter", func(t *testing.T) {
		t.Parallel()

		property := newTestProperty("y", nil)
		property.Getter = &fir.PropertyAccessor{
			IsGetter: true,
			Body: &fir.Block{
				Expressions: []fir.Expression{
					&fir.Return{
						Expression: &fir.Const{
							Kind:  fir.ConstKindInt,
							Value: 1,
						},
					},
				},
			},
		}

		lowerer := lower.NewLowerer(newTestResolver().config())
		irFile := lowerer.LowerFile(newTestFile(property))

		irProperty, ok := irFile.Declarations[0].(*ir.Property)
		require.True(t, ok)

		getter := irProperty.Getter
		require.NotNil(t, getter)
		require.NotNil(t, getter.Body)

		result, ok := getter.Body.Statements[0].(*ir.Return)
		require.True(t, ok)
		assert.Same(t, getter.Symbol, result.Target)
	})
}

func TestLowerBinaryOperations(t *testing.T) {

	t.Parallel()

	lowerOperation := func(t *testing.T, operation fir.Operation) *ir.Call {
		irFunction, _ := lowerFunctionBody(t, newTestResolver(), &fir.BinaryOperation{
			Operation: operation,
			Left:      &fir.Const{Kind: fir.ConstKindInt, Value: 1},
			Right:     &fir.Const{Kind: fir.ConstKindInt, Value: 2},
		})

		require.Len(t, irFunction.Body.Statements, 1)
		call, ok := irFunction.Body.Statements[0].(*ir.Call)
		require.True(t, ok)
		require.Len(t, call.Arguments, 2)
		return call
	}

	t.Run("equality", func(t *testing.T) {
		t.Parallel()

		call := lowerOperation(t, fir.OperationEqual)
		assert.Same(t, ir.EqualsSymbol, call.Callee)
		assert.Same(t, ir.BooleanType, call.Type)
	})

	t.Run("arithmetic", func(t *testing.T) {
		t.Parallel()

		call := lowerOperation(t, fir.OperationMul)
		assert.Same(t, ir.TimesFunction.Symbol, call.Callee)
		assert.Same(t, ir.IntType, call.Type)
	})

	t.Run("ordering", func(t *testing.T) {
		t.Parallel()

		call := lowerOperation(t, fir.OperationLess)
		assert.Same(t, ir.LessFunction.Symbol, call.Callee)
		assert.Same(t, ir.BooleanType, call.Type)
	})

	t.Run("logical connectives are unimplemented", func(t *testing.T) {
		t.Parallel()

		lowerer := lower.NewLowerer(newTestResolver().config())

		defer func() {
			recovered := recover()
			require.NotNil(t, recovered)

			err, ok := recovered.(error)
			require.True(t, ok)
			assert.IsType(t, errors.UnimplementedError{}, err)
			assert.True(t, errors.IsInternalError(err))
			assert.Contains(t, err.Error(), "unimplemented")
		}()

		lowerer.VisitBinaryOperation(&fir.BinaryOperation{
			Operation: fir.OperationAnd,
			Left:      &fir.Const{Kind: fir.ConstKindBoolean, Value: true},
			Right:     &fir.Const{Kind: fir.ConstKindBoolean, Value: false},
		})
	})
}

func TestLowerTypeOperations(t *testing.T) {

	t.Parallel()

	operandClass := newTestClass("D")

	lowerOperation := func(t *testing.T, operation fir.Operation) *ir.TypeOperator {
		lowerer := lower.NewLowerer(newTestResolver().config())

		result := lowerer.VisitTypeOperation(&fir.TypeOperation{
			Operation:  operation,
			Expression: &fir.Const{Kind: fir.ConstKindInt, Value: 1},
			Type:       &fir.TypeRef{Class: operandClass},
		})

		operator, ok := result.(*ir.TypeOperator)
		require.True(t, ok)
		return operator
	}

	t.Run("is", func(t *testing.T) {
		t.Parallel()

		operator := lowerOperation(t, fir.OperationIs)
		assert.Equal(t, ir.TypeOperatorInstanceOf, operator.Operator)
		assert.Same(t, ir.BooleanType, operator.Type)
	})

	t.Run("not is", func(t *testing.T) {
		t.Parallel()

		operator := lowerOperation(t, fir.OperationNotIs)
		assert.Equal(t, ir.TypeOperatorNotInstanceOf, operator.Operator)
		assert.Same(t, ir.BooleanType, operator.Type)
	})

	t.Run("cast", func(t *testing.T) {
		t.Parallel()

		operator := lowerOperation(t, fir.OperationCast)
		assert.Equal(t, ir.TypeOperatorCast, operator.Operator)
		assert.Same(t, operator.TypeOperand, operator.Type)
	})

	t.Run("safe cast is nullable", func(t *testing.T) {
		t.Parallel()

		operator := lowerOperation(t, fir.OperationSafeCast)
		assert.Equal(t, ir.TypeOperatorSafeCast, operator.Operator)
		assert.False(t, operator.TypeOperand.IsNullable())
		assert.True(t, operator.Type.IsNullable())
	})

	t.Run("non-type operation", func(t *testing.T) {
		t.Parallel()

		lowerer := lower.NewLowerer(newTestResolver().config())

		assert.Panics(t, func() {
			lowerer.VisitTypeOperation(&fir.TypeOperation{
				Operation:  fir.OperationPlus,
				Expression: &fir.Const{Kind: fir.ConstKindInt, Value: 1},
				Type:       &fir.TypeRef{Class: operandClass},
			})
		})
	})
}

func TestLowerBackingFieldRules(t *testing.T) {

	t.Parallel()

	lowerProperty := func(t *testing.T, property *fir.Property) *ir.Property {
		lowerer := lower.NewLowerer(newTestResolver().config())
		irFile := lowerer.LowerFile(newTestFile(property))

		irProperty, ok := irFile.Declarations[0].(*ir.Property)
		require.True(t, ok)
		return irProperty
	}

	t.Run("initializer requires storage", func(t *testing.T) {
		t.Parallel()

		property := newTestProperty("x", &fir.Const{
			Kind:  fir.ConstKindInt,
			Value: 1,
		})
		irProperty := lowerProperty(t, property)
		assert.NotNil(t, irProperty.BackingField)
	})

	t.Run("declared getter without initializer needs none", func(t *testing.T) {
		t.Parallel()

		property := newTestProperty("x", nil)
		property.Getter = &fir.PropertyAccessor{
			IsGetter: true,
			Body: &fir.Block{
				Expressions: []fir.Expression{
					&fir.Const{Kind: fir.ConstKindInt, Value: 1},
				},
			},
		}
		irProperty := lowerProperty(t, property)
		assert.Nil(t, irProperty.BackingField)
	})

	t.Run("abstract property needs none", func(t *testing.T) {
		t.Parallel()

		property := newTestProperty("x", nil)
		property.Modality = common.ModalityAbstract
		irProperty := lowerProperty(t, property)
		assert.Nil(t, irProperty.BackingField)
	})

	t.Run("delegated property needs none", func(t *testing.T) {
		t.Parallel()

		property := newTestProperty("x", &fir.Const{
			Kind:  fir.ConstKindInt,
			Value: 1,
		})
		property.HasDelegate = true
		irProperty := lowerProperty(t, property)
		assert.Nil(t, irProperty.BackingField)
	})

	t.Run("interface member needs none", func(t *testing.T) {
		t.Parallel()

		class := newTestClass("I")
		class.Kind = common.ClassKindInterface
		property := newTestNestedProperty(class, "x", nil)
		class.Declarations = []fir.Declaration{property}

		lowerer := lower.NewLowerer(newTestResolver().config())
		irFile := lowerer.LowerFile(newTestFile(class))

		irClass, ok := irFile.Declarations[0].(*ir.Class)
		require.True(t, ok)
		irProperty, ok := irClass.Declarations[0].(*ir.Property)
		require.True(t, ok)
		assert.Nil(t, irProperty.BackingField)
	})
}

func TestLowerDefaultAccessors(t *testing.T) {

	t.Parallel()

	property := newTestProperty("x", &fir.Const{
		Kind:  fir.ConstKindInt,
		Value: 1,
	})
	property.IsVar = true

	lowerer := lower.NewLowerer(newTestResolver().config())
	irFile := lowerer.LowerFile(newTestFile(property))

	irProperty, ok := irFile.Declarations[0].(*ir.Property)
	require.True(t, ok)

	field := irProperty.BackingField
	require.NotNil(t, field)

	getter := irProperty.Getter
	require.NotNil(t, getter)
	assert.Equal(t, ir.DeclarationOriginDefaultPropertyAccessor, getter.Origin())
	assert.Same(t, irProperty.Symbol, getter.CorrespondingProperty)
	require.NotNil(t, getter.Body)
	require.Len(t, getter.Body.Statements, 1)

	result, ok := getter.Body.Statements[0].(*ir.Return)
	require.True(t, ok)
	assert.Same(t, getter.Symbol, result.Target)

	read, ok := result.Value.(*ir.GetField)
	require.True(t, ok)
	assert.Same(t, field.Symbol, read.Symbol)

	setter := irProperty.Setter
	require.NotNil(t, setter)
	assert.Equal(t, ir.DeclarationOriginDefaultPropertyAccessor, setter.Origin())
	require.NotNil(t, setter.Body)
	require.Len(t, setter.Body.Statements, 1)

	write, ok := setter.Body.Statements[0].(*ir.SetField)
	require.True(t, ok)
	assert.Same(t, field.Symbol, write.Symbol)

	value, ok := write.Value.(*ir.GetValue)
	require.True(t, ok)
	require.Len(t, setter.ValueParameters, 1)
	assert.Same(t, setter.ValueParameters[0].Symbol, value.Symbol)
}

func TestLowerPropertyAssignment(t *testing.T) {

	t.Parallel()

	t.Run("mutable property assigns through the setter", func(t *testing.T) {
		t.Parallel()

		property := newTestProperty("x", &fir.Const{
			Kind:  fir.ConstKindInt,
			Value: 1,
		})
		property.IsVar = true

		reference := &fir.Reference{Name: "x"}
		assignment := &fir.Assignment{
			Target: &fir.QualifiedAccess{
				Reference: reference,
			},
			Value: &fir.Const{
				Kind:  fir.ConstKindInt,
				Value: 2,
			},
		}

		resolver := newTestResolver()
		resolver.resolve(reference, lower.ResolvedProperty{Property: property})

		irFunction, lowerer := lowerFunctionBody(t, resolver, assignment)

		require.Len(t, irFunction.Body.Statements, 1)
		call, ok := irFunction.Body.Statements[0].(*ir.Call)
		require.True(t, ok)

		irProperty := lowerer.Store().GetOrCreateProperty(property, false)
		require.NotNil(t, irProperty.Setter)
		assert.Same(t, irProperty.Setter.Symbol, call.Callee)
		require.Len(t, call.Arguments, 1)
		assert.Same(t, ir.UnitType, call.Type)
	})

	t.Run("read-only property rejects assignment", func(t *testing.T) {
		t.Parallel()

		property := newTestProperty("x", &fir.Const{
			Kind:  fir.ConstKindInt,
			Value: 1,
		})

		reference := &fir.Reference{Name: "x"}
		assignment := &fir.Assignment{
			Target: &fir.QualifiedAccess{
				Reference: reference,
			},
			Value: &fir.Const{
				Kind:  fir.ConstKindInt,
				Value: 2,
			},
		}

		resolver := newTestResolver()
		resolver.resolve(reference, lower.ResolvedProperty{Property: property})

		function := newTestFunction("f")
		function.Body = &fir.Block{
			Expressions: []fir.Expression{assignment},
		}

		lowerer := lower.NewLowerer(resolver.config())
		require.Panics(t, func() {
			lowerer.LowerFile(newTestFile(function))
		})
	})
}

func TestLowerPropertyRead(t *testing.T) {

	t.Parallel()

	property := newTestProperty("x", &fir.Const{
		Kind:  fir.ConstKindInt,
		Value: 1,
	})

	reference := &fir.Reference{Name: "x"}
	access := &fir.QualifiedAccess{
		Reference: reference,
	}

	resolver := newTestResolver()
	resolver.resolve(reference, lower.ResolvedProperty{Property: property})

	irFunction, lowerer := lowerFunctionBody(t, resolver, access)

	require.Len(t, irFunction.Body.Statements, 1)
	call, ok := irFunction.Body.Statements[0].(*ir.Call)
	require.True(t, ok)

	irProperty := lowerer.Store().GetOrCreateProperty(property, false)
	assert.Same(t, irProperty.Getter.Symbol, call.Callee)
}

func TestLowerNonCallableInvocation(t *testing.T) {

	t.Parallel()

	t.Run("call to a property", func(t *testing.T) {
		t.Parallel()

		property := newTestProperty("x", nil)

		reference := &fir.Reference{Name: "x"}
		call := &fir.Call{Callee: reference}

		resolver := newTestResolver()
		resolver.resolve(reference, lower.ResolvedProperty{Property: property})

		irFunction, lowerer := lowerFunctionBody(t, resolver, call)

		placeholder, ok := irFunction.Body.Statements[0].(*ir.ErrorExpression)
		require.True(t, ok)
		assert.Equal(t, "unresolved reference `x`", placeholder.Description)

		diagnostics := lowerer.Diagnostics()
		require.Len(t, diagnostics, 1)
		assert.Equal(t, "cannot call property `x`", diagnostics[0].Message)
	})

	t.Run("call to a parameter", func(t *testing.T) {
		t.Parallel()

		parameter := newTestParameter("p")

		reference := &fir.Reference{Name: "p"}
		call := &fir.Call{Callee: reference}

		resolver := newTestResolver()
		resolver.resolve(reference, lower.ResolvedValue{Declaration: parameter})

		irFunction, lowerer := lowerFunctionBody(t, resolver, call)

		_, ok := irFunction.Body.Statements[0].(*ir.ErrorExpression)
		require.True(t, ok)

		diagnostics := lowerer.Diagnostics()
		require.Len(t, diagnostics, 1)
		assert.Equal(t, "cannot call parameter `p`", diagnostics[0].Message)
	})

	t.Run("function referenced outside a call", func(t *testing.T) {
		t.Parallel()

		function := newTestFunction("g")

		reference := &fir.Reference{Name: "g"}
		access := &fir.QualifiedAccess{Reference: reference}

		resolver := newTestResolver()
		resolver.resolve(reference, lower.ResolvedFunction{Function: function})

		irFunction, lowerer := lowerFunctionBody(t, resolver, access)

		placeholder, ok := irFunction.Body.Statements[0].(*ir.ErrorExpression)
		require.True(t, ok)
		assert.Equal(t, "unresolved reference `g`", placeholder.Description)

		diagnostics := lowerer.Diagnostics()
		require.Len(t, diagnostics, 1)
		assert.Equal(t, "cannot use function `g` as a value", diagnostics[0].Message)
	})
}

func TestLowerAnonymousObject(t *testing.T) {

	t.Parallel()

	objectClass := &fir.Class{
		QualifiedName: common.NewQualifiedName(testPackage, []string{"f"}, "<no name provided>"),
		Kind:          common.ClassKindObject,
		Visibility:    common.VisibilityLocal,
		Modality:      common.ModalityFinal,
	}

	irFunction, _ := lowerFunctionBody(t, newTestResolver(), &fir.AnonymousObject{
		Class: objectClass,
	})

	require.Len(t, irFunction.Body.Statements, 1)

	block, ok := irFunction.Body.Statements[0].(*ir.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)

	irClass, ok := block.Statements[0].(*ir.Class)
	require.True(t, ok)
	assert.Equal(t, ir.DeclarationOriginAnonymousObject, irClass.Origin())

	// No declared constructor, so one is synthesized to instantiate through
	constructor := irClass.PrimaryConstructor()
	require.NotNil(t, constructor)

	instantiation, ok := block.Statements[1].(*ir.ConstructorCall)
	require.True(t, ok)
	assert.Same(t, constructor.Symbol, instantiation.Callee)

	blockType, ok := block.Type.(*ir.ClassType)
	require.True(t, ok)
	assert.Same(t, irClass.Symbol, blockType.Symbol)
}

func TestLowerConst(t *testing.T) {

	t.Parallel()

	lowerConst := func(t *testing.T, kind fir.ConstKind, value any) *ir.Const {
		irFunction, _ := lowerFunctionBody(t, newTestResolver(), &fir.Const{
			Kind:  kind,
			Value: value,
		})

		result, ok := irFunction.Body.Statements[0].(*ir.Const)
		require.True(t, ok)
		return result
	}

	t.Run("null", func(t *testing.T) {
		t.Parallel()

		result := lowerConst(t, fir.ConstKindNull, nil)
		assert.Equal(t, ir.ConstKindNull, result.Kind)
		assert.True(t, result.Type.IsNullable())
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		result := lowerConst(t, fir.ConstKindString, "hello")
		assert.Equal(t, ir.ConstKindString, result.Kind)
		assert.Same(t, ir.StringType, result.Type)
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		lowerer := lower.NewLowerer(newTestResolver().config())
		assert.Panics(t, func() {
			lowerer.VisitConst(&fir.Const{
				Kind: fir.ConstKindUnknown,
			})
		})
	})
}

func TestLowerLoops(t *testing.T) {

	t.Parallel()

	condition := func() fir.Expression {
		return &fir.Const{
			Kind:  fir.ConstKindBoolean,
			Value: true,
		}
	}
	body := func() *fir.Block {
		return &fir.Block{
			Expressions: []fir.Expression{
				&fir.Const{Kind: fir.ConstKindInt, Value: 1},
			},
		}
	}

	t.Run("while", func(t *testing.T) {
		t.Parallel()

		irFunction, _ := lowerFunctionBody(t, newTestResolver(), &fir.While{
			Condition: condition(),
			Body:      body(),
		})

		loop, ok := irFunction.Body.Statements[0].(*ir.While)
		require.True(t, ok)
		assert.Same(t, ir.UnitType, loop.Type)
		require.Len(t, loop.Body.Statements, 1)
	})

	t.Run("do while", func(t *testing.T) {
		t.Parallel()

		irFunction, _ := lowerFunctionBody(t, newTestResolver(), &fir.DoWhile{
			Body:      body(),
			Condition: condition(),
		})

		loop, ok := irFunction.Body.Statements[0].(*ir.DoWhile)
		require.True(t, ok)
		assert.Same(t, ir.UnitType, loop.Type)
	})
}

func TestLowerTry(t *testing.T) {

	t.Parallel()

	try := &fir.Try{
		Body: &fir.Block{
			Expressions: []fir.Expression{
				&fir.Const{Kind: fir.ConstKindInt, Value: 1},
			},
		},
		Catches: []*fir.Catch{
			{
				Parameter: newTestParameter("e"),
				Body: &fir.Block{
					Expressions: []fir.Expression{
						&fir.Const{Kind: fir.ConstKindInt, Value: 2},
					},
				},
			},
		},
		Finally: &fir.Block{
			Expressions: []fir.Expression{
				&fir.Const{Kind: fir.ConstKindInt, Value: 3},
			},
		},
	}

	irFunction, _ := lowerFunctionBody(t, newTestResolver(), try)

	irTry, ok := irFunction.Body.Statements[0].(*ir.Try)
	require.True(t, ok)
	require.Len(t, irTry.Catches, 1)
	assert.Equal(t, "e", irTry.Catches[0].Parameter.Name)
	require.Len(t, irTry.Catches[0].Body.Statements, 1)
	require.NotNil(t, irTry.Finally)
	assert.Same(t, ir.UnitType, irTry.Finally.Type)
	require.Len(t, irTry.Finally.Statements, 1)
}

func TestLowerTryCatchParameterReference(t *testing.T) {

	t.Parallel()

	// try { 1 } catch (e) { e }

	parameter := newTestParameter("e")
	reference := &fir.Reference{Name: "e"}

	try := &fir.Try{
		Body: &fir.Block{
			Expressions: []fir.Expression{
				&fir.Const{Kind: fir.ConstKindInt, Value: 1},
			},
		},
		Catches: []*fir.Catch{
			{
				Parameter: parameter,
				Body: &fir.Block{
					Expressions: []fir.Expression{
						&fir.QualifiedAccess{Reference: reference},
					},
				},
			},
		},
	}

	resolver := newTestResolver()
	resolver.resolve(reference, lower.ResolvedValue{Declaration: parameter})

	irFunction, lowerer := lowerFunctionBody(t, resolver, try)

	irTry, ok := irFunction.Body.Statements[0].(*ir.Try)
	require.True(t, ok)
	require.Len(t, irTry.Catches, 1)

	catch := irTry.Catches[0]
	assert.NotNil(t, catch.Parameter.Parent())

	// The catch body reads the catch binding itself, not a second
	// counterpart of the same parameter.
	require.Len(t, catch.Body.Statements, 1)
	read, ok := catch.Body.Statements[0].(*ir.GetValue)
	require.True(t, ok)
	assert.Same(t, catch.Parameter.Symbol, read.Symbol)

	assert.Same(t,
		catch.Parameter,
		lowerer.Store().GetOrCreateValueParameter(parameter, 0),
	)
}

func TestLowerMemberPropertyAccessorReceiver(t *testing.T) {

	t.Parallel()

	class := newTestClass("C")
	property := newTestNestedProperty(class, "x", &fir.Const{
		Kind:  fir.ConstKindInt,
		Value: 1,
	})
	property.IsVar = true
	class.Declarations = []fir.Declaration{property}

	lowerer := lower.NewLowerer(newTestResolver().config())
	irFile := lowerer.LowerFile(newTestFile(class))

	irClass, ok := irFile.Declarations[0].(*ir.Class)
	require.True(t, ok)
	irProperty, ok := irClass.Declarations[0].(*ir.Property)
	require.True(t, ok)

	field := irProperty.BackingField
	require.NotNil(t, field)

	getter := irProperty.Getter
	require.NotNil(t, getter)

	getterReceiver := getter.DispatchReceiver
	require.NotNil(t, getterReceiver)
	assert.Equal(t, "this", getterReceiver.Name)
	assert.Equal(t, ir.DeclarationOriginThisReceiver, getterReceiver.Origin())

	receiverType, ok := getterReceiver.Type.(*ir.ClassType)
	require.True(t, ok)
	assert.Same(t, irClass.Symbol, receiverType.Symbol)

	// The default getter reads the field through the receiver
	require.NotNil(t, getter.Body)
	result, ok := getter.Body.Statements[0].(*ir.Return)
	require.True(t, ok)
	read, ok := result.Value.(*ir.GetField)
	require.True(t, ok)
	readReceiver, ok := read.Receiver.(*ir.GetValue)
	require.True(t, ok)
	assert.Same(t, getterReceiver.Symbol, readReceiver.Symbol)

	setter := irProperty.Setter
	require.NotNil(t, setter)
	require.NotNil(t, setter.DispatchReceiver)

	require.NotNil(t, setter.Body)
	write, ok := setter.Body.Statements[0].(*ir.SetField)
	require.True(t, ok)
	writeReceiver, ok := write.Receiver.(*ir.GetValue)
	require.True(t, ok)
	assert.Same(t, setter.DispatchReceiver.Symbol, writeReceiver.Symbol)
}

func TestLowerMemberFunctionReceiver(t *testing.T) {

	t.Parallel()

	class := newTestClass("C")
	member := newTestNestedFunction(class, "m")
	class.Declarations = []fir.Declaration{member}

	lowerer := lower.NewLowerer(newTestResolver().config())
	irFile := lowerer.LowerFile(newTestFile(class))

	irClass, ok := irFile.Declarations[0].(*ir.Class)
	require.True(t, ok)

	irMember, ok := irClass.Declarations[0].(*ir.Function)
	require.True(t, ok)

	receiver := irMember.DispatchReceiver
	require.NotNil(t, receiver)
	assert.Equal(t, "this", receiver.Name)
	assert.Equal(t, ir.UnknownParameterIndex, receiver.Index)
	assert.Equal(t, ir.DeclarationOriginThisReceiver, receiver.Origin())

	receiverType, ok := receiver.Type.(*ir.ClassType)
	require.True(t, ok)
	assert.Same(t, irClass.Symbol, receiverType.Symbol)
}

func TestLowerWhenSubjectReadOutsideWhen(t *testing.T) {

	t.Parallel()

	lowerer := lower.NewLowerer(newTestResolver().config())

	assert.Panics(t, func() {
		lowerer.VisitWhenSubjectExpression(&fir.WhenSubjectExpression{})
	})
}

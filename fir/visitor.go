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
	"github.com/cinderlang/cinder/errors"
)

// DeclarationVisitor has one case per declaration which may appear as a
// member of a file or class body. Parameters, accessors, and type
// parameters are structural children of their owner and are not
// dispatched through the visitor.
type DeclarationVisitor[T any] interface {
	VisitClass(declaration *Class) T
	VisitFunction(declaration *Function) T
	VisitConstructor(declaration *Constructor) T
	VisitProperty(declaration *Property) T
	VisitVariableDeclaration(declaration *Variable) T
}

func AcceptDeclaration[T any](declaration Declaration, visitor DeclarationVisitor[T]) T {
	switch declaration := declaration.(type) {
	case *Class:
		return visitor.VisitClass(declaration)
	case *Function:
		return visitor.VisitFunction(declaration)
	case *Constructor:
		return visitor.VisitConstructor(declaration)
	case *Property:
		return visitor.VisitProperty(declaration)
	case *Variable:
		return visitor.VisitVariableDeclaration(declaration)
	default:
		panic(errors.NewUnreachableError())
	}
}

type ExpressionVisitor[T any] interface {
	VisitBlock(expression *Block) T
	VisitCall(expression *Call) T
	VisitQualifiedAccess(expression *QualifiedAccess) T
	VisitAssignment(expression *Assignment) T
	VisitReturn(expression *Return) T
	VisitWhen(expression *When) T
	VisitWhenSubjectExpression(expression *WhenSubjectExpression) T
	VisitElseCondition(expression *ElseCondition) T
	VisitTry(expression *Try) T
	VisitWhile(expression *While) T
	VisitDoWhile(expression *DoWhile) T
	VisitBinaryOperation(expression *BinaryOperation) T
	VisitTypeOperation(expression *TypeOperation) T
	VisitConst(expression *Const) T
	VisitAnonymousObject(expression *AnonymousObject) T
	VisitLocalVariable(expression *Variable) T
}

func AcceptExpression[T any](expression Expression, visitor ExpressionVisitor[T]) T {
	switch expression := expression.(type) {
	case *Block:
		return visitor.VisitBlock(expression)
	case *Call:
		return visitor.VisitCall(expression)
	case *QualifiedAccess:
		return visitor.VisitQualifiedAccess(expression)
	case *Assignment:
		return visitor.VisitAssignment(expression)
	case *Return:
		return visitor.VisitReturn(expression)
	case *When:
		return visitor.VisitWhen(expression)
	case *WhenSubjectExpression:
		return visitor.VisitWhenSubjectExpression(expression)
	case *ElseCondition:
		return visitor.VisitElseCondition(expression)
	case *Try:
		return visitor.VisitTry(expression)
	case *While:
		return visitor.VisitWhile(expression)
	case *DoWhile:
		return visitor.VisitDoWhile(expression)
	case *BinaryOperation:
		return visitor.VisitBinaryOperation(expression)
	case *TypeOperation:
		return visitor.VisitTypeOperation(expression)
	case *Const:
		return visitor.VisitConst(expression)
	case *AnonymousObject:
		return visitor.VisitAnonymousObject(expression)
	case *Variable:
		return visitor.VisitLocalVariable(expression)
	default:
		panic(errors.NewUnreachableError())
	}
}

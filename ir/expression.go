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
	"github.com/turbolent/prettier"
)

// Statement is anything that may appear in a block:
// an expression, or a local declaration.
type Statement interface {
	isStatement()
}

type Expression interface {
	Statement
	isExpression()
	// StaticType is the expression's computed type.
	StaticType() Type
	Doc() prettier.Doc
}

type expressionBase struct {
	Coordinates
}

func (expressionBase) isStatement()  {}
func (expressionBase) isExpression() {}

// Block

type Block struct {
	expressionBase
	Statements []Statement
	Type       Type
}

var _ Expression = &Block{}

func (e *Block) StaticType() Type {
	return e.Type
}

// Call

// Call invokes a function through its symbol. Getter and setter
// invocations produced for property accesses are plain calls.
type Call struct {
	expressionBase
	Callee        *FunctionSymbol
	Receiver      Expression
	Arguments     []Expression
	TypeArguments []Type
	Type          Type
	Origin        StatementOrigin
}

var _ Expression = &Call{}

func (e *Call) StaticType() Type {
	return e.Type
}

// ConstructorCall

type ConstructorCall struct {
	expressionBase
	Callee    *ConstructorSymbol
	Arguments []Expression
	Type      Type
}

var _ Expression = &ConstructorCall{}

func (e *ConstructorCall) StaticType() Type {
	return e.Type
}

// GetValue

// GetValue reads a value parameter or local variable.
type GetValue struct {
	expressionBase
	Symbol ValueSymbol
	Type   Type
	Origin StatementOrigin
}

var _ Expression = &GetValue{}

func (e *GetValue) StaticType() Type {
	return e.Type
}

// SetValue

type SetValue struct {
	expressionBase
	Symbol ValueSymbol
	Value  Expression
	Type   Type
}

var _ Expression = &SetValue{}

func (e *SetValue) StaticType() Type {
	return e.Type
}

// GetField

type GetField struct {
	expressionBase
	Symbol   *FieldSymbol
	Receiver Expression
	Type     Type
}

var _ Expression = &GetField{}

func (e *GetField) StaticType() Type {
	return e.Type
}

// SetField

type SetField struct {
	expressionBase
	Symbol   *FieldSymbol
	Receiver Expression
	Value    Expression
	Type     Type
}

var _ Expression = &SetField{}

func (e *SetField) StaticType() Type {
	return e.Type
}

// When

// When is the lowered multi-branch conditional. Branch conditions are
// evaluated in order; an else branch has a constant true condition.
type When struct {
	expressionBase
	Branches []*Branch
	Type     Type
}

var _ Expression = &When{}

func (e *When) StaticType() Type {
	return e.Type
}

type Branch struct {
	Condition Expression
	Result    *Block
	Coordinates
}

// Try

type Try struct {
	expressionBase
	Body    *Block
	Catches []*Catch
	Finally *Block
	Type    Type
}

var _ Expression = &Try{}

func (e *Try) StaticType() Type {
	return e.Type
}

type Catch struct {
	Parameter *ValueParameter
	Body      *Block
	Coordinates
}

// Loops

type While struct {
	expressionBase
	Condition Expression
	Body      *Block
	Type      Type
}

var _ Expression = &While{}

func (e *While) StaticType() Type {
	return e.Type
}

type DoWhile struct {
	expressionBase
	Body      *Block
	Condition Expression
	Type      Type
}

var _ Expression = &DoWhile{}

func (e *DoWhile) StaticType() Type {
	return e.Type
}

// Return

type Return struct {
	expressionBase
	Target ReturnTargetSymbol
	// Value is the returned value, or nil.
	Value Expression
	Type  Type
}

var _ Expression = &Return{}

func (e *Return) StaticType() Type {
	return e.Type
}

// TypeOperator

type TypeOperatorKind int

const (
	TypeOperatorCast TypeOperatorKind = iota
	TypeOperatorSafeCast
	TypeOperatorInstanceOf
	TypeOperatorNotInstanceOf
)

func (k TypeOperatorKind) String() string {
	switch k {
	case TypeOperatorCast:
		return "as"
	case TypeOperatorSafeCast:
		return "as?"
	case TypeOperatorInstanceOf:
		return "is"
	case TypeOperatorNotInstanceOf:
		return "!is"
	}

	return "unknown"
}

type TypeOperator struct {
	expressionBase
	Operator TypeOperatorKind
	Argument Expression
	// TypeOperand is the type the operator tests or casts against.
	TypeOperand Type
	Type        Type
}

var _ Expression = &TypeOperator{}

func (e *TypeOperator) StaticType() Type {
	return e.Type
}

// Const

type ConstKind int

const (
	ConstKindNull ConstKind = iota
	ConstKindBoolean
	ConstKindInt
	ConstKindString
)

type Const struct {
	expressionBase
	Kind  ConstKind
	Value any
	Type  Type
}

var _ Expression = &Const{}

func (e *Const) StaticType() Type {
	return e.Type
}

// ErrorExpression

// ErrorExpression is the placeholder produced for unresolved user code.
// It is a first-class node, not a raised failure: lowering of the
// surrounding tree continues.
type ErrorExpression struct {
	expressionBase
	Description string
}

var _ Expression = &ErrorExpression{}

func (e *ErrorExpression) StaticType() Type {
	return ErrorType{}
}

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

// Expression is a resolved expression or statement.
// The source language is expression-oriented, so blocks, loops, and
// declarations in statement position all implement Expression.
type Expression interface {
	HasPosition
	isExpression()
}

// Reference

// Reference is a use-site mention of a name. What declaration the name
// denotes was determined during resolution; the lowering recovers it
// through the reference resolver collaborator.
type Reference struct {
	Name string
	Range
}

// Block

type Block struct {
	Expressions []Expression
	Range
}

var _ Expression = &Block{}

func (*Block) isExpression() {}

// IsEmpty returns true if the block holds no expressions at all.
// A nil block is empty.
func (b *Block) IsEmpty() bool {
	return b == nil || len(b.Expressions) == 0
}

// Call

type Call struct {
	// Callee names the invoked declaration.
	Callee *Reference
	// Receiver is the qualifier expression, or nil for unqualified calls.
	Receiver      Expression
	Arguments     []Expression
	TypeArguments []*TypeRef
	// Type is the resolved result type of the call.
	Type *TypeRef
	Range
}

var _ Expression = &Call{}

func (*Call) isExpression() {}

// QualifiedAccess

// QualifiedAccess is a non-call access to a named declaration,
// optionally qualified by a receiver expression.
type QualifiedAccess struct {
	Receiver  Expression
	Reference *Reference
	Type      *TypeRef
	Range
}

var _ Expression = &QualifiedAccess{}

func (*QualifiedAccess) isExpression() {}

// Assignment

type Assignment struct {
	Target *QualifiedAccess
	Value  Expression
	Range
}

var _ Expression = &Assignment{}

func (*Assignment) isExpression() {}

// Return

type Return struct {
	// Expression is the returned value, or nil.
	Expression Expression
	// TargetLabel names the lexical target function of a non-local return.
	// Empty for plain returns, which target the innermost function.
	TargetLabel string
	Range
}

var _ Expression = &Return{}

func (*Return) isExpression() {}

// When

// When is a multi-branch conditional. At most one of Subject and
// SubjectExpression is set: Subject introduces an explicit local binding
// (`when (val s = e) ...`), SubjectExpression is a plain subject
// expression that the lowering promotes to a synthesized temporary.
type When struct {
	Subject           *Variable
	SubjectExpression Expression
	Branches          []*WhenBranch
	Type              *TypeRef
	Range
}

var _ Expression = &When{}

func (*When) isExpression() {}

type WhenBranch struct {
	Condition Expression
	Result    *Block
	Range
}

// ElseCondition is the canonical always-true guard of an else branch.
type ElseCondition struct {
	Range
}

var _ Expression = &ElseCondition{}

func (*ElseCondition) isExpression() {}

// WhenSubjectExpression is the desugared placeholder which reads the
// subject of the innermost enclosing when.
type WhenSubjectExpression struct {
	Range
}

var _ Expression = &WhenSubjectExpression{}

func (*WhenSubjectExpression) isExpression() {}

// Try

type Try struct {
	Body    *Block
	Catches []*Catch
	Finally *Block
	Type    *TypeRef
	Range
}

var _ Expression = &Try{}

func (*Try) isExpression() {}

type Catch struct {
	Parameter *ValueParameter
	Body      *Block
	Range
}

// Loops

type While struct {
	Condition Expression
	Body      *Block
	Range
}

var _ Expression = &While{}

func (*While) isExpression() {}

type DoWhile struct {
	Body      *Block
	Condition Expression
	Range
}

var _ Expression = &DoWhile{}

func (*DoWhile) isExpression() {}

// Operators

type BinaryOperation struct {
	Operation Operation
	Left      Expression
	Right     Expression
	Range
}

var _ Expression = &BinaryOperation{}

func (*BinaryOperation) isExpression() {}

// TypeOperation is an is/!is/as/as? operation against a type operand.
type TypeOperation struct {
	Operation  Operation
	Expression Expression
	// Type is the type operand, not the result type.
	Type *TypeRef
	Range
}

var _ Expression = &TypeOperation{}

func (*TypeOperation) isExpression() {}

// Const

type ConstKind int

const (
	ConstKindUnknown ConstKind = iota
	ConstKindNull
	ConstKindBoolean
	ConstKindInt
	ConstKindString
)

type Const struct {
	Kind  ConstKind
	Value any
	Range
}

var _ Expression = &Const{}

func (*Const) isExpression() {}

// AnonymousObject

// AnonymousObject is an object literal. Class is the synthesized local
// class carrying the literal's members and supertypes.
type AnonymousObject struct {
	Class *Class
	Range
}

var _ Expression = &AnonymousObject{}

func (*AnonymousObject) isExpression() {}

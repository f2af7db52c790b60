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
	"fmt"
	"strings"

	"github.com/turbolent/prettier"
)

// The printer renders lowered trees back into a source-like dump,
// for debugging and for golden tests. Synthesized declarations render
// with their origin in brackets, so a dump tells apart what the user
// wrote from what the lowering introduced.

const prettierMaxLineWidth = 80

func Prettier(hasDoc interface{ Doc() prettier.Doc }) string {
	var b strings.Builder
	prettier.Prettier(&b, hasDoc.Doc(), prettierMaxLineWidth, "    ")
	return b.String()
}

// RenderFile renders a lowered file, one declaration per paragraph.
func RenderFile(file *File) string {
	var doc prettier.Concat

	if file.Package != "" {
		doc = append(
			doc,
			packageKeywordSpaceDoc,
			prettier.Text(file.Package.String()),
			prettier.HardLine{},
		)
	}

	for _, declaration := range file.Declarations {
		doc = append(
			doc,
			prettier.HardLine{},
			declarationDoc(declaration),
			prettier.HardLine{},
		)
	}

	var b strings.Builder
	prettier.Prettier(&b, doc, prettierMaxLineWidth, "    ")
	return b.String()
}

var (
	packageKeywordSpaceDoc = prettier.Text("package ")
	funKeywordSpaceDoc     = prettier.Text("fun ")
	valKeywordSpaceDoc     = prettier.Text("val ")
	varKeywordSpaceDoc     = prettier.Text("var ")
	fieldKeywordSpaceDoc   = prettier.Text("field ")
	constructorKeywordDoc  = prettier.Text("constructor")
	returnKeywordDoc       = prettier.Text("return")
	whenKeywordSpaceDoc    = prettier.Text("when ")
	tryKeywordSpaceDoc     = prettier.Text("try ")
	catchKeywordSpaceDoc   = prettier.Text("catch ")
	finallyKeywordSpaceDoc = prettier.Text("finally ")
	whileKeywordSpaceDoc   = prettier.Text("while ")
	doKeywordSpaceDoc      = prettier.Text("do ")

	blockStartDoc = prettier.Text("{")
	blockEndDoc   = prettier.Text("}")

	typeSeparatorSpaceDoc = prettier.Text(": ")
	arrowSpaceDoc         = prettier.Text(" -> ")
	assignmentSpaceDoc    = prettier.Text(" = ")

	parameterSeparatorDoc prettier.Doc = prettier.Concat{
		prettier.Text(","),
		prettier.Line{},
	}
)

func declarationDoc(declaration Declaration) prettier.Doc {
	if hasDoc, ok := declaration.(interface{ Doc() prettier.Doc }); ok {
		return hasDoc.Doc()
	}
	panic(fmt.Sprintf("no document for declaration kind %s", declaration.DeclarationKind()))
}

func statementDoc(statement Statement) prettier.Doc {
	switch statement := statement.(type) {
	case Declaration:
		return declarationDoc(statement)
	case Expression:
		return statement.Doc()
	}
	panic(fmt.Sprintf("no document for statement %T", statement))
}

// originSuffixDoc renders the origin marker of synthesized declarations.
// Declarations the user wrote render without one.
func originSuffixDoc(origin DeclarationOrigin) prettier.Doc {
	if origin == DeclarationOriginDefined {
		return nil
	}
	return prettier.Text(fmt.Sprintf(" /*%s*/", origin))
}

func appendNonNil(doc prettier.Concat, docs ...prettier.Doc) prettier.Concat {
	for _, d := range docs {
		if d == nil {
			continue
		}
		doc = append(doc, d)
	}
	return doc
}

func membersDoc(declarations []Declaration) prettier.Doc {
	if len(declarations) == 0 {
		return prettier.Concat{blockStartDoc, blockEndDoc}
	}

	var inner prettier.Concat
	for _, declaration := range declarations {
		inner = append(
			inner,
			prettier.HardLine{},
			declarationDoc(declaration),
		)
	}

	return prettier.Concat{
		blockStartDoc,
		prettier.Indent{Doc: inner},
		prettier.HardLine{},
		blockEndDoc,
	}
}

// Class

func (d *Class) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text(d.Visibility.Keyword()),
		prettier.Space,
		prettier.Text(d.Modality.Keyword()),
		prettier.Space,
		prettier.Text(d.Kind.Keyword()),
		prettier.Space,
		prettier.Text(d.Name),
	}

	if len(d.TypeParameters) > 0 {
		doc = append(doc, typeParametersDoc(d.TypeParameters))
	}

	if len(d.Supertypes) > 0 {
		doc = append(doc, typeSeparatorSpaceDoc)
		for i, supertype := range d.Supertypes {
			if i > 0 {
				doc = append(doc, prettier.Text(", "))
			}
			doc = append(doc, prettier.Text(supertype.String()))
		}
	}

	doc = appendNonNil(doc, originSuffixDoc(d.Origin()))

	return append(
		doc,
		prettier.Space,
		membersDoc(d.Declarations),
	)
}

func (d *Class) String() string {
	return Prettier(d)
}

func typeParametersDoc(typeParameters []*TypeParameter) prettier.Doc {
	doc := prettier.Concat{prettier.Text("<")}
	for i, typeParameter := range typeParameters {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, prettier.Text(typeParameter.Name))
	}
	return append(doc, prettier.Text(">"))
}

func parametersDoc(parameters []*ValueParameter) prettier.Doc {
	if len(parameters) == 0 {
		return prettier.Text("()")
	}

	var inner prettier.Concat
	for i, parameter := range parameters {
		if i > 0 {
			inner = append(inner, parameterSeparatorDoc)
		}
		parameterDoc := prettier.Concat{
			prettier.Text(parameter.Name),
			typeSeparatorSpaceDoc,
			prettier.Text(parameter.Type.String()),
		}
		if parameter.DefaultValue != nil {
			parameterDoc = append(
				parameterDoc,
				assignmentSpaceDoc,
				parameter.DefaultValue.Doc(),
			)
		}
		inner = append(inner, parameterDoc)
	}

	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Text("("),
			prettier.Indent{
				Doc: prettier.Concat{
					prettier.SoftLine{},
					inner,
				},
			},
			prettier.SoftLine{},
			prettier.Text(")"),
		},
	}
}

// Function

func (d *Function) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text(d.Visibility.Keyword()),
		prettier.Space,
		funKeywordSpaceDoc,
		prettier.Text(d.Name),
	}

	if len(d.TypeParameters) > 0 {
		doc = append(doc, typeParametersDoc(d.TypeParameters))
	}

	doc = append(
		doc,
		parametersDoc(d.ValueParameters),
		typeSeparatorSpaceDoc,
		prettier.Text(d.ReturnType.String()),
	)

	doc = appendNonNil(doc, originSuffixDoc(d.Origin()))

	if d.Body != nil {
		doc = append(doc, prettier.Space, d.Body.Doc())
	}

	return doc
}

func (d *Function) String() string {
	return Prettier(d)
}

// Constructor

func (d *Constructor) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text(d.Visibility.Keyword()),
		prettier.Space,
		constructorKeywordDoc,
		parametersDoc(d.ValueParameters),
	}

	if d.Body != nil {
		doc = append(doc, prettier.Space, d.Body.Doc())
	}

	return doc
}

func (d *Constructor) String() string {
	return Prettier(d)
}

// Property

func (d *Property) Doc() prettier.Doc {
	keywordDoc := valKeywordSpaceDoc
	if d.IsVar {
		keywordDoc = varKeywordSpaceDoc
	}

	doc := prettier.Concat{
		prettier.Text(d.Visibility.Keyword()),
		prettier.Space,
		keywordDoc,
		prettier.Text(d.Name),
	}

	var members []Declaration
	if d.BackingField != nil {
		members = append(members, d.BackingField)
	}
	if d.Getter != nil {
		members = append(members, d.Getter)
	}
	if d.Setter != nil {
		members = append(members, d.Setter)
	}

	return append(
		doc,
		prettier.Space,
		membersDoc(members),
	)
}

func (d *Property) String() string {
	return Prettier(d)
}

// Field

func (d *Field) Doc() prettier.Doc {
	doc := prettier.Concat{
		fieldKeywordSpaceDoc,
		prettier.Text(d.Name),
		typeSeparatorSpaceDoc,
		prettier.Text(d.Type.String()),
	}

	if d.Initializer != nil {
		doc = append(
			doc,
			assignmentSpaceDoc,
			d.Initializer.Doc(),
		)
	}

	return doc
}

func (d *Field) String() string {
	return Prettier(d)
}

// ValueParameter

func (d *ValueParameter) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(d.Name),
		typeSeparatorSpaceDoc,
		prettier.Text(d.Type.String()),
	}
}

// Variable

func (d *Variable) Doc() prettier.Doc {
	keywordDoc := valKeywordSpaceDoc
	if d.IsVar {
		keywordDoc = varKeywordSpaceDoc
	}

	doc := prettier.Concat{
		keywordDoc,
		prettier.Text(d.Name),
		typeSeparatorSpaceDoc,
		prettier.Text(d.Type.String()),
	}

	if d.Initializer != nil {
		doc = append(
			doc,
			assignmentSpaceDoc,
			d.Initializer.Doc(),
		)
	}

	return appendNonNil(doc, originSuffixDoc(d.Origin()))
}

func (d *Variable) String() string {
	return Prettier(d)
}

// TypeParameter

func (d *TypeParameter) Doc() prettier.Doc {
	return prettier.Text(d.Name)
}

// Expressions

func (e *Block) Doc() prettier.Doc {
	if len(e.Statements) == 0 {
		return prettier.Concat{blockStartDoc, blockEndDoc}
	}

	var inner prettier.Concat
	for _, statement := range e.Statements {
		inner = append(
			inner,
			prettier.HardLine{},
			statementDoc(statement),
		)
	}

	return prettier.Concat{
		blockStartDoc,
		prettier.Indent{Doc: inner},
		prettier.HardLine{},
		blockEndDoc,
	}
}

func symbolName(symbol interface{ IsBound() bool }) string {
	switch symbol := symbol.(type) {
	case *FunctionSymbol:
		if symbol.IsBound() {
			return symbol.Owner().Name
		}
	case *ConstructorSymbol:
		if symbol.IsBound() {
			if class, ok := symbol.Owner().Parent().(*Class); ok {
				return class.Name
			}
			return symbol.Owner().Name
		}
	case *FieldSymbol:
		if symbol.IsBound() {
			return symbol.Owner().Name
		}
	case ValueSymbol:
		if symbol.IsBound() {
			return symbol.ValueDeclarationName()
		}
	}
	return "<unbound>"
}

func argumentsDoc(arguments []Expression) prettier.Doc {
	doc := prettier.Concat{prettier.Text("(")}
	for i, argument := range arguments {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, argument.Doc())
	}
	return append(doc, prettier.Text(")"))
}

func (e *Call) Doc() prettier.Doc {
	var doc prettier.Concat

	if e.Receiver != nil {
		doc = append(doc, e.Receiver.Doc(), prettier.Text("."))
	}

	doc = append(doc, prettier.Text(symbolName(e.Callee)))

	if len(e.TypeArguments) > 0 {
		doc = append(doc, prettier.Text("<"))
		for i, typeArgument := range e.TypeArguments {
			if i > 0 {
				doc = append(doc, prettier.Text(", "))
			}
			doc = append(doc, prettier.Text(typeArgument.String()))
		}
		doc = append(doc, prettier.Text(">"))
	}

	return append(doc, argumentsDoc(e.Arguments))
}

func (e *ConstructorCall) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(symbolName(e.Callee)),
		argumentsDoc(e.Arguments),
	}
}

func (e *GetValue) Doc() prettier.Doc {
	return prettier.Text(symbolName(e.Symbol))
}

func (e *SetValue) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(symbolName(e.Symbol)),
		assignmentSpaceDoc,
		e.Value.Doc(),
	}
}

func (e *GetField) Doc() prettier.Doc {
	var doc prettier.Concat
	if e.Receiver != nil {
		doc = append(doc, e.Receiver.Doc(), prettier.Text("."))
	}
	return append(doc, prettier.Text("#"+symbolName(e.Symbol)))
}

func (e *SetField) Doc() prettier.Doc {
	var doc prettier.Concat
	if e.Receiver != nil {
		doc = append(doc, e.Receiver.Doc(), prettier.Text("."))
	}
	return append(
		doc,
		prettier.Text("#"+symbolName(e.Symbol)),
		assignmentSpaceDoc,
		e.Value.Doc(),
	)
}

func (e *When) Doc() prettier.Doc {
	var inner prettier.Concat
	for _, branch := range e.Branches {
		inner = append(
			inner,
			prettier.HardLine{},
			prettier.Concat{
				branch.Condition.Doc(),
				arrowSpaceDoc,
				branch.Result.Doc(),
			},
		)
	}

	return prettier.Concat{
		whenKeywordSpaceDoc,
		blockStartDoc,
		prettier.Indent{Doc: inner},
		prettier.HardLine{},
		blockEndDoc,
	}
}

func (e *Try) Doc() prettier.Doc {
	doc := prettier.Concat{
		tryKeywordSpaceDoc,
		e.Body.Doc(),
	}

	for _, catch := range e.Catches {
		doc = append(
			doc,
			prettier.Space,
			catchKeywordSpaceDoc,
			prettier.Text("("),
			catch.Parameter.Doc(),
			prettier.Text(") "),
			catch.Body.Doc(),
		)
	}

	if e.Finally != nil {
		doc = append(
			doc,
			prettier.Space,
			finallyKeywordSpaceDoc,
			e.Finally.Doc(),
		)
	}

	return doc
}

func (e *While) Doc() prettier.Doc {
	return prettier.Concat{
		whileKeywordSpaceDoc,
		prettier.Text("("),
		e.Condition.Doc(),
		prettier.Text(") "),
		e.Body.Doc(),
	}
}

func (e *DoWhile) Doc() prettier.Doc {
	return prettier.Concat{
		doKeywordSpaceDoc,
		e.Body.Doc(),
		prettier.Space,
		whileKeywordSpaceDoc,
		prettier.Text("("),
		e.Condition.Doc(),
		prettier.Text(")"),
	}
}

func (e *Return) Doc() prettier.Doc {
	doc := prettier.Concat{returnKeywordDoc}
	if e.Value != nil {
		doc = append(doc, prettier.Space, e.Value.Doc())
	}
	return doc
}

func (e *TypeOperator) Doc() prettier.Doc {
	return prettier.Concat{
		e.Argument.Doc(),
		prettier.Space,
		prettier.Text(e.Operator.String()),
		prettier.Space,
		prettier.Text(e.TypeOperand.String()),
	}
}

func (e *Const) Doc() prettier.Doc {
	switch e.Kind {
	case ConstKindNull:
		return prettier.Text("null")
	case ConstKindString:
		return prettier.Text(fmt.Sprintf("%q", e.Value))
	default:
		return prettier.Text(fmt.Sprintf("%v", e.Value))
	}
}

func (e *ErrorExpression) Doc() prettier.Doc {
	return prettier.Text(fmt.Sprintf("<error: %s>", e.Description))
}

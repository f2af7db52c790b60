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
	"time"

	"github.com/cinderlang/cinder/errors"
	"github.com/cinderlang/cinder/fir"
	"github.com/cinderlang/cinder/ir"
)

// Lowerer converts one resolved file into its lowered form. It walks the
// tree top-down, creating lowered counterparts through the declaration
// store, and desugaring the constructs the later pipeline does not want
// to see: property accessors, when subjects, fake overrides, operators.
//
// A Lowerer is single-use: one per file, one run each.
type Lowerer struct {
	config *Config
	store  *DeclarationStore

	fileName string

	parentStack      *Stack[ir.DeclarationParent]
	functionStack    *Stack[*functionContext]
	propertyStack    *Stack[*ir.Property]
	classStack       *Stack[*classContext]
	whenSubjectStack *Stack[*ir.Variable]

	diagnostics []Diagnostic
}

type functionContext struct {
	label  string
	target ir.ReturnTargetSymbol
}

type classContext struct {
	source  *fir.Class
	lowered *ir.Class
}

var _ fir.DeclarationVisitor[ir.Declaration] = &Lowerer{}
var _ fir.ExpressionVisitor[ir.Expression] = &Lowerer{}

func NewLowerer(config *Config) *Lowerer {
	return &Lowerer{
		config:           config,
		store:            NewDeclarationStore(config),
		parentStack:      &Stack[ir.DeclarationParent]{},
		functionStack:    &Stack[*functionContext]{},
		propertyStack:    &Stack[*ir.Property]{},
		classStack:       &Stack[*classContext]{},
		whenSubjectStack: &Stack[*ir.Variable]{},
	}
}

// Store returns the lowerer's declaration store.
func (l *Lowerer) Store() *DeclarationStore {
	return l.store
}

// Diagnostics returns the recoverable problems found so far,
// in discovery order.
func (l *Lowerer) Diagnostics() []Diagnostic {
	return l.diagnostics
}

func (l *Lowerer) FileName() string {
	return l.fileName
}

// LowerFile lowers one resolved file. Unresolved user code lowers to
// placeholder nodes and is reported through Diagnostics; broken lowering
// invariants panic.
func (l *Lowerer) LowerFile(file *fir.File) *ir.File {
	l.fileName = file.FileName

	tracer := l.config.Tracer
	if tracer.TracingEnabled {
		startTime := time.Now()
		defer func() {
			tracer.reportFileLoweringTrace(
				l,
				file.FileName,
				len(file.Declarations),
				time.Since(startTime),
			)
		}()
	}

	irFile := ir.NewFile(file.Package, file.FileName, coordinates(file))

	l.parentStack.push(irFile)
	defer l.parentStack.pop()

	for _, declaration := range file.Declarations {
		irFile.Declarations = append(
			irFile.Declarations,
			l.lowerDeclaration(declaration),
		)
	}

	return irFile
}

// lowerDeclaration dispatches a declaration and links it into the
// innermost open container.
func (l *Lowerer) lowerDeclaration(declaration fir.Declaration) ir.Declaration {
	tracer := l.config.Tracer
	if tracer.TracingEnabled {
		startTime := time.Now()
		defer func() {
			tracer.reportDeclarationLoweringTrace(
				l,
				declaration.DeclarationKind().Name(),
				declaration.DeclarationName(),
				time.Since(startTime),
			)
		}()
	}

	irDeclaration := fir.AcceptDeclaration[ir.Declaration](declaration, l)
	if irDeclaration.Parent() == nil {
		irDeclaration.SetParent(l.parentStack.top())
	}
	return irDeclaration
}

// lowerStatement lowers one block element. Local variable declarations
// are statements, everything else is an expression.
func (l *Lowerer) lowerStatement(expression fir.Expression) ir.Statement {
	if variable, ok := expression.(*fir.Variable); ok {
		return l.lowerDeclaration(variable)
	}
	return l.lowerExpression(expression)
}

func (l *Lowerer) lowerExpression(expression fir.Expression) ir.Expression {
	return fir.AcceptExpression[ir.Expression](expression, l)
}

// lowerBlock lowers a block. The block's type is dictated by context:
// the enclosing construct knows what the block produces.
func (l *Lowerer) lowerBlock(block *fir.Block, blockType ir.Type) *ir.Block {
	irBlock := &ir.Block{
		Type: blockType,
	}
	irBlock.Coordinates = coordinates(block)

	for _, expression := range block.Expressions {
		irBlock.Statements = append(
			irBlock.Statements,
			l.lowerStatement(expression),
		)
	}

	return irBlock
}

// useSiteScope returns the use-site scope of a class.
func (l *Lowerer) useSiteScope(class *fir.Class) UseSiteScope {
	if l.config.UseSiteScopeProvider != nil {
		return l.config.UseSiteScopeProvider(class)
	}
	return newSupertypeScope(class)
}

// currentReturnTarget returns the function context a return expression
// targets: the innermost context whose label matches, or the innermost
// context for a plain return.
func (l *Lowerer) currentReturnTarget(targetLabel string) *functionContext {
	if l.functionStack.isEmpty() {
		panic(errors.NewUnexpectedError("return outside of a function"))
	}

	contexts := l.functionStack.elements
	if targetLabel != "" {
		for index := len(contexts) - 1; index >= 0; index-- {
			if contexts[index].label == targetLabel {
				return contexts[index]
			}
		}
	}

	return l.functionStack.top()
}

// reportUnresolved records a diagnostic for an unresolved reference and
// produces its placeholder node. Lowering continues.
func (l *Lowerer) reportUnresolved(name string, position fir.Range) *ir.ErrorExpression {
	var candidates []string
	if !l.classStack.isEmpty() {
		context := l.classStack.top()
		for _, declaration := range context.source.Declarations {
			candidates = append(candidates, declaration.DeclarationName())
		}
		candidates = append(candidates, l.useSiteScope(context.source).MemberNames()...)
	}

	l.diagnostics = append(
		l.diagnostics,
		Diagnostic{
			Message:    fmt.Sprintf("cannot find `%s` in this scope", name),
			Suggestion: findClosestName(name, candidates),
			Range:      position,
		},
	)

	expression := &ir.ErrorExpression{
		Description: fmt.Sprintf("unresolved reference `%s`", name),
	}
	expression.Coordinates = coordinates(position)
	return expression
}

// reportUnsupportedUse records a diagnostic for a reference whose
// resolved declaration cannot serve the use site, and produces the same
// placeholder node an unresolved reference gets. Lowering continues.
func (l *Lowerer) reportUnsupportedUse(
	message string,
	name string,
	position fir.Range,
) *ir.ErrorExpression {
	l.diagnostics = append(
		l.diagnostics,
		Diagnostic{
			Message: message,
			Range:   position,
		},
	)

	expression := &ir.ErrorExpression{
		Description: fmt.Sprintf("unresolved reference `%s`", name),
	}
	expression.Coordinates = coordinates(position)
	return expression
}

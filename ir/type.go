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
	"strings"
)

type Type interface {
	isType()
	IsNullable() bool
	// WithNullability returns this type with the given nullability,
	// or the receiver itself if the nullability already matches.
	WithNullability(nullable bool) Type
	String() string
}

// ClassType

type ClassType struct {
	Symbol    *ClassSymbol
	Nullable  bool
	Arguments []Type
}

var _ Type = &ClassType{}

func NewClassType(symbol *ClassSymbol, nullable bool, arguments []Type) *ClassType {
	return &ClassType{
		Symbol:    symbol,
		Nullable:  nullable,
		Arguments: arguments,
	}
}

func (*ClassType) isType() {}

func (t *ClassType) IsNullable() bool {
	return t.Nullable
}

func (t *ClassType) WithNullability(nullable bool) Type {
	if t.Nullable == nullable {
		return t
	}
	return &ClassType{
		Symbol:    t.Symbol,
		Nullable:  nullable,
		Arguments: t.Arguments,
	}
}

func (t *ClassType) String() string {
	var sb strings.Builder
	if t.Symbol.IsBound() {
		sb.WriteString(t.Symbol.Owner().Name)
	} else {
		sb.WriteString("<unbound class>")
	}
	if len(t.Arguments) > 0 {
		sb.WriteByte('<')
		for i, argument := range t.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(argument.String())
		}
		sb.WriteByte('>')
	}
	if t.Nullable {
		sb.WriteByte('?')
	}
	return sb.String()
}

// TypeParameterType

type TypeParameterType struct {
	Symbol   *TypeParameterSymbol
	Nullable bool
}

var _ Type = &TypeParameterType{}

func NewTypeParameterType(symbol *TypeParameterSymbol, nullable bool) *TypeParameterType {
	return &TypeParameterType{
		Symbol:   symbol,
		Nullable: nullable,
	}
}

func (*TypeParameterType) isType() {}

func (t *TypeParameterType) IsNullable() bool {
	return t.Nullable
}

func (t *TypeParameterType) WithNullability(nullable bool) Type {
	if t.Nullable == nullable {
		return t
	}
	return &TypeParameterType{
		Symbol:   t.Symbol,
		Nullable: nullable,
	}
}

func (t *TypeParameterType) String() string {
	var name string
	if t.Symbol.IsBound() {
		name = t.Symbol.Owner().Name
	} else {
		name = "<unbound type parameter>"
	}
	if t.Nullable {
		return name + "?"
	}
	return name
}

// ErrorType

// ErrorType is the type of placeholder expressions produced for
// unresolved user code. It deliberately compares like any other type,
// so lowering of the surrounding tree continues.
type ErrorType struct{}

var _ Type = ErrorType{}

func (ErrorType) isType() {}

func (ErrorType) IsNullable() bool {
	return false
}

func (t ErrorType) WithNullability(nullable bool) Type {
	return t
}

func (ErrorType) String() string {
	return "<error>"
}

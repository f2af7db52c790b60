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

type Operation int

const (
	OperationUnknown Operation = iota
	OperationEqual
	OperationNotEqual
	OperationIdentity
	OperationNotIdentity
	OperationLess
	OperationLessEqual
	OperationGreater
	OperationGreaterEqual
	OperationPlus
	OperationMinus
	OperationMul
	OperationDiv
	OperationMod
	OperationAnd
	OperationOr
	OperationIs
	OperationNotIs
	OperationCast
	OperationSafeCast
)

func (op Operation) Symbol() string {
	switch op {
	case OperationEqual:
		return "=="
	case OperationNotEqual:
		return "!="
	case OperationIdentity:
		return "==="
	case OperationNotIdentity:
		return "!=="
	case OperationLess:
		return "<"
	case OperationLessEqual:
		return "<="
	case OperationGreater:
		return ">"
	case OperationGreaterEqual:
		return ">="
	case OperationPlus:
		return "+"
	case OperationMinus:
		return "-"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	case OperationMod:
		return "%"
	case OperationAnd:
		return "&&"
	case OperationOr:
		return "||"
	case OperationIs:
		return "is"
	case OperationNotIs:
		return "!is"
	case OperationCast:
		return "as"
	case OperationSafeCast:
		return "as?"
	}

	return "unknown"
}

func (op Operation) String() string {
	return op.Symbol()
}

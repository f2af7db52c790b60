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

package common

type ClassKind int

const (
	ClassKindUnknown ClassKind = iota
	ClassKindClass
	ClassKindInterface
	ClassKindEnumClass
	ClassKindObject
	ClassKindAnnotationClass
)

func (k ClassKind) Keyword() string {
	switch k {
	case ClassKindClass:
		return "class"
	case ClassKindInterface:
		return "interface"
	case ClassKindEnumClass:
		return "enum class"
	case ClassKindObject:
		return "object"
	case ClassKindAnnotationClass:
		return "annotation class"
	}

	return "unknown"
}

func (k ClassKind) String() string {
	return k.Keyword()
}

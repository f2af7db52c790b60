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

type Variance int

const (
	VarianceInvariant Variance = iota
	VarianceCovariant
	VarianceContravariant
)

func (v Variance) Keyword() string {
	switch v {
	case VarianceInvariant:
		return ""
	case VarianceCovariant:
		return "out"
	case VarianceContravariant:
		return "in"
	}

	return "unknown"
}

func (v Variance) String() string {
	return v.Keyword()
}

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

type Modality int

const (
	ModalityUnknown Modality = iota
	ModalityFinal
	ModalityOpen
	ModalityAbstract
)

func (m Modality) Keyword() string {
	switch m {
	case ModalityFinal:
		return "final"
	case ModalityOpen:
		return "open"
	case ModalityAbstract:
		return "abstract"
	}

	return "unknown"
}

func (m Modality) String() string {
	return m.Keyword()
}

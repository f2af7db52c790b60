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

import "fmt"

// Position defines a source position: the byte offset from the beginning
// of the file, plus 1-based line and 0-based column.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (position Position) String() string {
	return fmt.Sprintf("%d:%d", position.Line, position.Column)
}

var EmptyPosition = Position{}

// Range covers a source span, inclusive on both ends.
type Range struct {
	StartPos Position
	EndPos   Position
}

var EmptyRange = Range{}

func NewRange(startPos, endPos Position) Range {
	return Range{
		StartPos: startPos,
		EndPos:   endPos,
	}
}

func (r Range) StartPosition() Position {
	return r.StartPos
}

func (r Range) EndPosition() Position {
	return r.EndPos
}

// HasPosition is implemented by all resolved-tree nodes:
// every node carries the source span it originates from,
// which the lowering stamps onto the produced node.
type HasPosition interface {
	StartPosition() Position
	EndPosition() Position
}

var _ HasPosition = Range{}

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

// Package pretty renders lowering diagnostics in a rustc-style excerpt
// format:
//
//	error: cannot find `foo` in this scope
//	 --> file.cnd:3:4
//	  |
//	3 |     foo()
//	  |     ^^^
//	  = did you mean `for`?
package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"

	"github.com/cinderlang/cinder/lower"
)

const (
	errorPrefix   = "error"
	excerptArrow  = "--> "
	noteSeparator = "= "
)

func colorizeError(message string) string {
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}

func colorizeMessage(message string) string {
	return aurora.Colorize(message, aurora.BoldFm).String()
}

func colorizeMeta(meta string) string {
	return aurora.Colorize(meta, aurora.CyanFg|aurora.BoldFm).String()
}

type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) writeString(str string) error {
	_, err := p.writer.Write([]byte(str))
	return err
}

// PrettyPrintDiagnostic writes one diagnostic, with an excerpt of the
// offending code when the diagnostic's position lies inside it.
func (p ErrorPrettyPrinter) PrettyPrintDiagnostic(
	diagnostic lower.Diagnostic,
	fileName string,
	code string,
) error {
	err := p.writeMessage(diagnostic.Message)
	if err != nil {
		return err
	}

	startPos := diagnostic.StartPosition()

	locationLine := fmt.Sprintf(
		" %s%s:%d:%d\n",
		excerptArrow,
		fileName,
		startPos.Line,
		startPos.Column,
	)
	if p.useColor {
		locationLine = colorizeMeta(locationLine)
	}
	err = p.writeString(locationLine)
	if err != nil {
		return err
	}

	err = p.writeExcerpt(diagnostic, code)
	if err != nil {
		return err
	}

	if suggestion := diagnostic.SecondaryError(); suggestion != "" {
		note := fmt.Sprintf("  %s%s\n", noteSeparator, suggestion)
		if p.useColor {
			note = colorizeMeta(note)
		}
		err = p.writeString(note)
		if err != nil {
			return err
		}
	}

	return nil
}

func (p ErrorPrettyPrinter) writeMessage(message string) error {
	prefix := errorPrefix
	if p.useColor {
		prefix = colorizeError(prefix)
		message = colorizeMessage(message)
	}
	return p.writeString(fmt.Sprintf("%s: %s\n", prefix, message))
}

func (p ErrorPrettyPrinter) writeExcerpt(
	diagnostic lower.Diagnostic,
	code string,
) error {
	startPos := diagnostic.StartPosition()
	endPos := diagnostic.EndPosition()

	lines := strings.Split(code, "\n")
	if startPos.Line < 1 || startPos.Line > len(lines) {
		return nil
	}
	line := lines[startPos.Line-1]

	lineNumber := strconv.Itoa(startPos.Line)
	gutter := strings.Repeat(" ", len(lineNumber))

	err := p.writeString(fmt.Sprintf("%s |\n", gutter))
	if err != nil {
		return err
	}

	err = p.writeString(fmt.Sprintf("%s | %s\n", lineNumber, line))
	if err != nil {
		return err
	}

	// Keep tabs as tabs in the padding, so the indicator lines up with
	// the excerpt regardless of how wide the terminal renders them.
	var padding strings.Builder
	for i := 0; i < startPos.Column && i < len(line); i++ {
		if line[i] == '\t' {
			padding.WriteByte('\t')
		} else {
			padding.WriteByte(' ')
		}
	}

	width := 1
	if endPos.Line == startPos.Line && endPos.Column >= startPos.Column {
		width = endPos.Column - startPos.Column + 1
	}

	indicator := strings.Repeat("^", width)
	if p.useColor {
		indicator = colorizeError(indicator)
	}

	return p.writeString(fmt.Sprintf("%s | %s%s\n", gutter, padding.String(), indicator))
}

// PrettyPrintDiagnostics writes all given diagnostics, blank-line
// separated.
func (p ErrorPrettyPrinter) PrettyPrintDiagnostics(
	diagnostics []lower.Diagnostic,
	fileName string,
	code string,
) error {
	for i, diagnostic := range diagnostics {
		if i > 0 {
			err := p.writeString("\n")
			if err != nil {
				return err
			}
		}
		err := p.PrettyPrintDiagnostic(diagnostic, fileName, code)
		if err != nil {
			return err
		}
	}
	return nil
}

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

package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/cinderlang/cinder/fir"
	"github.com/cinderlang/cinder/lower"
	"github.com/cinderlang/cinder/pretty"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newDiagnostic(message, suggestion string, startLine, startColumn, endLine, endColumn int) lower.Diagnostic {
	return lower.Diagnostic{
		Message:    message,
		Suggestion: suggestion,
		Range: fir.Range{
			StartPos: fir.Position{Line: startLine, Column: startColumn},
			EndPos:   fir.Position{Line: endLine, Column: endColumn},
		},
	}
}

func TestPrettyPrintDiagnostic(t *testing.T) {

	t.Parallel()

	var sb strings.Builder
	printer := pretty.NewErrorPrettyPrinter(&sb, false)

	diagnostic := newDiagnostic(
		"cannot find `foo` in this scope",
		"for",
		1, 8,
		1, 10,
	)

	err := printer.PrettyPrintDiagnostic(diagnostic, "test.cnd", "val x = foo")
	require.NoError(t, err)

	assert.Equal(t,
		"error: cannot find `foo` in this scope\n"+
			" --> test.cnd:1:8\n"+
			"  |\n"+
			"1 | val x = foo\n"+
			"  |         ^^^\n"+
			"  = did you mean `for`?\n",
		sb.String(),
	)
}

func TestPrettyPrintDiagnosticWithoutSuggestion(t *testing.T) {

	t.Parallel()

	var sb strings.Builder
	printer := pretty.NewErrorPrettyPrinter(&sb, false)

	diagnostic := newDiagnostic(
		"cannot find `foo` in this scope",
		"",
		1, 0,
		1, 2,
	)

	err := printer.PrettyPrintDiagnostic(diagnostic, "test.cnd", "foo")
	require.NoError(t, err)

	assert.Equal(t,
		"error: cannot find `foo` in this scope\n"+
			" --> test.cnd:1:0\n"+
			"  |\n"+
			"1 | foo\n"+
			"  | ^^^\n",
		sb.String(),
	)
}

func TestPrettyPrintDiagnosticPreservesTabs(t *testing.T) {

	t.Parallel()

	var sb strings.Builder
	printer := pretty.NewErrorPrettyPrinter(&sb, false)

	diagnostic := newDiagnostic(
		"cannot find `foo` in this scope",
		"",
		1, 1,
		1, 3,
	)

	err := printer.PrettyPrintDiagnostic(diagnostic, "test.cnd", "\tfoo()")
	require.NoError(t, err)

	assert.Equal(t,
		"error: cannot find `foo` in this scope\n"+
			" --> test.cnd:1:1\n"+
			"  |\n"+
			"1 | \tfoo()\n"+
			"  | \t^^^\n",
		sb.String(),
	)
}

func TestPrettyPrintDiagnosticOutOfRangeLine(t *testing.T) {

	t.Parallel()

	var sb strings.Builder
	printer := pretty.NewErrorPrettyPrinter(&sb, false)

	diagnostic := newDiagnostic(
		"cannot find `foo` in this scope",
		"",
		99, 0,
		99, 2,
	)

	err := printer.PrettyPrintDiagnostic(diagnostic, "test.cnd", "val x = 1")
	require.NoError(t, err)

	// No excerpt when the position lies outside the code
	assert.Equal(t,
		"error: cannot find `foo` in this scope\n"+
			" --> test.cnd:99:0\n",
		sb.String(),
	)
}

func TestPrettyPrintDiagnostics(t *testing.T) {

	t.Parallel()

	var sb strings.Builder
	printer := pretty.NewErrorPrettyPrinter(&sb, false)

	code := "foo\nbar"

	diagnostics := []lower.Diagnostic{
		newDiagnostic("cannot find `foo` in this scope", "", 1, 0, 1, 2),
		newDiagnostic("cannot find `bar` in this scope", "", 2, 0, 2, 2),
	}

	err := printer.PrettyPrintDiagnostics(diagnostics, "test.cnd", code)
	require.NoError(t, err)

	assert.Equal(t,
		"error: cannot find `foo` in this scope\n"+
			" --> test.cnd:1:0\n"+
			"  |\n"+
			"1 | foo\n"+
			"  | ^^^\n"+
			"\n"+
			"error: cannot find `bar` in this scope\n"+
			" --> test.cnd:2:0\n"+
			"  |\n"+
			"2 | bar\n"+
			"  | ^^^\n",
		sb.String(),
	)
}

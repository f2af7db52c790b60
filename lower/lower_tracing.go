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
	"time"

	"go.opentelemetry.io/otel/attribute"
)

const (
	// prefixes
	tracingFilePrefix        = "file."
	tracingDeclarationPrefix = "declaration."

	// operation postfixes
	tracingLowerPostfix         = "lower"
	tracingFakeOverridesPostfix = "fakeOverrides"
)

// OnRecordTraceFunc is a function that records a trace.
type OnRecordTraceFunc func(
	lowerer Traceable,
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

type Traceable interface {
	FileName() string
}

var _ Traceable = &Lowerer{}

type Tracer struct {
	// OnRecordTrace is triggered when a trace is recorded
	OnRecordTrace OnRecordTraceFunc
	// TracingEnabled determines if tracing is enabled.
	// Tracing reports certain operations, e.g. file and declaration lowering
	TracingEnabled bool
}

func (tracer Tracer) reportFileLoweringTrace(
	lowerer Traceable,
	fileName string,
	declarationCount int,
	duration time.Duration,
) {
	tracer.OnRecordTrace(lowerer,
		tracingFilePrefix+tracingLowerPostfix,
		duration,
		[]attribute.KeyValue{
			attribute.String("file", fileName),
			attribute.Int("declarations", declarationCount),
		},
	)
}

func (tracer Tracer) reportDeclarationLoweringTrace(
	lowerer Traceable,
	kind string,
	name string,
	duration time.Duration,
) {
	tracer.OnRecordTrace(lowerer,
		tracingDeclarationPrefix+tracingLowerPostfix,
		duration,
		[]attribute.KeyValue{
			attribute.String("kind", kind),
			attribute.String("name", name),
		},
	)
}

func (tracer Tracer) reportFakeOverridesTrace(
	lowerer Traceable,
	className string,
	count int,
	duration time.Duration,
) {
	tracer.OnRecordTrace(lowerer,
		tracingDeclarationPrefix+tracingFakeOverridesPostfix,
		duration,
		[]attribute.KeyValue{
			attribute.String("class", className),
			attribute.Int("count", count),
		},
	)
}

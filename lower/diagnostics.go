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
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/cinderlang/cinder/fir"
)

// Diagnostic describes a recoverable problem found during lowering.
// Diagnostics never stop a lowering run: the offending expression lowers
// to a placeholder node and lowering continues.
type Diagnostic struct {
	Message    string
	Suggestion string
	fir.Range
}

func (d Diagnostic) SecondaryError() string {
	if d.Suggestion != "" {
		return fmt.Sprintf("did you mean `%s`?", d.Suggestion)
	}
	return ""
}

// findClosestName searches the given candidate names and finds the name
// with the smallest edit distance from the name the user wrote.
// In cases of typos, this should provide a helpful hint.
func findClosestName(name string, candidates []string) (closestName string) {
	nameRunes := []rune(name)

	closestDistance := len(name)

	sortedCandidates := make([]string, len(candidates))
	copy(sortedCandidates, candidates)
	sort.Strings(sortedCandidates)

	for _, candidate := range sortedCandidates {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		// Don't update the closest name if the distance is greater than one already found,
		// or if the edits required would involve a complete replacement of the candidate's text
		if distance < closestDistance && distance < len(candidate) {
			closestName = candidate
			closestDistance = distance
		}
	}

	return
}

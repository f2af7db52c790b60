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
	"github.com/cinderlang/cinder/common"
	"github.com/cinderlang/cinder/fir"
	"github.com/cinderlang/cinder/ir"
)

// ResolvedSymbol is the result of resolving a use-site reference.
// A nil ResolvedSymbol means the reference did not resolve,
// which lowers to a placeholder node rather than a failure.
type ResolvedSymbol interface {
	isResolvedSymbol()
}

type ResolvedFunction struct {
	Function *fir.Function
}

type ResolvedConstructor struct {
	Constructor *fir.Constructor
}

type ResolvedProperty struct {
	Property *fir.Property
}

// ResolvedValue resolves to a value parameter or a local variable.
type ResolvedValue struct {
	Declaration fir.Declaration
}

func (ResolvedFunction) isResolvedSymbol()    {}
func (ResolvedConstructor) isResolvedSymbol() {}
func (ResolvedProperty) isResolvedSymbol()    {}
func (ResolvedValue) isResolvedSymbol()       {}

// UseSiteScope enumerates the inheritable members a class sees at a use
// site: member functions and properties of its supertype closure.
type UseSiteScope interface {
	// MemberNames returns the distinct names of all inherited members,
	// in supertype declaration order.
	MemberNames() []string
	// MembersNamed returns the candidates for the given name,
	// in supertype declaration order.
	MembersNamed(name string) []fir.Declaration
}

// Config defines all the handlers needed for lowering a resolved tree.
type Config struct {
	// DeclarationProvider returns the resolved declaration
	// a qualified identity denotes, or nil if it is unknown.
	DeclarationProvider func(name common.QualifiedName) fir.Declaration
	// ReferenceResolver returns the resolved symbol a use-site
	// reference denotes, or nil if the reference is unresolved.
	ReferenceResolver func(reference *fir.Reference) ResolvedSymbol
	// TypeConverter converts a resolved type reference.
	// If nil, DefaultTypeConverter is used.
	TypeConverter func(typeRef *fir.TypeRef, store *DeclarationStore) ir.Type
	// UseSiteScopeProvider returns the use-site scope of a class.
	// If nil, a scope walking the direct supertypes is used.
	UseSiteScopeProvider func(class *fir.Class) UseSiteScope
	// OnRecordTrace is called when tracing is enabled
	// and a traced operation finishes.
	Tracer Tracer
}

// supertypeScope is the default use-site scope: it enumerates members
// declared in the class's supertype closure, breadth-first, each class
// visited once.
type supertypeScope struct {
	class *fir.Class
}

var _ UseSiteScope = supertypeScope{}

func newSupertypeScope(class *fir.Class) UseSiteScope {
	return supertypeScope{class: class}
}

func (s supertypeScope) MemberNames() []string {
	var names []string
	seen := make(map[string]struct{})

	s.walk(func(declaration fir.Declaration) {
		name := declaration.DeclarationName()
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	})

	return names
}

func (s supertypeScope) MembersNamed(name string) []fir.Declaration {
	var candidates []fir.Declaration

	s.walk(func(declaration fir.Declaration) {
		if declaration.DeclarationName() == name {
			candidates = append(candidates, declaration)
		}
	})

	return candidates
}

// walk visits the inherited members of the class's supertype closure,
// breadth-first, each class once, in declaration order.
func (s supertypeScope) walk(visit func(declaration fir.Declaration)) {
	visited := map[*fir.Class]struct{}{
		s.class: {},
	}
	worklist := supertypeClasses(s.class)

	for len(worklist) > 0 {
		class := worklist[0]
		worklist = worklist[1:]

		if _, ok := visited[class]; ok {
			continue
		}
		visited[class] = struct{}{}

		for _, declaration := range class.Declarations {
			switch declaration.DeclarationKind() {
			case common.DeclarationKindFunction,
				common.DeclarationKindProperty:

				visit(declaration)
			}
		}

		worklist = append(worklist, supertypeClasses(class)...)
	}
}

func supertypeClasses(class *fir.Class) []*fir.Class {
	var classes []*fir.Class
	for _, supertype := range class.Supertypes {
		expanded := supertype.Expanded()
		if expanded == nil || expanded.Class == nil {
			continue
		}
		classes = append(classes, expanded.Class)
	}
	return classes
}

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

import (
	"strings"
)

// PackageName is a dot-separated package name, e.g. "collections.internal".
// The empty string is the root package.
type PackageName string

func (n PackageName) String() string {
	return string(n)
}

// QualifiedName is the stable identity of a declaration:
// the containing package, the names of the enclosing classes
// (outermost first), and the declaration's own name.
//
// QualifiedName is a value type and usable as a map key.
type QualifiedName struct {
	Package PackageName
	// ClassPath is the dot-joined names of the enclosing classes,
	// outermost first. Empty for top-level declarations.
	ClassPath string
	Name      string
}

func NewQualifiedName(pkg PackageName, classPath []string, name string) QualifiedName {
	return QualifiedName{
		Package:   pkg,
		ClassPath: strings.Join(classPath, "."),
		Name:      name,
	}
}

func (q QualifiedName) IsTopLevel() bool {
	return q.ClassPath == ""
}

// EnclosingClass decomposes the qualified name into the qualified name of
// the innermost enclosing class. The second return value reports whether
// such a class exists, i.e. whether the declaration is nested.
func (q QualifiedName) EnclosingClass() (QualifiedName, bool) {
	if q.IsTopLevel() {
		return QualifiedName{}, false
	}

	path := q.ClassPath
	name := path
	var rest string
	if index := strings.LastIndexByte(path, '.'); index >= 0 {
		rest = path[:index]
		name = path[index+1:]
	}

	return QualifiedName{
		Package:   q.Package,
		ClassPath: rest,
		Name:      name,
	}, true
}

// Child returns the qualified name of a member declared inside this
// class-like declaration.
func (q QualifiedName) Child(name string) QualifiedName {
	classPath := q.Name
	if q.ClassPath != "" {
		classPath = q.ClassPath + "." + q.Name
	}

	return QualifiedName{
		Package:   q.Package,
		ClassPath: classPath,
		Name:      name,
	}
}

func (q QualifiedName) String() string {
	var sb strings.Builder
	if q.Package != "" {
		sb.WriteString(string(q.Package))
		sb.WriteByte('.')
	}
	if q.ClassPath != "" {
		sb.WriteString(q.ClassPath)
		sb.WriteByte('.')
	}
	sb.WriteString(q.Name)
	return sb.String()
}

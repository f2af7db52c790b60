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

// Package encoding exports the signature surface of a lowered file as
// module metadata: what a consumer of the module needs to resolve
// cross-module references against it. Bodies never leave the module.
package encoding

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/cinderlang/cinder/errors"
	"github.com/cinderlang/cinder/ir"
)

// !!! *WARNING* !!!
//
// Only add new fields to encoded structs by
// appending new fields with the next highest key.
//
// DO *NOT* REPLACE EXISTING FIELDS!

type Metadata struct {
	Package      string        `cbor:"0,keyasint"`
	File         string        `cbor:"1,keyasint"`
	Declarations []Declaration `cbor:"2,keyasint"`
}

type Declaration struct {
	Kind       string        `cbor:"0,keyasint"`
	Name       string        `cbor:"1,keyasint"`
	Visibility string        `cbor:"2,keyasint"`
	Type       string        `cbor:"3,keyasint,omitempty"`
	Parameters []Parameter   `cbor:"4,keyasint,omitempty"`
	Members    []Declaration `cbor:"5,keyasint,omitempty"`
	Origin     string        `cbor:"6,keyasint,omitempty"`
}

type Parameter struct {
	Name  string `cbor:"0,keyasint"`
	Index int    `cbor:"1,keyasint"`
	Type  string `cbor:"2,keyasint"`
}

var encMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	encMode, err := options.EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

var decMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()

// Encode encodes the signature surface of the given lowered file.
func Encode(file *ir.File) ([]byte, error) {
	return encMode.Marshal(MetadataFromFile(file))
}

// Decode decodes previously encoded module metadata.
func Decode(data []byte) (*Metadata, error) {
	var metadata Metadata
	err := decMode.Unmarshal(data, &metadata)
	if err != nil {
		return nil, err
	}
	return &metadata, nil
}

// MetadataFromFile extracts the signature surface of a lowered file.
// Local declarations do not appear: they are invisible across modules.
func MetadataFromFile(file *ir.File) *Metadata {
	metadata := &Metadata{
		Package: file.Package.String(),
		File:    file.Name,
	}

	for _, declaration := range file.Declarations {
		if isLocal(declaration) {
			continue
		}
		metadata.Declarations = append(
			metadata.Declarations,
			declarationMetadata(declaration),
		)
	}

	return metadata
}

func declarationMetadata(declaration ir.Declaration) Declaration {
	result := Declaration{
		Kind:       declaration.DeclarationKind().Name(),
		Name:       declaration.DeclarationName(),
		Visibility: visibility(declaration),
	}
	if origin := declaration.Origin(); origin != ir.DeclarationOriginDefined {
		result.Origin = origin.String()
	}

	switch declaration := declaration.(type) {
	case *ir.Class:
		for _, member := range declaration.Declarations {
			if isLocal(member) {
				continue
			}
			result.Members = append(result.Members, declarationMetadata(member))
		}

	case *ir.Function:
		result.Type = declaration.ReturnType.String()
		result.Parameters = parametersMetadata(declaration.ValueParameters)

	case *ir.Constructor:
		result.Type = declaration.ReturnType.String()
		result.Parameters = parametersMetadata(declaration.ValueParameters)

	case *ir.Property:
		if declaration.Getter != nil {
			result.Type = declaration.Getter.ReturnType.String()
		}

	case *ir.Field:
		result.Type = declaration.Type.String()

	default:
		panic(errors.NewUnexpectedError(
			"cannot export %s declaration",
			declaration.DeclarationKind(),
		))
	}

	return result
}

func parametersMetadata(parameters []*ir.ValueParameter) []Parameter {
	var result []Parameter
	for _, parameter := range parameters {
		result = append(
			result,
			Parameter{
				Name:  parameter.Name,
				Index: parameter.Index,
				Type:  parameter.Type.String(),
			},
		)
	}
	return result
}

func visibility(declaration ir.Declaration) string {
	switch declaration := declaration.(type) {
	case *ir.Class:
		return declaration.Visibility.Keyword()
	case *ir.Function:
		return declaration.Visibility.Keyword()
	case *ir.Constructor:
		return declaration.Visibility.Keyword()
	case *ir.Property:
		return declaration.Visibility.Keyword()
	case *ir.Field:
		return declaration.Visibility.Keyword()
	default:
		return ""
	}
}

func isLocal(declaration ir.Declaration) bool {
	switch declaration.(type) {
	case *ir.Variable, *ir.ValueParameter, *ir.TypeParameter:
		return true
	}
	return false
}

/*
Copyright 2026 The Kubernetes Authors All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package xliff

import "fmt"

// ParseError is returned when a catalog is not well-formed XML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the parser diagnostic.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructureError is returned when a well-formed catalog does not have the shape XLIFF requires,
// such as a <trans-unit> without a <source>.
type StructureError struct {
	Path    string
	Element string
	ID      string
	Detail  string
}

func (e *StructureError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s: <%s id=%q>: %s", e.Path, e.Element, e.ID, e.Detail)
	}
	return fmt.Sprintf("%s: <%s>: %s", e.Path, e.Element, e.Detail)
}

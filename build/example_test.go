// Copyright 2020-2026 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package build_test

import (
	"fmt"

	"github.com/bufbuild/proptree/build"
	"github.com/bufbuild/proptree/printer"
)

type Styled struct {
	Kind, Body, Color string
}

func (Styled) Default() Styled {
	return Styled{Kind: "Body", Color: "black"}
}

func kind(v string) build.Field[Styled] {
	return build.Set(func(s *Styled) *string { return &s.Kind }, v)
}

func body(v string) build.Field[Styled] {
	return build.Set(func(s *Styled) *string { return &s.Body }, v)
}

func color(v string) build.Field[Styled] {
	return build.Set(func(s *Styled) *string { return &s.Color }, v)
}

func Example() {
	doc := build.Tree(build.Elem[Styled]().With(
		build.Elem(kind("Header1"), body("This is my header!"), color("pink")),
		build.Elem(body("This is a body section of text")).With(
			build.Elem(kind("Quote"), body("This is a quote inside the body.")),
		),
		build.Elem(kind("Header2"), body("About Me"), color("blue")),
	))

	fmt.Print(printer.Print(printer.Options[Styled]{
		Format: func(s Styled) string {
			return fmt.Sprintf("%s %s %q", s.Kind, s.Color, s.Body)
		},
	}, doc))

	// Output:
	// root      Body black ""
	// ├── 0     Header1 pink "This is my header!"
	// ├── 1     Body black "This is a body section of text"
	// │   └── 0 Quote black "This is a quote inside the body."
	// └── 2     Header2 blue "About Me"
}

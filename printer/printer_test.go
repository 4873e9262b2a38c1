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

package printer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/proptree"
	"github.com/bufbuild/proptree/build"
	"github.com/bufbuild/proptree/build/decl"
	"github.com/bufbuild/proptree/internal/golden"
	"github.com/bufbuild/proptree/printer"
)

type testProps struct {
	Foo, Bar int
}

func TestPrint(t *testing.T) {
	t.Parallel()

	root := proptree.New(testProps{10, 20}).Append(
		proptree.New(testProps{1, 0}),
		proptree.New(testProps{100, 0}).Append(
			proptree.New(testProps{0, 222}),
		),
	)

	assert.Equal(t, ""+
		"root      {10 20}\n"+
		"├── 0     {1 0}\n"+
		"└── 1     {100 0}\n"+
		"    └── 0 {0 222}\n",
		printer.Print(printer.Options[testProps]{}, root))

	assert.Equal(t, ""+
		"root        10\n"+
		"├── 0       1\n"+
		"└── 1       100\n"+
		"    └── 0   0\n",
		printer.Print(printer.Options[testProps]{
			Gap:    3,
			Format: func(p testProps) string { return fmt.Sprint(p.Foo) },
		}, root))
}

func TestPrintEdgeCases(t *testing.T) {
	t.Parallel()

	assert.Empty(t, printer.Print(printer.Options[int]{}, nil))
	assert.Equal(t, "root 5\n", printer.Print(printer.Options[int]{}, proptree.New(5)))

	// No trailing spaces when there is nothing to print.
	assert.Equal(t, "root\n└── 0\n", printer.Print(printer.Options[string]{},
		proptree.New("").Append(proptree.New(""))))

	// Multi-line props are kept in their column.
	assert.Equal(t, "root a\n     b\n", printer.Print(printer.Options[string]{}, proptree.New("a\nb")))
}

func TestPrintMultiline(t *testing.T) {
	t.Parallel()

	root := proptree.New("r").Append(
		proptree.New("a\nb").Append(proptree.New("c")),
		proptree.New("d\ne"),
	)
	assert.Equal(t, ""+
		"root      r\n"+
		"├── 0     a\n"+
		"│         b\n"+
		"│   └── 0 c\n"+
		"└── 1     d\n"+
		"          e\n",
		printer.Print(printer.Options[string]{}, root))

	// Blank lines keep the rails but no trailing spaces.
	root = proptree.New("").Append(proptree.New("a\n"), proptree.New(""))
	assert.Equal(t, "root\n├── 0 a\n│\n└── 1\n", printer.Print(printer.Options[string]{}, root))
}

func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:       "testdata",
		Extensions: []string{"yaml"},
		Outputs: []golden.Output{
			{Extension: "txt"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		var testCase struct {
			Gap  int       `yaml:"gap"`
			Tree yaml.Node `yaml:"tree"`
		}
		if err := yaml.Unmarshal([]byte(text), &testCase); err != nil {
			t.Fatalf("failed to parse test case %q: %v", path, err)
		}

		tree, err := yaml.Marshal(&testCase.Tree)
		if err != nil {
			t.Fatalf("failed to re-encode tree in %q: %v", path, err)
		}
		root, err := decl.Parse(build.Builder[string]{}, tree)
		if err != nil {
			t.Fatalf("failed to build tree in %q: %v", path, err)
		}

		outputs[0] = printer.Print(printer.Options[string]{Gap: testCase.Gap}, root)
	})
}

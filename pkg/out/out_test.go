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

package out

import (
	"fmt"
	"testing"

	"k8s.io/xliff-cleanup/pkg/tests"
)

func TestStep(t *testing.T) {
	testCases := []struct {
		style     StyleEnum
		message   string
		params    V
		want      string
		wantASCII string
	}{
		{Warning, "Warning", nil, "❗  Warning\n", "! Warning\n"},
		{FatalType, "Fatal: {{.error}}", V{"error": "ugh"}, "💣  Fatal: ugh\n", "X Fatal: ugh\n"},
		{DryRun, "{{.path}}: {{.n}} sections", V{"path": "a%b.xliff", "n": 2}, "🌵  a%b.xliff: 2 sections\n", "* a%b.xliff: 2 sections\n"},
		{Empty, "plain", nil, "plain\n", "plain\n"},
	}
	for _, tc := range testCases {
		for _, color := range []bool{true, false} {
			t.Run(fmt.Sprintf("%s-color-%v", tc.message, color), func(t *testing.T) {
				f := tests.NewFakeFile()
				SetOutFile(f)
				useColor = color
				Step(tc.style, tc.message, tc.params)
				got := f.String()
				want := tc.wantASCII
				if color {
					want = tc.want
				}
				if got != want {
					t.Errorf("Step() = %q (%d runes), want %q (%d runes)", got, len(got), want, len(want))
				}
			})
		}
	}
}

func TestString(t *testing.T) {
	testCases := []struct {
		format string
		arg    interface{}
		want   string
	}{
		{format: "xyz%d", arg: 123, want: "xyz123"},
		{format: "ERROR: Can't parse file %s", arg: "a.xliff", want: "ERROR: Can't parse file a.xliff"},
		{format: "Parameter encoding: %s", arg: "%s%%%d", want: "Parameter encoding: %s%%%d"},
	}
	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			f := tests.NewFakeFile()
			SetOutFile(f)
			SetErrFile(tests.NewFakeFile())
			Err("unrelated message\n")
			String(tc.format, tc.arg)
			got := f.String()
			if got != tc.want {
				t.Errorf("String(%s, %v) = %q, want %q", tc.format, tc.arg, got, tc.want)
			}
		})
	}
}

func TestErr(t *testing.T) {
	f := tests.NewFakeFile()
	SetErrFile(f)
	SetOutFile(tests.NewFakeFile())
	Err("xyz123 %s\n", "abc")
	Ln("unrelated message")
	got := f.String()
	want := "xyz123 abc\n"
	if got != want {
		t.Errorf("Err() = %q, want %q", got, want)
	}
}

func TestFmt(t *testing.T) {
	if got, want := Fmt("{{.a}} and {{.b}}", V{"a": 1, "b": "100%"}), "1 and 100%"; got != want {
		t.Errorf("Fmt() = %q, want %q", got, want)
	}
	if got, want := Fmt("{{.broken"), "{{.broken"; got != want {
		t.Errorf("Fmt() = %q, want %q", got, want)
	}
}

func TestWarningT(t *testing.T) {
	f := tests.NewFakeFile()
	SetErrFile(f)
	WarningT("unknown flag: {{.flag}}", V{"flag": "--nope"})
	if got, want := f.String(), "! unknown flag: --nope\n"; got != want {
		t.Errorf("WarningT() = %q, want %q", got, want)
	}
}

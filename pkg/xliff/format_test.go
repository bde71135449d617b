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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "compact input",
			in:   catalog(`<trans-unit id="one"><source>One</source><target>Eins</target><note>n</note></trans-unit>`),
			want: pretty(
				`      <trans-unit id="one">`,
				`        <source>One</source>`,
				`        <target>Eins</target>`,
				`        <note>n</note>`,
				`      </trans-unit>`),
		},
		{
			name: "tabs and blank lines",
			in: "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n\n" +
				"<xliff xmlns=\"urn:oasis:names:tc:xliff:document:1.2\" version=\"1.2\">\n" +
				"\t<file original=\"a.strings\">\n\n\t\t<body>\n" +
				"\t\t\t<trans-unit id=\"one\">\n\t\t\t\t<source>One</source>\n\t\t\t</trans-unit>\n" +
				"\t\t</body>\n\t</file>\n</xliff>",
			want: pretty(
				`      <trans-unit id="one">`,
				`        <source>One</source>`,
				`      </trans-unit>`),
		},
		{
			name: "whitespace inside leaves is kept",
			in:   catalog(`<trans-unit id="one"><source>  padded  </source><target>` + "\n" + `</target></trans-unit>`),
			want: pretty(
				`      <trans-unit id="one">`,
				`        <source>  padded  </source>`,
				"        <target>\n</target>",
				`      </trans-unit>`),
		},
		{
			name: "comments are indented like elements",
			in:   catalog(`<!-- first --><trans-unit id="one"><source>One</source><!--c--></trans-unit>`),
			want: pretty(
				`      <!-- first -->`,
				`      <trans-unit id="one">`,
				`        <source>One</source>`,
				`        <!--c-->`,
				`      </trans-unit>`),
		},
		{
			name: "attributes are escaped",
			in:   catalog(`<trans-unit id="a&amp;b" resname="&quot;x&quot; y"><source>s</source></trans-unit>`),
			want: pretty(
				`      <trans-unit id="a&amp;b" resname="&quot;x&quot; y">`,
				`        <source>s</source>`,
				`      </trans-unit>`),
		},
		{
			name: "prolog is normalized",
			in:   "<?xml version='1.0' encoding='utf-8'?>\n<!-- generated -->\n\n\n<xliff xmlns=\"urn:oasis:names:tc:xliff:document:1.2\" version=\"1.2\"/>\n\n",
			want: "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<!-- generated -->\n<xliff xmlns=\"urn:oasis:names:tc:xliff:document:1.2\" version=\"1.2\"/>\n",
		},
		{
			name: "missing declaration is added",
			in:   `<xliff xmlns="urn:oasis:names:tc:xliff:document:1.2" version="1.2"><file original="a.strings"/></xliff>`,
			want: "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
				"<xliff xmlns=\"urn:oasis:names:tc:xliff:document:1.2\" version=\"1.2\">\n" +
				"  <file original=\"a.strings\"/>\n" +
				"</xliff>\n",
		},
		{
			name: "latin-1 input is written as utf-8",
			in:   "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><xliff xmlns=\"urn:oasis:names:tc:xliff:document:1.2\" version=\"1.2\"><file original=\"a.strings\"><body><trans-unit id=\"one\"><source>caf\xe9</source></trans-unit></body></file></xliff>",
			want: pretty(
				`      <trans-unit id="one">`,
				`        <source>café</source>`,
				`      </trans-unit>`),
		},
		{
			name: "byte order mark is dropped",
			in:   "\xef\xbb\xbf" + catalog(`<trans-unit id="one"><source>One</source></trans-unit>`),
			want: pretty(
				`      <trans-unit id="one">`,
				`        <source>One</source>`,
				`      </trans-unit>`),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mustSerialize(t, mustParse(t, tc.in))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
			}

			again := mustSerialize(t, mustParse(t, got))
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("Serialize() is not stable (-first +second):\n%s", diff)
			}
		})
	}
}

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

// Package xliff loads, edits and writes XLIFF 1.2 translation catalogs.
package xliff

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Namespace is the XLIFF 1.2 document namespace
const Namespace = "urn:oasis:names:tc:xliff:document:1.2"

const (
	fileTag      = "file"
	bodyTag      = "body"
	transUnitTag = "trans-unit"
	sourceTag    = "source"
	targetTag    = "target"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Catalog is a parsed XLIFF document.
type Catalog struct {
	// Path is where the catalog was read from, used for error reporting
	Path string
	doc  *etree.Document
	// orig holds the bytes the catalog was parsed from
	orig []byte
}

// Section is a <file> element, holding the strings of one original source file.
type Section struct {
	el *etree.Element
}

// Entry is a <trans-unit> element.
type Entry struct {
	el   *etree.Element
	path string
}

// Load reads and parses the catalog at path.
// Open and read failures are wrapped I/O errors; malformed content is a *ParseError.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening catalog")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return Parse(path, data)
}

// Parse parses data as an XLIFF document, ignoring a leading UTF-8 byte order mark.
// path is only used in errors.
func Parse(path string, data []byte) (*Catalog, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM))); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	roots := 0
	for _, t := range doc.Child {
		switch t := t.(type) {
		case *etree.Element:
			roots++
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return nil, &ParseError{Path: path, Err: errors.New("content is not allowed outside the root element")}
			}
		}
	}
	switch {
	case roots == 0:
		return nil, &ParseError{Path: path, Err: errors.New("document is empty")}
	case roots > 1:
		return nil, &ParseError{Path: path, Err: errors.New("extra content at the end of the document")}
	}

	klog.V(2).Infof("parsed %s: root <%s>", path, doc.Root().FullTag())
	return &Catalog{Path: path, doc: doc, orig: data}, nil
}

// Original returns the bytes the catalog was parsed from.
func (c *Catalog) Original() []byte {
	return c.orig
}

// Sections returns every <file> element of the catalog in document order.
func (c *Catalog) Sections() []Section {
	var ss []Section
	for _, el := range descendants(c.doc.Root(), fileTag) {
		ss = append(ss, Section{el: el})
	}
	return ss
}

// Entries returns every <trans-unit> element of the catalog in document order.
func (c *Catalog) Entries() []Entry {
	var es []Entry
	for _, el := range descendants(c.doc.Root(), transUnitTag) {
		es = append(es, Entry{el: el, path: c.Path})
	}
	return es
}

// Remove detaches the section from the catalog.
func (c *Catalog) Remove(s Section) error {
	parent := s.el.Parent()
	if parent == nil || parent == &c.doc.Element {
		return &StructureError{Path: c.Path, Element: fileTag, Detail: "the document root cannot be removed"}
	}
	parent.RemoveChild(s.el)
	return nil
}

// ID returns the original attribute of the section.
func (s Section) ID() string {
	return attr(s.el, "original")
}

// EntryCount returns the number of <trans-unit> elements directly inside the section's <body>.
func (s Section) EntryCount() int {
	n := 0
	for _, body := range children(s.el, bodyTag) {
		n += len(children(body, transUnitTag))
	}
	return n
}

// ID returns the id attribute of the entry.
func (e Entry) ID() string {
	return attr(e.el, "id")
}

// HasTarget reports whether the entry has a <target> element, whatever its text.
func (e Entry) HasTarget() bool {
	return len(children(e.el, targetTag)) > 0
}

// SourceText returns the text of the entry's <source> up to its first child node.
// ok is false when the source has no text at all.
func (e Entry) SourceText() (text string, ok bool, err error) {
	srcs := children(e.el, sourceTag)
	if len(srcs) == 0 {
		return "", false, &StructureError{Path: e.path, Element: transUnitTag, ID: e.ID(), Detail: "missing <source>"}
	}
	text, ok = leadingText(srcs[0])
	return text, ok, nil
}

// AddTargetFromSource inserts a <target> holding the source text as the second child element of the entry.
func (e Entry) AddTargetFromSource() error {
	text, ok, err := e.SourceText()
	if err != nil {
		return err
	}

	src := children(e.el, sourceTag)[0]
	tag := targetTag
	if src.Space != "" {
		tag = src.Space + ":" + targetTag
	}
	target := etree.NewElement(tag)
	if ok {
		target.SetText(text)
	}

	// Text does not count as a child, so position 1 is the token of the second child node.
	nodes := 0
	for i, t := range e.el.Child {
		if _, isText := t.(*etree.CharData); isText {
			continue
		}
		nodes++
		if nodes == 2 {
			e.el.InsertChildAt(i, target)
			return nil
		}
	}
	e.el.AddChild(target)
	return nil
}

// isXLIFF reports whether el is the XLIFF element named tag.
func isXLIFF(el *etree.Element, tag string) bool {
	return el.Tag == tag && el.NamespaceURI() == Namespace
}

// descendants returns root and all elements below it named tag, in document order.
func descendants(root *etree.Element, tag string) []*etree.Element {
	var found []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if isXLIFF(el, tag) {
			found = append(found, el)
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(root)
	return found
}

func children(el *etree.Element, tag string) []*etree.Element {
	var found []*etree.Element
	for _, child := range el.ChildElements() {
		if isXLIFF(child, tag) {
			found = append(found, child)
		}
	}
	return found
}

// attr returns the value of the unprefixed attribute key, or "".
func attr(el *etree.Element, key string) string {
	for _, a := range el.Attr {
		if a.Space == "" && a.Key == key {
			return a.Value
		}
	}
	return ""
}

// leadingText concatenates the character data before the first child node of el.
func leadingText(el *etree.Element) (string, bool) {
	var sb strings.Builder
	found := false
	for _, t := range el.Child {
		cd, ok := t.(*etree.CharData)
		if !ok {
			break
		}
		sb.WriteString(cd.Data)
		found = true
	}
	return sb.String(), found
}

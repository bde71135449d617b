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
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

const (
	// indentUnit is added per nesting level
	indentUnit = "  "
	// declaration is written at the top of every catalog
	declaration = `version="1.0" encoding="UTF-8"`
)

// Serialize pretty-prints the catalog in place and renders it as UTF-8.
// Serializing the result again gives the same bytes.
func (c *Catalog) Serialize() ([]byte, error) {
	root := c.doc.Root()
	if root == nil {
		return nil, &StructureError{Path: c.Path, Element: "xliff", Detail: "document has no root element"}
	}
	indent(root, 0)
	c.resetProlog()

	c.doc.WriteSettings.CanonicalText = true
	c.doc.WriteSettings.CanonicalAttrVal = true
	b, err := c.doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrapf(err, "serialize %s", c.Path)
	}
	return b, nil
}

// resetProlog puts a UTF-8 declaration first and every top-level node on its own line.
func (c *Catalog) resetProlog() {
	var nodes []etree.Token
	for _, t := range c.doc.Child {
		switch t := t.(type) {
		case *etree.CharData:
			continue
		case *etree.ProcInst:
			if t.Target == "xml" {
				continue
			}
		}
		nodes = append(nodes, t)
	}
	detachChildren(&c.doc.Element)

	c.doc.AddChild(etree.NewProcInst("xml", declaration))
	c.doc.AddChild(etree.NewText("\n"))
	for _, t := range nodes {
		c.doc.AddChild(t)
		c.doc.AddChild(etree.NewText("\n"))
	}
}

// run is the character data following a node, up to the next node.
type run []etree.Token

func (r run) blank() bool {
	for _, t := range r {
		if strings.TrimSpace(t.(*etree.CharData).Data) != "" {
			return false
		}
	}
	return true
}

// node is a child element, comment or processing instruction together with its tail.
type node struct {
	tok  etree.Token
	tail run
}

// indent rewrites whitespace-only text so that every level is indented by indentUnit.
// Text holding anything but whitespace is left alone, so mixed content survives.
func indent(el *etree.Element, level int) {
	text, nodes := split(el)
	if len(nodes) == 0 {
		return
	}

	inner := "\n" + strings.Repeat(indentUnit, level+1)
	if text.blank() {
		text = run{etree.NewText(inner)}
	}
	for i := range nodes {
		if child, ok := nodes[i].tok.(*etree.Element); ok {
			indent(child, level+1)
		}
		if !nodes[i].tail.blank() {
			continue
		}
		ws := inner
		if i == len(nodes)-1 {
			ws = "\n" + strings.Repeat(indentUnit, level)
		}
		nodes[i].tail = run{etree.NewText(ws)}
	}

	detachChildren(el)
	for _, t := range text {
		el.AddChild(t)
	}
	for _, n := range nodes {
		el.AddChild(n.tok)
		for _, t := range n.tail {
			el.AddChild(t)
		}
	}
}

// split divides the children of el into its leading text and the nodes that follow.
func split(el *etree.Element) (text run, nodes []node) {
	for _, t := range el.Child {
		if _, ok := t.(*etree.CharData); ok {
			if len(nodes) == 0 {
				text = append(text, t)
			} else {
				nodes[len(nodes)-1].tail = append(nodes[len(nodes)-1].tail, t)
			}
			continue
		}
		nodes = append(nodes, node{tok: t})
	}
	return text, nodes
}

// detachChildren detaches every child token of el, last first so no indexes need shifting.
func detachChildren(el *etree.Element) {
	for i := len(el.Child) - 1; i >= 0; i-- {
		el.RemoveChildAt(i)
	}
}

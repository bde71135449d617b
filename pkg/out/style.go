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

// StyleEnum is an enumeration of output styles
type StyleEnum int

const (
	Empty StyleEnum = iota
	FatalType
	Warning
	DryRun
)

var (
	// lowBullet is a bullet-point prefix for low-fi mode
	lowBullet = "* "
	// lowWarning is a warning prefix for low-fi mode
	lowWarning = "! "
	// lowError is an error prefix for low-fi mode
	lowError = "X "
)

// style describes how to stylize a message.
type style struct {
	// Prefix is a string to place in the beginning of a message
	Prefix string
	// LowPrefix is the 7-bit compatible prefix we fallback to for less-awesome terminals
	LowPrefix string
}

// styles is a map of style name to style struct
var styles = map[StyleEnum]style{
	Empty:     {Prefix: "", LowPrefix: ""},
	FatalType: {Prefix: "💣  ", LowPrefix: lowError},
	Warning:   {Prefix: "❗  ", LowPrefix: lowWarning},
	DryRun:    {Prefix: "🌵  "},
}

// lowPrefix returns a 7-bit compatible prefix for a style
func lowPrefix(s style) string {
	if s.LowPrefix != "" {
		return s.LowPrefix
	}
	if s.Prefix == "" {
		return ""
	}
	return lowBullet
}

// applyStyle adds the style prefix and a trailing newline
func applyStyle(st StyleEnum, useColor bool, format string) string {
	format += "\n"

	s, ok := styles[st]
	// Similar to CSS styles, if no style matches, output an unformatted string.
	if !ok {
		return format
	}
	if !useColor {
		return lowPrefix(s) + format
	}
	return s.Prefix + format
}

// stylized applies the style and then the template to format
func stylized(st StyleEnum, useColor bool, format string, a ...V) string {
	return Fmt(applyStyle(st, useColor, format), a...)
}

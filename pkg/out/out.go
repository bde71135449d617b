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

// Package out provides a mechanism for sending stylized output to the console.
package out

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	isatty "github.com/mattn/go-isatty"
	"k8s.io/klog/v2"
)

// Like minikube's console package, this one holds global references to the output files
// rather than passing a console object around. Typical usage is:
//
// out.SetOutFile(os.Stdout)
// out.Ln("plain line")
// out.Step(out.DryRun, "{{.path}} would change", out.V{"path": p})

var (
	// outFile is where String, Ln and Step send output to. Set using SetOutFile()
	outFile fdWriter
	// errFile is where Err* functions send output to. Set using SetErrFile()
	errFile fdWriter
	// useColor is whether or not emoji prefixes should be used, updated by Set*File.
	useColor = false
)

// fdWriter is the subset of file.File that implements io.Writer and Fd()
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// V is a convenience wrapper for templating, it represents the variable key/value pair.
type V map[string]interface{}

// Step writes a stylized and templated message to stdout
func Step(st StyleEnum, format string, a ...V) {
	String("%s", stylized(st, useColor, format, a...))
}

// String writes a basic formatted string to stdout
func String(format string, a ...interface{}) {
	// Flush log buffer so that output order makes sense
	klog.Flush()

	if outFile == nil {
		klog.Warningf("[unset outFile]: %s", fmt.Sprintf(format, a...))
		return
	}
	if _, err := fmt.Fprintf(outFile, format, a...); err != nil {
		klog.Errorf("Fprintf failed: %v", err)
	}
}

// Ln writes a basic formatted string with a newline to stdout
func Ln(format string, a ...interface{}) {
	String(format+"\n", a...)
}

// ErrT writes a stylized and templated error message to stderr
func ErrT(st StyleEnum, format string, a ...V) {
	Err("%s", stylized(st, useColor, format, a...))
}

// Err writes a basic formatted string to stderr
func Err(format string, a ...interface{}) {
	if errFile == nil {
		klog.Errorf("[unset errFile]: %s", fmt.Sprintf(format, a...))
		return
	}
	if _, err := fmt.Fprintf(errFile, format, a...); err != nil {
		klog.Errorf("Fprint failed: %v", err)
	}
}

// WarningT is a shortcut for writing a templated warning message to stderr
func WarningT(format string, a ...V) {
	ErrT(Warning, format, a...)
}

// FatalT is a shortcut for writing a templated fatal message to stderr
func FatalT(format string, a ...V) {
	ErrT(FatalType, format, a...)
}

// SetOutFile configures which writer standard output goes to.
func SetOutFile(w fdWriter) {
	klog.V(3).Infof("Setting OutFile to fd %d ...", w.Fd())
	outFile = w
	useColor = wantsColor(w.Fd())
}

// SetErrFile configures which writer error output goes to.
func SetErrFile(w fdWriter) {
	klog.V(3).Infof("Setting ErrFile to fd %d...", w.Fd())
	errFile = w
	useColor = wantsColor(w.Fd())
}

// wantsColor determines if the output is a terminal able to show emoji.
func wantsColor(fd uintptr) bool {
	isT := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	klog.V(3).Infof("isatty.IsTerminal(%d) = %v", fd, isT)
	return isT
}

// Fmt applies the first V of a to the template format
func Fmt(format string, a ...V) string {
	if a == nil {
		a = []V{{}}
	}

	var buf bytes.Buffer
	t, err := template.New(format).Parse(format)
	if err != nil {
		klog.Errorf("unable to parse %q: %v - returning raw string.", format, err)
		return format
	}
	if err := t.Execute(&buf, a[0]); err != nil {
		klog.Errorf("unable to execute %s: %v - returning raw string.", format, err)
		return format
	}
	return buf.String()
}

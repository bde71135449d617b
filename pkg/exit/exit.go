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

// Package exit contains functions useful for exiting gracefully.
package exit

import (
	"os"

	"k8s.io/klog/v2"
	"k8s.io/xliff-cleanup/pkg/out"
)

// Exit codes based on sysexits(3)
const (
	BadUsage    = 64 // Usage represents an incorrect command line
	NoInput     = 66 // NoInput represents that the input file did not exist or was not readable
	Software    = 70 // Software represents an internal software error.
	IO          = 74 // IO represents an I/O error
	Permissions = 77 // Permissions represents a permissions error
	Config      = 78 // Config represents an unconfigured or misconfigured state
)

// osExit is replaced in tests
var osExit = os.Exit

// UsageT outputs a templated usage error and exits with error code 64
func UsageT(format string, a ...out.V) {
	out.WarningT(format, a...)
	osExit(BadUsage)
}

// Error outputs an error and exits with the supplied code.
func Error(code int, msg string, err error) {
	klog.Warningf("%s: %v", msg, err)
	out.FatalT("{{.msg}}: {{.err}}", out.V{"msg": msg, "err": err})
	klog.Flush()
	osExit(code)
}

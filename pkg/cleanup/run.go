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

package cleanup

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"k8s.io/xliff-cleanup/pkg/out"
	"k8s.io/xliff-cleanup/pkg/xliff"
)

// Filter cleans catalogs in place.
type Filter struct {
	Lists  Lists
	// DryRun reports what would change without writing anything
	DryRun bool
}

// Result holds the outcome of cleaning a single catalog
type Result struct {
	Path string
	Counts
	// Changed is true when the cleaned catalog differs from the file on disk
	Changed bool
}

// NewFilter returns a Filter using lists.
func NewFilter(lists Lists) *Filter {
	return &Filter{Lists: lists}
}

// Process cleans the catalog at path and writes it back over the original.
// A catalog that cannot be parsed is left untouched and returned as a *xliff.ParseError.
func (f *Filter) Process(path string) (Result, error) {
	c, err := xliff.Load(path)
	if err != nil {
		return Result{}, err
	}

	counts, err := Apply(c, f.Lists)
	if err != nil {
		return Result{}, err
	}
	data, err := c.Serialize()
	if err != nil {
		return Result{}, err
	}

	r := Result{Path: path, Counts: counts, Changed: !bytes.Equal(c.Original(), data)}
	if !r.Changed || f.DryRun {
		return r, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return r, errors.Wrap(err, "stat catalog")
	}
	if err := os.WriteFile(path, data, info.Mode()); err != nil {
		return r, errors.Wrapf(err, "write %s", path)
	}
	return r, nil
}

// Run processes paths one after another. Catalogs that cannot be parsed are reported
// on stdout and skipped; any other error stops the run.
func (f *Filter) Run(paths []string) ([]Result, error) {
	var results []Result
	for _, path := range paths {
		r, err := f.Process(path)
		if err != nil {
			var pe *xliff.ParseError
			if errors.As(err, &pe) {
				klog.Warningf("skipping %s: %v", path, pe.Err)
				out.Ln("ERROR: Can't parse file %s", path)
				out.Ln("%v", pe.Err)
				continue
			}
			return results, errors.Wrapf(err, "cleaning %s", path)
		}

		klog.V(1).Infof("%s: removed %d sections, filled %d targets, removed %d empty sections (changed=%v)",
			path, r.SectionsRemoved, r.TargetsFilled, r.EmptySectionsRemoved, r.Changed)
		if f.DryRun {
			out.Step(out.DryRun, "{{.path}}: would remove {{.sections}} sections, fill {{.targets}} targets, remove {{.empty}} empty sections", out.V{
				"path":     path,
				"sections": r.SectionsRemoved,
				"targets":  r.TargetsFilled,
				"empty":    r.EmptySectionsRemoved,
			})
		}
		results = append(results, r)
	}
	return results, nil
}

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

// Package cleanup trims XLIFF catalogs down to the sections an app ships and fills in
// required strings that have no translation yet.
package cleanup

import (
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"k8s.io/xliff-cleanup/pkg/xliff"
)

// infoPlistSuffix marks sections that are dropped once they hold no strings
const infoPlistSuffix = "Info.plist"

// Counts reports what the passes changed in one catalog.
type Counts struct {
	SectionsRemoved      int
	TargetsFilled        int
	EmptySectionsRemoved int
}

// Apply runs the passes over c in their fixed order.
// Required entries are fixed after unwanted sections are gone, and emptiness is
// measured only once the entries are final.
func Apply(c *xliff.Catalog, lists Lists) (Counts, error) {
	var counts Counts
	var err error

	if counts.SectionsRemoved, err = PruneUnwantedSections(c, lists.KeepFiles); err != nil {
		return counts, errors.Wrap(err, "prune unwanted sections")
	}
	if counts.TargetsFilled, err = FixRequiredEntries(c, lists.RequiredIDs); err != nil {
		return counts, errors.Wrap(err, "fix required entries")
	}
	if counts.EmptySectionsRemoved, err = PruneEmptySections(c); err != nil {
		return counts, errors.Wrap(err, "prune empty sections")
	}
	return counts, nil
}

// PruneUnwantedSections removes every section whose original is not in keep.
func PruneUnwantedSections(c *xliff.Catalog, keep []string) (int, error) {
	allowed := newSet(keep)
	removed := 0
	for _, s := range c.Sections() {
		if allowed.has(s.ID()) {
			continue
		}
		klog.V(2).Infof("%s: removing section %q", c.Path, s.ID())
		if err := c.Remove(s); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// FixRequiredEntries gives every required entry without a target one holding its source text.
// Entries that already have a target keep it, even when it is empty.
func FixRequiredEntries(c *xliff.Catalog, required []string) (int, error) {
	ids := newSet(required)
	filled := 0
	for _, e := range c.Entries() {
		if !ids.has(e.ID()) || e.HasTarget() {
			continue
		}
		if err := e.AddTargetFromSource(); err != nil {
			return filled, err
		}
		klog.V(2).Infof("%s: copied source into target of %q", c.Path, e.ID())
		filled++
	}
	return filled, nil
}

// PruneEmptySections removes Info.plist sections whose body holds no entries.
// Other empty sections are left in place.
func PruneEmptySections(c *xliff.Catalog) (int, error) {
	removed := 0
	for _, s := range c.Sections() {
		if !strings.HasSuffix(s.ID(), infoPlistSuffix) || s.EntryCount() > 0 {
			continue
		}
		klog.V(2).Infof("%s: removing empty section %q", c.Path, s.ID())
		if err := c.Remove(s); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

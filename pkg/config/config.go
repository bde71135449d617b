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

// Package config loads alternate cleanup lists from a config file.
package config

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
	"k8s.io/xliff-cleanup/pkg/cleanup"
)

const (
	// KeepFiles is the key for the list of sections to keep
	KeepFiles = "keep_files"
	// RequiredIDs is the key for the list of entries that must have a target
	RequiredIDs = "required_ids"
)

// Load returns the cleanup lists in the config file at path.
// A list missing from the file keeps its default; an empty path returns the defaults.
func Load(path string) (cleanup.Lists, error) {
	lists := cleanup.DefaultLists()
	if path == "" {
		return lists, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cleanup.Lists{}, errors.Wrapf(err, "reading config %s", path)
	}

	var unknown []string
	for _, k := range v.AllKeys() {
		if k != KeepFiles && k != RequiredIDs {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return cleanup.Lists{}, errors.Errorf("config %s: unknown keys %v", path, unknown)
	}

	if v.IsSet(KeepFiles) {
		lists.KeepFiles = v.GetStringSlice(KeepFiles)
	}
	if v.IsSet(RequiredIDs) {
		lists.RequiredIDs = v.GetStringSlice(RequiredIDs)
	}
	klog.V(1).Infof("loaded %d files to keep and %d required ids from %s", len(lists.KeepFiles), len(lists.RequiredIDs), path)
	return lists, nil
}

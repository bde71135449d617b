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

// Lists holds the catalog sections to keep and the strings that must always be translated.
type Lists struct {
	// KeepFiles are the <file original=...> values to keep, compared verbatim
	KeepFiles   []string
	// RequiredIDs are the <trans-unit id=...> values that get the source text when untranslated
	RequiredIDs []string
}

// DefaultLists returns the lists for the main app and its extensions.
func DefaultLists() Lists {
	return Lists{
		KeepFiles: []string{
			"Client/en.lproj/InfoPlist.strings",
			"Client/en.lproj/Cliqz.strings",
			"Client/en.lproj/Ghostery.strings",
			"Client/en.lproj/Lumen.strings",
			"Extensions/ShareTo/en.lproj/Cliqz.strings",
			"Extensions/Today/en.lproj/Cliqz.strings",
			"Cliqz/Resources/en.lproj/Cliqz.stringsdict",
		},
		RequiredIDs: []string{
			"NSCameraUsageDescription",
			"NSLocationWhenInUseUsageDescription",
			"NSMicrophoneUsageDescription",
			"NSPhotoLibraryAddUsageDescription",
			"NSPhotoLibraryUsageDescription",
			"NSFaceIDUsageDescription",
			"ShortcutItemTitleNewPrivateTab",
			"ShortcutItemTitleNewTab",
			"ShortcutItemTitleQRCode",
		},
	}
}

type set map[string]struct{}

func newSet(items []string) set {
	s := make(set, len(items))
	for _, i := range items {
		s[i] = struct{}{}
	}
	return s
}

func (s set) has(item string) bool {
	_, ok := s[item]
	return ok
}

//  Copyright 2026 Google Inc. All Rights Reserved.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package aiplatform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathRoundTrip(t *testing.T) {
	tests := []struct {
		desc  string
		name  string
		parse func(string) (map[string]string, error)
		want  map[string]string
	}{
		{"annotated dataset", AnnotatedDatasetPath("squid", "clam", "whelk"), ParseAnnotatedDatasetPath,
			map[string]string{"project": "squid", "dataset": "clam", "annotated_dataset": "whelk"}},
		{"dataset", DatasetPath("octopus", "oyster"), ParseDatasetPath,
			map[string]string{"project": "octopus", "dataset": "oyster"}},
		{"location dataset", LocationDatasetPath("nudibranch", "cuttlefish", "mussel"), ParseLocationDatasetPath,
			map[string]string{"project": "nudibranch", "location": "cuttlefish", "dataset": "mussel"}},
		{"model", ModelPath("winkle", "nautilus", "scallop"), ParseModelPath,
			map[string]string{"project": "winkle", "location": "nautilus", "model": "scallop"}},
		{"version", VersionPath("abalone", "squid", "clam"), ParseVersionPath,
			map[string]string{"project": "abalone", "model": "squid", "version": "clam"}},
		{"billing account", CommonBillingAccountPath("whelk"), ParseCommonBillingAccountPath,
			map[string]string{"billing_account": "whelk"}},
		{"folder", CommonFolderPath("octopus"), ParseCommonFolderPath,
			map[string]string{"folder": "octopus"}},
		{"organization", CommonOrganizationPath("oyster"), ParseCommonOrganizationPath,
			map[string]string{"organization": "oyster"}},
		{"project", CommonProjectPath("nudibranch"), ParseCommonProjectPath,
			map[string]string{"project": "nudibranch"}},
		{"location", CommonLocationPath("cuttlefish", "mussel"), ParseCommonLocationPath,
			map[string]string{"project": "cuttlefish", "location": "mussel"}},
	}
	for _, tt := range tests {
		got, err := tt.parse(tt.name)
		if err != nil {
			t.Errorf("%s: parse(%q) returned error: %v", tt.desc, tt.name, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: parse(%q) mismatch (-want +got):\n%s", tt.desc, tt.name, diff)
		}
	}
}

func TestModelPath(t *testing.T) {
	if got, want := ModelPath("p", "us-central1", "m"), "projects/p/locations/us-central1/models/m"; got != want {
		t.Errorf("ModelPath() = %q, want %q", got, want)
	}
}

func TestPathEscapesSlash(t *testing.T) {
	name := ModelPath("p", "l", "a/b")
	if want := "projects/p/locations/l/models/a%2Fb"; name != want {
		t.Errorf("ModelPath() = %q, want %q", name, want)
	}
	got, err := ParseModelPath(name)
	if err != nil {
		t.Fatalf("ParseModelPath(%q) returned error: %v", name, err)
	}
	if diff := cmp.Diff(map[string]string{"project": "p", "location": "l", "model": "a/b"}, got); diff != "" {
		t.Errorf("ParseModelPath(%q) mismatch (-want +got):\n%s", name, diff)
	}
}

func TestParsePathMismatch(t *testing.T) {
	tests := []struct {
		desc  string
		name  string
		parse func(string) (map[string]string, error)
	}{
		{"too short", "projects/p", ParseCommonLocationPath},
		{"too long", "projects/p/locations/l/models/m/extra", ParseModelPath},
		{"wrong literal", "projects/p/regions/l/models/m", ParseModelPath},
		{"empty variable", "projects//datasets/d", ParseDatasetPath},
		{"dataset variant", "projects/p/locations/l/datasets/d", ParseDatasetPath},
		{"bad escape", "projects/p/locations/l/models/a%zz", ParseModelPath},
	}
	for _, tt := range tests {
		if got, err := tt.parse(tt.name); err == nil {
			t.Errorf("%s: parse(%q) = %v, want error", tt.desc, tt.name, got)
		}
	}
}

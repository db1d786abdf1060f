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
	"fmt"
	"net/url"
	"strings"
)

// pathTemplate is a resource name template such as
// "projects/{project}/locations/{location}". Variables bind exactly one
// path segment; render escapes values so a "/" cannot split a segment, and
// match unescapes them.
type pathTemplate struct {
	raw      string
	segments []string
}

func newPathTemplate(raw string) pathTemplate {
	return pathTemplate{raw: raw, segments: strings.Split(raw, "/")}
}

func isVar(seg string) bool {
	return strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}

func (t pathTemplate) render(vals ...string) string {
	out := make([]string, len(t.segments))
	i := 0
	for n, seg := range t.segments {
		if isVar(seg) {
			out[n] = url.PathEscape(vals[i])
			i++
			continue
		}
		out[n] = seg
	}
	return strings.Join(out, "/")
}

func (t pathTemplate) match(name string) (map[string]string, error) {
	parts := strings.Split(name, "/")
	if len(parts) != len(t.segments) {
		return nil, fmt.Errorf("%q does not match template %q", name, t.raw)
	}
	vals := map[string]string{}
	for i, seg := range t.segments {
		switch {
		case isVar(seg):
			if parts[i] == "" {
				return nil, fmt.Errorf("%q does not match template %q: empty %s", name, t.raw, seg)
			}
			v, err := url.PathUnescape(parts[i])
			if err != nil {
				return nil, fmt.Errorf("%q does not match template %q: %v", name, t.raw, err)
			}
			vals[strings.Trim(seg, "{}")] = v
		case seg != parts[i]:
			return nil, fmt.Errorf("%q does not match template %q", name, t.raw)
		}
	}
	return vals, nil
}

var (
	annotatedDatasetPathTemplate = newPathTemplate("projects/{project}/datasets/{dataset}/annotatedDatasets/{annotated_dataset}")
	datasetPathTemplate          = newPathTemplate("projects/{project}/datasets/{dataset}")
	locationDatasetPathTemplate  = newPathTemplate("projects/{project}/locations/{location}/datasets/{dataset}")
	modelPathTemplate            = newPathTemplate("projects/{project}/locations/{location}/models/{model}")
	versionPathTemplate          = newPathTemplate("projects/{project}/models/{model}/versions/{version}")
	billingAccountPathTemplate   = newPathTemplate("billingAccounts/{billing_account}")
	folderPathTemplate           = newPathTemplate("folders/{folder}")
	organizationPathTemplate     = newPathTemplate("organizations/{organization}")
	projectPathTemplate          = newPathTemplate("projects/{project}")
	locationPathTemplate         = newPathTemplate("projects/{project}/locations/{location}")
)

// AnnotatedDatasetPath returns the name of a Data Labeling annotated dataset.
func AnnotatedDatasetPath(project, dataset, annotatedDataset string) string {
	return annotatedDatasetPathTemplate.render(project, dataset, annotatedDataset)
}

// ParseAnnotatedDatasetPath splits an annotated dataset name into its
// project, dataset and annotated_dataset segments.
func ParseAnnotatedDatasetPath(name string) (map[string]string, error) {
	return annotatedDatasetPathTemplate.match(name)
}

// DatasetPath returns the name of a Data Labeling dataset.
func DatasetPath(project, dataset string) string {
	return datasetPathTemplate.render(project, dataset)
}

// ParseDatasetPath parses a Data Labeling dataset name.
func ParseDatasetPath(name string) (map[string]string, error) {
	return datasetPathTemplate.match(name)
}

// LocationDatasetPath returns the name of an AutoML or Vertex AI dataset.
func LocationDatasetPath(project, location, dataset string) string {
	return locationDatasetPathTemplate.render(project, location, dataset)
}

// ParseLocationDatasetPath parses an AutoML or Vertex AI dataset name.
func ParseLocationDatasetPath(name string) (map[string]string, error) {
	return locationDatasetPathTemplate.match(name)
}

// ModelPath returns the name of an AutoML or Vertex AI model.
func ModelPath(project, location, model string) string {
	return modelPathTemplate.render(project, location, model)
}

// ParseModelPath parses an AutoML or Vertex AI model name.
func ParseModelPath(name string) (map[string]string, error) {
	return modelPathTemplate.match(name)
}

// VersionPath returns the name of an ML Engine model version.
func VersionPath(project, model, version string) string {
	return versionPathTemplate.render(project, model, version)
}

// ParseVersionPath parses an ML Engine model version name.
func ParseVersionPath(name string) (map[string]string, error) {
	return versionPathTemplate.match(name)
}

// CommonBillingAccountPath returns the name of a billing account.
func CommonBillingAccountPath(billingAccount string) string {
	return billingAccountPathTemplate.render(billingAccount)
}

// ParseCommonBillingAccountPath parses a billing account name.
func ParseCommonBillingAccountPath(name string) (map[string]string, error) {
	return billingAccountPathTemplate.match(name)
}

// CommonFolderPath returns the name of a folder.
func CommonFolderPath(folder string) string {
	return folderPathTemplate.render(folder)
}

// ParseCommonFolderPath parses a folder name.
func ParseCommonFolderPath(name string) (map[string]string, error) {
	return folderPathTemplate.match(name)
}

// CommonOrganizationPath returns the name of an organization.
func CommonOrganizationPath(organization string) string {
	return organizationPathTemplate.render(organization)
}

// ParseCommonOrganizationPath parses an organization name.
func ParseCommonOrganizationPath(name string) (map[string]string, error) {
	return organizationPathTemplate.match(name)
}

// CommonProjectPath returns the name of a project.
func CommonProjectPath(project string) string {
	return projectPathTemplate.render(project)
}

// ParseCommonProjectPath parses a project name.
func ParseCommonProjectPath(name string) (map[string]string, error) {
	return projectPathTemplate.match(name)
}

// CommonLocationPath returns the parent used by SearchMigratableResources
// and BatchMigrateResources.
func CommonLocationPath(project, location string) string {
	return locationPathTemplate.render(project, location)
}

// ParseCommonLocationPath parses a location name into its project and
// location segments.
func ParseCommonLocationPath(name string) (map[string]string, error) {
	return locationPathTemplate.match(name)
}

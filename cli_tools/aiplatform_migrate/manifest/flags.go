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

package manifest

import (
	"fmt"
	"strings"

	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
)

// DefaultMlEngineEndpoint is the AI Platform endpoint legacy model versions
// are served from unless told otherwise.
const DefaultMlEngineEndpoint = "ml.googleapis.com"

// Resources lists the resources given on the command line. Each entry has
// the form RESOURCE_NAME[=DISPLAY_NAME]; a missing display name defaults
// to the last segment of the resource name.
type Resources struct {
	AutomlModels         []string
	AutomlDatasets       []string
	MlEngineVersions     []string
	DataLabelingDatasets []string
	MlEngineEndpoint     string
}

// Empty reports whether no resource was given.
func (r *Resources) Empty() bool {
	return len(r.AutomlModels)+len(r.AutomlDatasets)+len(r.MlEngineVersions)+len(r.DataLabelingDatasets) == 0
}

func splitDisplayName(v string) (string, string, error) {
	name, display, found := strings.Cut(v, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("%q has no resource name", v)
	}
	if !found || display == "" {
		display = name[strings.LastIndex(name, "/")+1:]
	}
	return name, display, nil
}

// Request builds a checked BatchMigrateResourcesRequest for parent.
func (r *Resources) Request(parent string) (*aiplatformpb.BatchMigrateResourcesRequest, error) {
	req := &aiplatformpb.BatchMigrateResourcesRequest{Parent: parent}
	add := func(values []string, build func(name, display string) *aiplatformpb.MigrateResourceRequest) error {
		for _, v := range values {
			name, display, err := splitDisplayName(v)
			if err != nil {
				return err
			}
			req.MigrateResourceRequests = append(req.MigrateResourceRequests, build(name, display))
		}
		return nil
	}

	endpoint := r.MlEngineEndpoint
	if endpoint == "" {
		endpoint = DefaultMlEngineEndpoint
	}
	if err := add(r.MlEngineVersions, func(name, display string) *aiplatformpb.MigrateResourceRequest {
		return &aiplatformpb.MigrateResourceRequest{
			Request: &aiplatformpb.MigrateResourceRequest_MigrateMlEngineModelVersionConfig_{
				MigrateMlEngineModelVersionConfig: &aiplatformpb.MigrateResourceRequest_MigrateMlEngineModelVersionConfig{
					Endpoint:         endpoint,
					ModelVersion:     name,
					ModelDisplayName: display,
				},
			},
		}
	}); err != nil {
		return nil, err
	}
	if err := add(r.AutomlModels, func(name, display string) *aiplatformpb.MigrateResourceRequest {
		return &aiplatformpb.MigrateResourceRequest{
			Request: &aiplatformpb.MigrateResourceRequest_MigrateAutomlModelConfig_{
				MigrateAutomlModelConfig: &aiplatformpb.MigrateResourceRequest_MigrateAutomlModelConfig{
					Model:            name,
					ModelDisplayName: display,
				},
			},
		}
	}); err != nil {
		return nil, err
	}
	if err := add(r.AutomlDatasets, func(name, display string) *aiplatformpb.MigrateResourceRequest {
		return &aiplatformpb.MigrateResourceRequest{
			Request: &aiplatformpb.MigrateResourceRequest_MigrateAutomlDatasetConfig_{
				MigrateAutomlDatasetConfig: &aiplatformpb.MigrateResourceRequest_MigrateAutomlDatasetConfig{
					Dataset:            name,
					DatasetDisplayName: display,
				},
			},
		}
	}); err != nil {
		return nil, err
	}
	if err := add(r.DataLabelingDatasets, func(name, display string) *aiplatformpb.MigrateResourceRequest {
		return &aiplatformpb.MigrateResourceRequest{
			Request: &aiplatformpb.MigrateResourceRequest_MigrateDataLabelingDatasetConfig_{
				MigrateDataLabelingDatasetConfig: &aiplatformpb.MigrateResourceRequest_MigrateDataLabelingDatasetConfig{
					Dataset:            name,
					DatasetDisplayName: display,
				},
			},
		}
	}); err != nil {
		return nil, err
	}

	if err := Check(req); err != nil {
		return nil, err
	}
	return req, nil
}

//  Copyright 2019 Google Inc. All Rights Reserved.
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

package compute

import (
	"fmt"
	"strings"

	"cloud.google.com/go/compute/metadata"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/domain"
)

// MetadataGCE implements MetadataGCEInterface
type MetadataGCE struct{}

// OnGCE reports whether this process is running on Google Compute Engine.
func (m *MetadataGCE) OnGCE() bool {
	return metadata.OnGCE()
}

// Zone returns the current VM's zone, such as "us-central1-b".
func (m *MetadataGCE) Zone() (string, error) {
	return metadata.Zone()
}

// ProjectID returns the current instance's project ID string.
func (m *MetadataGCE) ProjectID() (string, error) {
	return metadata.ProjectID()
}

// RegionFromZone returns the region of a zone, e.g. "us-central1" for
// "us-central1-b".
func RegionFromZone(zone string) (string, error) {
	i := strings.LastIndex(zone, "-")
	if i <= 0 || i == len(zone)-1 {
		return "", fmt.Errorf("%q is not a valid zone", zone)
	}
	return zone[:i], nil
}

// DefaultProjectAndRegion returns the project and region of the VM this
// process runs on. Both are empty when not running on GCE.
func DefaultProjectAndRegion(mgce domain.MetadataGCEInterface) (string, string, error) {
	if mgce == nil || !mgce.OnGCE() {
		return "", "", nil
	}
	project, err := mgce.ProjectID()
	if err != nil {
		return "", "", fmt.Errorf("error reading project from GCE metadata: %w", err)
	}
	zone, err := mgce.Zone()
	if err != nil {
		return "", "", fmt.Errorf("error reading zone from GCE metadata: %w", err)
	}
	region, err := RegionFromZone(zone)
	if err != nil {
		return "", "", err
	}
	return project, region, nil
}

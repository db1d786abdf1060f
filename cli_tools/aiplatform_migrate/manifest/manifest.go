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

// Package manifest reads batch migration requests and writes their results.
//
// A manifest is the JSON form of a BatchMigrateResourcesRequest, written
// either as JSON or as YAML:
//
//	parent: projects/my-project/locations/us-central1
//	migrateResourceRequests:
//	- migrateAutomlModelConfig:
//	    model: projects/my-project/locations/us-central1/models/TBL123
//	    modelDisplayName: churn
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/domain"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/storage"
)

// MaxResourcesPerBatch is the most resources one batch migration accepts.
const MaxResourcesPerBatch = 50

// ReadFile returns the contents of a local file or a gs:// object.
func ReadFile(p string, sc domain.StorageClientInterface) ([]byte, error) {
	if storage.IsGCSPath(p) {
		if sc == nil {
			return nil, fmt.Errorf("cannot read %q: no Cloud Storage client", p)
		}
		return sc.ReadObject(p)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", p, err)
	}
	return b, nil
}

// isJSON reports whether data should be parsed as JSON rather than YAML.
func isJSON(p string, data []byte) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return true
	case ".yaml", ".yml":
		return false
	}
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte("{"))
}

// Unmarshal decodes a JSON or YAML document at p into m using the proto
// JSON mapping. Unknown fields are rejected.
func Unmarshal(p string, data []byte, m proto.Message) error {
	if !isJSON(p, data) {
		var err error
		if data, err = yamlToJSON(data); err != nil {
			return fmt.Errorf("error parsing %q as YAML: %w", p, err)
		}
	}
	if err := protojson.Unmarshal(data, m); err != nil {
		return fmt.Errorf("error parsing %q: %w", p, err)
	}
	return nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(doc)
}

// Load reads the manifest at p, local or on Cloud Storage, and checks it.
// A parent in the manifest wins over defaultParent.
func Load(p, defaultParent string, sc domain.StorageClientInterface) (*aiplatformpb.BatchMigrateResourcesRequest, error) {
	data, err := ReadFile(p, sc)
	if err != nil {
		return nil, err
	}
	req := &aiplatformpb.BatchMigrateResourcesRequest{}
	if err := Unmarshal(p, data, req); err != nil {
		return nil, err
	}
	if req.GetParent() == "" {
		req.Parent = defaultParent
	}
	if err := Check(req); err != nil {
		return nil, fmt.Errorf("invalid manifest %q: %w", p, err)
	}
	return req, nil
}

// Check verifies that req names a parent and between 1 and
// MaxResourcesPerBatch resources, each with exactly one config.
func Check(req *aiplatformpb.BatchMigrateResourcesRequest) error {
	if req.GetParent() == "" {
		return fmt.Errorf("parent must be provided")
	}
	n := len(req.GetMigrateResourceRequests())
	if n == 0 {
		return fmt.Errorf("no resources to migrate")
	}
	if n > MaxResourcesPerBatch {
		return fmt.Errorf("%d resources requested, at most %d can be migrated in one batch", n, MaxResourcesPerBatch)
	}
	for i, r := range req.GetMigrateResourceRequests() {
		if r.GetRequest() == nil {
			return fmt.Errorf("migrateResourceRequests[%d] has no migrate config", i)
		}
	}
	return nil
}

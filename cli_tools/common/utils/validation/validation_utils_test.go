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

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testRequest struct {
	Project   string `name:"project" validate:"required"`
	Location  string `name:"location" validate:"required,gcp_location"`
	Parent    string `name:"parent" validate:"omitempty,aiplatform_parent"`
	Operation string `name:"operation" validate:"omitempty,aiplatform_operation"`
	Output    string `name:"output" validate:"oneof=table json yaml"`
	Results   string `name:"results-out" validate:"omitempty,gcs_path"`
}

func validRequest() testRequest {
	return testRequest{
		Project:   "p",
		Location:  "us-central1",
		Parent:    "projects/p/locations/us-central1",
		Operation: "projects/p/locations/us-central1/operations/123",
		Output:    "table",
		Results:   "gs://bucket/results.json.gz",
	}
}

func TestValidateStructValid(t *testing.T) {
	r := validRequest()
	assert.Nil(t, ValidateStruct(&r))

	r.Parent, r.Operation, r.Results = "", "", ""
	assert.Nil(t, ValidateStruct(&r))

	r.Operation = "projects/p/locations/us-central1/migratableResources/x/operations/1"
	assert.Nil(t, ValidateStruct(&r))
}

func TestValidateStructRequired(t *testing.T) {
	r := validRequest()
	r.Project = ""
	assert.EqualError(t, ValidateStruct(&r), "project must be provided")
}

func TestValidateStructCustomTags(t *testing.T) {
	tests := []struct {
		mutate  func(*testRequest)
		wantErr string
	}{
		{func(r *testRequest) { r.Location = "global/us" }, `location must be a location such as us-central1, got "global/us"`},
		{func(r *testRequest) { r.Parent = "projects/p" }, `parent must have the form projects/{project}/locations/{location}, got "projects/p"`},
		{func(r *testRequest) { r.Operation = "operations/1" }, `operation must be an operation name, got "operations/1"`},
		{func(r *testRequest) { r.Output = "csv" }, `output must be one of [table, json, yaml], got "csv"`},
		{func(r *testRequest) { r.Results = "gs://bucket" }, `results-out must be a Cloud Storage object path, got "gs://bucket"`},
	}
	for _, tt := range tests {
		r := validRequest()
		tt.mutate(&r)
		assert.EqualError(t, ValidateStruct(&r), tt.wantErr)
	}
}

func TestValidateStringFlagNotEmpty(t *testing.T) {
	assert.Nil(t, ValidateStringFlagNotEmpty("v", "parent"))
	assert.EqualError(t, ValidateStringFlagNotEmpty("", "parent"), "the flag --parent must be provided")
}

func TestValidateRequestOrFlags(t *testing.T) {
	fields := map[string]bool{"filter": true, "parent": true, "page-size": false}
	assert.Nil(t, ValidateRequestOrFlags("request-file", false, fields))
	assert.Nil(t, ValidateRequestOrFlags("manifest", true, map[string]bool{"automl-model": false}))
	assert.EqualError(t, ValidateRequestOrFlags("request-file", true, fields),
		"--request-file cannot be combined with --filter, --parent")
}

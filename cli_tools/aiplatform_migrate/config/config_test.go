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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/mocks"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestResolveDefaults(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockMetadataGce := mocks.NewMockMetadataGCEInterface(mockCtrl)
	mockMetadataGce.EXPECT().OnGCE().Return(false)

	cfg, err := Resolve(newViper(), mockMetadataGce)
	assert.Nil(t, err)
	assert.Equal(t, &Config{Transport: "grpc", Output: "table"}, cfg)
}

func TestResolveUsesMetadataOnlyForMissingValues(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockMetadataGce := mocks.NewMockMetadataGCEInterface(mockCtrl)
	mockMetadataGce.EXPECT().OnGCE().Return(true)
	mockMetadataGce.EXPECT().ProjectID().Return("vm-project", nil)
	mockMetadataGce.EXPECT().Zone().Return("asia-east1-c", nil)

	v := newViper()
	v.Set(ProjectKey, "flag-project")
	cfg, err := Resolve(v, mockMetadataGce)
	assert.Nil(t, err)
	assert.Equal(t, "flag-project", cfg.Project)
	assert.Equal(t, "asia-east1", cfg.Location)
}

func TestResolveSkipsMetadataWhenComplete(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockMetadataGce := mocks.NewMockMetadataGCEInterface(mockCtrl)

	v := newViper()
	v.Set(ProjectKey, "p")
	v.Set(LocationKey, "us-central1")
	v.Set(OutputKey, "JSON")
	cfg, err := Resolve(v, mockMetadataGce)
	assert.Nil(t, err)
	assert.Equal(t, "json", cfg.Output)
}

func TestResolveValidation(t *testing.T) {
	tests := []struct {
		key, value, wantErr string
	}{
		{OutputKey, "csv", `output must be one of [table, json, yaml], got "csv"`},
		{TransportKey, "http3", `transport must be one of [grpc, rest], got "http3"`},
		{LocationKey, "us central", `location must be a location such as us-central1, got "us central"`},
	}
	for _, tt := range tests {
		v := newViper()
		v.Set(ProjectKey, "p")
		v.Set(LocationKey, "us-central1")
		v.Set(tt.key, tt.value)
		_, err := Resolve(v, nil)
		assert.EqualError(t, err, tt.wantErr)
	}
}

func TestResolveCloudLoggingNeedsProject(t *testing.T) {
	v := newViper()
	v.Set(LocationKey, "us-central1")
	v.Set(CloudLoggingKey, true)
	_, err := Resolve(v, nil)
	assert.EqualError(t, err, "--cloud-logging requires a project")
}

func TestLoadConfigFileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.Nil(t, os.WriteFile(path, []byte("project: file-project\nlocation: europe-west4\noutput: yaml\n"), 0644))
	t.Setenv("AIPLATFORM_MIGRATE_OUTPUT", "json")
	t.Setenv("AIPLATFORM_MIGRATE_LOG_FILE", "/tmp/migrate.log")

	v := newViper()
	assert.Nil(t, Load(v, path))
	cfg, err := Resolve(v, nil)
	assert.Nil(t, err)
	assert.Equal(t, "file-project", cfg.Project)
	assert.Equal(t, "europe-west4", cfg.Location)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "/tmp/migrate.log", cfg.LogFile)
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	err := Load(newViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestParent(t *testing.T) {
	p, err := (&Config{Project: "p", Location: "us-central1"}).Parent()
	assert.Nil(t, err)
	assert.Equal(t, "projects/p/locations/us-central1", p)

	_, err = (&Config{Location: "us-central1"}).Parent()
	assert.EqualError(t, err, "the flag --project must be provided")
	_, err = (&Config{Project: "p"}).Parent()
	assert.EqualError(t, err, "the flag --location must be provided")
}

func TestServiceEndpoint(t *testing.T) {
	assert.Equal(t, "", (&Config{Transport: "grpc"}).ServiceEndpoint())
	assert.Equal(t, "us-central1-aiplatform.googleapis.com:443",
		(&Config{Transport: "grpc", Location: "us-central1"}).ServiceEndpoint())
	assert.Equal(t, "https://us-central1-aiplatform.googleapis.com",
		(&Config{Transport: "rest", Location: "us-central1"}).ServiceEndpoint())
	assert.Equal(t, "localhost:8080",
		(&Config{Transport: "grpc", Location: "us-central1", Endpoint: "localhost:8080"}).ServiceEndpoint())
}

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

package storage

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/mocks"
)

type bufferCloser struct {
	bytes.Buffer
	closed   bool
	closeErr error
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return b.closeErr
}

func TestReadObject(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockStorageObject := mocks.NewMockStorageObjectInterface(mockCtrl)
	mockStorageObject.EXPECT().NewReader().Return(io.NopCloser(strings.NewReader("parent: x")), nil)
	mockStorageObjectCreator := mocks.NewMockStorageObjectCreatorInterface(mockCtrl)
	mockStorageObjectCreator.EXPECT().GetObject("manifests", "runs/2026/manifest.yaml").Return(mockStorageObject)

	sc := Client{Soc: mockStorageObjectCreator}
	b, err := sc.ReadObject("gs://manifests/runs/2026/manifest.yaml")
	assert.Nil(t, err)
	assert.Equal(t, "parent: x", string(b))
}

func TestReadObjectErrorWhenReaderFails(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockStorageObject := mocks.NewMockStorageObjectInterface(mockCtrl)
	mockStorageObject.EXPECT().NewReader().Return(nil, fmt.Errorf("object doesn't exist"))
	mockStorageObjectCreator := mocks.NewMockStorageObjectCreatorInterface(mockCtrl)
	mockStorageObjectCreator.EXPECT().GetObject("bucket", "manifest.json").Return(mockStorageObject)

	sc := Client{Soc: mockStorageObjectCreator}
	_, err := sc.ReadObject("gs://bucket/manifest.json")
	assert.EqualError(t, err, "error reading Cloud Storage object `gs://bucket/manifest.json`: object doesn't exist")
}

func TestReadObjectErrorWhenInvalidGCSPath(t *testing.T) {
	sc := Client{}
	for _, p := range []string{"NOT_GCS_PATH", "gs://bucket", "gs://bucket/", "gs://bucket/dir/"} {
		_, err := sc.ReadObject(p)
		assert.NotNil(t, err, p)
	}
}

func TestWriteObject(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	w := &bufferCloser{}
	mockStorageObject := mocks.NewMockStorageObjectInterface(mockCtrl)
	mockStorageObject.EXPECT().NewWriter().Return(w)
	mockStorageObjectCreator := mocks.NewMockStorageObjectCreatorInterface(mockCtrl)
	mockStorageObjectCreator.EXPECT().GetObject("results", "out.json").Return(mockStorageObject)

	sc := Client{Soc: mockStorageObjectCreator}
	err := sc.WriteObject("gs://results/out.json", strings.NewReader(`{"migrateResourceResponses":[]}`))
	assert.Nil(t, err)
	assert.True(t, w.closed)
	assert.Equal(t, `{"migrateResourceResponses":[]}`, w.String())
}

func TestWriteObjectErrorWhenCloseFails(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	w := &bufferCloser{closeErr: fmt.Errorf("precondition failed")}
	mockStorageObject := mocks.NewMockStorageObjectInterface(mockCtrl)
	mockStorageObject.EXPECT().NewWriter().Return(w)
	mockStorageObjectCreator := mocks.NewMockStorageObjectCreatorInterface(mockCtrl)
	mockStorageObjectCreator.EXPECT().GetObject("results", "out.json").Return(mockStorageObject)

	sc := Client{Soc: mockStorageObjectCreator}
	err := sc.WriteObject("gs://results/out.json", strings.NewReader("{}"))
	assert.EqualError(t, err, "error writing Cloud Storage object `gs://results/out.json`: precondition failed")
}

func TestSplitGCSPath(t *testing.T) {
	tests := []struct {
		input          string
		bucket, object string
		wantErr        bool
	}{
		{"gs://bucket", "bucket", "", false},
		{"gs://bucket/", "bucket", "", false},
		{"gs://bucket/a/b.json", "bucket", "a/b.json", false},
		{"gs://Bucket/a", "", "", true},
		{"/local/file.json", "", "", true},
	}
	for _, tt := range tests {
		bucket, object, err := SplitGCSPath(tt.input)
		assert.Equal(t, tt.wantErr, err != nil, tt.input)
		assert.Equal(t, tt.bucket, bucket, tt.input)
		assert.Equal(t, tt.object, object, tt.input)
	}
}

func TestIsGCSPath(t *testing.T) {
	assert.True(t, IsGCSPath("gs://b/o"))
	assert.False(t, IsGCSPath("results.json.gz"))
}

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

package migration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/encoding/protojson"
)

func TestNewClientUnknownTransport(t *testing.T) {
	c, err := NewClient(context.Background(), Transport("carrier-pigeon"))
	assert.Nil(t, c)
	assert.EqualError(t, err, `unknown transport "carrier-pigeon"`)
}

func TestRESTClientSearch(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := protojson.Marshal(&aiplatformpb.SearchMigratableResourcesResponse{
			MigratableResources: []*aiplatformpb.MigratableResource{{
				Resource: &aiplatformpb.MigratableResource_AutomlModel_{
					AutomlModel: &aiplatformpb.MigratableResource_AutomlModel{Model: "projects/p/locations/l/models/m"},
				},
			}},
		})
		w.Write(b)
	}))
	defer ts.Close()

	c, err := NewClient(context.Background(), REST, option.WithEndpoint(ts.URL), option.WithoutAuthentication())
	if !assert.NoError(t, err) {
		return
	}
	defer c.Close()

	it := c.SearchMigratableResources(context.Background(), &aiplatformpb.SearchMigratableResourcesRequest{Parent: "projects/p/locations/l"})
	r, err := it.Next()
	assert.NoError(t, err)
	assert.Equal(t, "projects/p/locations/l/models/m", r.GetAutomlModel().GetModel())
	_, err = it.Next()
	assert.Equal(t, iterator.Done, err)
	assert.Equal(t, "/v1/projects/p/locations/l/migratableResources:search", gotPath)

	op := c.BatchMigrateResourcesOperation("projects/p/locations/l/operations/1")
	assert.Equal(t, "projects/p/locations/l/operations/1", op.Name())
	assert.False(t, op.Done())
}

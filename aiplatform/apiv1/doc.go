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

// Package aiplatform is a client for the Vertex AI Migration Service.
//
// The service migrates resources from automl.googleapis.com,
// datalabeling.googleapis.com and ml.googleapis.com to Vertex AI.
//
// NewMigrationClient serves calls over gRPC through the generated client in
// cloud.google.com/go/aiplatform/apiv1. NewMigrationRESTClient serves the
// same methods over HTTP/JSON. Both return a *MigrationClient.
//
//	ctx := context.Background()
//	c, err := aiplatform.NewMigrationClient(ctx)
//	if err != nil {
//		// TODO: Handle error.
//	}
//	defer c.Close()
//
//	it := c.SearchMigratableResources(ctx, &aiplatformpb.SearchMigratableResourcesRequest{
//		Parent: "projects/my-project/locations/us-central1",
//	})
//	for {
//		resp, err := it.Next()
//		if err == iterator.Done {
//			break
//		}
//		if err != nil {
//			// TODO: Handle error.
//		}
//		_ = resp
//	}
//
// The ctx passed to a constructor is used for authentication and dialing
// only. Each method uses the ctx given to it.
package aiplatform

import (
	gapic "cloud.google.com/go/aiplatform/apiv1"

	"github.com/iLLRaps3/python-aiplatform-sub001/aiplatform/internal"
)

// DefaultAuthScopes reports the default set of authentication scopes to use with this package.
func DefaultAuthScopes() []string {
	return gapic.DefaultAuthScopes()
}

func getVersionClient() string {
	return internal.Version
}

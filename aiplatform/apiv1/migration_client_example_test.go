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

package aiplatform_test

import (
	"context"

	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	iampb "cloud.google.com/go/iam/apiv1/iampb"
	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/api/iterator"
	locationpb "google.golang.org/genproto/googleapis/cloud/location"

	aiplatform "github.com/iLLRaps3/python-aiplatform-sub001/aiplatform/apiv1"
)

func ExampleNewMigrationClient() {
	ctx := context.Background()
	c, err := aiplatform.NewMigrationClient(ctx)
	if err != nil {
		// TODO: Handle error.
	}
	defer c.Close()

	// TODO: Use client.
	_ = c
}

func ExampleNewMigrationRESTClient() {
	ctx := context.Background()
	c, err := aiplatform.NewMigrationRESTClient(ctx)
	if err != nil {
		// TODO: Handle error.
	}
	defer c.Close()

	// TODO: Use client.
	_ = c
}

func ExampleMigrationClient_SearchMigratableResources() {
	ctx := context.Background()
	c, err := aiplatform.NewMigrationClient(ctx)
	if err != nil {
		// TODO: Handle error.
	}
	defer c.Close()

	req := &aiplatformpb.SearchMigratableResourcesRequest{
		Parent: aiplatform.CommonLocationPath("[PROJECT]", "[LOCATION]"),
	}
	it := c.SearchMigratableResources(ctx, req)
	for {
		resp, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			// TODO: Handle error.
		}
		// TODO: Use resp.
		_ = resp
	}
}

func ExampleMigrationClient_SearchMigratableResources_all() {
	ctx := context.Background()
	c, err := aiplatform.NewMigrationClient(ctx)
	if err != nil {
		// TODO: Handle error.
	}
	defer c.Close()

	req := &aiplatformpb.SearchMigratableResourcesRequest{
		Parent: aiplatform.CommonLocationPath("[PROJECT]", "[LOCATION]"),
	}
	for resp, err := range c.SearchMigratableResources(ctx, req).All() {
		if err != nil {
			// TODO: Handle error.
		}
		// TODO: Use resp.
		_ = resp
	}
}

func ExampleMigrationClient_BatchMigrateResources() {
	ctx := context.Background()
	c, err := aiplatform.NewMigrationClient(ctx)
	if err != nil {
		// TODO: Handle error.
	}
	defer c.Close()

	req := &aiplatformpb.BatchMigrateResourcesRequest{
		Parent: aiplatform.CommonLocationPath("[PROJECT]", "[LOCATION]"),
		MigrateResourceRequests: []*aiplatformpb.MigrateResourceRequest{{
			Request: &aiplatformpb.MigrateResourceRequest_MigrateAutomlModelConfig_{
				MigrateAutomlModelConfig: &aiplatformpb.MigrateResourceRequest_MigrateAutomlModelConfig{
					Model: aiplatform.ModelPath("[PROJECT]", "[LOCATION]", "[MODEL]"),
				},
			},
		}},
	}
	op, err := c.BatchMigrateResources(ctx, req)
	if err != nil {
		// TODO: Handle error.
	}

	resp, err := op.Wait(ctx)
	if err != nil {
		// TODO: Handle error.
	}
	// TODO: Use resp.
	_ = resp
}

func ExampleMigrationClient_GetLocation() {
	ctx := context.Background()
	c, err := aiplatform.NewMigrationClient(ctx)
	if err != nil {
		// TODO: Handle error.
	}
	defer c.Close()

	req := &locationpb.GetLocationRequest{
		Name: aiplatform.CommonLocationPath("[PROJECT]", "[LOCATION]"),
	}
	resp, err := c.GetLocation(ctx, req)
	if err != nil {
		// TODO: Handle error.
	}
	// TODO: Use resp.
	_ = resp
}

func ExampleMigrationClient_GetIamPolicy() {
	ctx := context.Background()
	c, err := aiplatform.NewMigrationClient(ctx)
	if err != nil {
		// TODO: Handle error.
	}
	defer c.Close()

	req := &iampb.GetIamPolicyRequest{
		Resource: aiplatform.ModelPath("[PROJECT]", "[LOCATION]", "[MODEL]"),
	}
	resp, err := c.GetIamPolicy(ctx, req)
	if err != nil {
		// TODO: Handle error.
	}
	// TODO: Use resp.
	_ = resp
}

func ExampleMigrationClient_ListOperations() {
	ctx := context.Background()
	c, err := aiplatform.NewMigrationClient(ctx)
	if err != nil {
		// TODO: Handle error.
	}
	defer c.Close()

	req := &longrunningpb.ListOperationsRequest{
		Name: aiplatform.CommonLocationPath("[PROJECT]", "[LOCATION]"),
	}
	it := c.ListOperations(ctx, req)
	for {
		resp, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			// TODO: Handle error.
		}
		// TODO: Use resp.
		_ = resp
	}
}

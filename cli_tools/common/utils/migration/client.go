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

// Package migration adapts the generated migration service client to
// domain.MigrationClientInterface.
package migration

import (
	"context"
	"fmt"

	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	iampb "cloud.google.com/go/iam/apiv1/iampb"
	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	locationpb "google.golang.org/genproto/googleapis/cloud/location"
	"google.golang.org/api/option"

	aiplatform "github.com/iLLRaps3/python-aiplatform-sub001/aiplatform/apiv1"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/domain"
)

// Transport selects the wire protocol of the underlying client.
type Transport string

const (
	// GRPC dials the service over gRPC.
	GRPC Transport = "grpc"
	// REST talks HTTP/JSON to the service.
	REST Transport = "rest"
)

// Client implements domain.MigrationClientInterface on top of
// aiplatform.MigrationClient.
type Client struct {
	c *aiplatform.MigrationClient
}

// NewClient creates a Client using transport t.
func NewClient(ctx context.Context, t Transport, opts ...option.ClientOption) (*Client, error) {
	var (
		c   *aiplatform.MigrationClient
		err error
	)
	switch t {
	case GRPC, "":
		c, err = aiplatform.NewMigrationClient(ctx, opts...)
	case REST:
		c, err = aiplatform.NewMigrationRESTClient(ctx, opts...)
	default:
		return nil, fmt.Errorf("unknown transport %q", t)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating migration client: %w", err)
	}
	return &Client{c: c}, nil
}

// SearchMigratableResources returns an iterator over migratable resources.
func (m *Client) SearchMigratableResources(ctx context.Context, req *aiplatformpb.SearchMigratableResourcesRequest) domain.MigratableResourceIteratorInterface {
	return m.c.SearchMigratableResources(ctx, req)
}

// BatchMigrateResources starts a batch migration.
func (m *Client) BatchMigrateResources(ctx context.Context, req *aiplatformpb.BatchMigrateResourcesRequest) (domain.BatchMigrateOperationInterface, error) {
	op, err := m.c.BatchMigrateResources(ctx, req)
	if err != nil {
		return nil, err
	}
	return op, nil
}

// BatchMigrateResourcesOperation resumes a batch migration by operation name.
func (m *Client) BatchMigrateResourcesOperation(name string) domain.BatchMigrateOperationInterface {
	return m.c.BatchMigrateResourcesOperation(name)
}

// GetLocation gets a location.
func (m *Client) GetLocation(ctx context.Context, req *locationpb.GetLocationRequest) (*locationpb.Location, error) {
	return m.c.GetLocation(ctx, req)
}

// ListLocations lists locations.
func (m *Client) ListLocations(ctx context.Context, req *locationpb.ListLocationsRequest) domain.LocationIteratorInterface {
	return m.c.ListLocations(ctx, req)
}

// GetIamPolicy gets the IAM policy of a resource.
func (m *Client) GetIamPolicy(ctx context.Context, req *iampb.GetIamPolicyRequest) (*iampb.Policy, error) {
	return m.c.GetIamPolicy(ctx, req)
}

// SetIamPolicy replaces the IAM policy of a resource.
func (m *Client) SetIamPolicy(ctx context.Context, req *iampb.SetIamPolicyRequest) (*iampb.Policy, error) {
	return m.c.SetIamPolicy(ctx, req)
}

// TestIamPermissions returns the subset of permissions the caller holds.
func (m *Client) TestIamPermissions(ctx context.Context, req *iampb.TestIamPermissionsRequest) (*iampb.TestIamPermissionsResponse, error) {
	return m.c.TestIamPermissions(ctx, req)
}

// GetOperation gets a long-running operation.
func (m *Client) GetOperation(ctx context.Context, req *longrunningpb.GetOperationRequest) (*longrunningpb.Operation, error) {
	return m.c.GetOperation(ctx, req)
}

// ListOperations lists long-running operations.
func (m *Client) ListOperations(ctx context.Context, req *longrunningpb.ListOperationsRequest) domain.OperationIteratorInterface {
	return m.c.ListOperations(ctx, req)
}

// CancelOperation cancels a long-running operation.
func (m *Client) CancelOperation(ctx context.Context, req *longrunningpb.CancelOperationRequest) error {
	return m.c.CancelOperation(ctx, req)
}

// DeleteOperation deletes a long-running operation.
func (m *Client) DeleteOperation(ctx context.Context, req *longrunningpb.DeleteOperationRequest) error {
	return m.c.DeleteOperation(ctx, req)
}

// Close closes the underlying client.
func (m *Client) Close() error {
	return m.c.Close()
}

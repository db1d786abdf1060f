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

package domain

import (
	"context"
	"io"

	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	iampb "cloud.google.com/go/iam/apiv1/iampb"
	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	gax "github.com/googleapis/gax-go/v2"
	locationpb "google.golang.org/genproto/googleapis/cloud/location"
)

// MigrationClientInterface represents the Vertex AI migration service client
type MigrationClientInterface interface {
	SearchMigratableResources(ctx context.Context, req *aiplatformpb.SearchMigratableResourcesRequest) MigratableResourceIteratorInterface
	BatchMigrateResources(ctx context.Context, req *aiplatformpb.BatchMigrateResourcesRequest) (BatchMigrateOperationInterface, error)
	BatchMigrateResourcesOperation(name string) BatchMigrateOperationInterface
	GetLocation(ctx context.Context, req *locationpb.GetLocationRequest) (*locationpb.Location, error)
	ListLocations(ctx context.Context, req *locationpb.ListLocationsRequest) LocationIteratorInterface
	GetIamPolicy(ctx context.Context, req *iampb.GetIamPolicyRequest) (*iampb.Policy, error)
	SetIamPolicy(ctx context.Context, req *iampb.SetIamPolicyRequest) (*iampb.Policy, error)
	TestIamPermissions(ctx context.Context, req *iampb.TestIamPermissionsRequest) (*iampb.TestIamPermissionsResponse, error)
	GetOperation(ctx context.Context, req *longrunningpb.GetOperationRequest) (*longrunningpb.Operation, error)
	ListOperations(ctx context.Context, req *longrunningpb.ListOperationsRequest) OperationIteratorInterface
	CancelOperation(ctx context.Context, req *longrunningpb.CancelOperationRequest) error
	DeleteOperation(ctx context.Context, req *longrunningpb.DeleteOperationRequest) error
	Close() error
}

// MigratableResourceIteratorInterface represents a migratable resource search iterator
type MigratableResourceIteratorInterface interface {
	Next() (*aiplatformpb.MigratableResource, error)
}

// LocationIteratorInterface represents a location iterator
type LocationIteratorInterface interface {
	Next() (*locationpb.Location, error)
}

// OperationIteratorInterface represents a long-running operation iterator
type OperationIteratorInterface interface {
	Next() (*longrunningpb.Operation, error)
}

// BatchMigrateOperationInterface represents a running batch migration
type BatchMigrateOperationInterface interface {
	Name() string
	Done() bool
	Poll(ctx context.Context, opts ...gax.CallOption) (*aiplatformpb.BatchMigrateResourcesResponse, error)
	Metadata() (*aiplatformpb.BatchMigrateResourcesOperationMetadata, error)
}

// StorageClientInterface represents GCS storage client
type StorageClientInterface interface {
	ReadObject(gcsPath string) ([]byte, error)
	WriteObject(gcsPath string, reader io.Reader) error
	Close() error
}

// StorageObjectCreatorInterface represents GCS object creator
type StorageObjectCreatorInterface interface {
	GetObject(bucket string, objectPath string) StorageObjectInterface
}

// StorageObjectInterface represents GCS Object
type StorageObjectInterface interface {
	NewReader() (io.ReadCloser, error)
	NewWriter() io.WriteCloser
	ObjectName() string
}

// MetadataGCEInterface represents GCE metadata
type MetadataGCEInterface interface {
	OnGCE() bool
	Zone() (string, error)
	ProjectID() (string, error)
}

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

package aiplatform

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	iampb "cloud.google.com/go/iam/apiv1/iampb"
	"cloud.google.com/go/longrunning"
	lroauto "cloud.google.com/go/longrunning/autogen"
	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	gax "github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
	"google.golang.org/api/option/internaloption"
	httptransport "google.golang.org/api/transport/http"
	locationpb "google.golang.org/genproto/googleapis/cloud/location"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func defaultMigrationRESTCallOptions() *MigrationCallOptions {
	retry := map[[2]string][]gax.CallOption{
		{"default", "idempotent"}: {
			gax.WithRetry(func() gax.Retryer {
				return gax.OnHTTPCodes(gax.Backoff{
					Initial:    100 * time.Millisecond,
					Max:        60000 * time.Millisecond,
					Multiplier: 1.3,
				},
					http.StatusGatewayTimeout,
					http.StatusServiceUnavailable)
			}),
		},
	}
	return &MigrationCallOptions{
		SearchMigratableResources: retry[[2]string{"default", "non_idempotent"}],
		BatchMigrateResources:     retry[[2]string{"default", "non_idempotent"}],
		GetLocation:               retry[[2]string{"default", "idempotent"}],
		ListLocations:             retry[[2]string{"default", "idempotent"}],
		GetIamPolicy:              retry[[2]string{"default", "non_idempotent"}],
		SetIamPolicy:              retry[[2]string{"default", "non_idempotent"}],
		TestIamPermissions:        retry[[2]string{"default", "non_idempotent"}],
		CancelOperation:           retry[[2]string{"default", "non_idempotent"}],
		DeleteOperation:           retry[[2]string{"default", "non_idempotent"}],
		GetOperation:              retry[[2]string{"default", "idempotent"}],
		ListOperations:            retry[[2]string{"default", "idempotent"}],
		WaitOperation:             retry[[2]string{"default", "non_idempotent"}],
	}
}

type migrationRESTClient struct {
	// The http endpoint to connect to.
	endpoint string

	// The http client.
	httpClient *http.Client

	// LROClient is used internally to handle long-running operations.
	// It is exposed so that its CallOptions can be modified if required.
	// Users should not Close this client.
	LROClient **lroauto.OperationsClient

	// The x-goog-* headers to be sent with each request.
	xGoogHeaders []string

	// Points back to the CallOptions field of the containing MigrationClient
	CallOptions **MigrationCallOptions
}

// NewMigrationRESTClient creates a new migration service rest client.
//
// A service that migrates resources from automl.googleapis.com,
// datalabeling.googleapis.com and ml.googleapis.com to Vertex AI.
func NewMigrationRESTClient(ctx context.Context, opts ...option.ClientOption) (*MigrationClient, error) {
	clientOpts := append(defaultMigrationRESTClientOptions(), opts...)
	httpClient, endpoint, err := httptransport.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}

	callOpts := defaultMigrationRESTCallOptions()
	c := &migrationRESTClient{
		endpoint:    endpoint,
		httpClient:  httpClient,
		CallOptions: &callOpts,
	}
	c.setGoogleClientInfo()

	lroOpts := []option.ClientOption{
		option.WithHTTPClient(httpClient),
		option.WithEndpoint(endpoint),
	}
	opClient, err := lroauto.NewOperationsRESTClient(ctx, lroOpts...)
	if err != nil {
		return nil, err
	}
	c.LROClient = &opClient

	return &MigrationClient{internalClient: c, CallOptions: callOpts, LROClient: opClient}, nil
}

func defaultMigrationRESTClientOptions() []option.ClientOption {
	return []option.ClientOption{
		internaloption.WithDefaultEndpoint("https://aiplatform.googleapis.com"),
		internaloption.WithDefaultEndpointTemplate("https://aiplatform.UNIVERSE_DOMAIN"),
		internaloption.WithDefaultMTLSEndpoint("https://aiplatform.mtls.googleapis.com"),
		internaloption.WithDefaultUniverseDomain("googleapis.com"),
		internaloption.WithDefaultAudience("https://aiplatform.googleapis.com/"),
		internaloption.WithDefaultScopes(DefaultAuthScopes()...),
	}
}

// setGoogleClientInfo sets the name and version of the application in
// the `x-goog-api-client` header passed on each request. Intended for
// use by Google-written clients.
func (c *migrationRESTClient) setGoogleClientInfo(keyval ...string) {
	kv := append([]string{"gl-go", gax.GoVersion}, keyval...)
	kv = append(kv, "gapic", getVersionClient(), "gax", gax.Version, "rest", "UNKNOWN")
	c.xGoogHeaders = []string{
		"x-goog-api-client", gax.XGoogHeader(kv...),
	}
}

// Close closes the connection to the API service. The user should invoke this when
// the client is no longer required.
func (c *migrationRESTClient) Close() error {
	// Replace httpClient with nil to force cleanup.
	c.httpClient = nil
	return nil
}

// headers returns the outgoing header set for one call routed on key=value.
func (c *migrationRESTClient) headers(ctx context.Context, key, value string, body bool) http.Header {
	hds := []string{"x-goog-request-params", fmt.Sprintf("%s=%v", key, url.QueryEscape(value))}
	hds = append(append([]string{}, c.xGoogHeaders...), hds...)
	if body {
		hds = append(hds, "Content-Type", "application/json")
	}
	return gax.BuildHeaders(ctx, hds...)
}

// do runs one REST round trip under gax.Invoke and decodes the body into resp
// when resp is non-nil.
func (c *migrationRESTClient) do(ctx context.Context, method string, baseUrl *url.URL, headers http.Header, body []byte, resp proto.Message, opts ...gax.CallOption) error {
	unm := protojson.UnmarshalOptions{AllowPartial: true, DiscardUnknown: true}
	return gax.Invoke(ctx, func(ctx context.Context, settings gax.CallSettings) error {
		if settings.Path != "" {
			baseUrl.Path = settings.Path
		}
		httpReq, err := http.NewRequest(method, baseUrl.String(), bytes.NewReader(body))
		if err != nil {
			return err
		}
		httpReq.Header = headers

		buf, err := executeHTTPRequest(ctx, c.httpClient, httpReq)
		if err != nil {
			return err
		}
		if resp == nil {
			return nil
		}
		return unm.Unmarshal(buf, resp)
	}, opts...)
}

func restQuery() url.Values {
	params := url.Values{}
	params.Add("$alt", "json;enum-encoding=int")
	return params
}

func marshalRequest(req proto.Message) ([]byte, error) {
	m := protojson.MarshalOptions{AllowPartial: true, UseEnumNumbers: true}
	return m.Marshal(req)
}

// SearchMigratableResources searches all of the resources in
// automl.googleapis.com, datalabeling.googleapis.com and ml.googleapis.com
// that can be migrated to Vertex AI's given location.
func (c *migrationRESTClient) SearchMigratableResources(ctx context.Context, req *aiplatformpb.SearchMigratableResourcesRequest, opts ...gax.CallOption) *MigratableResourceIterator {
	it := &MigratableResourceIterator{}
	req = proto.Clone(req).(*aiplatformpb.SearchMigratableResourcesRequest)
	opts = append((*c.CallOptions).SearchMigratableResources[0:len((*c.CallOptions).SearchMigratableResources):len((*c.CallOptions).SearchMigratableResources)], opts...)
	it.InternalFetch = func(pageSize int, pageToken string) ([]*aiplatformpb.MigratableResource, string, error) {
		resp := &aiplatformpb.SearchMigratableResourcesResponse{}
		if pageToken != "" {
			req.PageToken = pageToken
		}
		if pageSize != 0 {
			req.PageSize = clampPageSize(pageSize)
		}
		jsonReq, err := marshalRequest(req)
		if err != nil {
			return nil, "", err
		}

		baseUrl, err := url.Parse(c.endpoint)
		if err != nil {
			return nil, "", err
		}
		baseUrl.Path += fmt.Sprintf("/v1/%v/migratableResources:search", req.GetParent())
		baseUrl.RawQuery = restQuery().Encode()

		headers := c.headers(ctx, "parent", req.GetParent(), true)
		if err := c.do(ctx, http.MethodPost, baseUrl, headers, jsonReq, resp, opts...); err != nil {
			return nil, "", err
		}
		it.Response = resp
		return resp.GetMigratableResources(), resp.GetNextPageToken(), nil
	}

	return it.start(req.GetPageSize(), req.GetPageToken())
}

// BatchMigrateResources batch migrates resources from ml.googleapis.com, automl.googleapis.com,
// and datalabeling.googleapis.com to Vertex AI.
func (c *migrationRESTClient) BatchMigrateResources(ctx context.Context, req *aiplatformpb.BatchMigrateResourcesRequest, opts ...gax.CallOption) (*BatchMigrateResourcesOperation, error) {
	jsonReq, err := marshalRequest(req)
	if err != nil {
		return nil, err
	}

	baseUrl, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, err
	}
	baseUrl.Path += fmt.Sprintf("/v1/%v/migratableResources:batchMigrate", req.GetParent())
	baseUrl.RawQuery = restQuery().Encode()

	headers := c.headers(ctx, "parent", req.GetParent(), true)
	opts = append((*c.CallOptions).BatchMigrateResources[0:len((*c.CallOptions).BatchMigrateResources):len((*c.CallOptions).BatchMigrateResources)], opts...)
	resp := &longrunningpb.Operation{}
	if err := c.do(ctx, http.MethodPost, baseUrl, headers, jsonReq, resp, opts...); err != nil {
		return nil, err
	}

	override := fmt.Sprintf("/v1/%s", resp.GetName())
	return &BatchMigrateResourcesOperation{lro: &restBatchMigrateLRO{
		lro:      longrunning.InternalNewOperation(*c.LROClient, resp),
		pollPath: override,
	}}, nil
}

// BatchMigrateResourcesOperation returns a new BatchMigrateResourcesOperation from a given name.
// The name must be that of a previously created BatchMigrateResourcesOperation, possibly from a different process.
func (c *migrationRESTClient) BatchMigrateResourcesOperation(name string) *BatchMigrateResourcesOperation {
	override := fmt.Sprintf("/v1/%s", name)
	return &BatchMigrateResourcesOperation{lro: &restBatchMigrateLRO{
		lro:      longrunning.InternalNewOperation(*c.LROClient, &longrunningpb.Operation{Name: name}),
		pollPath: override,
	}}
}

// GetLocation gets information about a location.
func (c *migrationRESTClient) GetLocation(ctx context.Context, req *locationpb.GetLocationRequest, opts ...gax.CallOption) (*locationpb.Location, error) {
	baseUrl, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, err
	}
	baseUrl.Path += fmt.Sprintf("/v1/%v", req.GetName())
	baseUrl.RawQuery = restQuery().Encode()

	headers := c.headers(ctx, "name", req.GetName(), false)
	opts = append((*c.CallOptions).GetLocation[0:len((*c.CallOptions).GetLocation):len((*c.CallOptions).GetLocation)], opts...)
	resp := &locationpb.Location{}
	if err := c.do(ctx, http.MethodGet, baseUrl, headers, nil, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListLocations lists information about the supported locations for this service.
func (c *migrationRESTClient) ListLocations(ctx context.Context, req *locationpb.ListLocationsRequest, opts ...gax.CallOption) *LocationIterator {
	it := &LocationIterator{}
	req = proto.Clone(req).(*locationpb.ListLocationsRequest)
	opts = append((*c.CallOptions).ListLocations[0:len((*c.CallOptions).ListLocations):len((*c.CallOptions).ListLocations)], opts...)
	it.InternalFetch = func(pageSize int, pageToken string) ([]*locationpb.Location, string, error) {
		resp := &locationpb.ListLocationsResponse{}
		if pageToken != "" {
			req.PageToken = pageToken
		}
		if pageSize != 0 {
			req.PageSize = clampPageSize(pageSize)
		}
		baseUrl, err := url.Parse(c.endpoint)
		if err != nil {
			return nil, "", err
		}
		baseUrl.Path += fmt.Sprintf("/v1/%v/locations", req.GetName())

		params := restQuery()
		if req.GetFilter() != "" {
			params.Add("filter", fmt.Sprintf("%v", req.GetFilter()))
		}
		if req.GetPageSize() != 0 {
			params.Add("pageSize", fmt.Sprintf("%v", req.GetPageSize()))
		}
		if req.GetPageToken() != "" {
			params.Add("pageToken", fmt.Sprintf("%v", req.GetPageToken()))
		}
		baseUrl.RawQuery = params.Encode()

		headers := c.headers(ctx, "name", req.GetName(), false)
		if err := c.do(ctx, http.MethodGet, baseUrl, headers, nil, resp, opts...); err != nil {
			return nil, "", err
		}
		it.Response = resp
		return resp.GetLocations(), resp.GetNextPageToken(), nil
	}

	return it.start(req.GetPageSize(), req.GetPageToken())
}

// GetIamPolicy gets the access control policy for a resource. Returns an empty policy
// if the resource exists and does not have a policy set.
func (c *migrationRESTClient) GetIamPolicy(ctx context.Context, req *iampb.GetIamPolicyRequest, opts ...gax.CallOption) (*iampb.Policy, error) {
	baseUrl, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, err
	}
	baseUrl.Path += fmt.Sprintf("/v1/%v:getIamPolicy", req.GetResource())

	params := restQuery()
	if req.GetOptions().GetRequestedPolicyVersion() != 0 {
		params.Add("options.requestedPolicyVersion", fmt.Sprintf("%v", req.GetOptions().GetRequestedPolicyVersion()))
	}
	baseUrl.RawQuery = params.Encode()

	headers := c.headers(ctx, "resource", req.GetResource(), false)
	opts = append((*c.CallOptions).GetIamPolicy[0:len((*c.CallOptions).GetIamPolicy):len((*c.CallOptions).GetIamPolicy)], opts...)
	resp := &iampb.Policy{}
	if err := c.do(ctx, http.MethodPost, baseUrl, headers, nil, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// SetIamPolicy sets the access control policy on the specified resource. Replaces
// any existing policy.
//
// Can return NOT_FOUND, INVALID_ARGUMENT, and PERMISSION_DENIED
// errors.
func (c *migrationRESTClient) SetIamPolicy(ctx context.Context, req *iampb.SetIamPolicyRequest, opts ...gax.CallOption) (*iampb.Policy, error) {
	jsonReq, err := marshalRequest(req)
	if err != nil {
		return nil, err
	}

	baseUrl, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, err
	}
	baseUrl.Path += fmt.Sprintf("/v1/%v:setIamPolicy", req.GetResource())
	baseUrl.RawQuery = restQuery().Encode()

	headers := c.headers(ctx, "resource", req.GetResource(), true)
	opts = append((*c.CallOptions).SetIamPolicy[0:len((*c.CallOptions).SetIamPolicy):len((*c.CallOptions).SetIamPolicy)], opts...)
	resp := &iampb.Policy{}
	if err := c.do(ctx, http.MethodPost, baseUrl, headers, jsonReq, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// TestIamPermissions returns permissions that a caller has on the specified resource. If the
// resource does not exist, this will return an empty set of
// permissions, not a NOT_FOUND error.
func (c *migrationRESTClient) TestIamPermissions(ctx context.Context, req *iampb.TestIamPermissionsRequest, opts ...gax.CallOption) (*iampb.TestIamPermissionsResponse, error) {
	baseUrl, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, err
	}
	baseUrl.Path += fmt.Sprintf("/v1/%v:testIamPermissions", req.GetResource())

	params := restQuery()
	for _, p := range req.GetPermissions() {
		params.Add("permissions", p)
	}
	baseUrl.RawQuery = params.Encode()

	headers := c.headers(ctx, "resource", req.GetResource(), false)
	opts = append((*c.CallOptions).TestIamPermissions[0:len((*c.CallOptions).TestIamPermissions):len((*c.CallOptions).TestIamPermissions)], opts...)
	resp := &iampb.TestIamPermissionsResponse{}
	if err := c.do(ctx, http.MethodPost, baseUrl, headers, nil, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// CancelOperation is a utility method from google.longrunning.Operations.
func (c *migrationRESTClient) CancelOperation(ctx context.Context, req *longrunningpb.CancelOperationRequest, opts ...gax.CallOption) error {
	baseUrl, err := url.Parse(c.endpoint)
	if err != nil {
		return err
	}
	baseUrl.Path += fmt.Sprintf("/v1/%v:cancel", req.GetName())
	baseUrl.RawQuery = restQuery().Encode()

	headers := c.headers(ctx, "name", req.GetName(), false)
	opts = append((*c.CallOptions).CancelOperation[0:len((*c.CallOptions).CancelOperation):len((*c.CallOptions).CancelOperation)], opts...)
	return c.do(ctx, http.MethodPost, baseUrl, headers, nil, nil, opts...)
}

// DeleteOperation is a utility method from google.longrunning.Operations.
func (c *migrationRESTClient) DeleteOperation(ctx context.Context, req *longrunningpb.DeleteOperationRequest, opts ...gax.CallOption) error {
	baseUrl, err := url.Parse(c.endpoint)
	if err != nil {
		return err
	}
	baseUrl.Path += fmt.Sprintf("/v1/%v", req.GetName())
	baseUrl.RawQuery = restQuery().Encode()

	headers := c.headers(ctx, "name", req.GetName(), false)
	opts = append((*c.CallOptions).DeleteOperation[0:len((*c.CallOptions).DeleteOperation):len((*c.CallOptions).DeleteOperation)], opts...)
	return c.do(ctx, http.MethodDelete, baseUrl, headers, nil, nil, opts...)
}

// GetOperation is a utility method from google.longrunning.Operations.
func (c *migrationRESTClient) GetOperation(ctx context.Context, req *longrunningpb.GetOperationRequest, opts ...gax.CallOption) (*longrunningpb.Operation, error) {
	baseUrl, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, err
	}
	baseUrl.Path += fmt.Sprintf("/v1/%v", req.GetName())
	baseUrl.RawQuery = restQuery().Encode()

	headers := c.headers(ctx, "name", req.GetName(), false)
	opts = append((*c.CallOptions).GetOperation[0:len((*c.CallOptions).GetOperation):len((*c.CallOptions).GetOperation)], opts...)
	resp := &longrunningpb.Operation{}
	if err := c.do(ctx, http.MethodGet, baseUrl, headers, nil, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListOperations is a utility method from google.longrunning.Operations.
func (c *migrationRESTClient) ListOperations(ctx context.Context, req *longrunningpb.ListOperationsRequest, opts ...gax.CallOption) *OperationIterator {
	it := &OperationIterator{}
	req = proto.Clone(req).(*longrunningpb.ListOperationsRequest)
	opts = append((*c.CallOptions).ListOperations[0:len((*c.CallOptions).ListOperations):len((*c.CallOptions).ListOperations)], opts...)
	it.InternalFetch = func(pageSize int, pageToken string) ([]*longrunningpb.Operation, string, error) {
		resp := &longrunningpb.ListOperationsResponse{}
		if pageToken != "" {
			req.PageToken = pageToken
		}
		if pageSize != 0 {
			req.PageSize = clampPageSize(pageSize)
		}
		baseUrl, err := url.Parse(c.endpoint)
		if err != nil {
			return nil, "", err
		}
		baseUrl.Path += fmt.Sprintf("/v1/%v/operations", req.GetName())

		params := restQuery()
		if req.GetFilter() != "" {
			params.Add("filter", fmt.Sprintf("%v", req.GetFilter()))
		}
		if req.GetPageSize() != 0 {
			params.Add("pageSize", fmt.Sprintf("%v", req.GetPageSize()))
		}
		if req.GetPageToken() != "" {
			params.Add("pageToken", fmt.Sprintf("%v", req.GetPageToken()))
		}
		baseUrl.RawQuery = params.Encode()

		headers := c.headers(ctx, "name", req.GetName(), false)
		if err := c.do(ctx, http.MethodGet, baseUrl, headers, nil, resp, opts...); err != nil {
			return nil, "", err
		}
		it.Response = resp
		return resp.GetOperations(), resp.GetNextPageToken(), nil
	}

	return it.start(req.GetPageSize(), req.GetPageToken())
}

// WaitOperation is a utility method from google.longrunning.Operations.
func (c *migrationRESTClient) WaitOperation(ctx context.Context, req *longrunningpb.WaitOperationRequest, opts ...gax.CallOption) (*longrunningpb.Operation, error) {
	baseUrl, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, err
	}
	baseUrl.Path += fmt.Sprintf("/v1/%v:wait", req.GetName())

	params := restQuery()
	if req.GetTimeout() != nil {
		field, err := protojson.Marshal(req.GetTimeout())
		if err != nil {
			return nil, err
		}
		params.Add("timeout", string(field[1:len(field)-1]))
	}
	baseUrl.RawQuery = params.Encode()

	headers := c.headers(ctx, "name", req.GetName(), false)
	opts = append((*c.CallOptions).WaitOperation[0:len((*c.CallOptions).WaitOperation):len((*c.CallOptions).WaitOperation)], opts...)
	resp := &longrunningpb.Operation{}
	if err := c.do(ctx, http.MethodPost, baseUrl, headers, nil, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

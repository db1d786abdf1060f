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
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	iampb "cloud.google.com/go/iam/apiv1/iampb"
	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	locationpb "google.golang.org/genproto/googleapis/cloud/location"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

type restCall struct {
	method string
	path   string
	query  map[string][]string
	body   string
	header http.Header
}

// newTestRESTClient starts an httptest server that answers every request
// with handler and returns a REST MigrationClient pointed at it.
func newTestRESTClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, body []byte)) (*MigrationClient, *[]restCall) {
	t.Helper()
	var mu sync.Mutex
	var calls []restCall
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		calls = append(calls, restCall{method: r.Method, path: r.URL.Path, query: r.URL.Query(), body: string(body), header: r.Header.Clone()})
		mu.Unlock()
		handler(w, r, body)
	}))
	t.Cleanup(ts.Close)

	c, err := NewMigrationRESTClient(context.Background(), option.WithEndpoint(ts.URL), option.WithoutAuthentication())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c, &calls
}

func writeProto(t *testing.T, w http.ResponseWriter, m proto.Message) {
	b, err := protojson.Marshal(m)
	if err != nil {
		t.Errorf("protojson.Marshal: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

func TestRESTSearchMigratableResources(t *testing.T) {
	c, calls := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		req := &aiplatformpb.SearchMigratableResourcesRequest{}
		if err := protojson.Unmarshal(body, req); err != nil {
			t.Errorf("bad request body %q: %v", body, err)
		}
		resp := &aiplatformpb.SearchMigratableResourcesResponse{
			MigratableResources: []*aiplatformpb.MigratableResource{{
				Resource: &aiplatformpb.MigratableResource_AutomlDataset_{
					AutomlDataset: &aiplatformpb.MigratableResource_AutomlDataset{Dataset: "projects/p/locations/l/datasets/d1"},
				},
			}},
			NextPageToken: "tok",
		}
		if req.GetPageToken() == "tok" {
			resp = &aiplatformpb.SearchMigratableResourcesResponse{
				MigratableResources: []*aiplatformpb.MigratableResource{{
					Resource: &aiplatformpb.MigratableResource_AutomlDataset_{
						AutomlDataset: &aiplatformpb.MigratableResource_AutomlDataset{Dataset: "projects/p/locations/l/datasets/d2"},
					},
				}},
			}
		}
		writeProto(t, w, resp)
	})

	it := c.SearchMigratableResources(context.Background(), &aiplatformpb.SearchMigratableResourcesRequest{
		Parent: "projects/p/locations/us-central1",
		Filter: "automl_dataset:*",
	})
	var got []string
	for {
		r, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, r.GetAutomlDataset().GetDataset())
	}
	if want := "projects/p/locations/l/datasets/d1,projects/p/locations/l/datasets/d2"; strings.Join(got, ",") != want {
		t.Errorf("datasets = %v, want %s", got, want)
	}

	if len(*calls) != 2 {
		t.Fatalf("got %d calls, want 2", len(*calls))
	}
	first := (*calls)[0]
	if first.method != http.MethodPost || first.path != "/v1/projects/p/locations/us-central1/migratableResources:search" {
		t.Errorf("call = %s %s, want POST /v1/projects/p/locations/us-central1/migratableResources:search", first.method, first.path)
	}
	if got := first.query["$alt"]; len(got) != 1 || got[0] != "json;enum-encoding=int" {
		t.Errorf("$alt = %v", got)
	}
	if got := first.header.Get("x-goog-request-params"); got != "parent=projects%2Fp%2Flocations%2Fus-central1" {
		t.Errorf("x-goog-request-params = %q", got)
	}
	if got := first.header.Get("x-goog-api-client"); !strings.Contains(got, "gl-go/") {
		t.Errorf("x-goog-api-client = %q, expected gl-go key", got)
	}
	sent := &aiplatformpb.SearchMigratableResourcesRequest{}
	if err := protojson.Unmarshal([]byte(first.body), sent); err != nil {
		t.Fatal(err)
	}
	if sent.GetFilter() != "automl_dataset:*" {
		t.Errorf("sent filter %q, want %q", sent.GetFilter(), "automl_dataset:*")
	}
}

func TestRESTSearchMigratableResourcesStartsAtPageToken(t *testing.T) {
	var tokens []string
	c, _ := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		req := &aiplatformpb.SearchMigratableResourcesRequest{}
		if err := protojson.Unmarshal(body, req); err != nil {
			t.Errorf("bad request body %q: %v", body, err)
		}
		tokens = append(tokens, req.GetPageToken())
		writeProto(t, w, &aiplatformpb.SearchMigratableResourcesResponse{})
	})

	it := c.SearchMigratableResources(context.Background(), &aiplatformpb.SearchMigratableResourcesRequest{
		Parent:    "projects/p/locations/us-central1",
		PageToken: "start",
	})
	for i := 0; i < 2; i++ {
		if _, err := it.Next(); err != iterator.Done {
			t.Fatalf("Next() = %v, want iterator.Done", err)
		}
	}
	if strings.Join(tokens, ",") != "start" {
		t.Errorf("page tokens sent = %q, want [start]", tokens)
	}
}

func TestRESTSearchMigratableResourcesError(t *testing.T) {
	c, _ := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"test error","status":"PERMISSION_DENIED"}}`)
	})

	_, err := c.SearchMigratableResources(context.Background(), &aiplatformpb.SearchMigratableResourcesRequest{Parent: "projects/p/locations/l"}).Next()
	var ae *apierror.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("got error %v, expected *apierror.APIError", err)
	}
	if ae.HTTPCode() != http.StatusForbidden {
		t.Errorf("HTTPCode() = %d, want %d", ae.HTTPCode(), http.StatusForbidden)
	}
}

func TestRESTBatchMigrateResources(t *testing.T) {
	opName := "projects/p/locations/us-central1/operations/99"
	result := &aiplatformpb.BatchMigrateResourcesResponse{
		MigrateResourceResponses: []*aiplatformpb.MigrateResourceResponse{{
			MigratedResource: &aiplatformpb.MigrateResourceResponse_Model{Model: "projects/p/locations/us-central1/models/5"},
		}},
	}
	resultAny, err := anypb.New(result)
	if err != nil {
		t.Fatal(err)
	}

	c, calls := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "migratableResources:batchMigrate"):
			writeProto(t, w, &longrunningpb.Operation{Name: opName})
		case r.Method == http.MethodGet && r.URL.Path == "/v1/"+opName:
			writeProto(t, w, &longrunningpb.Operation{
				Name:   opName,
				Done:   true,
				Result: &longrunningpb.Operation_Response{Response: resultAny},
			})
		default:
			http.NotFound(w, r)
		}
	})

	req := batchMigrateRequest()
	op, err := c.BatchMigrateResources(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if op.Name() != opName {
		t.Errorf("Name() = %q, want %q", op.Name(), opName)
	}
	resp, err := op.Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !proto.Equal(resp, result) {
		t.Errorf("Wait() = %v, want %v", resp, result)
	}

	sent := &aiplatformpb.BatchMigrateResourcesRequest{}
	if err := protojson.Unmarshal([]byte((*calls)[0].body), sent); err != nil {
		t.Fatal(err)
	}
	if !proto.Equal(sent, req) {
		t.Errorf("sent %v, want %v", sent, req)
	}
}

func TestRESTLocationsAndOperations(t *testing.T) {
	c, calls := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		switch {
		case r.URL.Path == "/v1/projects/p/locations":
			writeProto(t, w, &locationpb.ListLocationsResponse{Locations: []*locationpb.Location{{LocationId: "us-central1"}}})
		case r.URL.Path == "/v1/projects/p/locations/us-central1":
			writeProto(t, w, &locationpb.Location{LocationId: "us-central1"})
		case r.URL.Path == "/v1/projects/p/locations/us-central1/operations":
			writeProto(t, w, &longrunningpb.ListOperationsResponse{Operations: []*longrunningpb.Operation{{Name: "op-1"}}})
		case strings.HasSuffix(r.URL.Path, ":cancel"), r.Method == http.MethodDelete:
			fmt.Fprint(w, "{}")
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	loc, err := c.ListLocations(ctx, &locationpb.ListLocationsRequest{Name: "projects/p", PageSize: 10}).Next()
	if err != nil {
		t.Fatal(err)
	}
	if loc.GetLocationId() != "us-central1" {
		t.Errorf("ListLocations() = %v", loc)
	}
	if got := (*calls)[0].query["pageSize"]; len(got) != 1 || got[0] != "10" {
		t.Errorf("pageSize query = %v, want [10]", got)
	}

	if _, err := c.GetLocation(ctx, &locationpb.GetLocationRequest{Name: "projects/p/locations/us-central1"}); err != nil {
		t.Fatal(err)
	}

	op, err := c.ListOperations(ctx, &longrunningpb.ListOperationsRequest{Name: "projects/p/locations/us-central1", Filter: "done=true"}).Next()
	if err != nil {
		t.Fatal(err)
	}
	if op.GetName() != "op-1" {
		t.Errorf("ListOperations() = %v", op)
	}
	if got := (*calls)[2].query["filter"]; len(got) != 1 || got[0] != "done=true" {
		t.Errorf("filter query = %v", got)
	}

	if err := c.CancelOperation(ctx, &longrunningpb.CancelOperationRequest{Name: "projects/p/locations/us-central1/operations/1"}); err != nil {
		t.Errorf("CancelOperation() = %v", err)
	}
	if err := c.DeleteOperation(ctx, &longrunningpb.DeleteOperationRequest{Name: "projects/p/locations/us-central1/operations/1"}); err != nil {
		t.Errorf("DeleteOperation() = %v", err)
	}
	if got := (*calls)[3]; got.method != http.MethodPost || got.path != "/v1/projects/p/locations/us-central1/operations/1:cancel" {
		t.Errorf("cancel call = %s %s", got.method, got.path)
	}
	if got := (*calls)[4]; got.method != http.MethodDelete || got.path != "/v1/projects/p/locations/us-central1/operations/1" {
		t.Errorf("delete call = %s %s", got.method, got.path)
	}
}

func TestRESTIamMixin(t *testing.T) {
	c, calls := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		switch {
		case strings.HasSuffix(r.URL.Path, ":testIamPermissions"):
			writeProto(t, w, &iampb.TestIamPermissionsResponse{Permissions: r.URL.Query()["permissions"][:1]})
		case strings.HasSuffix(r.URL.Path, ":setIamPolicy"), strings.HasSuffix(r.URL.Path, ":getIamPolicy"):
			writeProto(t, w, &iampb.Policy{Version: 3})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()
	resource := "projects/p/locations/l/models/m"

	resp, err := c.TestIamPermissions(ctx, &iampb.TestIamPermissionsRequest{
		Resource:    resource,
		Permissions: []string{"aiplatform.models.get", "aiplatform.models.delete"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := resp.GetPermissions(); len(got) != 1 || got[0] != "aiplatform.models.get" {
		t.Errorf("TestIamPermissions() = %v", got)
	}
	if got := (*calls)[0].query["permissions"]; len(got) != 2 {
		t.Errorf("permissions query = %v, want 2 values", got)
	}

	if _, err := c.GetIamPolicy(ctx, &iampb.GetIamPolicyRequest{Resource: resource, Options: &iampb.GetPolicyOptions{RequestedPolicyVersion: 3}}); err != nil {
		t.Fatal(err)
	}
	if got := (*calls)[1].query["options.requestedPolicyVersion"]; len(got) != 1 || got[0] != "3" {
		t.Errorf("options.requestedPolicyVersion = %v", got)
	}

	p, err := c.SetIamPolicy(ctx, &iampb.SetIamPolicyRequest{Resource: resource, Policy: &iampb.Policy{Version: 3}})
	if err != nil {
		t.Fatal(err)
	}
	if p.GetVersion() != 3 {
		t.Errorf("SetIamPolicy() = %v", p)
	}
	if got := (*calls)[2].path; got != "/v1/"+resource+":setIamPolicy" {
		t.Errorf("setIamPolicy path = %q", got)
	}
}

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

package commands

import (
	"errors"
	"fmt"

	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/spf13/cobra"
	"google.golang.org/api/iterator"
	"google.golang.org/protobuf/proto"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/aiplatform_migrate/manifest"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/validation"
)

type searchFlags struct {
	parent      string
	filter      string
	pageSize    int32
	pageToken   string
	maxResults  int
	requestFile string
}

func (a *app) searchCommand() *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search resources that can be migrated",
		Long: `Search the legacy resources of a location that can be migrated to Vertex AI.

A full SearchMigratableResourcesRequest can be given with --request-file
instead of the individual flags.`,
		Example: `  aiplatform_migrate search --project my-project --location us-central1 \
      --filter 'ml_engine_model_version:*'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validation.ValidateRequestOrFlags("request-file", cmd.Flags().Changed("request-file"), map[string]bool{
				"parent":     cmd.Flags().Changed("parent"),
				"filter":     cmd.Flags().Changed("filter"),
				"page-size":  cmd.Flags().Changed("page-size"),
				"page-token": cmd.Flags().Changed("page-token"),
			}); err != nil {
				return err
			}
			return a.runSearch(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.parent, "parent", "", "location to search, projects/{project}/locations/{location}; defaults to --project and --location")
	cmd.Flags().StringVar(&f.filter, "filter", "", "filter expression, e.g. 'automl_model:*' or 'last_migrate_time:*'")
	cmd.Flags().Int32Var(&f.pageSize, "page-size", 0, "resources fetched per request; 0 lets the server decide")
	cmd.Flags().StringVar(&f.pageToken, "page-token", "", "start from this page token")
	cmd.Flags().IntVar(&f.maxResults, "max-results", 0, "stop after this many resources; 0 means all")
	cmd.Flags().StringVar(&f.requestFile, "request-file", "", "JSON or YAML SearchMigratableResourcesRequest, local or gs://")
	return cmd
}

func (a *app) searchRequest(cmd *cobra.Command, f *searchFlags) (*aiplatformpb.SearchMigratableResourcesRequest, error) {
	req := &aiplatformpb.SearchMigratableResourcesRequest{
		Parent:    f.parent,
		Filter:    f.filter,
		PageSize:  f.pageSize,
		PageToken: f.pageToken,
	}
	if f.requestFile != "" {
		sc, closeStorage, err := a.storageFor(cmd.Context(), f.requestFile)
		if err != nil {
			return nil, err
		}
		defer closeStorage()
		data, err := manifest.ReadFile(f.requestFile, sc)
		if err != nil {
			return nil, err
		}
		req = &aiplatformpb.SearchMigratableResourcesRequest{}
		if err := manifest.Unmarshal(f.requestFile, data, req); err != nil {
			return nil, err
		}
	}
	parent, err := a.parent(req.GetParent())
	if err != nil {
		return nil, err
	}
	req.Parent = parent
	return req, nil
}

func (a *app) runSearch(cmd *cobra.Command, f *searchFlags) error {
	ctx := cmd.Context()
	req, err := a.searchRequest(cmd, f)
	if err != nil {
		return err
	}
	a.logger.DebugObject("SearchMigratableResourcesRequest", req)

	c, err := a.client(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	var found []proto.Message
	it := c.SearchMigratableResources(ctx, req)
	for f.maxResults <= 0 || len(found) < f.maxResults {
		r, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return fmt.Errorf("error searching migratable resources in %s: %w", req.GetParent(), err)
		}
		found = append(found, r)
	}
	a.logger.Infof("Found %d migratable resources in %s.", len(found), req.GetParent())
	p := a.printer()
	return p.messages(found, migratableResourceHeader, p.migratableResourceRow)
}

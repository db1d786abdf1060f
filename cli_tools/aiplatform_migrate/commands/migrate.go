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
	"context"
	"errors"
	"fmt"

	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/aiplatform_migrate/manifest"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/domain"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/validation"
)

var errStillRunning = errors.New("operation still running")

type migrateFlags struct {
	parent       string
	manifestPath string
	resources    manifest.Resources
	noWait       bool
	resultsOut   string
}

func (a *app) migrateCommand() *cobra.Command {
	f := &migrateFlags{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate resources to Vertex AI",
		Long: `Migrate up to 50 legacy resources to Vertex AI in one batch.

Resources are listed either in a manifest (--manifest), the JSON or YAML form
of a BatchMigrateResourcesRequest, or with the per-type flags. Each flag value
has the form RESOURCE_NAME[=DISPLAY_NAME].`,
		Example: `  aiplatform_migrate migrate --location us-central1 \
      --automl-model projects/my-project/locations/us-central1/models/TBL123=churn
  aiplatform_migrate migrate --manifest gs://my-bucket/migration.yaml --results-out results.json.gz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validation.ValidateRequestOrFlags("manifest", cmd.Flags().Changed("manifest"), map[string]bool{
				"automl-model":          cmd.Flags().Changed("automl-model"),
				"automl-dataset":        cmd.Flags().Changed("automl-dataset"),
				"ml-engine-version":     cmd.Flags().Changed("ml-engine-version"),
				"ml-engine-endpoint":    cmd.Flags().Changed("ml-engine-endpoint"),
				"data-labeling-dataset": cmd.Flags().Changed("data-labeling-dataset"),
			}); err != nil {
				return err
			}
			if f.manifestPath == "" && f.resources.Empty() {
				return fmt.Errorf("either --manifest or at least one resource flag must be provided")
			}
			return a.runMigrate(cmd.Context(), f)
		},
	}
	cmd.Flags().StringVar(&f.parent, "parent", "", "destination location, projects/{project}/locations/{location}; defaults to --project and --location")
	cmd.Flags().StringVar(&f.manifestPath, "manifest", "", "JSON or YAML BatchMigrateResourcesRequest, local or gs://")
	cmd.Flags().StringArrayVar(&f.resources.AutomlModels, "automl-model", nil, "AutoML model to migrate")
	cmd.Flags().StringArrayVar(&f.resources.AutomlDatasets, "automl-dataset", nil, "AutoML dataset to migrate")
	cmd.Flags().StringArrayVar(&f.resources.MlEngineVersions, "ml-engine-version", nil, "AI Platform model version to migrate")
	cmd.Flags().StringVar(&f.resources.MlEngineEndpoint, "ml-engine-endpoint", manifest.DefaultMlEngineEndpoint, "endpoint serving the --ml-engine-version resources")
	cmd.Flags().StringArrayVar(&f.resources.DataLabelingDatasets, "data-labeling-dataset", nil, "Data Labeling dataset to migrate")
	cmd.Flags().BoolVar(&f.noWait, "no-wait", false, "print the operation name and return without waiting")
	cmd.Flags().StringVar(&f.resultsOut, "results-out", "", "also write the results to this local or gs:// path; .gz paths are compressed")
	return cmd
}

func (a *app) migrateRequest(ctx context.Context, f *migrateFlags) (*aiplatformpb.BatchMigrateResourcesRequest, error) {
	if f.manifestPath == "" {
		parent, err := a.parent(f.parent)
		if err != nil {
			return nil, err
		}
		return f.resources.Request(parent)
	}
	// The parent only falls back to the config when the manifest has none.
	defaultParent, err := a.parent(f.parent)
	if err != nil && f.parent != "" {
		return nil, err
	}
	sc, closeStorage, err := a.storageFor(ctx, f.manifestPath)
	if err != nil {
		return nil, err
	}
	defer closeStorage()
	return manifest.Load(f.manifestPath, defaultParent, sc)
}

func (a *app) runMigrate(ctx context.Context, f *migrateFlags) error {
	req, err := a.migrateRequest(ctx, f)
	if err != nil {
		return err
	}
	a.logger.DebugObject("BatchMigrateResourcesRequest", req)

	c, err := a.client(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	op, err := c.BatchMigrateResources(ctx, req)
	if err != nil {
		return fmt.Errorf("error starting migration of %d resources to %s: %w", len(req.GetMigrateResourceRequests()), req.GetParent(), err)
	}
	a.logger.Infof("Started migration of %d resources to %s: operation %s", len(req.GetMigrateResourceRequests()), req.GetParent(), op.Name())
	if f.noWait {
		p := a.printer()
		return p.message(&longrunningpb.Operation{Name: op.Name()}, operationHeader, p.operationRow)
	}
	return a.waitAndReport(ctx, op, f.resultsOut)
}

// wait polls op with backoff until it is done, logging each partial result
// once as it appears.
func (a *app) wait(ctx context.Context, op domain.BatchMigrateOperationInterface) (*aiplatformpb.BatchMigrateResourcesResponse, error) {
	var (
		resp     *aiplatformpb.BatchMigrateResourcesResponse
		reported int
	)
	poll := func() error {
		r, err := op.Poll(ctx)
		reported = a.reportPartialResults(op, reported)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !op.Done() {
			a.logger.Debugf("Operation %s still running.", op.Name())
			return errStillRunning
		}
		resp = r
		return nil
	}
	if err := backoff.Retry(poll, backoff.WithContext(a.deps.NewBackOff(), ctx)); err != nil {
		return nil, fmt.Errorf("migration operation %s failed: %w", op.Name(), err)
	}
	return resp, nil
}

func (a *app) reportPartialResults(op domain.BatchMigrateOperationInterface, reported int) int {
	md, err := op.Metadata()
	if err != nil {
		a.logger.Debugf("No metadata for operation %s: %v", op.Name(), err)
		return reported
	}
	results := md.GetPartialResults()
	if reported >= len(results) {
		return reported
	}
	for _, pr := range results[reported:] {
		source := describeMigrateRequest(pr.GetRequest())
		switch {
		case pr.GetError() != nil:
			a.logger.Warningf("Migration of %s failed: %s", source, pr.GetError().GetMessage())
		case pr.GetModel() != "":
			a.logger.Infof("Migrated %s to %s", source, pr.GetModel())
		default:
			a.logger.Infof("Migrated %s to %s", source, pr.GetDataset())
		}
	}
	return len(results)
}

func (a *app) waitAndReport(ctx context.Context, op domain.BatchMigrateOperationInterface, resultsOut string) error {
	resp, err := a.wait(ctx, op)
	if err != nil {
		return err
	}
	a.logger.Infof("Operation %s done: %d resources migrated.", op.Name(), len(resp.GetMigrateResourceResponses()))
	a.logger.DebugObject("BatchMigrateResourcesResponse", resp)

	if resultsOut != "" {
		sc, closeStorage, err := a.storageFor(ctx, resultsOut)
		if err != nil {
			return err
		}
		defer closeStorage()
		if err := manifest.WriteResults(resultsOut, resp, sc); err != nil {
			return err
		}
		a.logger.Infof("Results written to %s", resultsOut)
	}

	p := a.printer()
	if p.format != formatTable {
		return p.message(resp, nil, nil)
	}
	rows := make([]proto.Message, 0, len(resp.GetMigrateResourceResponses()))
	for _, r := range resp.GetMigrateResourceResponses() {
		rows = append(rows, r)
	}
	return p.messages(rows, migrateResponseHeader, p.migrateResponseRow)
}

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

// Package commands implements the aiplatform_migrate command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/aiplatform_migrate/config"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/domain"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/logging"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/storage"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/validation"
)

const toolName = "aiplatform_migrate"

// Dependencies are the services the commands are built on. Tests replace
// them with fakes.
type Dependencies struct {
	Out        io.Writer
	Metadata   domain.MetadataGCEInterface
	NewClient  func(ctx context.Context, cfg *config.Config) (domain.MigrationClientInterface, error)
	NewStorage func(ctx context.Context, logger logging.ToolLogger) (domain.StorageClientInterface, error)
	NewLogger  func(ctx context.Context, cfg *config.Config) (logging.ToolLogger, error)
	NewBackOff func() backoff.BackOff
	Now        func() time.Time
}

type app struct {
	deps   Dependencies
	v      *viper.Viper
	cfg    *config.Config
	logger logging.ToolLogger
}

// Execute runs the command line args and returns the first error, after
// it has been logged.
func Execute(ctx context.Context, deps Dependencies, args []string) error {
	a := &app{deps: deps, v: viper.New()}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(deps.Out)
	err := root.ExecuteContext(ctx)
	if a.logger != nil {
		if err != nil {
			a.logger.Errorf("%v", err)
		}
		if cerr := a.logger.Close(); cerr != nil && err == nil {
			err = cerr
		}
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", toolName, err)
	}
	return err
}

func (a *app) rootCommand() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   toolName,
		Short: "Migrate legacy AI Platform resources to Vertex AI",
		Long: `Search the AutoML, AI Platform and Data Labeling resources of a location
that can be migrated to Vertex AI, and migrate them in batches.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context(), configFile)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is $HOME/.aiplatform_migrate/config.yaml)")
	flags.String(config.ProjectKey, "", "Google Cloud project; defaults to the project of the GCE VM")
	flags.String(config.LocationKey, "", "location such as us-central1; defaults to the region of the GCE VM")
	flags.String(config.TransportKey, "grpc", "wire protocol: grpc or rest")
	flags.String(config.EndpointKey, "", "service endpoint override; defaults to the regional endpoint")
	flags.StringP(config.OutputKey, "o", formatTable, "output format: table, json or yaml")
	flags.Bool(config.DebugKey, false, "log requests and responses")
	flags.String(config.LogFileKey, "", "also write logs to this file")
	flags.Bool(config.CloudLoggingKey, false, "mirror logs to Cloud Logging in the project")
	for _, key := range []string{config.ProjectKey, config.LocationKey, config.TransportKey, config.EndpointKey,
		config.OutputKey, config.DebugKey, config.LogFileKey, config.CloudLoggingKey} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}
	config.SetDefaults(a.v)

	cmd.AddCommand(a.searchCommand())
	cmd.AddCommand(a.migrateCommand())
	cmd.AddCommand(a.operationsCommand())
	cmd.AddCommand(a.locationsCommand())
	cmd.AddCommand(a.iamCommand())
	return cmd
}

func (a *app) setup(ctx context.Context, configFile string) error {
	if err := config.Load(a.v, configFile); err != nil {
		return err
	}
	cfg, err := config.Resolve(a.v, a.deps.Metadata)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.logger, err = a.deps.NewLogger(ctx, cfg); err != nil {
		return err
	}
	a.logger.Debugf("%s run %s: project=%q location=%q transport=%s endpoint=%q",
		toolName, a.logger.RunID(), cfg.Project, cfg.Location, cfg.Transport, cfg.ServiceEndpoint())
	return nil
}

func (a *app) printer() *printer {
	return &printer{format: a.cfg.Output, out: a.deps.Out, now: a.deps.Now}
}

func (a *app) client(ctx context.Context) (domain.MigrationClientInterface, error) {
	c, err := a.deps.NewClient(ctx, a.cfg)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// storageFor returns a Cloud Storage client when any of paths is a gs://
// path, nil otherwise. The returned close func is always safe to call.
func (a *app) storageFor(ctx context.Context, paths ...string) (domain.StorageClientInterface, func(), error) {
	needed := false
	for _, p := range paths {
		if !storage.IsGCSPath(p) {
			continue
		}
		obj := struct {
			Path string `name:"path" validate:"gcs_path"`
		}{p}
		if err := validation.ValidateStruct(&obj); err != nil {
			return nil, func() {}, err
		}
		needed = true
	}
	if !needed {
		return nil, func() {}, nil
	}
	sc, err := a.deps.NewStorage(ctx, a.logger)
	if err != nil {
		return nil, func() {}, err
	}
	return sc, func() { sc.Close() }, nil
}

// parent returns the --parent flag value or the configured location.
func (a *app) parent(flagValue string) (string, error) {
	if flagValue == "" {
		return a.cfg.Parent()
	}
	p := struct {
		Parent string `name:"parent" validate:"aiplatform_parent"`
	}{flagValue}
	if err := validation.ValidateStruct(&p); err != nil {
		return "", err
	}
	return p.Parent, nil
}

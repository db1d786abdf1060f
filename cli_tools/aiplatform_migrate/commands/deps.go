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
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/api/option"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/aiplatform_migrate/config"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/domain"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/compute"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/logging"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/migration"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/storage"
)

// DefaultDependencies talks to the real services.
func DefaultDependencies() Dependencies {
	return Dependencies{
		Out:        os.Stdout,
		Metadata:   &compute.MetadataGCE{},
		NewClient:  newMigrationClient,
		NewStorage: newStorageClient,
		NewLogger:  newLogger,
		NewBackOff: newPollBackOff,
		Now:        time.Now,
	}
}

func newMigrationClient(ctx context.Context, cfg *config.Config) (domain.MigrationClientInterface, error) {
	var opts []option.ClientOption
	if ep := cfg.ServiceEndpoint(); ep != "" {
		opts = append(opts, option.WithEndpoint(ep))
	}
	c, err := migration.NewClient(ctx, migration.Transport(cfg.Transport), opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newStorageClient(ctx context.Context, logger logging.ToolLogger) (domain.StorageClientInterface, error) {
	sc, err := storage.NewStorageClient(ctx, logger)
	if err != nil {
		return nil, err
	}
	return sc, nil
}

func newLogger(ctx context.Context, cfg *config.Config) (logging.ToolLogger, error) {
	opts := logging.Options{Name: toolName, Debug: cfg.Debug, Out: os.Stderr}
	if cfg.CloudLogging {
		opts.CloudProject = cfg.Project
	}
	if cfg.LogFile == "" {
		return logging.NewLogger(ctx, opts), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	// The logger closes f.
	opts.LogFile = f
	return logging.NewLogger(ctx, opts), nil
}

// newPollBackOff polls every 5s at first, slowing to once a minute. It
// never gives up; the context bounds the wait.
func newPollBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Second
	b.MaxInterval = time.Minute
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

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
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/api/iterator"
	locationpb "google.golang.org/genproto/googleapis/cloud/location"
	"google.golang.org/protobuf/proto"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/aiplatform_migrate/config"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/validation"
)

func (a *app) locationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "locations",
		Aliases: []string{"location"},
		Short:   "List the locations the service is available in",
	}
	cmd.AddCommand(a.locationsListCommand())
	cmd.AddCommand(a.locationsGetCommand())
	return cmd
}

func (a *app) locationsListCommand() *cobra.Command {
	var (
		filter   string
		pageSize int32
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List locations of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validation.ValidateStringFlagNotEmpty(a.cfg.Project, config.ProjectKey); err != nil {
				return err
			}
			name := "projects/" + a.cfg.Project
			ctx := cmd.Context()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			var locs []proto.Message
			it := c.ListLocations(ctx, &locationpb.ListLocationsRequest{Name: name, Filter: filter, PageSize: pageSize})
			for {
				l, err := it.Next()
				if errors.Is(err, iterator.Done) {
					break
				}
				if err != nil {
					return fmt.Errorf("error listing locations of %s: %w", name, err)
				}
				locs = append(locs, l)
			}
			p := a.printer()
			return p.messages(locs, locationHeader, p.locationRow)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "location filter")
	cmd.Flags().Int32Var(&pageSize, "page-size", 0, "locations fetched per request; 0 lets the server decide")
	return cmd
}

func (a *app) locationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [LOCATION]",
		Short: "Show a location; defaults to --location",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.locationName(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			defer c.Close()
			l, err := c.GetLocation(ctx, &locationpb.GetLocationRequest{Name: name})
			if err != nil {
				return fmt.Errorf("error getting location %s: %w", name, err)
			}
			p := a.printer()
			return p.message(l, locationHeader, p.locationRow)
		},
	}
}

// locationName accepts a full location name or a location id.
func (a *app) locationName(args []string) (string, error) {
	if len(args) == 0 {
		return a.cfg.Parent()
	}
	if strings.HasPrefix(args[0], "projects/") {
		return args[0], nil
	}
	cfg := *a.cfg
	cfg.Location = args[0]
	return cfg.Parent()
}

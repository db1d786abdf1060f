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

	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/spf13/cobra"
	"google.golang.org/api/iterator"
	"google.golang.org/protobuf/proto"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/validation"
)

func (a *app) operationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "operations",
		Aliases: []string{"operation", "ops"},
		Short:   "Inspect and manage long-running operations",
	}
	cmd.AddCommand(a.operationsGetCommand())
	cmd.AddCommand(a.operationsListCommand())
	cmd.AddCommand(a.operationsCancelCommand())
	cmd.AddCommand(a.operationsDeleteCommand())
	cmd.AddCommand(a.operationsWaitCommand())
	return cmd
}

// operationName checks that name is a full operation resource name.
func operationName(args []string) (string, error) {
	n := struct {
		Name string `name:"operation" validate:"aiplatform_operation"`
	}{args[0]}
	if err := validation.ValidateStruct(&n); err != nil {
		return "", err
	}
	return n.Name, nil
}

func (a *app) operationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OPERATION",
		Short: "Show an operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := operationName(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			defer c.Close()
			op, err := c.GetOperation(ctx, &longrunningpb.GetOperationRequest{Name: name})
			if err != nil {
				return fmt.Errorf("error getting operation %s: %w", name, err)
			}
			p := a.printer()
			return p.message(op, operationHeader, p.operationRow)
		},
	}
}

func (a *app) operationsListCommand() *cobra.Command {
	var (
		filter     string
		pageSize   int32
		maxResults int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the operations of the location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parent, err := a.cfg.Parent()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			var ops []proto.Message
			it := c.ListOperations(ctx, &longrunningpb.ListOperationsRequest{Name: parent, Filter: filter, PageSize: pageSize})
			for maxResults <= 0 || len(ops) < maxResults {
				op, err := it.Next()
				if errors.Is(err, iterator.Done) {
					break
				}
				if err != nil {
					return fmt.Errorf("error listing operations of %s: %w", parent, err)
				}
				ops = append(ops, op)
			}
			p := a.printer()
			return p.messages(ops, operationHeader, p.operationRow)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "operation filter, e.g. 'done=false'")
	cmd.Flags().Int32Var(&pageSize, "page-size", 0, "operations fetched per request; 0 lets the server decide")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "stop after this many operations; 0 means all")
	return cmd
}

func (a *app) operationsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel OPERATION",
		Short: "Request cancellation of an operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := operationName(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			defer c.Close()
			if err := c.CancelOperation(ctx, &longrunningpb.CancelOperationRequest{Name: name}); err != nil {
				return fmt.Errorf("error cancelling operation %s: %w", name, err)
			}
			a.logger.Infof("Requested cancellation of operation %s", name)
			return nil
		},
	}
}

func (a *app) operationsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete OPERATION",
		Short: "Delete an operation record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := operationName(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			defer c.Close()
			if err := c.DeleteOperation(ctx, &longrunningpb.DeleteOperationRequest{Name: name}); err != nil {
				return fmt.Errorf("error deleting operation %s: %w", name, err)
			}
			a.logger.Infof("Deleted operation %s", name)
			return nil
		},
	}
}

func (a *app) operationsWaitCommand() *cobra.Command {
	var resultsOut string
	cmd := &cobra.Command{
		Use:   "wait OPERATION",
		Short: "Wait for a batch migration started earlier",
		Long: `Resume a batch migration operation by name, report its partial results
as they appear and print the migrated resources once it is done.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := operationName(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			defer c.Close()
			return a.waitAndReport(ctx, c.BatchMigrateResourcesOperation(name), resultsOut)
		},
	}
	cmd.Flags().StringVar(&resultsOut, "results-out", "", "also write the results to this local or gs:// path; .gz paths are compressed")
	return cmd
}

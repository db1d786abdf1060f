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
	"fmt"

	iampb "cloud.google.com/go/iam/apiv1/iampb"
	"github.com/spf13/cobra"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/aiplatform_migrate/manifest"
)

func (a *app) iamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iam",
		Short: "Manage IAM policies of Vertex AI resources",
	}
	cmd.AddCommand(a.iamGetPolicyCommand())
	cmd.AddCommand(a.iamSetPolicyCommand())
	cmd.AddCommand(a.iamTestPermissionsCommand())
	return cmd
}

func (a *app) iamGetPolicyCommand() *cobra.Command {
	var policyVersion int32
	cmd := &cobra.Command{
		Use:   "get-policy RESOURCE",
		Short: "Show the IAM policy of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			defer c.Close()
			req := &iampb.GetIamPolicyRequest{Resource: args[0]}
			if policyVersion > 0 {
				req.Options = &iampb.GetPolicyOptions{RequestedPolicyVersion: policyVersion}
			}
			policy, err := c.GetIamPolicy(ctx, req)
			if err != nil {
				return fmt.Errorf("error getting IAM policy of %s: %w", args[0], err)
			}
			return a.printer().policy(policy)
		},
	}
	cmd.Flags().Int32Var(&policyVersion, "policy-version", 0, "requested policy format version (1 or 3)")
	return cmd
}

func (a *app) iamSetPolicyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-policy RESOURCE POLICY_FILE",
		Short: "Replace the IAM policy of a resource",
		Long: `Replace the IAM policy of a resource with the JSON or YAML policy in
POLICY_FILE, a local path or gs:// object. Include the etag of the current
policy to guard against concurrent updates.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sc, closeStorage, err := a.storageFor(ctx, args[1])
			if err != nil {
				return err
			}
			defer closeStorage()
			data, err := manifest.ReadFile(args[1], sc)
			if err != nil {
				return err
			}
			policy := &iampb.Policy{}
			if err := manifest.Unmarshal(args[1], data, policy); err != nil {
				return err
			}

			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			defer c.Close()
			updated, err := c.SetIamPolicy(ctx, &iampb.SetIamPolicyRequest{Resource: args[0], Policy: policy})
			if err != nil {
				return fmt.Errorf("error setting IAM policy of %s: %w", args[0], err)
			}
			a.logger.Infof("Updated IAM policy of %s", args[0])
			return a.printer().policy(updated)
		},
	}
}

func (a *app) iamTestPermissionsCommand() *cobra.Command {
	var permissions []string
	cmd := &cobra.Command{
		Use:   "test-permissions RESOURCE",
		Short: "Show which of the given permissions the caller has on a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(permissions) == 0 {
				return fmt.Errorf("at least one --permissions value must be provided")
			}
			ctx := cmd.Context()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			defer c.Close()
			resp, err := c.TestIamPermissions(ctx, &iampb.TestIamPermissionsRequest{Resource: args[0], Permissions: permissions})
			if err != nil {
				return fmt.Errorf("error testing IAM permissions on %s: %w", args[0], err)
			}
			p := a.printer()
			if p.format != formatTable {
				return p.message(resp, nil, nil)
			}
			granted := map[string]bool{}
			for _, perm := range resp.GetPermissions() {
				granted[perm] = true
			}
			rows := make([][]string, 0, len(permissions))
			for _, perm := range permissions {
				rows = append(rows, []string{perm, fmt.Sprint(granted[perm])})
			}
			return p.table([]string{"PERMISSION", "GRANTED"}, rows)
		},
	}
	cmd.Flags().StringSliceVar(&permissions, "permissions", nil, "permissions to test, e.g. aiplatform.models.get")
	return cmd
}

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
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	iampb "cloud.google.com/go/iam/apiv1/iampb"
	longrunningpb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	locationpb "google.golang.org/genproto/googleapis/cloud/location"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type printer struct {
	format string
	out    io.Writer
	now    func() time.Time
}

// messages prints ms as a JSON array or YAML sequence, or as a table built
// by row when the format is table.
func (p *printer) messages(ms []proto.Message, header []string, row func(proto.Message) []string) error {
	switch p.format {
	case formatJSON, formatYAML:
		raw := make([]json.RawMessage, 0, len(ms))
		for _, m := range ms {
			b, err := protojson.Marshal(m)
			if err != nil {
				return fmt.Errorf("error encoding output: %w", err)
			}
			raw = append(raw, b)
		}
		b, err := json.MarshalIndent(raw, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
		return p.write(b)
	}
	rows := make([][]string, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, row(m))
	}
	return p.table(header, rows)
}

func (p *printer) table(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(p.out)
	cols := make([]any, len(header))
	for i, h := range header {
		cols[i] = h
	}
	table.Header(cols...)
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return err
		}
	}
	return table.Render()
}

// message prints a single message. Tables have one row.
func (p *printer) message(m proto.Message, header []string, row func(proto.Message) []string) error {
	switch p.format {
	case formatJSON, formatYAML:
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
		if err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
		return p.write(b)
	}
	return p.messages([]proto.Message{m}, header, row)
}

// write emits a JSON document as JSON or converted to block style YAML.
func (p *printer) write(b []byte) error {
	if p.format == formatYAML {
		var n yaml.Node
		if err := yaml.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
		blockStyle(&n)
		out, err := yaml.Marshal(&n)
		if err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
		_, err = p.out.Write(out)
		return err
	}
	_, err := fmt.Fprintf(p.out, "%s\n", b)
	return err
}

// blockStyle drops the flow style and quoting a JSON document parses with.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func (p *printer) since(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return humanize.RelTime(ts.AsTime(), p.now(), "ago", "from now")
}

var migratableResourceHeader = []string{"TYPE", "RESOURCE", "DISPLAY NAME", "LAST MIGRATED", "LAST UPDATED"}

func (p *printer) migratableResourceRow(m proto.Message) []string {
	r := m.(*aiplatformpb.MigratableResource)
	kind, name, display := describeMigratableResource(r)
	return []string{kind, name, display, p.since(r.GetLastMigrateTime()), p.since(r.GetLastUpdateTime())}
}

func describeMigratableResource(r *aiplatformpb.MigratableResource) (kind, name, display string) {
	switch {
	case r.GetMlEngineModelVersion() != nil:
		return "ml-engine-version", r.GetMlEngineModelVersion().GetVersion(), r.GetMlEngineModelVersion().GetEndpoint()
	case r.GetAutomlModel() != nil:
		return "automl-model", r.GetAutomlModel().GetModel(), r.GetAutomlModel().GetModelDisplayName()
	case r.GetAutomlDataset() != nil:
		return "automl-dataset", r.GetAutomlDataset().GetDataset(), r.GetAutomlDataset().GetDatasetDisplayName()
	case r.GetDataLabelingDataset() != nil:
		return "data-labeling-dataset", r.GetDataLabelingDataset().GetDataset(), r.GetDataLabelingDataset().GetDatasetDisplayName()
	}
	return "unknown", "", ""
}

// describeMigrateRequest names the source resource of a migrate request.
func describeMigrateRequest(r *aiplatformpb.MigrateResourceRequest) string {
	switch {
	case r.GetMigrateMlEngineModelVersionConfig() != nil:
		return r.GetMigrateMlEngineModelVersionConfig().GetModelVersion()
	case r.GetMigrateAutomlModelConfig() != nil:
		return r.GetMigrateAutomlModelConfig().GetModel()
	case r.GetMigrateAutomlDatasetConfig() != nil:
		return r.GetMigrateAutomlDatasetConfig().GetDataset()
	case r.GetMigrateDataLabelingDatasetConfig() != nil:
		return r.GetMigrateDataLabelingDatasetConfig().GetDataset()
	}
	return "unknown resource"
}

var migrateResponseHeader = []string{"TYPE", "SOURCE", "MIGRATED TO"}

func (p *printer) migrateResponseRow(m proto.Message) []string {
	r := m.(*aiplatformpb.MigrateResourceResponse)
	kind, source, _ := describeMigratableResource(r.GetMigratableResource())
	target := r.GetModel()
	if target == "" {
		target = r.GetDataset()
	}
	return []string{kind, source, target}
}

var operationHeader = []string{"NAME", "DONE", "ERROR"}

func (p *printer) operationRow(m proto.Message) []string {
	op := m.(*longrunningpb.Operation)
	errMsg := ""
	if op.GetError() != nil {
		errMsg = op.GetError().GetMessage()
	}
	return []string{op.GetName(), fmt.Sprint(op.GetDone()), errMsg}
}

var locationHeader = []string{"LOCATION", "NAME", "DISPLAY NAME"}

func (p *printer) locationRow(m proto.Message) []string {
	l := m.(*locationpb.Location)
	return []string{l.GetLocationId(), l.GetName(), l.GetDisplayName()}
}

var policyHeader = []string{"ROLE", "MEMBERS"}

// policy prints one table row per binding.
func (p *printer) policy(policy *iampb.Policy) error {
	if p.format != formatTable {
		return p.message(policy, nil, nil)
	}
	bindings := make([]proto.Message, 0, len(policy.GetBindings()))
	for _, b := range policy.GetBindings() {
		bindings = append(bindings, b)
	}
	return p.messages(bindings, policyHeader, func(m proto.Message) []string {
		b := m.(*iampb.Binding)
		return []string{b.GetRole(), strings.Join(b.GetMembers(), "\n")}
	})
}

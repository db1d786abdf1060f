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

package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	gzip "github.com/klauspost/pgzip"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/domain"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/storage"
)

// WriteResults writes m as indented proto JSON to a local file or a gs://
// object. Paths ending in .gz are gzip compressed.
func WriteResults(p string, m proto.Message, sc domain.StorageClientInterface) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
	if err != nil {
		return fmt.Errorf("error encoding results: %w", err)
	}
	var buf bytes.Buffer
	if strings.HasSuffix(p, ".gz") {
		if err := gzipTo(&buf, b); err != nil {
			return fmt.Errorf("error compressing results: %w", err)
		}
	} else {
		buf.Write(b)
	}

	if storage.IsGCSPath(p) {
		if sc == nil {
			return fmt.Errorf("cannot write %q: no Cloud Storage client", p)
		}
		return sc.WriteObject(p, &buf)
	}
	if err := os.WriteFile(p, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing %q: %w", p, err)
	}
	return nil
}

func gzipTo(w io.Writer, b []byte) error {
	gw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return err
	}
	if _, err := gw.Write(b); err != nil {
		gw.Close()
		return err
	}
	return gw.Close()
}

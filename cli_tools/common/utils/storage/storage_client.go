//  Copyright 2019 Google Inc. All Rights Reserved.
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

package storage

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/dustin/go-humanize"
	"google.golang.org/api/option"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/domain"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/logging"
)

var (
	bucketNameRegex = `[a-z0-9][-_.a-z0-9]*`
	gsPathRegex     = regexp.MustCompile(fmt.Sprintf(`^gs://(%s)(\/.*)?$`, bucketNameRegex))
)

// Client implements domain.StorageClientInterface. It reads migration
// manifests from, and writes migration results to, Cloud Storage.
type Client struct {
	StorageClient *storage.Client
	Logger        logging.ToolLogger
	Ctx           context.Context
	Soc           domain.StorageObjectCreatorInterface
}

// NewStorageClient creates a Client
func NewStorageClient(ctx context.Context,
	logger logging.ToolLogger, option ...option.ClientOption) (*Client, error) {

	client, err := storage.NewClient(ctx, option...)
	if err != nil {
		return nil, fmt.Errorf("error creating storage client: %w", err)
	}
	sc := &Client{StorageClient: client, Ctx: ctx, Logger: logger}
	sc.Soc = &StorageObjectCreator{ctx: ctx, sc: client}
	return sc, nil
}

// GetObject returns storage object for the given bucket and path
func (sc *Client) GetObject(bucket string, objectPath string) domain.StorageObjectInterface {
	return sc.Soc.GetObject(bucket, objectPath)
}

// ReadObject returns the full content of the object at gcsPath.
func (sc *Client) ReadObject(gcsPath string) ([]byte, error) {
	bucket, object, err := GetGCSObjectPathElements(gcsPath)
	if err != nil {
		return nil, err
	}
	r, err := sc.GetObject(bucket, object).NewReader()
	if err != nil {
		return nil, fmt.Errorf("error reading Cloud Storage object `%v`: %w", gcsPath, err)
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading Cloud Storage object `%v`: %w", gcsPath, err)
	}
	if sc.Logger != nil {
		sc.Logger.Debugf("Read %v from %v", humanize.IBytes(uint64(len(b))), gcsPath)
	}
	return b, nil
}

// WriteObject copies reader into the object at gcsPath, replacing any
// existing content.
func (sc *Client) WriteObject(gcsPath string, reader io.Reader) error {
	bucket, object, err := GetGCSObjectPathElements(gcsPath)
	if err != nil {
		return err
	}
	w := sc.GetObject(bucket, object).NewWriter()
	n, err := io.Copy(w, reader)
	if err != nil {
		w.Close()
		return fmt.Errorf("error writing Cloud Storage object `%v`: %w", gcsPath, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("error writing Cloud Storage object `%v`: %w", gcsPath, err)
	}
	if sc.Logger != nil {
		sc.Logger.Infof("Wrote %v to %v", humanize.IBytes(uint64(n)), gcsPath)
	}
	return nil
}

// Close closes the Storage client.
func (sc *Client) Close() error {
	if sc.StorageClient == nil {
		return nil
	}
	return sc.StorageClient.Close()
}

// IsGCSPath reports whether p is a gs:// URL.
func IsGCSPath(p string) bool {
	return strings.HasPrefix(p, "gs://")
}

// SplitGCSPath splits GCS path into bucket and object path portions
func SplitGCSPath(p string) (string, string, error) {
	matches := gsPathRegex.FindStringSubmatch(p)
	if matches != nil {
		return matches[1], strings.TrimLeft(matches[2], "/"), nil
	}

	return "", "", fmt.Errorf("%q is not a valid Cloud Storage path", p)
}

// GetGCSObjectPathElements returns bucket name, object path within the bucket
// for a valid object path. Error is returned otherwise.
func GetGCSObjectPathElements(p string) (string, string, error) {
	bucket, object, err := SplitGCSPath(p)
	if err != nil || bucket == "" || object == "" || strings.HasSuffix(object, "/") {
		return "", "", fmt.Errorf("%q is not a valid Cloud Storage object path", p)
	}
	return bucket, object, err
}

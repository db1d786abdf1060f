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
	"os"
	"path/filepath"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	locationpb "google.golang.org/genproto/googleapis/cloud/location"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/aiplatform_migrate/config"
)

func TestNewLoggerClosesLogFileOnce(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "run.log")
	l, err := newLogger(context.Background(), &config.Config{LogFile: logFile})
	if !assert.NoError(t, err) {
		return
	}
	l.Infof("migrated %d resources", 2)
	assert.NoError(t, l.Close())

	b, err := os.ReadFile(logFile)
	assert.NoError(t, err)
	assert.Contains(t, string(b), "migrated 2 resources")
}

func TestNewLoggerBadLogFile(t *testing.T) {
	_, err := newLogger(context.Background(), &config.Config{LogFile: filepath.Join(t.TempDir(), "missing", "run.log")})
	assert.ErrorContains(t, err, "error opening log file")
}

func TestRunWithLogFileSucceeds(t *testing.T) {
	h := newHarness(t)
	h.deps.NewLogger = newLogger
	logFile := filepath.Join(t.TempDir(), "run.log")
	h.client.EXPECT().GetLocation(gomock.Any(), protoEq(&locationpb.GetLocationRequest{Name: parent})).
		Return(&locationpb.Location{Name: parent, LocationId: "us-central1"}, nil)
	h.client.EXPECT().Close().Return(nil)

	assert.NoError(t, h.run("locations", "get", "--project", "p", "--location", "us-central1", "--log-file", logFile))
	assert.Contains(t, h.out.String(), "us-central1")
	_, err := os.Stat(logFile)
	assert.NoError(t, err)
}

func TestPollBackOffNeverStops(t *testing.T) {
	b := newPollBackOff()
	for i := 0; i < 20; i++ {
		assert.NotEqual(t, backoff.Stop, b.NextBackOff())
	}
}

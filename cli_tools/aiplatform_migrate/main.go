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

// aiplatform_migrate searches legacy AutoML, AI Platform and Data Labeling
// resources and migrates them to Vertex AI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/aiplatform_migrate/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx, commands.DefaultDependencies(), os.Args[1:])
	stop()
	if err != nil {
		os.Exit(1)
	}
}

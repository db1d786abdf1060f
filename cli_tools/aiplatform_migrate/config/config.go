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

// Package config resolves the settings of aiplatform_migrate from flags,
// environment, an optional config file and the GCE metadata server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/domain"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/compute"
	"github.com/iLLRaps3/python-aiplatform-sub001/cli_tools/common/utils/validation"
)

// Keys shared by flags, environment variables and the config file.
const (
	ProjectKey      = "project"
	LocationKey     = "location"
	TransportKey    = "transport"
	EndpointKey     = "endpoint"
	OutputKey       = "output"
	DebugKey        = "debug"
	LogFileKey      = "log-file"
	CloudLoggingKey = "cloud-logging"

	// EnvPrefix prefixes environment variables, e.g. AIPLATFORM_MIGRATE_PROJECT.
	EnvPrefix = "AIPLATFORM_MIGRATE"
)

// Config is the resolved tool configuration.
//
// Tags define validations; see validation.ValidateStruct for more info.
type Config struct {
	Project      string `name:"project"`
	Location     string `name:"location" validate:"omitempty,gcp_location"`
	Transport    string `name:"transport" validate:"oneof=grpc rest"`
	Endpoint     string `name:"endpoint"`
	Output       string `name:"output" validate:"oneof=table json yaml"`
	Debug        bool   `name:"debug"`
	LogFile      string `name:"log-file"`
	CloudLogging bool   `name:"cloud-logging"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(TransportKey, "grpc")
	v.SetDefault(OutputKey, "table")
}

// Load wires environment variables and reads the config file into v.
// An explicit configFile must exist; the default
// $HOME/.aiplatform_migrate/config.yaml is optional.
func Load(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".aiplatform_migrate"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Resolve builds a Config from v. Project and location that are not set
// anywhere fall back to the metadata of the GCE VM the tool runs on.
func Resolve(v *viper.Viper, mgce domain.MetadataGCEInterface) (*Config, error) {
	cfg := &Config{
		Project:      v.GetString(ProjectKey),
		Location:     v.GetString(LocationKey),
		Transport:    strings.ToLower(v.GetString(TransportKey)),
		Endpoint:     v.GetString(EndpointKey),
		Output:       strings.ToLower(v.GetString(OutputKey)),
		Debug:        v.GetBool(DebugKey),
		LogFile:      v.GetString(LogFileKey),
		CloudLogging: v.GetBool(CloudLoggingKey),
	}
	if cfg.Project == "" || cfg.Location == "" {
		project, region, err := compute.DefaultProjectAndRegion(mgce)
		if err != nil {
			return nil, err
		}
		if cfg.Project == "" {
			cfg.Project = project
		}
		if cfg.Location == "" {
			cfg.Location = region
		}
	}
	if err := validation.ValidateStruct(cfg); err != nil {
		return nil, err
	}
	if cfg.CloudLogging && cfg.Project == "" {
		return nil, fmt.Errorf("--%s requires a project", CloudLoggingKey)
	}
	return cfg, nil
}

// Parent returns projects/{project}/locations/{location}.
func (c *Config) Parent() (string, error) {
	if err := validation.ValidateStringFlagNotEmpty(c.Project, ProjectKey); err != nil {
		return "", err
	}
	if err := validation.ValidateStringFlagNotEmpty(c.Location, LocationKey); err != nil {
		return "", err
	}
	return fmt.Sprintf("projects/%s/locations/%s", c.Project, c.Location), nil
}

// ServiceEndpoint returns the endpoint override, or the regional endpoint
// of the configured location. It is empty when neither is known.
func (c *Config) ServiceEndpoint() string {
	if c.Endpoint != "" || c.Location == "" {
		return c.Endpoint
	}
	if c.Transport == "rest" {
		return fmt.Sprintf("https://%s-aiplatform.googleapis.com", c.Location)
	}
	return fmt.Sprintf("%s-aiplatform.googleapis.com:443", c.Location)
}

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

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	locationRegexp  = regexp.MustCompile(`^[a-z]+(-[a-z]+)*[0-9]+$`)
	parentRegexp    = regexp.MustCompile(`^projects/[^/]+/locations/[^/]+$`)
	operationRegexp = regexp.MustCompile(`^projects/[^/]+/locations/[^/]+(/[^/]+/[^/]+)*/operations/[^/]+$`)
	gcsPathRegexp   = regexp.MustCompile(`^gs://[a-z0-9][-_.a-z0-9]*/.+$`)

	once     sync.Once
	validate *validator.Validate
)

func structValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// Report fields using their `name` tag so that messages match flag names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("name"); name != "" && name != "-" {
				return name
			}
			return fld.Name
		})
		registerRegexp(validate, "gcp_location", locationRegexp)
		registerRegexp(validate, "aiplatform_parent", parentRegexp)
		registerRegexp(validate, "aiplatform_operation", operationRegexp)
		registerRegexp(validate, "gcs_path", gcsPathRegexp)
	})
	return validate
}

func registerRegexp(v *validator.Validate, tag string, re *regexp.Regexp) {
	if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// ValidateStruct checks the `validate` tags of s. Supported tags, beyond the
// validator built-ins:
//
//	gcp_location          e.g. us-central1
//	aiplatform_parent     projects/{project}/locations/{location}
//	aiplatform_operation  projects/{project}/locations/{location}/.../operations/{id}
//	gcs_path              gs://bucket/object
//
// The first failure is returned, naming the field by its `name` tag.
func ValidateStruct(s interface{}) error {
	err := structValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s must be provided", fe.Field())
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "gcp_location":
		return fmt.Errorf("%s must be a location such as us-central1, got %q", fe.Field(), fe.Value())
	case "aiplatform_parent":
		return fmt.Errorf("%s must have the form projects/{project}/locations/{location}, got %q", fe.Field(), fe.Value())
	case "aiplatform_operation":
		return fmt.Errorf("%s must be an operation name, got %q", fe.Field(), fe.Value())
	case "gcs_path":
		return fmt.Errorf("%s must be a Cloud Storage object path, got %q", fe.Field(), fe.Value())
	}
	return fmt.Errorf("%s failed validation %q with value %v", fe.Field(), fe.Tag(), fe.Value())
}

// ValidateStringFlagNotEmpty returns error with error message stating field must be provided if
// value is empty string. Returns nil otherwise.
func ValidateStringFlagNotEmpty(flagValue string, flagKey string) error {
	if flagValue == "" {
		return fmt.Errorf("the flag --%v must be provided", flagKey)
	}
	return nil
}

// ValidateRequestOrFlags returns an error when requestFlag, which carries a
// whole request, is set together with any flag that sets a single field of
// that request.
func ValidateRequestOrFlags(requestFlag string, requestSet bool, fieldFlags map[string]bool) error {
	if !requestSet {
		return nil
	}
	var names []string
	for name, isSet := range fieldFlags {
		if isSet {
			names = append(names, "--"+name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)
	return fmt.Errorf("--%s cannot be combined with %s", requestFlag, strings.Join(names, ", "))
}

// This file is part of vmAssmbler - https://github.com/cooperalpaca/vmAssmbler
//
// Copyright 2016 The vmAssmbler Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"os"

	"github.com/cooperalpaca/vmAssmbler/image"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type config struct {
	Output   string `yaml:"output"`
	Strict   bool   `yaml:"strict"`
	Extended bool   `yaml:"extended"`
	Labels   bool   `yaml:"labels"`
	Verbose  bool   `yaml:"verbose"`
}

func defaultConfig() config {
	return config{Output: image.DefaultFileName}
}

// loadConfig reads a YAML configuration file into cfg. Keys missing from the
// file leave cfg untouched.
func loadConfig(fileName string, cfg *config) error {
	f, err := os.Open(fileName)
	if err != nil {
		return errors.Wrap(err, "open failed")
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrapf(err, "%s", fileName)
	}
	if cfg.Output == "" {
		return errors.Errorf("%s: empty output file name", fileName)
	}
	return nil
}

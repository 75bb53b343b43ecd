/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// StringList is a list of strings. In YAML, it can be given as either a single string or a list.
type StringList []string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (a *StringList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*a = StringList{single}
		return nil
	}

	var list []string
	if err := unmarshal(&list); err != nil {
		return err
	}
	*a = list
	return nil
}

// Has returns true if file is in the list.
func (a StringList) Has(file string) bool {
	for _, existing := range a {
		if existing == file {
			return true
		}
	}
	return false
}

// Config contains the settings for building a schema.
type Config struct {
	// Schema is a list of glob patterns of the schema files.
	Schema StringList `yaml:"schema" validate:"required,min=1,dive,required"`

	// LegacyCommentDescriptions enables descriptions from the comments before a definition.
	LegacyCommentDescriptions bool `yaml:"legacy_comment_descriptions"`

	// Output is the file to write the result. Empty means stdout.
	Output string `yaml:"output"`

	// Format of the output
	Format string `yaml:"format" validate:"oneof=json text"`
}

// DefaultConfig returns a Config with the default values.
func DefaultConfig() *Config {
	return &Config{
		Format: FormatJSON,
	}
}

// LoadConfig reads a Config from a YAML file. Environment variables in the file are expanded.
func LoadConfig(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(b))), cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the fields in cfg.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SchemaFiles expands the patterns in cfg.Schema to a list of files. A "**" in a pattern matches any
// number of directories.
func (cfg *Config) SchemaFiles() ([]string, error) {
	var files StringList
	for _, pattern := range cfg.Schema {
		matches, err := expandPattern(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no schema file matches %s", pattern)
		}
		for _, match := range matches {
			if !files.Has(match) {
				files = append(files, match)
			}
		}
	}
	return files, nil
}

func expandPattern(pattern string) ([]string, error) {
	if !strings.Contains(pattern, "**") {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob schema filename %s: %w", pattern, err)
		}
		return matches, nil
	}

	parts := strings.SplitN(pattern, "**", 2)
	root := parts[0]
	if len(root) == 0 {
		root = "."
	}
	rest := strings.TrimLeft(filepath.ToSlash(parts[1]), "/")

	var matches []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		// Match rest against every suffix of the path relative to root.
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		segments := strings.Split(filepath.ToSlash(rel), "/")
		for i := range segments {
			matched, err := filepath.Match(rest, strings.Join(segments[i:], "/"))
			if err != nil {
				return err
			}
			if matched {
				matches = append(matches, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk schema at root %s: %w", root, err)
	}

	sort.Strings(matches)
	return matches, nil
}

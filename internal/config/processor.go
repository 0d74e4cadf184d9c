// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultProcessor returns the FAQ processor configuration used when no
// file is configured. It reads the storage pages, recursion depth and the
// grouping and filter toggles from the content element row.
func DefaultProcessor() map[string]any {
	return map[string]any{
		"table":                  "tx_faqpress_item",
		"categoryField":          "categories",
		"pidInList.":             map[string]any{"field": "pages"},
		"recursive.":             map[string]any{"field": "recursive_depth"},
		"orderBy":                "sorting",
		"categoryOrderBy":        "sorting",
		"groupByCategoryField":   "faqpress_group_by_category",
		"filterByCategoryField":  "faqpress_filter_by_category",
		"asFlat":                 "faqs",
		"asGrouped":              "faqsByCategory",
		"resolveToRecordObjects": 1,
	}
}

// LoadProcessor reads a YAML processor configuration. The top level must
// be a mapping; nested mappings express field references, e.g.
//
//	pidInList:
//	  field: pages
//	  ifEmpty: "12"
func LoadProcessor(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read processor config: %w", err)
	}

	var conf map[string]any
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("parse processor config %s: %w", path, err)
	}
	if len(conf) == 0 {
		return nil, fmt.Errorf("processor config %s is empty", path)
	}
	return conf, nil
}

// Processor returns the processor configuration for c: the configured file
// when set, DefaultProcessor otherwise.
func (c *Config) Processor() (map[string]any, error) {
	if c.ProcessorConfigPath == "" {
		return DefaultProcessor(), nil
	}
	return LoadProcessor(c.ProcessorConfigPath)
}

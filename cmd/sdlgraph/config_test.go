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
	"errors"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// writeFile creates a file with the given content under dir and returns its path.
func writeFile(dir string, name string, content string) string {
	path := filepath.Join(dir, name)
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).Should(Succeed())
	Expect(os.WriteFile(path, []byte(content), 0644)).Should(Succeed())
	return path
}

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "sdlgraph-config")
		Expect(err).ShouldNot(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).Should(Succeed())
	})

	It("loads config from YAML", func() {
		Expect(os.Setenv("SDLGRAPH_TEST_SCHEMA_DIR", "schemas")).Should(Succeed())
		defer os.Unsetenv("SDLGRAPH_TEST_SCHEMA_DIR")

		filename := writeFile(dir, "sdlgraph.yml", `
schema:
  - ${SDLGRAPH_TEST_SCHEMA_DIR}/*.graphql
  - extra.graphql
legacy_comment_descriptions: true
output: graph.txt
format: text
unknown: ignored
`)

		cfg, err := LoadConfig(filename)
		Expect(err).ShouldNot(HaveOccurred())

		expected := &Config{
			Schema:                    StringList{"schemas/*.graphql", "extra.graphql"},
			LegacyCommentDescriptions: true,
			Output:                    "graph.txt",
			Format:                    FormatText,
		}
		Expect(cmp.Diff(expected, cfg)).Should(BeEmpty())
	})

	It("accepts a single schema pattern and uses default format", func() {
		filename := writeFile(dir, "sdlgraph.yml", "schema: schema.graphql\n")

		cfg, err := LoadConfig(filename)
		Expect(err).ShouldNot(HaveOccurred())

		expected := &Config{
			Schema: StringList{"schema.graphql"},
			Format: FormatJSON,
		}
		Expect(cmp.Diff(expected, cfg)).Should(BeEmpty())
	})

	It("rejects invalid config", func() {
		tests := []string{
			"format: json\n",
			"schema: []\n",
			"schema: schema.graphql\nformat: xml\n",
			"schema: [\n",
		}

		for _, test := range tests {
			_, err := LoadConfig(writeFile(dir, "sdlgraph.yml", test))
			Expect(err).Should(HaveOccurred(), test)
		}
	})

	It("reports missing config file", func() {
		_, err := LoadConfig(filepath.Join(dir, "missing.yml"))
		Expect(err).Should(MatchError(ContainSubstring("unable to read config")))
		Expect(errors.Is(err, os.ErrNotExist)).Should(BeTrue())
	})

	Describe("SchemaFiles", func() {
		BeforeEach(func() {
			writeFile(dir, "a.graphql", "")
			writeFile(dir, "b.graphql", "")
			writeFile(dir, "sub/c.graphql", "")
			writeFile(dir, "sub/deep/d.graphql", "")
			writeFile(dir, "sub/notes.txt", "")
		})

		It("expands glob patterns", func() {
			cfg := &Config{
				Schema: StringList{
					filepath.Join(dir, "*.graphql"),
					filepath.Join(dir, "a.graphql"),
				},
			}

			files, err := cfg.SchemaFiles()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(files).Should(Equal([]string{
				filepath.Join(dir, "a.graphql"),
				filepath.Join(dir, "b.graphql"),
			}))
		})

		It("matches any number of directories with **", func() {
			cfg := &Config{
				Schema: StringList{dir + "/sub/**/*.graphql"},
			}

			files, err := cfg.SchemaFiles()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(files).Should(Equal([]string{
				filepath.Join(dir, "sub", "c.graphql"),
				filepath.Join(dir, "sub", "deep", "d.graphql"),
			}))
		})

		It("reports pattern that matches nothing", func() {
			cfg := &Config{
				Schema: StringList{filepath.Join(dir, "*.gql")},
			}

			_, err := cfg.SchemaFiles()
			Expect(err).Should(MatchError(ContainSubstring("no schema file matches")))
		})
	})
})

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
	"os"

	"github.com/botobag/sdlgraph/graphql"
	"github.com/botobag/sdlgraph/graphql/ast"
	"github.com/botobag/sdlgraph/graphql/builder"
	"github.com/botobag/sdlgraph/graphql/parser"
	"github.com/botobag/sdlgraph/graphql/token"

	"go.uber.org/zap"
)

// parseFiles parses the schema files and merges their definitions into one document.
func parseFiles(files []string, logger *zap.Logger) (*ast.Document, error) {
	doc := &ast.Document{}
	for _, filename := range files {
		body, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("unable to read schema: %w", err)
		}

		fileDoc, err := parser.Parse(token.NewSource(&token.SourceConfig{
			Body: token.SourceBody(body),
			Name: filename,
		}))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}

		logger.Debug("parsed schema file",
			zap.String("file", filename),
			zap.Int("definitions", len(fileDoc.Definitions)))
		doc.Definitions = append(doc.Definitions, fileDoc.Definitions...)
	}
	return doc, nil
}

// buildSchema builds the type graph from the schema files named in cfg.
func buildSchema(cfg *Config, logger *zap.Logger) (*graphql.Schema, error) {
	files, err := cfg.SchemaFiles()
	if err != nil {
		return nil, err
	}

	doc, err := parseFiles(files, logger)
	if err != nil {
		return nil, err
	}

	schema, err := builder.BuildDocument(doc, builder.Options{
		LegacyCommentDescriptions: cfg.LegacyCommentDescriptions,
		Logger:                    logger,
	}, nil)
	if err != nil {
		return nil, err
	}

	logger.Info("built schema",
		zap.Strings("files", files),
		zap.Int("types", schema.TypeMap().Len()),
		zap.Int("directives", len(schema.Directives())))
	return schema, nil
}

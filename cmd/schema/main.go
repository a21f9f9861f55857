// Package main generates the JSON schemas for theme documents and the vivid configuration.
package main

import (
	"os"
	"path/filepath"

	"github.com/yeisme/vivid/pkg/utils/schema"
)

//go:generate go run github.com/yeisme/vivid/cmd/schema
func main() {
	docs := filepath.Join("..", "..", "docs")
	if err := os.MkdirAll(docs, 0755); err != nil {
		panic(err)
	}

	themeSchemaFile, err := os.Create(filepath.Join(docs, "theme_schema.json"))
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = themeSchemaFile.Close()
	}()

	if err := schema.GenThemeSchema(themeSchemaFile); err != nil {
		panic(err)
	}

	configSchemaFile, err := os.Create(filepath.Join(docs, "config_schema.json"))
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = configSchemaFile.Close()
	}()

	if err := schema.GenConfigSchema(configSchemaFile); err != nil {
		panic(err)
	}
}

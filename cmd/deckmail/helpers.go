package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/deckmail/internal/config"
	pkgconfig "github.com/dmitrymomot/deckmail/pkg/config"
	"github.com/dmitrymomot/deckmail/svc/report"
)

var errNoInput = errors.New("request file is required (-f)")

// loadConfig reads the runtime configuration, including any --env-file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	files, _ := cmd.Flags().GetStringSlice("env-file")
	var opts []pkgconfig.Option
	if len(files) > 0 {
		opts = append(opts, pkgconfig.WithEnvFiles(files...))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// readRequest decodes a report request from path. Files ending in .yaml or
// .yml are YAML, anything else is JSON; "-" reads JSON from in.
// Unknown fields are rejected in both formats.
func readRequest(path string, in io.Reader) (report.Request, error) {
	var req report.Request
	if path == "" {
		return req, errNoInput
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return req, fmt.Errorf("read request: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&req); err != nil {
			return req, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return req, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return req, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

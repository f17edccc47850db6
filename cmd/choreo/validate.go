package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/milk9111/motion/choreo"
	"github.com/milk9111/motion/easing"
	"github.com/spf13/cobra"
)

var errInvalidFiles = errors.New("some choreography files are invalid")

func addValidate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "validate [path...]",
		Short: "Check choreography files for errors",
		Long:  "Check choreography files for errors. With no paths, every file in --dir (or the embedded defaults) is checked.",
		Example: `
choreo validate
choreo validate ./choreo/intro.yaml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			docs, err := collect(cfg.Dir, args)
			if err != nil {
				return err
			}
			return validateAll(cmd, docs)
		},
	}

	topLevel.AddCommand(cmd)
}

type document struct {
	name string
	load func() (*choreo.File, error)
}

func collect(dir string, paths []string) ([]document, error) {
	if len(paths) == 0 && dir == "" {
		var docs []document
		for _, name := range choreo.Defaults() {
			docs = append(docs, document{name: name, load: func() (*choreo.File, error) {
				data, err := choreo.DefaultsFS.ReadFile("defaults/" + name)
				if err != nil {
					return nil, err
				}
				return choreo.Parse(data)
			}})
		}
		return docs, nil
	}
	if len(paths) == 0 {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
				paths = append(paths, filepath.Join(dir, e.Name()))
			}
		}
		sort.Strings(paths)
	}
	docs := make([]document, 0, len(paths))
	for _, p := range paths {
		docs = append(docs, document{name: p, load: func() (*choreo.File, error) {
			return choreo.LoadFile(p)
		}})
	}
	return docs, nil
}

func validateAll(cmd *cobra.Command, docs []document) error {
	ok := color.New(color.FgGreen).Sprint("ok")
	bad := color.New(color.FgRed).Sprint("invalid")
	out := cmd.OutOrStdout()

	failed := 0
	for _, d := range docs {
		err := validateDoc(d)
		if err == nil {
			_, _ = fmt.Fprintf(out, "%s  %s\n", ok, d.name)
			continue
		}
		failed++
		_, _ = fmt.Fprintf(out, "%s  %s\n", bad, d.name)
		for _, line := range strings.Split(err.Error(), "\n") {
			_, _ = fmt.Fprintf(out, "    %s\n", line)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidFiles, failed, len(docs))
	}
	return nil
}

func validateDoc(d document) error {
	f, err := d.load()
	if err != nil {
		return err
	}
	return f.Validate(easing.Default)
}

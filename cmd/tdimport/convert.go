/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/aassdk"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Output formats of the convert command.
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatAAS  = "aas"
)

type convertFlags struct {
	format      string
	kind        string
	incremental bool
	parallel    bool
	schema      string
	output      string
	quiet       bool
}

func newConvertCmd() *cobra.Command {
	f := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "convert <thing-description.json>",
		Short: "Convert a Thing Description file and print the produced submodel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, f, args[0])
		},
	}
	cmd.Flags().StringVarP(&f.format, "format", "f", formatJSON, "output format: json, yaml or aas")
	cmd.Flags().StringVar(&f.kind, "kind", string(model.MODELLINGKIND_INSTANCE), "modelling kind: Instance or Template")
	cmd.Flags().BoolVar(&f.incremental, "incremental", false, "attach elements as they are built, keeping partial results on failure")
	cmd.Flags().BoolVar(&f.parallel, "parallel", false, "build the top-level sections concurrently")
	cmd.Flags().StringVar(&f.schema, "schema", "", "JSON Schema file to validate the document against")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the submodel to this file instead of stdout")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "do not print warnings")
	return cmd
}

func runConvert(cmd *cobra.Command, f *convertFlags, path string) error {
	if f.format != formatJSON && f.format != formatYAML && f.format != formatAAS {
		return fmt.Errorf("unsupported format %q", f.format)
	}
	kind := model.ModellingKind(f.kind)
	if !kind.IsValid() {
		return fmt.Errorf("unsupported kind %q", f.kind)
	}

	opts := []tdimport.Option{tdimport.WithKind(kind), tdimport.WithParallel(f.parallel)}
	if f.incremental {
		opts = append(opts, tdimport.WithAttachMode(tdimport.AttachIncremental))
	}
	if f.schema != "" {
		validator, err := tdimport.NewSchemaValidatorFromFile(f.schema)
		if err != nil {
			return err
		}
		opts = append(opts, tdimport.WithValidator(validator))
	}

	sm := model.NewSubmodel("")
	res := tdimport.ImportThingDescription(path, nil, sm, nil, opts...)
	if !f.quiet {
		for _, w := range res.Warnings {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
		}
	}
	if !res.OK() {
		// Incremental mode keeps what was built, print it before failing.
		if f.incremental && len(sm.SubmodelElements) > 0 {
			_ = write(cmd, f, sm)
		}
		return fmt.Errorf("import %s: %w", path, res.Err)
	}
	return write(cmd, f, sm)
}

func write(cmd *cobra.Command, f *convertFlags, sm *model.Submodel) error {
	data, err := render(f.format, sm)
	if err != nil {
		return err
	}
	if f.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return writeFile(f.output, data)
}

// createOutput opens the -o target.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeFile writes data to path. A failed close is reported like a failed write.
func writeFile(path string, data []byte) (err error) {
	file, err := createOutput(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	_, err = file.Write(data)
	return err
}

func render(format string, sm *model.Submodel) ([]byte, error) {
	switch format {
	case formatAAS:
		jsonable, err := aassdk.Jsonable(sm)
		if err != nil {
			return nil, err
		}
		return marshalIndent(jsonable)
	case formatYAML:
		data, err := json.Marshal(sm)
		if err != nil {
			return nil, err
		}
		var tree interface{}
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
		return yaml.Marshal(tree)
	default:
		return marshalIndent(sm)
	}
}

func marshalIndent(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

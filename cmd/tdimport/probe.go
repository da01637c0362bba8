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
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const (
	defaultProbePort    = "5080"
	defaultProbeTimeout = 5 * time.Second
)

type probeFlags struct {
	timeout time.Duration
	output  string
	quiet   bool
}

// newProbeCmd checks the health endpoint of a running import service. It is meant
// as the container health check in images without a shell or wget.
func newProbeCmd() *cobra.Command {
	f := &probeFlags{}
	cmd := &cobra.Command{
		Use:   "probe [health-url]",
		Short: "Check the health endpoint of a running import service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			url := defaultHealthURL()
			if len(args) == 1 {
				url = args[0]
			}
			var out io.Writer = cmd.OutOrStdout()
			if f.quiet {
				out = io.Discard
			}
			if f.output != "" && f.output != "-" {
				file, createErr := createOutput(f.output)
				if createErr != nil {
					return fmt.Errorf("TDIMPORT-PROBE-CREATEOUTPUT: %w", createErr)
				}
				defer func() {
					if closeErr := file.Close(); err == nil && closeErr != nil {
						err = fmt.Errorf("TDIMPORT-PROBE-WRITEOUTPUT: %w", closeErr)
					}
				}()
				out = file
			}
			return probe(cmd.Context(), url, f.timeout, out)
		},
	}
	cmd.Flags().DurationVar(&f.timeout, "timeout", defaultProbeTimeout, "request timeout")
	cmd.Flags().StringVarP(&f.output, "output-document", "O", "", "write the response body to this file")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "discard the response body")
	return cmd
}

// defaultHealthURL builds the local health URL from the variables the service reads.
func defaultHealthURL() string {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = defaultProbePort
	}
	return fmt.Sprintf("http://127.0.0.1:%s%s/health", port, os.Getenv("SERVER_CONTEXTPATH"))
}

func probe(ctx context.Context, url string, timeout time.Duration, out io.Writer) error {
	if timeout <= 0 {
		return errors.New("TDIMPORT-PROBE-INVALIDTIMEOUT")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("TDIMPORT-PROBE-BADURL: %w", err)
	}
	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("TDIMPORT-PROBE-REQUESTFAILED: %w", err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("TDIMPORT-PROBE-UNHEALTHYSTATUS: %d", response.StatusCode)
	}
	if _, err := io.Copy(out, response.Body); err != nil {
		return fmt.Errorf("TDIMPORT-PROBE-WRITEOUTPUT: %w", err)
	}
	return nil
}

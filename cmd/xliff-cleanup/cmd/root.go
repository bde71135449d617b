/*
Copyright 2026 The Kubernetes Authors All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	goflag "flag"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"k8s.io/xliff-cleanup/pkg/cleanup"
	"k8s.io/xliff-cleanup/pkg/config"
	"k8s.io/xliff-cleanup/pkg/exit"
	"k8s.io/xliff-cleanup/pkg/out"
	"k8s.io/xliff-cleanup/pkg/xliff"
)

var (
	configFile string
	dryRun     bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "xliff-cleanup PATH...",
	Short: "Trims exported XLIFF catalogs down to what the app ships.",
	Long: `xliff-cleanup rewrites XLIFF 1.2 catalogs in place:

  1. <file> sections that are not on the keep list are removed.
  2. Required strings without a translation get the English source as their target.
  3. Info.plist sections left without any <trans-unit> are removed.

Catalogs that cannot be parsed are reported and skipped. No backup is made.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           runCleanup,
}

func runCleanup(_ *cobra.Command, args []string) {
	lists, err := config.Load(configFile)
	if err != nil {
		exit.Error(exit.Config, "Loading config", err)
		return
	}

	f := cleanup.NewFilter(lists)
	f.DryRun = dryRun
	results, err := f.Run(args)
	if err != nil {
		exit.Error(exitCode(err), "Cleaning catalogs", err)
		return
	}
	klog.V(1).Infof("cleaned %d of %d catalogs", len(results), len(args))
}

// exitCode maps a fatal cleanup error to the process exit code
func exitCode(err error) int {
	var se *xliff.StructureError
	switch {
	case errors.As(err, &se):
		return exit.Software
	case errors.Is(err, os.ErrNotExist):
		return exit.NoInput
	case errors.Is(err, os.ErrPermission):
		return exit.Permissions
	}
	return exit.IO
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		exit.UsageT("{{.err}}", out.V{"err": err})
	}
}

func init() {
	RootCmd.Flags().StringVar(&configFile, "config", "", "YAML, JSON or TOML file with keep_files and required_ids lists replacing the built-in ones")
	RootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing any catalog")

	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
}

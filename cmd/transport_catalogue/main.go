// Command transport_catalogue runs the batch catalogue/router/renderer
// pipeline in one of two modes: make_base builds and persists the
// materialized state, process_requests reloads it and answers stat
// requests.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "transport_catalogue",
		Short: "Batch transit catalogue builder and query processor",
		// Any argument that is not a known subcommand, or no subcommand at
		// all, is an error: cobra prints it and the usage to stderr.
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("a subcommand is required: make_base or process_requests")
		},
	}

	var makeBaseInput, makeBaseOutput string
	makeBase := &cobra.Command{
		Use:   "make_base",
		Short: "Build the catalogue, picture and route graph, and persist them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMakeBase(makeBaseInput, makeBaseOutput)
		},
	}
	makeBase.Flags().StringVar(&makeBaseInput, "input", "", "path to the JSON request document (default: stdin)")
	makeBase.Flags().StringVar(&makeBaseOutput, "output", "", "override serialization_settings.file")

	var processInput, processOutput string
	processRequests := &cobra.Command{
		Use:   "process_requests",
		Short: "Reload the persisted state and answer stat requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcessRequests(processInput, processOutput)
		},
	}
	processRequests.Flags().StringVar(&processInput, "input", "", "path to the JSON request document (default: stdin)")
	processRequests.Flags().StringVar(&processOutput, "output", "", "override serialization_settings.file")

	root.AddCommand(makeBase, processRequests)
	return root
}

func init() {
	log.SetFlags(0)
}

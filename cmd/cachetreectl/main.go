// cmd/cachetreectl/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var configPath string

var rootCmd = &cobra.Command{
	Use:   "cachetreectl",
	Short: "cachetreectl drives a cache-conscious B-tree multimap",
	Long: `cachetreectl is a small front end over the cachetree multimap core.

It is not part of the multimap itself: the core is an in-memory library with
no file formats, wire protocols, or persisted state. cachetreectl exists to
exercise the public interface (ADD, CONTAINS_KEY, CONTAINS_PAIR, TRAVERSE,
CLEAR, STATS) the way a human or a script would, one multimap per process.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (prompt, history file, banner)")
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(runCmd)
}

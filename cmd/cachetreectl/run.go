package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hareesh108/cachetree/internal/replcmd"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Execute a script of multimap commands, one per line",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func runScript(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening script %s: %w", args[0], err)
	}
	defer f.Close()

	engine := replcmd.NewEngine()
	lineNo := 0
	executed := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out := engine.Execute(line)
		if out != "" {
			fmt.Println(out)
		}
		executed++
		if engine.Done(line) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script %s: %w", args[0], err)
	}

	fmt.Printf("ran %d commands from %d lines\n", executed, lineNo)
	return nil
}

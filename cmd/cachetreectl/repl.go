package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/Hareesh108/cachetree/internal/config"
	"github.com/Hareesh108/cachetree/internal/replcmd"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session over the multimap command language",
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := historyFilePath(cfg.HistoryFile)
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	if cfg.Banner {
		fmt.Println("🌳 cachetree — cache-conscious B-tree multimap")
		fmt.Println("💡 Commands: ADD k v | CONTAINS_KEY k | CONTAINS_PAIR k v | TRAVERSE | CLEAR | STATS | EXIT")
	}

	engine := replcmd.NewEngine()
	for {
		input, err := line.Prompt(cfg.Prompt)
		if err != nil {
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		out := engine.Execute(input)
		if out != "" {
			fmt.Println(out)
		}
		if engine.Done(input) {
			break
		}
	}

	if f, err := os.Create(historyPath); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
	return nil
}

func historyFilePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(os.TempDir(), name)
}

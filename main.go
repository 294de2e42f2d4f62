package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "charta [title]",
	Short: "charta is a terminal ASCII diagram editor",
	Long: `charta edits flowchart-style diagrams as plain character grids. Shapes,
connectors and a camera live in a modal editor; diagrams save as JSON
next to an ASCII rendering that pastes anywhere.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")
		if title == "" {
			title = promptTitle()
		}
		runEditor(loadOrNew(title))
	},
}

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Start a fresh diagram",
	Run: func(cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")
		if title == "" {
			title = defaultTitle
		}
		runEditor(newModel(title, loadConfig()))
	},
}

var openCmd = &cobra.Command{
	Use:   "open <title>",
	Short: "Open a saved diagram",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")
		cfg := loadConfig()
		filename := title + ".json"

		data, err := os.ReadFile(cfg.ResolvePath(filename))
		if err != nil {
			fmt.Printf("Error: File %s not found. Starting new instead.\n", filename)
			runEditor(newModel(title, cfg))
			return
		}
		var diagram Diagram
		if err := json.Unmarshal(data, &diagram); err != nil {
			fmt.Printf("Error: Failed to parse %s. Starting new instead.\n", filename)
			runEditor(newModel(title, cfg))
			return
		}
		runEditor(modelFromDiagram(diagram, cfg))
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(openCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func promptTitle() string {
	fmt.Println("Enter a title for your diagram:")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	title := strings.TrimSpace(line)
	if title == "" {
		return defaultTitle
	}
	return title
}

// loadOrNew opens the saved diagram for title when one parses, and starts
// fresh otherwise.
func loadOrNew(title string) model {
	cfg := loadConfig()
	if data, err := os.ReadFile(cfg.ResolvePath(title + ".json")); err == nil {
		var diagram Diagram
		if json.Unmarshal(data, &diagram) == nil {
			return modelFromDiagram(diagram, cfg)
		}
	}
	return newModel(title, cfg)
}

func newModel(title string, cfg *Config) model {
	return modelFromDiagram(Diagram{Title: title}, cfg)
}

func modelFromDiagram(d Diagram, cfg *Config) model {
	return model{
		title:         d.Title,
		nodes:         d.Nodes,
		connections:   d.Connections,
		selectedConn:  -1,
		connectFrom:   -1,
		dragID:        -1,
		mouseResizeID: -1,
		status:        "Press <Space> for commands",
		config:        cfg,
	}
}

func runEditor(m model) {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

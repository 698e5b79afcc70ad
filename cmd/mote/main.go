package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crask/mote/tui"
)

func main() {
	if os.Getenv("MOTE_DEBUG") != "" {
		f, err := tea.LogToFile("mote.log", "mote")
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	config, err := tui.LoadConfig()
	if err != nil {
		log.Println("config:", err)
	}

	model := tui.New(config)
	if len(os.Args) > 1 {
		if err := model.Load(os.Args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error running editor:", err)
		os.Exit(1)
	}
}

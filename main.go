package main

import (
	"fmt"
	"log"
	"os"

	"github.com/andareed/siftly-dialog/config"
	"github.com/andareed/siftly-dialog/dialog"
	"github.com/andareed/siftly-dialog/logging"
	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"
)

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	controlled := flag.Bool("controlled", false, "let the app own the open state instead of the dialog")
	themePath := flag.String("theme", "", "YAML theme file")
	title := flag.String("title", "Edit profile", "dialog title")
	description := flag.String("description",
		"Make changes to your profile here. Click outside the panel when you're done.",
		"dialog description")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("siftly-dialog: Started")

	theme := dialog.DefaultTheme()
	if *themePath != "" {
		t, err := config.Load(*themePath)
		if err != nil {
			log.Fatalf("failed to load theme %q: %v", *themePath, err)
		}
		theme = t.Apply(theme)
	}

	m := newModel(appOptions{
		controlled:  *controlled,
		title:       *title,
		description: *description,
		theme:       theme,
	})

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

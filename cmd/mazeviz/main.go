package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mazeviz/internal/config"
	"github.com/san-kum/mazeviz/internal/export"
	"github.com/san-kum/mazeviz/internal/gui"
	"github.com/san-kum/mazeviz/internal/maze"
	"github.com/san-kum/mazeviz/internal/render"
	"github.com/san-kum/mazeviz/internal/viz"
)

var (
	configFile string
	preset     string
	themeName  string
	tickMillis int
	thickness  int
	tileSize   int
	// path output
	pathFormat string
	// svg export
	exportOut      string
	exportProgress int
	exportScale    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mazeviz [maze file]",
		Short: "animated maze path viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runView(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().IntVar(&tickMillis, "speed", config.DefaultTickMillis, "minimum ms between animation steps")
	rootCmd.PersistentFlags().IntVar(&thickness, "thickness", config.DefaultThickness, "path line thickness")
	rootCmd.PersistentFlags().IntVar(&tileSize, "tile-size", config.DefaultTileSize, "tile edge length in pixels (gui)")

	viewCmd := &cobra.Command{
		Use:   "view [maze file]",
		Short: "animate the maze in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}

	guiCmd := &cobra.Command{
		Use:   "gui [maze file]",
		Short: "animate the maze in a window",
		Args:  cobra.ExactArgs(1),
		RunE:  runGUI,
	}

	infoCmd := &cobra.Command{
		Use:   "info [maze file]",
		Short: "show maze and path statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	pathCmd := &cobra.Command{
		Use:   "path [maze file]",
		Short: "print the grid path built from the move string",
		Args:  cobra.ExactArgs(1),
		RunE:  runPath,
	}
	pathCmd.Flags().StringVar(&pathFormat, "format", "table", "output format: table, csv or json")

	exportCmd := &cobra.Command{
		Use:   "export [maze file]",
		Short: "render the scene to an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&exportOut, "out", "maze.svg", "output file")
	exportCmd.Flags().IntVar(&exportProgress, "progress", -1, "revealed path points (-1 = full path)")
	exportCmd.Flags().Float64Var(&exportScale, "scale", 4.0, "pixels per canvas dot")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list available themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range render.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(viewCmd, guiCmd, infoCmd, pathCmd, exportCmd, themesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves settings: defaults, then preset, then config
// file, with changed CLI flags overriding everything.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		// copy so flag overrides never touch the shared preset
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}
	if cmd.Flags().Changed("speed") {
		cfg.TickMillis = tickMillis
	}
	if cmd.Flags().Changed("thickness") {
		cfg.Thickness = thickness
	}
	if cmd.Flags().Changed("tile-size") {
		cfg.TileSize = tileSize
	}

	return cfg, nil
}

func loadMaze(filename string) (*maze.Model, error) {
	m, err := maze.Load(filename)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return m, nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := loadMaze(args[0])
	if err != nil {
		return err
	}

	title := filepath.Base(args[0])
	p := tea.NewProgram(viz.NewModel(m, cfg, title))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := loadMaze(args[0])
	if err != nil {
		return err
	}
	gui.Run(m, cfg)
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	m, err := maze.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("maze: %s\n", args[0])
	fmt.Printf("grid: %d rows x %d cols\n", m.Rows(), m.Cols())
	fmt.Printf("entry: (%d,%d)\n", m.Entry.Row, m.Entry.Col)
	fmt.Printf("exit: (%d,%d)\n", m.Exit.Row, m.Exit.Col)
	fmt.Printf("moves: %d characters\n", len(m.Moves))
	fmt.Printf("path: %d points\n", len(m.Path))
	if err := m.Validate(); err != nil {
		fmt.Printf("validation: %v\n", err)
	} else {
		fmt.Println("validation: ok")
	}

	if len(m.Path) > 1 {
		cols := make([]float64, len(m.Path))
		rows := make([]float64, len(m.Path))
		for i, c := range m.Path {
			cols[i] = float64(c.Col)
			rows[i] = float64(c.Row)
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(cols,
			asciigraph.Height(8), asciigraph.Width(70),
			asciigraph.Caption("column vs step")))
		fmt.Println()
		fmt.Println(asciigraph.Plot(rows,
			asciigraph.Height(8), asciigraph.Width(70),
			asciigraph.Caption("row vs step")))
	}

	return nil
}

func runPath(cmd *cobra.Command, args []string) error {
	m, err := maze.Load(args[0])
	if err != nil {
		return err
	}

	switch pathFormat {
	case "csv":
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write([]string{"step", "row", "col"}); err != nil {
			return err
		}
		for i, c := range m.Path {
			row := []string{strconv.Itoa(i), strconv.Itoa(c.Row), strconv.Itoa(c.Col)}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil

	case "json":
		type step struct {
			Step int `json:"step"`
			Row  int `json:"row"`
			Col  int `json:"col"`
		}
		out := struct {
			Entry coord  `json:"entry"`
			Exit  coord  `json:"exit"`
			Moves string `json:"moves"`
			Path  []step `json:"path"`
		}{
			Entry: coord{m.Entry.Row, m.Entry.Col},
			Exit:  coord{m.Exit.Row, m.Exit.Col},
			Moves: m.Moves,
		}
		for i, c := range m.Path {
			out.Path = append(out.Path, step{i, c.Row, c.Col})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case "table":
		for i, c := range m.Path {
			fmt.Printf("%4d  (%d,%d)\n", i, c.Row, c.Col)
		}
		return nil

	default:
		return fmt.Errorf("unknown format: %s", pathFormat)
	}
}

type coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := loadMaze(args[0])
	if err != nil {
		return err
	}

	layout := cfg.TUILayout()
	w, h := layout.WindowSize(m)
	canvas := render.NewCanvas(w, h, layout.TileSize)
	pipe := render.NewPipeline(m, canvas, layout)

	progress := exportProgress
	if progress < 0 || progress > len(m.Path) {
		progress = len(m.Path)
	}
	pipe.RedrawAll(progress)

	svg := export.CanvasToSVG(canvas, render.GetTheme(cfg.Theme), exportScale)
	if err := os.WriteFile(exportOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d path points)\n", exportOut, progress)
	return nil
}

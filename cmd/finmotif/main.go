package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"honnef.co/go/curve"

	"github.com/Shashwat-deb/finmotif/internal/analysis"
	"github.com/Shashwat-deb/finmotif/internal/config"
	"github.com/Shashwat-deb/finmotif/internal/export"
	"github.com/Shashwat-deb/finmotif/internal/gui"
	"github.com/Shashwat-deb/finmotif/internal/motif"
	"github.com/Shashwat-deb/finmotif/internal/palette"
	"github.com/Shashwat-deb/finmotif/internal/render"
	"github.com/Shashwat-deb/finmotif/internal/scene"
	"github.com/Shashwat-deb/finmotif/internal/storage"
	"github.com/Shashwat-deb/finmotif/internal/surface"
	"github.com/Shashwat-deb/finmotif/internal/viz"
)

var (
	configFile string
	preset     string
	dataDir    string

	width      float64
	height     float64
	pixelRatio float64
	fps        int
	durationMs int

	output  string
	format  string
	atMs    int
	frames  int
	asCSV   bool
	keep    bool
	samples int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finmotif",
		Short: "decorative financial-motif animation engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive scene picker.
			return viz.RunInteractive(config.DefaultFPS)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "renders", "render session directory")

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "preview a scene in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui [scene]",
		Short: "preview a scene in a native window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	addSceneFlags(guiCmd)

	renderCmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "render a single frame to SVG or PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	addSceneFlags(renderCmd)
	renderCmd.Flags().StringVarP(&output, "out", "o", "", "output file (default <scene>.<format>)")
	renderCmd.Flags().StringVar(&format, "format", "svg", "output format: svg or png")
	renderCmd.Flags().IntVar(&atMs, "at", -1, "elapsed time in ms (-1: final frame)")

	recordCmd := &cobra.Command{
		Use:   "record [scene]",
		Short: "record a deterministic GIF of a scene",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRecord,
	}
	addSceneFlags(recordCmd)
	recordCmd.Flags().StringVarP(&output, "out", "o", "", "output file (default <scene>.gif)")
	recordCmd.Flags().IntVar(&frames, "frames", 120, "number of accepted frames to capture")
	recordCmd.Flags().BoolVar(&keep, "data", false, "store the artifact in a render session")

	dumpCmd := &cobra.Command{
		Use:   "dump [scene]",
		Short: "dump a frame's draw list",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDump,
	}
	addSceneFlags(dumpCmd)
	dumpCmd.Flags().IntVar(&atMs, "at", -1, "elapsed time in ms (-1: final frame)")
	dumpCmd.Flags().BoolVar(&asCSV, "csv", false, "emit CSV instead of JSON")

	plotCmd := &cobra.Command{
		Use:   "plot [scene]",
		Short: "plot a scene's value curve",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&samples, "samples", 120, "number of curve samples")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "spectrum of the growth curve's market texture",
		RunE:  runAnalyze,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list render sessions",
		RunE:  runList,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list built-in render presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPresets,
	}

	rootCmd.AddCommand(liveCmd, guiCmd, renderCmd, recordCmd, dumpCmd, plotCmd, analyzeCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in preset")
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "logical width")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "logical height")
	cmd.Flags().Float64Var(&pixelRatio, "ratio", 0, "device pixel ratio (0: host default)")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "host callback rate")
	cmd.Flags().IntVar(&durationMs, "duration", 0, "reveal duration override in ms")
}

// loadConfig layers preset, config file, and CLI flags, in that order
// of increasing precedence.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.DataDir = dataDir
	if len(args) > 0 {
		cfg.Scene = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Scene, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Scene))
		}
		*cfg = *p
		cfg.DataDir = dataDir
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) > 0 {
			fileCfg.Scene = cfg.Scene
		}
		*cfg = *fileCfg
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("ratio") {
		cfg.PixelRatio = pixelRatio
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("duration") {
		cfg.DurationMs = durationMs
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %gx%g", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// buildScene constructs the configured scene with duration and palette
// overrides applied.
func buildScene(cfg *config.Config) (motif.Scene, error) {
	sc, err := scene.New(cfg.Scene)
	if err != nil {
		return nil, err
	}
	g, ok := sc.(*scene.Growth)
	if !ok {
		return sc, nil
	}
	if cfg.DurationMs > 0 {
		g.SetDuration(time.Duration(cfg.DurationMs) * time.Millisecond)
	}
	pal := g.Palette()
	if err := overrideColor(&pal.Background, cfg.Palette.Background); err != nil {
		return nil, err
	}
	if err := overrideColor(&pal.Line, cfg.Palette.Line); err != nil {
		return nil, err
	}
	if err := overrideColor(&pal.Glow, cfg.Palette.Glow); err != nil {
		return nil, err
	}
	g.SetPalette(pal)
	return sc, nil
}

// overrideColor replaces a palette color's RGB, keeping its alpha.
func overrideColor(dst *motif.Color, hex string) error {
	if hex == "" {
		return nil
	}
	c, err := palette.ParseHex(hex)
	if err != nil {
		return fmt.Errorf("bad palette color %q: %w", hex, err)
	}
	*dst = c.WithAlpha(dst.A)
	return nil
}

// frameAt steps a fresh scene to the frame in effect at elapsed,
// spacing accepted frames by the scene's own interval. at < 0 selects
// the final frame of a one-shot scene (one interval past its reveal).
func frameAt(sc motif.Scene, size curve.Size, at time.Duration) motif.Frame {
	if at < 0 {
		at = 0
		if g, ok := sc.(*scene.Growth); ok {
			at = g.Duration() + time.Millisecond
		}
	}
	interval := sc.FrameInterval()
	if interval <= 0 {
		return sc.Step(size, at)
	}
	f := sc.Step(size, 0)
	for t := interval; t <= at; t += interval {
		f = sc.Step(size, t)
	}
	return f
}

func sceneSize(cfg *config.Config) curve.Size {
	return curve.Sz(cfg.Width, cfg.Height)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	sc, err := buildScene(cfg)
	if err != nil {
		return err
	}
	return viz.Run(sc, cfg.FPS)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	sc, err := buildScene(cfg)
	if err != nil {
		return err
	}
	gui.Run(sc, cfg.Width, cfg.Height, cfg.FPS)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	sc, err := buildScene(cfg)
	if err != nil {
		return err
	}

	at := time.Duration(-1)
	if atMs >= 0 {
		at = time.Duration(atMs) * time.Millisecond
	}
	frame := frameAt(sc, sceneSize(cfg), at)

	out := output
	if out == "" {
		out = cfg.Scene + "." + format
	}

	switch format {
	case "svg":
		if err := os.WriteFile(out, []byte(export.FrameSVG(frame)), 0644); err != nil {
			return err
		}
	case "png":
		surf := surface.Fit(sceneSize(cfg), hostRatio(cfg), sc.MaxPixelRatio())
		bw, bh := surf.Buffer()
		r := render.NewRaster(bw, bh, surf.Scale)
		r.DrawFrame(frame)
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := png.Encode(f, r.Image()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	info, err := os.Stat(out)
	if err != nil {
		return err
	}
	fmt.Printf("saved to %s (%s)\n", out, humanize.Bytes(uint64(info.Size())))
	return nil
}

// hostRatio resolves the configured pixel ratio; 0 means the offline
// default of 1 since no display is attached.
func hostRatio(cfg *config.Config) float64 {
	if cfg.PixelRatio > 0 {
		return cfg.PixelRatio
	}
	return 1
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	sc, err := buildScene(cfg)
	if err != nil {
		return err
	}

	// The capture clock steps by the scene's own accepted-frame
	// interval, so recordings are reproducible without a display.
	interval := sc.FrameInterval()
	if interval <= 0 {
		interval = time.Second / time.Duration(cfg.FPS)
	}

	surf := surface.Fit(sceneSize(cfg), hostRatio(cfg), sc.MaxPixelRatio())
	bw, bh := surf.Buffer()
	raster := render.NewRaster(bw, bh, surf.Scale)

	rec := &export.Recorder{}
	elapsed := time.Duration(0)
	for i := 0; i < frames; i++ {
		raster.DrawFrame(sc.Step(surf.Logical, elapsed))
		rec.Add(raster.Image(), interval)
		if sc.Finished() {
			break
		}
		elapsed += interval
	}

	out := output
	if out == "" {
		out = cfg.Scene + ".gif"
	}

	if keep {
		// Encode into memory so the session owns the file.
		var buf bytes.Buffer
		if err := rec.Encode(&buf); err != nil {
			return err
		}
		data := buf.Bytes()
		store := storage.New(cfg.DataDir)
		if err := store.Init(); err != nil {
			return err
		}
		id, err := store.Save(storage.SessionMetadata{
			Scene:      cfg.Scene,
			Width:      cfg.Width,
			Height:     cfg.Height,
			PixelRatio: surf.Scale,
			Frames:     rec.Len(),
		}, map[string][]byte{filepath.Base(out): data})
		if err != nil {
			return err
		}
		fmt.Printf("session: %s (%d frames, %s)\n", id, rec.Len(), humanize.Bytes(uint64(len(data))))
		return nil
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := rec.Encode(f); err != nil {
		return err
	}
	info, err := os.Stat(out)
	if err != nil {
		return err
	}
	fmt.Printf("saved to %s (%d frames, %s)\n", out, rec.Len(), humanize.Bytes(uint64(info.Size())))
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	sc, err := buildScene(cfg)
	if err != nil {
		return err
	}

	at := time.Duration(-1)
	if atMs >= 0 {
		at = time.Duration(atMs) * time.Millisecond
	}
	frame := frameAt(sc, sceneSize(cfg), at)

	if asCSV {
		return export.FrameCSV(os.Stdout, frame)
	}
	return export.FrameJSON(os.Stdout, frame)
}

func runPlot(cmd *cobra.Command, args []string) error {
	name := config.DefaultScene
	if len(args) > 0 {
		name = args[0]
	}

	var data []float64
	var caption string
	switch name {
	case "frontier":
		data = scene.FrontierValues(samples)
		caption = "expected return vs risk"
	case "growth-blue", "growth-green":
		data = scene.GrowthValues(samples)
		caption = "portfolio value vs t"
	default:
		return fmt.Errorf("%w: %q", motif.ErrUnknownScene, name)
	}

	fmt.Printf("scene: %s\n\n", name)
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	noise := scene.GrowthNoise(256)
	ps := analysis.PowerSpectrum(analysis.PadPow2(noise))

	plotData := ps[:len(ps)/4]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (growth texture)"),
	)
	fmt.Println("growth curve market texture, power-law base removed")
	fmt.Println()
	fmt.Println(graph)
	fmt.Println()

	peaks := analysis.TopPeaks(ps, 3)
	for i, bin := range peaks {
		// One bin is one full cycle over the sampled interval.
		fmt.Printf("peak %d: bin %d (%.1f cycles, magnitude %.3f)\n", i+1, bin, float64(bin), ps[bin])
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	sessions, err := store.List()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("no render sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tSIZE\tFRAMES\tARTIFACTS")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0fx%.0f\t%d\t%s\n",
			s.ID,
			s.Scene,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Width,
			s.Height,
			s.Frames,
			strings.Join(s.Artifacts, ","),
		)
	}
	return w.Flush()
}

func runPresets(cmd *cobra.Command, args []string) error {
	scenes := scene.Names()
	if len(args) > 0 {
		scenes = args[:1]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tPRESET\tSIZE\tFPS\tDURATION")
	for _, name := range scenes {
		presets := config.ListPresets(name)
		if len(presets) == 0 {
			continue
		}
		for _, p := range presets {
			cfg := config.GetPreset(name, p)
			dur := "-"
			if cfg.DurationMs > 0 {
				dur = fmt.Sprintf("%dms", cfg.DurationMs)
			}
			fmt.Fprintf(w, "%s\t%s\t%.0fx%.0f\t%d\t%s\n", name, p, cfg.Width, cfg.Height, cfg.FPS, dur)
		}
	}
	return w.Flush()
}

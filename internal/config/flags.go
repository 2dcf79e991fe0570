package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagPreset     = flag.String("preset", "", "Demo preset (landscape, classic, sandbox)")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagWorldW     = flag.Int("world-width", 0, "Landscape width in cells")
	flagWorldD     = flag.Int("world-depth", 0, "Landscape depth in cells")
	flagCubeSize   = flag.Float64("cube-size", 0, "Voxel edge length in world units")
	flagNoise      = flag.String("noise", "", "Noise source (perlin, simplex)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagWorldW > 0 {
		cfg.Landscape.Width = *flagWorldW
	}
	if *flagWorldD > 0 {
		cfg.Landscape.Depth = *flagWorldD
	}
	if *flagCubeSize > 0 {
		cfg.Landscape.CubeSize = float32(*flagCubeSize)
	}
	if *flagNoise != "" {
		cfg.Landscape.Noise = *flagNoise
	}
}

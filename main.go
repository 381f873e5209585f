// Package main provides the entry point for the callcopy trainer.
package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/callcopy/callcopy/internal/audio"
	"github.com/callcopy/callcopy/internal/callsign"
	"github.com/callcopy/callcopy/internal/config"
	"github.com/callcopy/callcopy/internal/phonetic"
	"github.com/callcopy/callcopy/ui"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	mockAudio  bool
	debug      bool
	maxSpeed   float64
	volume     float64

	rootCmd = &cobra.Command{
		Use:   "callcopy",
		Short: "Practice copying spoken callsigns",
		Long: paragraph(
			fmt.Sprintf("\nListen to a random callsign spelled out phonetically and %s.", keyword("type what you hear")),
		),
		SilenceErrors: false,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: execute,
	}
)

func validateOptions(cmd *cobra.Command) error {
	if cmd.Flags().Changed("config") {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read config file: %w", err)
		}
	}

	debug = viper.GetBool(config.KeyDebug)
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	if v := viper.GetFloat64(config.KeyAudioVolume); v < 0 || v > 1 {
		return fmt.Errorf("volume must be between 0.0 and 1.0, got %.2f", v)
	}
	return nil
}

func execute(*cobra.Command, []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("callcopy needs an interactive terminal")
	}
	return runTUI()
}

func runTUI() error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	actx, err := audio.NewAudioContext(cfg.ContextType(), cfg.ContextOptions())
	if err != nil {
		log.Error("Could not open audio device", "error", err)
		return fmt.Errorf("unable to open audio: %w", err)
	}

	table, err := phonetic.LoadEmbedded(actx.Format())
	if err != nil {
		_ = actx.Close()
		log.Error("Could not load phonetic clips", "error", err)
		return fmt.Errorf("unable to load sounds: %w", err)
	}

	gen, err := callsign.NewGenerator(table, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))) //nolint:gosec
	if err != nil {
		_ = actx.Close()
		return fmt.Errorf("unable to create generator: %w", err)
	}

	ctrl := audio.NewController(actx, cfg.ControllerConfig())
	defer func() { _ = ctrl.Close() }()

	// Read environment to get UI settings
	uiCfg, err := env.ParseAs[ui.Config]()
	if err != nil {
		return fmt.Errorf("error parsing config: %v", err)
	}
	if debug {
		uiCfg.DebugPad = true
	}

	p := ui.NewProgram(uiCfg, ui.Deps{
		Player:    ctrl,
		Generator: gen,
		Slider:    cfg.NewSlider(),
	})

	if viper.ConfigFileUsed() != "" {
		viper.OnConfigChange(func(e fsnotify.Event) {
			v := viper.GetFloat64(config.KeyAudioVolume)
			if v < 0 || v > 1 {
				log.Warn("Ignoring out of range volume", "file", e.Name, "volume", v)
				return
			}
			log.Debug("Configuration changed", "file", e.Name, "volume", v)
			p.Send(ui.VolumeChangedMsg(v))
		})
		viper.WatchConfig()
	}

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("unable to run tui program: %w", err)
	}
	if err := ui.FatalError(m); err != nil {
		return fmt.Errorf("callcopy stopped: %w", err)
	}
	return nil
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	config.SetDefaults(viper.GetViper())
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().BoolVar(&mockAudio, "mock-audio", false, "simulate playback instead of opening the audio device")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug output and open the symbol pad")
	rootCmd.Flags().Float64Var(&maxSpeed, "max-speed", audio.DefaultSliderMax, "upper bound of the speed slider")
	rootCmd.Flags().Float64Var(&volume, "volume", 1.0, "playback volume (0.0 to 1.0)")

	// Config bindings
	_ = viper.BindPFlag(config.KeyAudioMock, rootCmd.Flags().Lookup("mock-audio"))
	_ = viper.BindPFlag(config.KeyDebug, rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag(config.KeySpeedMax, rootCmd.Flags().Lookup("max-speed"))
	_ = viper.BindPFlag(config.KeyAudioVolume, rootCmd.Flags().Lookup("volume"))

	rootCmd.AddCommand(configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "callcopy")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "callcopy")}, dirs...)
	}

	if c := os.Getenv("CALLCOPY_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("callcopy")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("callcopy")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", used)
		return
	}

	configFile = filepath.Join(dirs[0], "callcopy.yml")
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}

// mouseclicker - scripted pointer input replay
// Replays mouse moves, button presses and waits from a command file
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mouseclicker/internal/config"
	"mouseclicker/internal/osutils"
	"mouseclicker/internal/script"
)

var (
	version     = "1.0.0"
	debug       bool
	pause       bool
	configPath  string
	writeConfig bool

	// pauseOnExit is resolved from the flag and the configuration in run
	pauseOnExit bool
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(translateLegacyArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println()
		fmt.Println("ERROR:")
		fmt.Println(err)
		fmt.Println()
		if pauseOnExit || pause {
			waitForEnter()
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mouseclicker [inputfile]",
		Short: "Replay scripted mouse movements and clicks",
		Long: `mouseclicker reads a command file and injects the pointer movements,
button presses and waits it describes.

<inputfile> defaults to input.txt (or input_file from the configuration).
Format:
  [coords=abs|rel] ............... Coordinate type (optional, line 1)
  [res=<width>x<height>] ......... Resolution, only necessary if coords=abs (optional, line 2)
  <x> <y> [ldown] [rdown] ........ Move mouse, optionally pressing left/right mouse button
  wait <msec> .................... Wait for <msec> milliseconds

A button stays pressed while later lines repeat its flag and is released by
the first line that omits it.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug output in console")
	rootCmd.Flags().BoolVar(&pause, "pause", false, "Wait for Enter after an error or the usage info")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default: per-user config.toml)")
	rootCmd.Flags().BoolVar(&writeConfig, "init-config", false, "Write the current settings to the config file and exit")

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd, args)
		if pause {
			waitForEnter()
		}
	})

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfgMgr, err := loadConfig()
	if err != nil {
		return err
	}
	cfg := cfgMgr.Get()

	if cmd.Flags().Changed("debug") {
		cfg.General.Debug = debug
	}
	if cmd.Flags().Changed("pause") {
		cfg.General.PauseOnExit = pause
	}
	pauseOnExit = cfg.General.PauseOnExit

	if writeConfig {
		if err := cfgMgr.Save(); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("Wrote configuration to %s\n", cfgMgr.Path())
		return nil
	}

	inputFile := cfg.General.InputFile
	if len(args) > 0 {
		inputFile = args[0]
	}

	if cfg.General.Debug {
		if note := osutils.InjectionNote(); note != "" {
			log.Printf("Note: %s", note)
		}
	}

	return script.ExecuteCommands(inputFile, cfg.General.Debug)
}

func loadConfig() (*config.Manager, error) {
	var cfgMgr *config.Manager
	if configPath != "" {
		cfgMgr = config.NewManagerAt(configPath)
	} else {
		var err error
		cfgMgr, err = config.NewManager()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize config: %w", err)
		}
	}

	if err := cfgMgr.Load(); err != nil {
		log.Printf("Warning: failed to load config: %v", err)
	}
	if err := cfgMgr.LoadEnv(".env"); err != nil {
		return nil, err
	}
	return cfgMgr, nil
}

// translateLegacyArgs maps the Windows-style switches /debug and /? onto
// their flag equivalents.
func translateLegacyArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "/debug":
			out = append(out, "--debug")
		case "/?":
			out = append(out, "--help")
		default:
			out = append(out, arg)
		}
	}
	return out
}

func waitForEnter() {
	fmt.Println("(press Enter to exit)")
	bufio.NewReader(os.Stdin).ReadString('\n')
}

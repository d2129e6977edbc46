// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"runtime/pprof"

	tviewcommand "github.com/spezifisch/tview-command"
	"github.com/spf13/viper"

	"github.com/solarwinter/tempo/logger"
	"github.com/solarwinter/tempo/mpvplayer"
	"github.com/solarwinter/tempo/remote"
	"github.com/solarwinter/tempo/state"
)

var osExit = os.Exit  // A variable to allow mocking os.Exit in tests
var headlessMode bool // This can be set to true during tests
var testMode bool     // This can be set to true during tests, too

const DEVELOPMENT = "development"

// clientName is what we announce to MPRIS and show in the status bar
const clientName = "tempo"

// clientVersion is the program version; usually set from BuildInfo
var clientVersion string = DEVELOPMENT

func readConfig(configFile *string) error {
	if configFile != nil && *configFile != "" {
		// use custom config file
		viper.SetConfigFile(*configFile)
	} else {
		// lookup default dirs
		viper.SetConfigName("tempo")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/tempo")
		viper.AddConfigPath(".")
	}

	// everything has a default, a missing config file is fine
	viper.SetDefault("ui.seek-step", 0.05)
	viper.SetDefault("ui.manual-navigation", false)
	viper.SetDefault("client.resume", true)
	viper.SetDefault("client.state-file", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && (configFile == nil || *configFile == "") {
			return nil
		}
		return fmt.Errorf("config file error: %s", err)
	}
	return nil
}

// stateFilePath resolves where the resume-position store lives.
func stateFilePath() (string, error) {
	if path := viper.GetString("client.state-file"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "state", "tempo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "resume.db"), nil
}

// initCommandHandler sets up tview-command as main input handler
func initCommandHandler(logger *logger.Logger) {
	tviewcommand.SetLogHandler(func(msg string) {
		logger.Print(msg)
	})

	configPath := viper.GetString("client.keybindings")
	if configPath == "" {
		return
	}

	// Load the configuration file
	config, err := tviewcommand.LoadConfig(configPath)
	if err != nil || config == nil {
		logger.PrintError("Failed to load command-shortcut config", err)
	}
}

// return codes:
// 0 - OK
// 1 - generic errors
// 2 - config errors
func main() {
	help := flag.Bool("help", false, "Print usage")
	enableMpris := flag.Bool("mpris", false, "Enable MPRIS2")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")
	configFile := flag.String("config", "", "use config `file`")
	version := flag.Bool("version", false, "print the tempo version and exit")

	flag.Parse()
	if *help {
		fmt.Printf("USAGE: %s <args> [file or URL ...]\n", os.Args[0])
		flag.Usage()
		osExit(0)
	}
	if clientVersion == DEVELOPMENT {
		if bi, ok := debug.ReadBuildInfo(); ok {
			clientVersion = bi.Main.Version
		}
	}
	if *version {
		fmt.Printf("tempo %s\n", clientVersion)
		osExit(0)
	}

	// cpu/memprofile code straight from https://pkg.go.dev/runtime/pprof
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close() // error handling omitted for example
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := readConfig(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read configuration: %v\n", err)
		osExit(2)
	}

	logger := logger.Init()
	initCommandHandler(logger)

	// init mpv engine
	player, err := mpvplayer.NewPlayer(logger)
	if err != nil {
		fmt.Println("Unable to initialize mpv. Is mpv installed?")
		osExit(1)
	}

	var mprisPlayer *remote.MprisPlayer
	// init mpris2 player control (linux only but fails gracefully on other systems)
	if *enableMpris {
		mprisPlayer, err = remote.RegisterMprisPlayer(player, logger)
		if err != nil {
			fmt.Printf("Unable to register MPRIS with DBUS: %s\n", err)
			fmt.Println("Try running without MPRIS")
			osExit(1)
		}
		defer mprisPlayer.Close()
	}

	// resume-position store
	var resume *state.Store
	if viper.GetBool("client.resume") {
		path, err := stateFilePath()
		if err != nil {
			logger.PrintError("state path", err)
		} else if resume, err = state.Open(path); err != nil {
			logger.PrintError("state open", err)
			resume = nil
		}
	}

	// remaining arguments are tracks to queue up
	for _, arg := range flag.Args() {
		track := mpvplayer.TrackFromUri(arg)
		player.AddToQueue(&track)
	}

	if testMode {
		fmt.Println("Running in test mode for testing.")
		osExit(0x23420001)
		return
	}
	if headlessMode {
		fmt.Println("Running in headless mode for testing.")
		osExit(0)
		return
	}

	ui := InitGui(player, logger, mprisPlayer, resume)

	// run main loop
	if err := ui.Run(); err != nil {
		panic(err)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal("could not create memory profile: ", err)
		}
		defer f.Close() // error handling omitted for example
		runtime.GC()    // get up-to-date statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}
}

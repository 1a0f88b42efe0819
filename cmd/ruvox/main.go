// Command ruvox runs the Russian text-to-speech preprocessing pipeline
// against a string, a file, or stdin.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/xilec/ruvox"
	"github.com/xilec/ruvox/config"
	"github.com/xilec/ruvox/utils"
)

func main() {
	text := flag.String("text", "", "Text to process (reads stdin if empty and -file is not set)")
	file := flag.String("file", "", "Path to a file containing text to process")
	configFile := flag.String("config", "", "Path to a JSON configuration file")
	printMap := flag.Bool("map", false, "Print the character map as JSON alongside the rewritten text")
	unknownWords := flag.Bool("unknown-words", false, "Print the set of words that fell through to transliteration")
	debug := flag.Bool("debug", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("ruvox %s (commit: %s, built: %s)\n", utils.Version, utils.Commit, utils.BuildTime)
		return
	}

	utils.ConfigureLogging(*debug)

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			slog.Error("failed to load configuration", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Debug = *debug
	cfg.CollectUnknownWords = *unknownWords

	pipeline, err := ruvox.New(cfg)
	if err != nil {
		slog.Error("failed to construct pipeline", "error", err)
		os.Exit(1)
	}

	input, err := readInput(*text, *file)
	if err != nil {
		slog.Error("failed to read input", "error", err)
		os.Exit(1)
	}

	output, charMap := pipeline.ProcessWithMap(input)
	fmt.Println(output)

	if *printMap {
		if err := printCharMap(charMap); err != nil {
			slog.Error("failed to print character map", "error", err)
			os.Exit(1)
		}
	}

	if *unknownWords {
		for _, word := range pipeline.Diagnostics().UnknownWords() {
			fmt.Fprintln(os.Stderr, word)
		}
	}
}

func readInput(text, file string) (string, error) {
	switch {
	case text != "":
		return text, nil
	case file != "":
		data, err := os.ReadFile(file) //nolint:gosec // path comes from operator-supplied CLI flag
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
}

func printCharMap(charMap interface {
	Len() int
	At(i int) (int, int)
}) error {
	entries := make([][2]int, charMap.Len())
	for i := range entries {
		start, end := charMap.At(i)
		entries[i] = [2]int{start, end}
	}
	encoded, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

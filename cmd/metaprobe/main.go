package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/printshelf/printshelf/constants"
	"github.com/printshelf/printshelf/internal/gcode"
)

// metaprobe extracts print metadata from a single slicer-output file and
// prints it as JSON. No catalog involved; handy for eyeballing a file.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "metaprobe <file.gcode|file.3mf>")
		os.Exit(2)
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	extractor := gcode.NewExtractor(logger)

	var meta *gcode.PrintMetadata
	if constants.IsArchiveExt(filepath.Ext(path)) {
		meta, err = extractor.ExtractArchive(data, path)
		if err != nil {
			logger.Error("extract archive", "path", path, "error", err)
			os.Exit(1)
		}
	} else {
		meta = extractor.Extract(string(data), path)
	}

	out, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		logger.Error("encode metadata", "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}

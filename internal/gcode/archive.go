package gcode

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

const gcodeSuffix = ".gcode"

// firstPlatePath is the conventional location of the first plate's control
// text inside a manufacturing archive.
const firstPlatePath = "Metadata/plate_1.gcode"

// ArchiveEntry is one named, openable member of an archive.
type ArchiveEntry interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// ArchiveReader lists the entries of an in-memory archive buffer. It is an
// injected capability so extraction can be driven by synthetic archives in
// tests; ZipReader is the production implementation.
type ArchiveReader interface {
	Entries(data []byte) ([]ArchiveEntry, error)
}

// ZipReader reads zip-compatible archive buffers (3MF containers are zip).
type ZipReader struct{}

type zipEntry struct {
	f *zip.File
}

func (e zipEntry) Name() string                 { return e.f.Name }
func (e zipEntry) Open() (io.ReadCloser, error) { return e.f.Open() }

func (ZipReader) Entries(data []byte) ([]ArchiveEntry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	entries := make([]ArchiveEntry, 0, len(zr.File))
	for _, f := range zr.File {
		entries = append(entries, zipEntry{f: f})
	}
	return entries, nil
}

// entryTier ranks candidate entries. Lower wins; ties keep archive order.
//
//	1: exact first-plate path
//	2: any per-plate metadata entry (Metadata/*.gcode)
//	3: any top-level *.gcode with no directory component
//	4: any *.gcode anywhere (fallback)
func entryTier(name string) int {
	if !strings.HasSuffix(strings.ToLower(name), gcodeSuffix) {
		return 0
	}
	switch {
	case name == firstPlatePath:
		return 1
	case strings.HasPrefix(name, "Metadata/"):
		return 2
	case !strings.Contains(name, "/"):
		return 3
	default:
		return 4
	}
}

// extractGcodeFromArchive locates and decompresses the single embedded
// control-text entry that represents the actual print job.
func extractGcodeFromArchive(r ArchiveReader, data []byte) (string, error) {
	entries, err := r.Entries(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrArchiveCorrupt, err)
	}

	var best ArchiveEntry
	bestTier := 0
	for _, e := range entries {
		tier := entryTier(e.Name())
		if tier == 0 {
			continue
		}
		if best == nil || tier < bestTier {
			best, bestTier = e, tier
		}
	}
	if best == nil {
		return "", ErrNoGcodeEntry
	}

	rc, err := best.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open %q: %v", ErrArchiveCorrupt, best.Name(), err)
	}
	defer rc.Close()

	text, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w: read %q: %v", ErrArchiveCorrupt, best.Name(), err)
	}
	return string(text), nil
}

package gcode

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"testing"
)

// buildZip assembles an in-memory zip archive from name -> content pairs,
// preserving insertion order.
func buildZip(t *testing.T, entries [][2]string) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		w, err := zw.Create(e[0])
		if err != nil {
			t.Fatalf("create %q: %v", e[0], err)
		}
		if _, err := w.Write([]byte(e[1])); err != nil {
			t.Fatalf("write %q: %v", e[0], err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractGcodeFromArchive_FirstPlateWins(t *testing.T) {
	data := buildZip(t, [][2]string{
		{"Metadata/plate_2.gcode", "; plate two"},
		{"Metadata/plate_1.gcode", "; plate one"},
		{"loose.gcode", "; loose"},
	})
	text, err := extractGcodeFromArchive(ZipReader{}, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "; plate one" {
		t.Errorf("got %q, want the first-plate entry", text)
	}
}

func TestExtractGcodeFromArchive_TierOrder(t *testing.T) {
	tests := []struct {
		name    string
		entries [][2]string
		want    string
	}{
		{
			name: "plate metadata beats top-level",
			entries: [][2]string{
				{"loose.gcode", "; loose"},
				{"Metadata/plate_3.gcode", "; plate three"},
			},
			want: "; plate three",
		},
		{
			name: "top-level beats nested fallback",
			entries: [][2]string{
				{"extras/old.gcode", "; nested"},
				{"job.gcode", "; top"},
			},
			want: "; top",
		},
		{
			name: "nested fallback used when nothing else matches",
			entries: [][2]string{
				{"3D/model.model", "<model/>"},
				{"extras/old.gcode", "; nested"},
			},
			want: "; nested",
		},
		{
			name: "equal tier keeps archive order",
			entries: [][2]string{
				{"Metadata/plate_5.gcode", "; five"},
				{"Metadata/plate_4.gcode", "; four"},
			},
			want: "; five",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := extractGcodeFromArchive(ZipReader{}, buildZip(t, tt.entries))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if text != tt.want {
				t.Errorf("got %q, want %q", text, tt.want)
			}
		})
	}
}

func TestExtractGcodeFromArchive_NoEntry(t *testing.T) {
	data := buildZip(t, [][2]string{
		{"3D/model.model", "<model/>"},
		{"Metadata/thumbnail.png", "png"},
	})
	_, err := extractGcodeFromArchive(ZipReader{}, data)
	if !errors.Is(err, ErrNoGcodeEntry) {
		t.Fatalf("got %v, want ErrNoGcodeEntry", err)
	}
}

func TestExtractGcodeFromArchive_Corrupt(t *testing.T) {
	_, err := extractGcodeFromArchive(ZipReader{}, []byte("this is not a zip archive"))
	if !errors.Is(err, ErrArchiveCorrupt) {
		t.Fatalf("got %v, want ErrArchiveCorrupt", err)
	}
	if errors.Is(err, ErrNoGcodeEntry) {
		t.Fatal("corrupt archive must not be reported as not-found")
	}
}

// fakeEntry and fakeReader drive the extractor without real zip bytes.
type fakeEntry struct {
	name string
	err  error
}

func (e fakeEntry) Name() string { return e.name }
func (e fakeEntry) Open() (io.ReadCloser, error) {
	if e.err != nil {
		return nil, e.err
	}
	return io.NopCloser(bytes.NewReader([]byte("; fake"))), nil
}

func TestExtractGcodeFromArchive_EntryOpenFailure(t *testing.T) {
	r := readerFunc(func(data []byte) ([]ArchiveEntry, error) {
		return []ArchiveEntry{fakeEntry{name: "Metadata/plate_1.gcode", err: errors.New("bad deflate stream")}}, nil
	})
	_, err := extractGcodeFromArchive(r, nil)
	if !errors.Is(err, ErrArchiveCorrupt) {
		t.Fatalf("got %v, want ErrArchiveCorrupt", err)
	}
}

type readerFunc func(data []byte) ([]ArchiveEntry, error)

func (f readerFunc) Entries(data []byte) ([]ArchiveEntry, error) { return f(data) }

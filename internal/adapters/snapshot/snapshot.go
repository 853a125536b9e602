package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/andrescamacho/outpost-go/internal/adapters/world"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
)

// Version of the snapshot layout
const Version = 1

type Header struct {
	Version   int       `json:"version"`
	SessionID string    `json:"session_id"`
	Elapsed   float64   `json:"elapsed"`
	WrittenAt time.Time `json:"written_at"`
}

// Snapshot is an exported world state: a JSON header line followed by a JSON
// body, both inside one zstd stream.
type Snapshot struct {
	Header Header                 `json:"header"`
	World  simulation.WorldStatus `json:"world"`
	Ground []world.GroundItem     `json:"ground,omitempty"`
	Events []simulation.Event     `json:"events,omitempty"`
}

// Write encodes snap to w
func Write(w io.Writer, snap Snapshot) error {
	if snap.Header.Version == 0 {
		snap.Header.Version = Version
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(enc, 64*1024)
	if err := writeJSONLine(bw, snap.Header); err != nil {
		enc.Close()
		return fmt.Errorf("snapshot header: %w", err)
	}
	if err := writeJSONLine(bw, snap); err != nil {
		enc.Close()
		return fmt.Errorf("snapshot body: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func writeJSONLine(w *bufio.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

// Read decodes a snapshot written by Write
func Read(r io.Reader) (Snapshot, error) {
	var snap Snapshot

	dec, err := zstd.NewReader(r)
	if err != nil {
		return snap, err
	}
	defer dec.Close()

	jd := json.NewDecoder(bufio.NewReader(dec))
	var header Header
	if err := jd.Decode(&header); err != nil {
		return snap, fmt.Errorf("snapshot header: %w", err)
	}
	if header.Version != Version {
		return snap, fmt.Errorf("unsupported snapshot version %d", header.Version)
	}
	if err := jd.Decode(&snap); err != nil {
		return snap, fmt.Errorf("snapshot body: %w", err)
	}
	return snap, nil
}

// ReadHeader decodes only the header line
func ReadHeader(r io.Reader) (Header, error) {
	var header Header

	dec, err := zstd.NewReader(r)
	if err != nil {
		return header, err
	}
	defer dec.Close()

	if err := json.NewDecoder(dec).Decode(&header); err != nil {
		return header, fmt.Errorf("snapshot header: %w", err)
	}
	return header, nil
}

// WriteFile writes a snapshot to path, creating parent directories
func WriteFile(path string, snap Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := Write(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads a snapshot from path
func ReadFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, err
	}
	defer f.Close()
	return Read(f)
}

package edgelist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/snappy"

	"github.com/katalvlaran/contagion/builder"
	"github.com/katalvlaran/contagion/core"
	"github.com/katalvlaran/contagion/simulation"
)

// Extensions.
const (
	TextExt       = ".txt"
	CompressedExt = ".txt.sz"
)

// maxNameAttempts bounds the collision prefixes tried by Save.
const maxNameAttempts = 10000

// ErrNameExhausted indicates that every prefixed file name was taken.
var ErrNameExhausted = errors.New("edgelist: no free file name")

// SaveOption tunes Save.
type SaveOption func(*saveConfig)

type saveConfig struct {
	compress bool
}

// WithCompression writes a snappy-framed ".txt.sz" file.
func WithCompression() SaveOption {
	return func(c *saveConfig) { c.compress = true }
}

// Save writes topo's edges to dir/<name><ext> and returns the path used.
// An existing file is never overwritten; "<i>-<name>" is tried instead for
// i = 0, 1, ...
func Save(dir, name string, topo *builder.Topology, opts ...SaveOption) (string, error) {
	var cfg saveConfig
	for _, o := range opts {
		o(&cfg)
	}
	ext := TextExt
	if cfg.compress {
		ext = CompressedExt
	}

	f, path, err := createUnique(dir, name, ext)
	if err != nil {
		return "", err
	}

	var w io.Writer = f
	var sw *snappy.Writer
	if cfg.compress {
		sw = snappy.NewBufferedWriter(f)
		w = sw
	}
	werr := Write(w, topo.Graph.Edges())
	if sw != nil && werr == nil {
		werr = sw.Close()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("Save: %s: %w", path, werr)
	}

	return path, nil
}

// SaveSnapshot saves the snapshot topology under s.Name("edges", withTimestamp).
func SaveSnapshot(dir string, s *simulation.Snapshot, withTimestamp bool, opts ...SaveOption) (string, error) {
	return Save(dir, s.Name("edges", withTimestamp), s.Topology, opts...)
}

func createUnique(dir, name, ext string) (*os.File, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("Save: %w", err)
	}
	candidate := name
	for i := 0; i < maxNameAttempts; i++ {
		path := filepath.Join(dir, candidate+ext)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("Save: %w", err)
		}
		candidate = strconv.Itoa(i) + "-" + name
	}

	return nil, "", fmt.Errorf("Save: %s: %w", name, ErrNameExhausted)
}

// Load reads the edge list at path, decompressing ".sz" files.
func Load(path string) ([]core.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".sz") {
		r = snappy.NewReader(f)
	}
	edges, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}

	return edges, nil
}

// LoadTopology loads path and builds a custom topology with
// VertexCount(edges) vertices.
func LoadTopology(path string, bopts ...builder.BuilderOption) (*builder.Topology, error) {
	edges, err := Load(path)
	if err != nil {
		return nil, err
	}
	topo, err := builder.Build(bopts, builder.FromEdges(VertexCount(edges), edges))
	if err != nil {
		return nil, fmt.Errorf("LoadTopology: %s: %w", path, err)
	}

	return topo, nil
}

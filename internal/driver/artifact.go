package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"minilang/internal/mir"
)

// artifactSchemaVersion — increment when the MIR layout changes.
const artifactSchemaVersion uint16 = 1

// Artifact is the on-disk form of a compiled module ('minilang build -o').
type Artifact struct {
	Schema uint16
	Module *mir.Module
}

// EncodeModule writes the module as a msgpack artifact.
func EncodeModule(w io.Writer, m *mir.Module) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(&Artifact{
		Schema: artifactSchemaVersion,
		Module: m,
	})
}

// DecodeModule reads a msgpack artifact back and re-validates it:
// артефакту с диска доверять нельзя.
func DecodeModule(r io.Reader) (*mir.Module, error) {
	dec := msgpack.NewDecoder(r)
	var art Artifact
	if err := dec.Decode(&art); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if art.Schema != artifactSchemaVersion {
		return nil, fmt.Errorf("artifact schema %d, this build reads %d", art.Schema, artifactSchemaVersion)
	}
	if art.Module == nil {
		return nil, fmt.Errorf("artifact has no module")
	}
	if err := mir.Validate(art.Module); err != nil {
		return nil, fmt.Errorf("artifact module invalid: %w", err)
	}
	return art.Module, nil
}

// WriteArtifact stores the module at path, атомарно через временный файл.
func WriteArtifact(path string, m *mir.Module) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()
	if err = EncodeModule(f, m); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ReadArtifact loads a module previously stored with WriteArtifact.
func ReadArtifact(path string) (*mir.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return DecodeModule(f)
}

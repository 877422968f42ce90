package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// PackFile is the name of the content file inside a pack directory.
const PackFile = "knowledge.yaml"

// SupportedMajor is the only pack major version this build understands.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned for packs outside SupportedMajor.
var ErrUnsupportedVersion = errors.New("unsupported content version")

//go:embed data/knowledge.yaml
var dataFS embed.FS

// LoadEmbedded loads the pack compiled into the binary.
func LoadEmbedded() (*Store, error) {
	return LoadFS(dataFS, "data/"+PackFile)
}

// LoadDir loads PackFile from dir.
func LoadDir(dir string) (*Store, error) {
	return LoadFS(os.DirFS(dir), PackFile)
}

// Load returns the pack in dir, or the embedded pack when dir is empty.
func Load(dir string) (*Store, error) {
	if dir == "" {
		return LoadEmbedded()
	}
	return LoadDir(dir)
}

// LoadFS reads and parses the pack at name.
func LoadFS(fsys fs.FS, name string) (*Store, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read content pack: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content pack %s: %w", name, err)
	}
	return s, nil
}

// Parse decodes a YAML pack, checks it against the pack schema, gates the
// version and runs the structural validation.
func Parse(data []byte) (*Store, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %w", ErrInvalidContent, err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("%w: decode pack: %w", ErrInvalidContent, err)
	}
	if err := checkVersion(pack.Version); err != nil {
		return nil, err
	}
	if err := Validate(pack.Entries, pack.Questions); err != nil {
		return nil, err
	}
	return newStore(pack.Version, pack.Entries, pack.Questions), nil
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}

package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// catalogFile is the on-disk shape of one locale's messages.
type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Table maps (key, locale) to a display string. It is immutable once built.
type Table struct {
	messages map[Locale]map[Key]string
}

// NewTable builds a table from per-locale message maps. The maps are copied.
func NewTable(messages map[Locale]map[Key]string) *Table {
	t := &Table{messages: make(map[Locale]map[Key]string, len(messages))}
	for loc, msgs := range messages {
		cp := make(map[Key]string, len(msgs))
		for k, v := range msgs {
			cp[k] = v
		}
		t.messages[loc] = cp
	}
	return t
}

// Lookup returns the string for key in locale l. A missing entry yields the
// key itself so a gap in a catalog never blanks the UI.
func (t *Table) Lookup(key Key, l Locale) string {
	if t != nil {
		if v, ok := t.messages[l][key]; ok {
			return v
		}
	}
	return string(key)
}

// Has reports whether the table defines key for locale l.
func (t *Table) Has(key Key, l Locale) bool {
	if t == nil {
		return false
	}
	_, ok := t.messages[l][key]
	return ok
}

// Keys returns the number of keys defined for l.
func (t *Table) Keys(l Locale) int {
	if t == nil {
		return 0
	}
	return len(t.messages[l])
}

// LoadEmbedded builds the table from the catalogs compiled into the binary.
func LoadEmbedded() (*Table, error) {
	return LoadFS(catalogFS, "catalogs")
}

// LoadFS reads every *.yaml catalog in dir.
func LoadFS(fsys fs.FS, dir string) (*Table, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no catalogs in %q", dir)
	}

	messages := make(map[Locale]map[Key]string, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}
		var cf catalogFile
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
		loc, ok := ParseLocale(cf.Locale)
		if !ok {
			return nil, fmt.Errorf("catalog %s: unsupported locale %q", name, cf.Locale)
		}
		if _, dup := messages[loc]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate locale %q", name, loc)
		}
		msgs := make(map[Key]string, len(cf.Messages))
		for k, v := range cf.Messages {
			msgs[Key(k)] = v
		}
		messages[loc] = msgs
	}
	return &Table{messages: messages}, nil
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mkarpenko/tasklist/internal/model"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// File persists the collection to a single local file. The format follows
// the file extension: .json, .yaml/.yml, or .toml.
type File struct {
	path   string
	format string
}

func NewFile(path string) (*File, error) {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		format = formatJSON
	case ".yaml", ".yml":
		format = formatYAML
	case ".toml":
		format = formatTOML
	default:
		return nil, fmt.Errorf("unsupported data file extension %q (want .json, .yaml or .toml)", filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	return &File{path: path, format: format}, nil
}

func (f *File) Load(_ context.Context) ([]model.Task, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	switch f.format {
	case formatYAML:
		return decodeYAML(data), nil
	case formatTOML:
		return decodeTOML(data), nil
	default:
		return decodeJSON(data), nil
	}
}

// Save writes the whole collection through a temp file and rename so the
// stored value is replaced atomically, never half-written.
func (f *File) Save(_ context.Context, tasks []model.Task) error {
	var (
		data []byte
		err  error
	)
	switch f.format {
	case formatYAML:
		data, err = yaml.Marshal(document{Tasks: tasks})
	case formatTOML:
		data, err = encodeTOML(tasks)
	default:
		data, err = encodeJSON(tasks)
	}
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".tasklist-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

func decodeYAML(data []byte) []model.Task {
	var doc struct {
		Tasks []yaml.Node `yaml:"tasks"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil
	}

	records := make([]model.Task, 0, len(doc.Tasks))
	for _, node := range doc.Tasks {
		var t model.Task
		if err := node.Decode(&t); err != nil {
			continue
		}
		records = append(records, t)
	}
	return sanitize(records)
}

func decodeTOML(data []byte) []model.Task {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return sanitize(doc.Tasks)
}

func encodeTOML(tasks []model.Task) ([]byte, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(document{Tasks: tasks}); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

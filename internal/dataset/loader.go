package dataset

import (
	"bytes"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// LoadFromFS reads every TOML file in dir of fsys and concatenates their tables.
func LoadFromFS(fsys fs.FS, dir string) (*Dataset, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrap(err, "reading embedded dataset")
	}

	ds := &Dataset{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", entry.Name())
		}

		f, err := decodeTOML(data)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", entry.Name())
		}
		ds.People = append(ds.People, f.People...)
		ds.Links = append(ds.Links, f.Links...)
		ds.Projects = append(ds.Projects, f.Projects...)
		ds.Timeline = append(ds.Timeline, f.Timeline...)
	}
	return ds, nil
}

// LoadAll merges the embedded dataset with user files from overrideDir.
// Override records replace embedded ones with the same key; the last file wins.
// A missing overrideDir is not an error.
func LoadAll(fsys fs.FS, dir, overrideDir string) (*Dataset, error) {
	ds, err := LoadFromFS(fsys, dir)
	if err != nil {
		return nil, err
	}
	if overrideDir == "" {
		return ds, nil
	}

	entries, err := os.ReadDir(overrideDir)
	if err != nil {
		if os.IsNotExist(err) {
			return ds, nil
		}
		return nil, errors.Wrapf(err, "reading data dir %s", overrideDir)
	}

	for _, entry := range entries {
		if entry.IsDir() || !IsDataFile(entry.Name()) {
			continue
		}
		p := filepath.Join(overrideDir, entry.Name())
		f, err := decodeFile(p)
		if err != nil {
			return nil, errors.WithHint(err, "fix or remove the file, then run `insight validate`")
		}
		ds.merge(f)
	}
	return ds, nil
}

// IsDataFile reports whether name has an extension LoadAll knows how to read.
func IsDataFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml", ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func decodeFile(p string) (file, error) {
	var f file
	data, err := os.ReadFile(p)
	if err != nil {
		return f, errors.Wrapf(err, "reading %s", p)
	}

	switch strings.ToLower(filepath.Ext(p)) {
	case ".toml":
		f, err = decodeTOML(data)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&f); errors.Is(err, io.EOF) {
			err = nil
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	}
	if err != nil {
		return f, errors.Wrapf(err, "parsing %s", p)
	}
	return f, nil
}

// decodeTOML decodes data and rejects keys that match no field.
func decodeTOML(data []byte) (file, error) {
	var f file
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return f, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return f, errors.Newf("unknown field(s): %s", strings.Join(keys, ", "))
	}
	return f, nil
}

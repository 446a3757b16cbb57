package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// keys lists every key written to the settings file.
var keys = func() []string {
	out := make([]string, 0, len(Fields)+2)
	for _, f := range Fields {
		out = append(out, f.String())
	}
	return append(out, "check_interval", "alert_duration")
}()

// Load reads the settings file at path and merges it onto the defaults.
//
// If the file is missing, or lacks keys introduced by a later version, the
// merged result is written back to path. If a previous save was interrupted
// and only the backup file remains, the backup is restored first.
//
// When the file cannot be parsed the defaults are returned along with the
// error.
func Load(path string) (Settings, error) {
	recoverBackup(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s := Defaults()
		if err := Save(path, s); err != nil {
			return s, err
		}
		return s, nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("failed to read settings: %w", err)
	}

	s, complete, err := decode(data)
	if err != nil {
		return Defaults(), fmt.Errorf("failed to parse settings: %w", err)
	}

	normalized := s.Clamp().Exclusive()
	if !complete || normalized != s {
		if err := Save(path, normalized); err != nil {
			return normalized, err
		}
	}

	return normalized, nil
}

// decode merges data onto the defaults. It reports whether every known key
// was present in data.
func decode(data []byte) (s Settings, complete bool, err error) {
	var present map[string]json.RawMessage
	if err = json.Unmarshal(data, &present); err != nil {
		return Settings{}, false, err
	}

	s = Defaults()
	if err = json.Unmarshal(data, &s); err != nil {
		return Settings{}, false, err
	}

	complete = true
	for _, key := range keys {
		if _, ok := present[key]; !ok {
			complete = false
			break
		}
	}
	return s, complete, nil
}

// Save writes s to path atomically.
//
// The new content is written to a temporary file first. Any existing file is
// moved aside as a backup before the temporary file is renamed into place.
// The backup is removed on success and restored on failure.
func Save(path string, s Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory \"%s\": %w", dir, err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmp, bak := path+".tmp", path+".bak"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write settings: %w", err)
	}

	hadExisting := true
	if err := os.Rename(path, bak); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			os.Remove(tmp)
			return fmt.Errorf("failed to back up settings: %w", err)
		}
		hadExisting = false
	}

	if err := os.Rename(tmp, path); err != nil {
		if hadExisting {
			os.Rename(bak, path)
		}
		os.Remove(tmp)
		return fmt.Errorf("failed to replace settings: %w", err)
	}

	if hadExisting {
		os.Remove(bak)
	}

	return nil
}

// recoverBackup restores a backup left behind by an interrupted save.
func recoverBackup(path string) {
	bak := path + ".bak"
	if _, err := os.Stat(bak); err != nil {
		return
	}
	if _, err := os.Stat(path); err == nil {
		os.Remove(bak)
		return
	}
	os.Rename(bak, path)
}

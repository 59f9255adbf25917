package twin

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Local export/import of twin collections as pretty-printed JSON files,
// used by `twinctl export` and `twinctl import`.

// Export writes a collection to a JSON file, creating parent
// directories as needed.
func Export(v interface{}, path string) (err error) {
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create export directory: %s", dir)
		return err
	}

	var data []byte
	data, err = json.MarshalIndent(v, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal export data")
		return err
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write export file: %s", path)
		return err
	}

	return err
}

// Import reads a JSON file into the given collection pointer.
func Import(path string, v interface{}) (err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read import file: %s", path)
		return err
	}

	err = json.Unmarshal(data, v)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse import file: %s", path)
		return err
	}

	return err
}

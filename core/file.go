package core

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// OpenFile method opens the file from given path - does not close the file
func OpenFile(relativePath string) (*os.File, error) {
	path, err := filepath.Abs(relativePath)
	if err != nil {
		log.Warn("cannot create absolute path for the provided file", "error", err.Error())
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// LoadTomlFile method to open and decode toml file
func LoadTomlFile(dest interface{}, relativePath string) error {
	f, err := OpenFile(relativePath)
	if err != nil {
		return err
	}

	defer func() {
		errClose := f.Close()
		if errClose != nil {
			log.Error("cannot close file", "file", relativePath, "error", errClose.Error())
		}
	}()

	return toml.NewDecoder(f).Decode(dest)
}

// LoadJsonFile method to open and decode json file
func LoadJsonFile(dest interface{}, relativePath string) error {
	f, err := OpenFile(relativePath)
	if err != nil {
		return err
	}

	defer func() {
		errClose := f.Close()
		if errClose != nil {
			log.Error("cannot close file", "file", relativePath, "error", errClose.Error())
		}
	}()

	return json.NewDecoder(f).Decode(dest)
}

// SaveJsonFile encodes the provided object as indented json and writes it to the given path
func SaveJsonFile(object interface{}, relativePath string) error {
	buff, err := json.MarshalIndent(object, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(relativePath, buff, 0600)
}

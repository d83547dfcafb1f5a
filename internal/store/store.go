// Package store loads optional keyword configuration from YAML files,
// letting analysts extend the built-in injury keyword list without
// rebuilding the binary.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"iltracker/internal/logging"

	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger()

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// KeywordStore locates and loads the injury keyword file.
type KeywordStore struct {
	KeywordsFile string
}

// NewKeywordStore creates a store. An empty filename means the default
// "injury_keywords.yaml".
func NewKeywordStore(keywordsFile string) *KeywordStore {
	return &KeywordStore{
		KeywordsFile: keywordsFile,
	}
}

// keywordsFile is the preferred file layout with a top-level key.
type keywordsFile struct {
	InjuryKeywords []string `yaml:"injury_keywords"`
}

// FindConfigFile looks for a configuration file in the standard locations:
// the path itself when absolute, the working directory, a config/
// subdirectory and ~/.config/iltracker/.
func (s *KeywordStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "iltracker", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadInjuryKeywords reads the keyword file and returns its entries. A
// missing or empty file is not an error: it returns nil and the caller keeps
// the built-in keywords. The file may either nest the list under an
// "injury_keywords" key or be a bare YAML list.
func (s *KeywordStore) LoadInjuryKeywords() ([]string, error) {
	filename := s.KeywordsFile
	if filename == "" {
		filename = "injury_keywords.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Injury keywords file not found, using built-in keywords",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving injury keywords file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading injury keywords file: %w", err)
	}

	var wrapped keywordsFile
	wrappedErr := yaml.Unmarshal(data, &wrapped)
	if wrappedErr == nil && len(wrapped.InjuryKeywords) > 0 {
		log.Debug("Loaded injury keywords",
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(wrapped.InjuryKeywords)})
		return wrapped.InjuryKeywords, nil
	}

	var bare []string
	bareErr := yaml.Unmarshal(data, &bare)
	if bareErr == nil && len(bare) > 0 {
		log.Debug("Loaded injury keywords from bare list",
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(bare)})
		return bare, nil
	}

	if wrappedErr != nil && bareErr != nil {
		return nil, fmt.Errorf("error parsing injury keywords file: %w", wrappedErr)
	}

	log.Warn("Injury keywords file is empty, keeping built-in keywords",
		logging.Field{Key: logging.FieldFile, Value: filePath})
	return nil, nil
}

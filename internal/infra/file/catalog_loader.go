package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dsa-quiz-service/internal/domain"
	"gopkg.in/yaml.v3"
)

// CatalogFile is the on-disk catalog schema.
type CatalogFile struct {
	Questions []domain.Question `json:"questions" yaml:"questions"`
}

// CatalogLoader reads a question catalog from a YAML or JSON file (chosen by extension).
type CatalogLoader struct {
	path string
}

func NewCatalogLoader(path string) *CatalogLoader {
	return &CatalogLoader{path: path}
}

func (l *CatalogLoader) LoadCatalog(_ context.Context) ([]domain.Question, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var parsed CatalogFile
	if strings.ToLower(filepath.Ext(l.path)) == ".json" {
		parsed, err = parseJSONCatalog(data)
	} else {
		parsed, err = parseYAMLCatalog(data)
	}
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateCatalog(parsed.Questions); err != nil {
		return nil, err
	}
	return parsed.Questions, nil
}

func parseJSONCatalog(data []byte) (CatalogFile, error) {
	var parsed CatalogFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&parsed); err != nil {
		return CatalogFile{}, fmt.Errorf("parse json catalog: %w", err)
	}
	return parsed, nil
}

func parseYAMLCatalog(data []byte) (CatalogFile, error) {
	var parsed CatalogFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil {
		if err == io.EOF {
			return CatalogFile{}, domain.ErrCatalogEmpty
		}
		return CatalogFile{}, fmt.Errorf("parse yaml catalog: %w", err)
	}
	return parsed, nil
}

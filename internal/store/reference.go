package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/depmap/pkg/depmap"
	"gopkg.in/yaml.v3"
)

// referenceFile is the on-disk form of a reference mapping:
//
//	artifacts:
//	  - group_id: com.google.guava
//	    artifact_id: guava
//	    version: 32.1.2-jre
//	    package_name: libguava-java
//	    package_version: 32.1.2-1
type referenceFile struct {
	Artifacts []depmap.ReferenceEntry `yaml:"artifacts"`
}

// LoadReferenceFile reads and validates a reference mapping file.
// Malformed or invalid content wraps depmap.ErrInvalidConfig.
func LoadReferenceFile(path string) ([]depmap.ReferenceEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}
	entries, err := ParseReference(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// ParseReference decodes reference YAML. Unknown keys are rejected so that a
// misspelled column does not silently load as empty.
func ParseReference(data []byte) ([]depmap.ReferenceEntry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file referenceFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid reference YAML: %w: %v", depmap.ErrInvalidConfig, err)
	}
	if err := validateEntries(file.Artifacts); err != nil {
		return nil, fmt.Errorf("%w: %w", depmap.ErrInvalidConfig, err)
	}
	if file.Artifacts == nil {
		file.Artifacts = []depmap.ReferenceEntry{}
	}
	return file.Artifacts, nil
}

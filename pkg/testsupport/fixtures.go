package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// LoadInstanceData reads a JSON fixture into widget instance data. Testing
// helpers fail fast to keep contract tests concise.
func LoadInstanceData(t *testing.T, path string) schema.InstanceData {
	t.Helper()

	data, err := LoadInstanceDataFromPath(path)
	if err != nil {
		t.Fatalf("load instance data: %v", err)
	}
	return data
}

// LoadInstanceDataFromPath returns instance data without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadInstanceDataFromPath(path string) (schema.InstanceData, error) {
	if path == "" {
		return nil, errors.New("testsupport: instance data path is required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read instance data: %w", err)
	}
	var out schema.InstanceData
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal instance data: %w", err)
	}
	return out, nil
}

// MustLoadSections loads a JSON fixture into a slice of page sections.
func MustLoadSections(t *testing.T, path string) []widget.Section {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load sections: %v", err)
	}
	var out []widget.Section
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal sections: %v", err)
	}
	return out
}

// WriteGolden persists a deterministic JSON representation of value at path.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden: %v", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// MustReadGolden returns the raw golden bytes at path.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return raw
}

// CompareGolden returns a human readable diff between want and got.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

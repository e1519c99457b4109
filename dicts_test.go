package opencc

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedRegistryComplete(t *testing.T) {
	entries, err := dictData.ReadDir("dicts")
	if err != nil {
		t.Fatal(err)
	}
	embedded := make(map[string]bool)
	for _, e := range entries {
		embedded[e.Name()] = true
	}
	const wantFiles = 30 // 14 JSON configs + 16 binary dictionaries
	if len(embedded) != wantFiles {
		t.Errorf("embedded registry holds %d files, want %d", len(embedded), wantFiles)
	}
	for config, files := range configManifest {
		for _, name := range files {
			if !embedded[name] {
				t.Errorf("manifest for %s references %s, which is not embedded", config, name)
			}
		}
	}
}

func TestGenerateStaticDictionary(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateStaticDictionary(dir, TW2SP); err != nil {
		t.Fatal(err)
	}
	for _, name := range configManifest["tw2sp.json"] {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s to be materialized: %v", name, err)
		}
		want, err := dictData.ReadFile("dicts/" + name)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("materialized %s differs from embedded blob", name)
		}
	}
}

func TestGenerateStaticDictionaryIdempotent(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateStaticDictionary(dir, S2T); err != nil {
		t.Fatal(err)
	}
	// Existing files must be left untouched on a second run.
	marker := filepath.Join(dir, "STCharacters.ocd2")
	if err := os.WriteFile(marker, []byte("do not overwrite"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := GenerateStaticDictionary(dir, S2T); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(marker)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "do not overwrite" {
		t.Fatalf("second run overwrote an existing file")
	}
}

func TestGenerateStaticDictionaryCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := GenerateStaticDictionary(dir, T2S); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "t2s.json")); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateStaticDictionaryRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := GenerateStaticDictionary(path, S2T); err == nil {
		t.Fatal("expected error for a target path that is a regular file")
	}
	if err := GenerateStaticDictionaries(path, []Config{S2T}); err == nil {
		t.Fatal("expected error for a target path that is a regular file")
	}
}

func TestGenerateStaticDictionaryUnsupported(t *testing.T) {
	if err := GenerateStaticDictionary(t.TempDir(), Config(99)); err == nil {
		t.Fatal("expected error for an unsupported config")
	}
}

func TestGenerateStaticDictionaries(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateStaticDictionaries(dir, []Config{S2T, T2S}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"s2t.json", "t2s.json", "STPhrases.ocd2", "TSPhrases.ocd2"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to be materialized: %v", name, err)
		}
	}
}

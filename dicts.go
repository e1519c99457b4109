package opencc

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:generate go run ./internal/syncdicts

// The reference dictionary files of the OpenCC 1.1 release: 14 JSON configs
// and 16 compiled .ocd2 dictionaries, embedded verbatim.
//
//go:embed dicts/*.json dicts/*.ocd2
var dictData embed.FS

// configManifest lists, per config file, the files a converter needs on disk
// to open that config. The config's own JSON always comes first, followed by
// the binary dictionaries it references.
var configManifest = map[string][]string{
	"hk2s.json":  {"hk2s.json", "TSPhrases.ocd2", "HKVariantsRevPhrases.ocd2", "HKVariantsRev.ocd2", "TSCharacters.ocd2"},
	"hk2t.json":  {"hk2t.json", "HKVariantsRevPhrases.ocd2", "HKVariantsRev.ocd2"},
	"jp2t.json":  {"jp2t.json", "JPShinjitaiPhrases.ocd2", "JPShinjitaiCharacters.ocd2", "JPVariantsRev.ocd2"},
	"s2hk.json":  {"s2hk.json", "STPhrases.ocd2", "STCharacters.ocd2", "HKVariants.ocd2"},
	"s2t.json":   {"s2t.json", "STPhrases.ocd2", "STCharacters.ocd2"},
	"s2tw.json":  {"s2tw.json", "STPhrases.ocd2", "STCharacters.ocd2", "TWVariants.ocd2"},
	"s2twp.json": {"s2twp.json", "STPhrases.ocd2", "STCharacters.ocd2", "TWPhrases.ocd2", "TWVariants.ocd2"},
	"t2hk.json":  {"t2hk.json", "HKVariants.ocd2"},
	"t2jp.json":  {"t2jp.json", "JPVariants.ocd2"},
	"t2s.json":   {"t2s.json", "TSPhrases.ocd2", "TSCharacters.ocd2"},
	"t2tw.json":  {"t2tw.json", "TWVariants.ocd2"},
	"tw2s.json":  {"tw2s.json", "TSPhrases.ocd2", "TWVariantsRevPhrases.ocd2", "TWVariantsRev.ocd2", "TSCharacters.ocd2"},
	"tw2sp.json": {"tw2sp.json", "TSPhrases.ocd2", "TWPhrasesRev.ocd2", "TWVariantsRevPhrases.ocd2", "TWVariantsRev.ocd2", "TSCharacters.ocd2"},
	"tw2t.json":  {"tw2t.json", "TWVariantsRevPhrases.ocd2", "TWVariantsRev.ocd2"},
}

// GenerateStaticDictionary writes the embedded dictionary files needed by
// config into dir, so that New can be pointed at dir/config.FileName().
// dir is created if missing; files already present in dir are left
// untouched, which makes the operation idempotent.
func GenerateStaticDictionary(dir string, config Config) error {
	if err := ensureDictDir(dir); err != nil {
		return err
	}
	return writeDictionary(dir, config)
}

// GenerateStaticDictionaries writes the embedded dictionary files for all
// given configs into dir. Files shared between configs are written once.
func GenerateStaticDictionaries(dir string, configs []Config) error {
	if err := ensureDictDir(dir); err != nil {
		return err
	}
	for _, config := range configs {
		if err := writeDictionary(dir, config); err != nil {
			return err
		}
	}
	return nil
}

func ensureDictDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("opencc: dictionary path %q exists but is not a directory", dir)
	case err == nil:
		return nil
	case os.IsNotExist(err):
		return os.MkdirAll(dir, 0o755)
	}
	return err
}

func writeDictionary(dir string, config Config) error {
	files, ok := configManifest[config.FileName()]
	if !ok {
		return fmt.Errorf("opencc: unsupported config: %d", int(config))
	}
	written := 0
	for _, name := range files {
		target := filepath.Join(dir, name)
		if _, err := os.Stat(target); err == nil {
			continue // keep whatever is already there
		} else if !os.IsNotExist(err) {
			return err
		}
		blob, err := dictData.ReadFile("dicts/" + name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, blob, 0o644); err != nil {
			return err
		}
		written++
	}
	tracer().Infof("materialized %d dictionary files for %s in %s", written, config, dir)
	return nil
}

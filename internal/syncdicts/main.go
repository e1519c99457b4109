// Command syncdicts refreshes the embedded data files under dicts/ from an
// OpenCC data installation. It is run through go generate and copies every
// file name already present in dicts/ from the installation directory, so
// the set of embedded files stays fixed while their contents track the
// installed release.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
)

func main() {
	from := flag.String("from", "/usr/share/opencc", "OpenCC data installation to copy from")
	to := flag.String("to", "dicts", "embedded data directory to refresh")
	flag.Parse()

	entries, err := os.ReadDir(*to)
	if err != nil {
		log.Fatalf("syncdicts: %v", err)
	}
	copied := 0
	for _, e := range entries {
		name := e.Name()
		switch filepath.Ext(name) {
		case ".json", ".ocd2":
		default:
			continue
		}
		if err := copyFile(filepath.Join(*from, name), filepath.Join(*to, name)); err != nil {
			log.Fatalf("syncdicts: %v", err)
		}
		copied++
	}
	log.Printf("syncdicts: refreshed %d files from %s", copied, *from)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

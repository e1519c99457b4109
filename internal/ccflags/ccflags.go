// Package ccflags resolves compiler and linker flags for the native OpenCC
// library. Discovery honors the OPENCC_* environment variables and falls
// back to pkg-config when none are set:
//
//   - OPENCC_LIB_DIRS: library search directories, path-list separated
//   - OPENCC_INCLUDE_DIRS: header search directories, path-list separated
//   - OPENCC_LIBS: library names to link, colon separated
//   - OPENCC_DIR: parent directory of lib/ and include/
//   - OPENCC_STATIC: "0" forces dynamic linking, anything else forces static
//   - OPENCC_DYLIB_STDCPP, OPENCC_STATIC_STDCPP: also link the C++ runtime
package ccflags

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// OpenCC versions accepted when discovery goes through pkg-config.
const (
	minVersion = "1.1.2"
	maxVersion = "1.2.0"
)

// Mode selects how the native library gets linked.
type Mode string

const (
	Static Mode = "static"
	Dylib  Mode = "dylib"
)

// Flags holds resolved search paths and library names for building against
// the native OpenCC library.
type Flags struct {
	IncludeDirs []string
	LibDirs     []string
	Libs        []string
	Mode        Mode
	ExtraLibs   []string // C++ runtime libraries, per OPENCC_*_STDCPP
}

// Discover resolves Flags from the environment, consulting pkg-config for
// whatever the OPENCC_* variables leave open.
func Discover() (*Flags, error) {
	f := &Flags{}

	var err error
	if f.LibDirs, err = findLibDirs(); err != nil {
		return nil, err
	}
	for _, d := range f.LibDirs {
		if info, serr := os.Stat(d); serr != nil || !info.IsDir() {
			return nil, fmt.Errorf("ccflags: OpenCC library directory does not exist: %s", d)
		}
	}

	if f.IncludeDirs, err = findIncludeDirs(); err != nil {
		return nil, err
	}
	for _, d := range f.IncludeDirs {
		if info, serr := os.Stat(d); serr != nil || !info.IsDir() {
			return nil, fmt.Errorf("ccflags: OpenCC include directory does not exist: %s", d)
		}
	}

	if v := os.Getenv("OPENCC_LIBS"); v != "" {
		f.Libs = strings.Split(v, ":")
	} else if libs, perr := pkgConfigLibs(); perr == nil {
		f.Libs = libs
	} else {
		f.Libs = []string{"opencc", "marisa", "darts"}
	}

	if f.Mode, err = determineMode(f.LibDirs, f.Libs); err != nil {
		return nil, err
	}

	if v := os.Getenv("OPENCC_DYLIB_STDCPP"); v != "" && v != "0" {
		f.ExtraLibs = append(f.ExtraLibs, "stdc++")
	} else if v := os.Getenv("OPENCC_STATIC_STDCPP"); v != "" && v != "0" {
		f.ExtraLibs = append(f.ExtraLibs, "stdc++")
	}
	return f, nil
}

// CFlags renders the C compiler flags, suitable for CGO_CFLAGS.
func (f *Flags) CFlags() string {
	parts := make([]string, 0, len(f.IncludeDirs))
	for _, d := range f.IncludeDirs {
		parts = append(parts, "-I"+d)
	}
	return strings.Join(parts, " ")
}

// LDFlags renders the linker flags, suitable for CGO_LDFLAGS.
func (f *Flags) LDFlags() string {
	var parts []string
	for _, d := range f.LibDirs {
		parts = append(parts, "-L"+d)
	}
	if f.Mode == Static {
		parts = append(parts, "-Wl,-Bstatic")
	}
	for _, l := range f.Libs {
		parts = append(parts, "-l"+l)
	}
	if f.Mode == Static {
		parts = append(parts, "-Wl,-Bdynamic")
	}
	for _, l := range f.ExtraLibs {
		parts = append(parts, "-l"+l)
	}
	return strings.Join(parts, " ")
}

func findLibDirs() ([]string, error) {
	if v := os.Getenv("OPENCC_LIB_DIRS"); v != "" {
		return filepath.SplitList(v), nil
	}
	if dir := os.Getenv("OPENCC_DIR"); dir != "" {
		return []string{filepath.Join(dir, "lib")}, nil
	}
	dirs, err := pkgConfigDirs("--libs-only-L", "-L")
	if err != nil {
		return nil, fmt.Errorf("ccflags: couldn't find OpenCC library directory: %w", err)
	}
	return dirs, nil
}

func findIncludeDirs() ([]string, error) {
	if v := os.Getenv("OPENCC_INCLUDE_DIRS"); v != "" {
		return filepath.SplitList(v), nil
	}
	if dir := os.Getenv("OPENCC_DIR"); dir != "" {
		return []string{filepath.Join(dir, "include")}, nil
	}
	dirs, err := pkgConfigDirs("--cflags-only-I", "-I")
	if err != nil {
		return nil, fmt.Errorf("ccflags: couldn't find OpenCC include directory: %w", err)
	}
	return dirs, nil
}

// determineMode picks the link mode, either from OPENCC_STATIC or by
// inspecting which artifacts the library directories actually hold.
func determineMode(libDirs, libs []string) (Mode, error) {
	if v, ok := os.LookupEnv("OPENCC_STATIC"); ok {
		if v == "0" {
			return Dylib, nil
		}
		return Static, nil
	}

	files := make(map[string]bool)
	for _, d := range libDirs {
		entries, err := os.ReadDir(d)
		if err != nil {
			return "", fmt.Errorf("ccflags: failed to read library directory %q: %w", d, err)
		}
		for _, e := range entries {
			files[e.Name()] = true
		}
	}

	canStatic, canDylib := true, true
	for _, l := range libs {
		if !files["lib"+l+".a"] && !files[l+".lib"] {
			canStatic = false
		}
		if !files["lib"+l+".so"] && !files[l+".dll"] && !files["lib"+l+".dylib"] {
			canDylib = false
		}
	}
	switch {
	case canStatic && !canDylib:
		return Static, nil
	case !canStatic && canDylib:
		return Dylib, nil
	case !canStatic && !canDylib:
		return "", fmt.Errorf("ccflags: library directories %v hold neither static nor dynamic artifacts for %v", libDirs, libs)
	}
	return Dylib, nil
}

// versionSpec constrains pkg-config queries to the supported OpenCC range.
func versionSpec() []string {
	return []string{
		fmt.Sprintf("opencc >= %s", minVersion),
		fmt.Sprintf("opencc < %s", maxVersion),
	}
}

func pkgConfig(args ...string) (string, error) {
	out, err := exec.Command("pkg-config", append(args, versionSpec()...)...).Output()
	if err != nil {
		return "", fmt.Errorf("pkg-config failed to find OpenCC >= %s, < %s: %w", minVersion, maxVersion, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func pkgConfigDirs(flag, prefix string) ([]string, error) {
	out, err := pkgConfig(flag)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, field := range strings.Fields(out) {
		dirs = append(dirs, strings.TrimPrefix(field, prefix))
	}
	return dirs, nil
}

func pkgConfigLibs() ([]string, error) {
	out, err := pkgConfig("--libs-only-l")
	if err != nil {
		return nil, err
	}
	var libs []string
	for _, field := range strings.Fields(out) {
		libs = append(libs, strings.TrimPrefix(field, "-l"))
	}
	if len(libs) == 0 {
		return nil, fmt.Errorf("pkg-config reported no libraries for OpenCC")
	}
	return libs, nil
}

// Package config loads the `rave-mod.toml` project descriptor: a small TOML
// file naming the module, its source root, its compilation target, and
// whether generic template instantiations should be cached across runs.
package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"github.com/ravelang/ravec/common"
)

// Module is the deserialized form of a rave-mod.toml file.
type Module struct {
	// Name is the module's name, as it would appear in an import path.
	Name string

	// Root is the absolute path of the module's source root: the file's
	// `root` entry resolved against the directory containing the module
	// file, or that directory itself when `root` is empty.
	Root string

	// Target is the LLVM target triple generic code should be instantiated
	// and compiled for (eg. "x86_64-unknown-linux-gnu").
	Target string

	// CacheGenerics indicates whether generic template instantiations
	// should be persisted across compiler invocations.
	CacheGenerics bool
}

// tomlModule mirrors the on-disk TOML shape exactly; Module is the shape the
// rest of the compiler actually wants to work with.
type tomlModule struct {
	Name     string `toml:"name"`
	RootPath string `toml:"root"`
	Target   string `toml:"target"`
	Generics struct {
		Cache bool `toml:"cache"`
	} `toml:"generics"`
}

// Load reads and validates the rave-mod.toml file inside dir.
func Load(dir string) (*Module, error) {
	path := filepath.Join(dir, common.ModuleFileName)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tm := &tomlModule{}
	if err := toml.Unmarshal(buff, tm); err != nil {
		return nil, fmt.Errorf("malformed module file %s: %w", path, err)
	}

	if tm.Name == "" {
		return nil, fmt.Errorf("module file %s is missing a module name", path)
	}

	if tm.Target == "" {
		return nil, fmt.Errorf("module `%s` does not specify a target triple", tm.Name)
	}

	root := dir
	if tm.RootPath != "" {
		root = filepath.Join(dir, tm.RootPath)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	return &Module{
		Name:          tm.Name,
		Root:          absRoot,
		Target:        tm.Target,
		CacheGenerics: tm.Generics.Cache,
	}, nil
}

// Save writes mod back out to dir/rave-mod.toml, in the same shape Load
// expects to read. mod.Root is not written: the saved `root` is always ".",
// so loading the file again yields dir itself as Root.
func Save(dir string, mod *Module) error {
	tm := &tomlModule{
		Name:     mod.Name,
		RootPath: ".",
		Target:   mod.Target,
	}
	tm.Generics.Cache = mod.CacheGenerics

	f, err := os.Create(filepath.Join(dir, common.ModuleFileName))
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(tm)
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command keymapgen generates key-map and type-name registrations from a
// YAML manifest, so applications do not hand-write registry init code.
//
// Manifest format:
//
//	package: storageinit
//	types:
//	  Player:
//	    name: Player
//	    keymap:
//	      PK: "PLAYER#{ID}"
//	      SK: "PLAYER#{ID}"
//
// Usage:
//
//	keymapgen -in keymaps.yaml -out zz_keymaps.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/itemstore"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	inFlag      = flag.String("in", "keymaps.yaml", "Manifest file to read")
	outFlag     = flag.String("out", "", "Output file (defaults to stdout)")
)

type manifest struct {
	Package string                `yaml:"package"`
	Types   map[string]typeConfig `yaml:"types"`
}

type typeConfig struct {
	Name   string            `yaml:"name"`
	KeyMap map[string]string `yaml:"keymap"`
}

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := itemstore.GetVersionInfo()
		fmt.Printf("ItemStore keymapgen version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	// Manifest paths may come from the environment in CI setups.
	_ = godotenv.Load()
	if env := os.Getenv("ITEMSTORE_KEYMAP_MANIFEST"); env != "" && !flagPassed("in") {
		*inFlag = env
	}

	if err := run(*inFlag, *outFlag); err != nil {
		fmt.Fprintf(os.Stderr, "keymapgen: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}
	if m.Package == "" {
		return fmt.Errorf("manifest missing package name")
	}
	if len(m.Types) == 0 {
		return fmt.Errorf("manifest declares no types")
	}

	src, err := generate(m)
	if err != nil {
		return err
	}

	if outPath == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(outPath, src, 0o644)
}

func generate(m manifest) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by keymapgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", m.Package)
	fmt.Fprintf(&buf, "import \"github.com/suparena/itemstore/registry\"\n\n")
	fmt.Fprintf(&buf, "func init() {\n")

	typeNames := make([]string, 0, len(m.Types))
	for t := range m.Types {
		typeNames = append(typeNames, t)
	}
	sort.Strings(typeNames)

	for _, goType := range typeNames {
		cfg := m.Types[goType]
		if len(cfg.KeyMap) == 0 {
			return nil, fmt.Errorf("type %s: keymap is empty", goType)
		}

		if cfg.Name != "" {
			fmt.Fprintf(&buf, "\tregistry.RegisterTypeName[%s](%q)\n", goType, cfg.Name)
		}

		fmt.Fprintf(&buf, "\tregistry.RegisterKeyMap[%s](map[string]string{\n", goType)
		fields := make([]string, 0, len(cfg.KeyMap))
		for f := range cfg.KeyMap {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(&buf, "\t\t%q: %q,\n", f, cfg.KeyMap[f])
		}
		fmt.Fprintf(&buf, "\t})\n")
	}

	fmt.Fprintf(&buf, "}\n")
	return buf.Bytes(), nil
}

func flagPassed(name string) bool {
	passed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const sampleManifest = `
package: storageinit
types:
  Player:
    name: Player
    keymap:
      PK: "PLAYER#{ID}"
      SK: "PLAYER#{ID}"
  Match:
    keymap:
      PK: "MATCH#{ID}"
      SK: "MATCH#{ID}"
`

func TestGenerate(t *testing.T) {
	var m manifest
	if err := yaml.Unmarshal([]byte(sampleManifest), &m); err != nil {
		t.Fatalf("manifest parse failed: %v", err)
	}

	src, err := generate(m)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	out := string(src)

	if !strings.Contains(out, "package storageinit") {
		t.Fatalf("missing package clause:\n%s", out)
	}
	if !strings.Contains(out, `registry.RegisterTypeName[Player]("Player")`) {
		t.Fatalf("missing type name registration:\n%s", out)
	}
	if !strings.Contains(out, `registry.RegisterKeyMap[Player](map[string]string{`) {
		t.Fatalf("missing Player key map:\n%s", out)
	}
	if !strings.Contains(out, `"PK": "PLAYER#{ID}",`) {
		t.Fatalf("missing Player PK template:\n%s", out)
	}
	// Match has no explicit name, so only the key map registers.
	if strings.Contains(out, `RegisterTypeName[Match]`) {
		t.Fatalf("unexpected type name registration for Match:\n%s", out)
	}
	// Deterministic type order: Match before Player.
	if strings.Index(out, "RegisterKeyMap[Match]") > strings.Index(out, "RegisterKeyMap[Player]") {
		t.Fatalf("types not emitted in sorted order:\n%s", out)
	}
}

func TestGenerateRejectsEmptyKeyMap(t *testing.T) {
	m := manifest{
		Package: "x",
		Types:   map[string]typeConfig{"Player": {}},
	}
	if _, err := generate(m); err == nil {
		t.Fatal("expected error for empty key map")
	}
}

package data

import (
	"os"
	"path/filepath"
	"testing"
)

const sceneYAML = `
name: demo
bounds:
  width: 1000
  height: 600
prototypes:
  - name: orc
    count: 3
    position: {x: 100, y: 100}
    velocity: {dx: 12, dy: -4}
    health: {max: 40, decay: 1}
    sprite: {texture: orc.png, material: default, triangles: 128}
  - name: marker
    count: 2
    position: {x: 0, y: 0}
`

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScene(t *testing.T) {
	scene, err := LoadScene(writeScene(t, sceneYAML))
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if scene.Name != "demo" || scene.Bounds.Width != 1000 {
		t.Errorf("scene = %+v", scene)
	}
	if len(scene.Prototypes) != 2 {
		t.Fatalf("prototypes = %d", len(scene.Prototypes))
	}
	orc := scene.Prototypes[0]
	if orc.Health == nil || orc.Health.Max != 40 || orc.Health.Decay != 1 {
		t.Errorf("orc health = %+v", orc.Health)
	}
	if orc.Sprite == nil || orc.Sprite.Texture != "orc.png" {
		t.Errorf("orc sprite = %+v", orc.Sprite)
	}
	marker := scene.Prototypes[1]
	if marker.Velocity != nil || marker.Health != nil {
		t.Errorf("marker should have only position: %+v", marker)
	}
	if scene.Count() != 5 {
		t.Errorf("count = %d, want 5", scene.Count())
	}
}

func TestLoadSceneValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", "bounds: {width: 10, height: 10}\nprototypes: [{name: a, count: 1}]"},
		{"bad bounds", "name: x\nbounds: {width: 0, height: 10}\nprototypes: [{name: a, count: 1}]"},
		{"zero count", "name: x\nbounds: {width: 10, height: 10}\nprototypes: [{name: a, count: 0}]"},
		{"unnamed prototype", "name: x\nbounds: {width: 10, height: 10}\nprototypes: [{count: 2}]"},
		{"bad health", "name: x\nbounds: {width: 10, height: 10}\nprototypes: [{name: a, count: 1, health: {max: 0}}]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadScene(writeScene(t, tc.body)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	if _, err := LoadScene(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

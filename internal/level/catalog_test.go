package level

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/pecktopia/internal/core"
)

func mustDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	return c
}

func TestDefaultCatalog(t *testing.T) {
	c := mustDefault(t)

	if got := c.IDs(); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("IDs() = %v, expected [1 2 3]", got)
	}
	if c.MaxLevel() != 3 {
		t.Errorf("MaxLevel() = %d, expected 3", c.MaxLevel())
	}

	tests := []struct {
		id         int
		name       string
		background Background
		platforms  int
		item       string
		itemBox    core.Box
	}{
		{1, "Chicken Coop", BackgroundCoop, 3, "Golden Feather", core.NewBox(600, 170, 30, 30)},
		{2, "Farmyard", BackgroundFarmyard, 6, "Silver Egg", core.NewBox(300, 130, 30, 30)},
		{3, "Chicken Temple", BackgroundTemple, 9, "Holy Hat", core.NewBox(100, 50, 30, 30)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl, err := c.Lookup(tc.id)
			if err != nil {
				t.Fatalf("Lookup(%d) error: %v", tc.id, err)
			}
			if lvl.Name != tc.name || lvl.Background != tc.background {
				t.Errorf("got %q/%q, expected %q/%q", lvl.Name, lvl.Background, tc.name, tc.background)
			}
			if len(lvl.Platforms) != tc.platforms {
				t.Errorf("platforms = %d, expected %d", len(lvl.Platforms), tc.platforms)
			}
			if len(lvl.Collectibles) != 1 {
				t.Fatalf("collectibles = %d, expected 1", len(lvl.Collectibles))
			}
			if item := lvl.Collectibles[0]; item.Name != tc.item || item.Box != tc.itemBox {
				t.Errorf("collectible = %q %+v, expected %q %+v", item.Name, item.Box, tc.item, tc.itemBox)
			}
			if lvl.Intro == "" || lvl.CompleteMessage == "" {
				t.Error("level texts should not be empty")
			}
		})
	}
}

func TestCoopPlatformOrder(t *testing.T) {
	lvl, _ := mustDefault(t).Lookup(1)
	want := []core.Box{
		core.NewBox(200, 300, 150, 20),
		core.NewBox(400, 250, 150, 20),
		core.NewBox(600, 200, 150, 20),
	}
	for i, p := range lvl.Platforms {
		if p.Box != want[i] {
			t.Errorf("platform %d = %+v, expected %+v", i, p.Box, want[i])
		}
	}
}

func TestLookupReturnsFreshInstances(t *testing.T) {
	c := mustDefault(t)

	first, _ := c.Lookup(1)
	if !first.Collectibles[0].Collect() {
		t.Fatal("Collect() on a fresh item should return true")
	}

	second, _ := c.Lookup(1)
	if second.Collectibles[0].Collected() {
		t.Error("a new lookup must not see flags from a previous instance")
	}

	first.Platforms[0].Box.X = -100
	third, _ := c.Lookup(1)
	if third.Platforms[0].Box.X != 200 {
		t.Error("mutating a returned level must not change the catalog")
	}
}

func TestLookupUnknownLevel(t *testing.T) {
	c := mustDefault(t)

	for _, id := range []int{0, 4, -1} {
		lvl, err := c.Lookup(id)

		var unknown *UnknownLevelError
		if !errors.As(err, &unknown) {
			t.Fatalf("Lookup(%d) error = %v, expected *UnknownLevelError", id, err)
		}
		if unknown.ID != id {
			t.Errorf("UnknownLevelError.ID = %d, expected %d", unknown.ID, id)
		}
		if len(lvl.Platforms) != 0 || len(lvl.Collectibles) != 0 {
			t.Errorf("Lookup(%d) should return an empty level, got %+v", id, lvl)
		}
		if lvl.AllCollected() {
			t.Error("an empty level must never count as collected")
		}
	}
}

func TestCollectibleIsMonotonic(t *testing.T) {
	item := Collectible{Name: "Golden Feather"}
	if item.Collected() {
		t.Fatal("new item should not be collected")
	}
	if !item.Collect() {
		t.Error("first Collect() should report the change")
	}
	if item.Collect() {
		t.Error("second Collect() should be a no-op")
	}
	if !item.Collected() {
		t.Error("item should stay collected")
	}
}

func TestLevelProgressHelpers(t *testing.T) {
	lvl := Level{Collectibles: []Collectible{{Name: "a"}, {Name: "b"}}}
	if lvl.AllCollected() {
		t.Error("nothing collected yet")
	}
	lvl.Collectibles[1].Collect()
	if got := lvl.CollectedNames(); len(got) != 1 || got[0] != "b" {
		t.Errorf("CollectedNames() = %v, expected [b]", got)
	}
	lvl.Collectibles[0].Collect()
	if !lvl.AllCollected() {
		t.Error("all items collected")
	}
}

func TestInfo(t *testing.T) {
	c := mustDefault(t)

	info, ok := c.Info(2)
	if !ok {
		t.Fatal("Info(2) should exist")
	}
	if info.Name != "Farmyard" || info.Platforms != 6 || len(info.Items) != 1 || info.Items[0] != "Silver Egg" {
		t.Errorf("Info(2) = %+v", info)
	}
	if _, ok := c.Info(9); ok {
		t.Error("Info(9) should not exist")
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"lv/a.yaml":    {Data: []byte("id: 1\nname: One\nplatforms:\n  - {x: 0, y: 10, w: 5, h: 5}\ncollectibles:\n  - {name: Seed, x: 1, y: 1, w: 2, h: 2}\n")},
		"lv/b.yml":     {Data: []byte("id: 2\nname: Two\n")},
		"lv/notes.txt": {Data: []byte("ignored")},
	}

	c, err := Load(fsys, "lv")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.MaxLevel() != 2 {
		t.Errorf("MaxLevel() = %d, expected 2", c.MaxLevel())
	}
	lvl, err := c.Lookup(1)
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Collectibles[0].Box != core.NewBox(1, 1, 2, 2) {
		t.Errorf("collectible box = %+v", lvl.Collectibles[0].Box)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
		want  string
	}{
		{
			name:  "empty directory",
			files: fstest.MapFS{"lv/readme.md": {Data: []byte("x")}},
			want:  "no levels",
		},
		{
			name: "duplicate id",
			files: fstest.MapFS{
				"lv/a.yaml": {Data: []byte("id: 1\n")},
				"lv/b.yaml": {Data: []byte("id: 1\n")},
			},
			want: "duplicate",
		},
		{
			name:  "non-positive id",
			files: fstest.MapFS{"lv/a.yaml": {Data: []byte("id: 0\n")}},
			want:  "positive",
		},
		{
			name: "gap in ids",
			files: fstest.MapFS{
				"lv/a.yaml": {Data: []byte("id: 1\n")},
				"lv/c.yaml": {Data: []byte("id: 3\n")},
			},
			want: "missing 2",
		},
		{
			name:  "zero-size platform",
			files: fstest.MapFS{"lv/a.yaml": {Data: []byte("id: 1\nplatforms:\n  - {x: 0, y: 0, w: 0, h: 5}\n")}},
			want:  "platform 0",
		},
		{
			name:  "unnamed collectible",
			files: fstest.MapFS{"lv/a.yaml": {Data: []byte("id: 1\ncollectibles:\n  - {x: 0, y: 0, w: 3, h: 3}\n")}},
			want:  "no name",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.files, "lv")
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

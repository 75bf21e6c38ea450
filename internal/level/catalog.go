package level

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pecktopia/internal/core"
)

//go:embed levels/*.yaml
var embedded embed.FS

// yamlLevel is the on-disk shape of a level file.
type yamlLevel struct {
	ID              int               `yaml:"id"`
	Name            string            `yaml:"name"`
	Background      string            `yaml:"background"`
	Intro           string            `yaml:"intro"`
	CompleteMessage string            `yaml:"complete_message"`
	Platforms       []yamlRect        `yaml:"platforms"`
	Collectibles    []yamlCollectible `yaml:"collectibles"`
}

type yamlRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type yamlCollectible struct {
	Name     string `yaml:"name"`
	yamlRect `yaml:",inline"`
}

// Info summarizes a level for listings.
type Info struct {
	ID         int
	Name       string
	Background Background
	Platforms  int
	Items      []string
}

// Catalog is an immutable table of levels keyed by id.
type Catalog struct {
	levels map[int]Level
	ids    []int
}

// Default loads the built-in catalog of three levels.
func Default() (*Catalog, error) {
	return Load(embedded, "levels")
}

// Load builds a catalog from every .yaml/.yml file in dir.
// Level ids must be unique and form the sequence 1..N.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("level: reading %s: %w", dir, err)
	}

	c := &Catalog{levels: make(map[int]Level)}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		p := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("level: reading %s: %w", p, err)
		}
		lvl, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("level: %s: %w", p, err)
		}
		if _, dup := c.levels[lvl.ID]; dup {
			return nil, fmt.Errorf("level: %s: duplicate level id %d", p, lvl.ID)
		}
		c.levels[lvl.ID] = lvl
		c.ids = append(c.ids, lvl.ID)
	}

	if len(c.ids) == 0 {
		return nil, fmt.Errorf("level: no levels found in %s", dir)
	}
	sort.Ints(c.ids)
	for i, id := range c.ids {
		if id != i+1 {
			return nil, fmt.Errorf("level: ids must run from 1 without gaps, missing %d", i+1)
		}
	}
	return c, nil
}

// Parse decodes and validates a single level file.
func Parse(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID <= 0 {
		return Level{}, fmt.Errorf("level id %d must be positive", yl.ID)
	}

	lvl := Level{
		ID:              yl.ID,
		Name:            yl.Name,
		Background:      Background(yl.Background),
		Intro:           yl.Intro,
		CompleteMessage: yl.CompleteMessage,
	}
	for i, r := range yl.Platforms {
		if r.W <= 0 || r.H <= 0 {
			return Level{}, fmt.Errorf("platform %d has non-positive size %gx%g", i, r.W, r.H)
		}
		lvl.Platforms = append(lvl.Platforms, Platform{Box: r.box()})
	}
	for i, yc := range yl.Collectibles {
		if yc.W <= 0 || yc.H <= 0 {
			return Level{}, fmt.Errorf("collectible %d has non-positive size %gx%g", i, yc.W, yc.H)
		}
		if yc.Name == "" {
			return Level{}, fmt.Errorf("collectible %d has no name", i)
		}
		lvl.Collectibles = append(lvl.Collectibles, Collectible{Name: yc.Name, Box: yc.box()})
	}
	return lvl, nil
}

func (r yamlRect) box() core.Box {
	return core.NewBox(r.X, r.Y, r.W, r.H)
}

// Lookup returns a fresh instance of the level. For an id outside the
// catalog it returns an empty level alongside an *UnknownLevelError.
func (c *Catalog) Lookup(id int) (Level, error) {
	lvl, ok := c.levels[id]
	if !ok {
		return Level{ID: id}, &UnknownLevelError{ID: id}
	}
	return lvl.clone(), nil
}

// IDs returns the level ids in ascending order.
func (c *Catalog) IDs() []int {
	return append([]int(nil), c.ids...)
}

// MaxLevel returns the id of the final level.
func (c *Catalog) MaxLevel() int {
	return c.ids[len(c.ids)-1]
}

// Info returns a summary of one level.
func (c *Catalog) Info(id int) (Info, bool) {
	lvl, ok := c.levels[id]
	if !ok {
		return Info{}, false
	}
	info := Info{
		ID:         lvl.ID,
		Name:       lvl.Name,
		Background: lvl.Background,
		Platforms:  len(lvl.Platforms),
	}
	for _, item := range lvl.Collectibles {
		info.Items = append(info.Items, item.Name)
	}
	return info, true
}

// internal/assets/catalog.go
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"jungle-defense/internal/defs"
)

const (
	BackgroundFile = "bgGameField.png"
	ActionBarFile  = "bgActionBar.png"
)

// ErrMissingBackground is fatal: a session cannot start without its field art.
var ErrMissingBackground = errors.New("background art missing")

// Catalog lists the sprite frames found for each animation directory. Frames
// are <res>/0.png, <res>/1.png, ... up to the first gap.
type Catalog struct {
	frames map[string][]string
}

// Scan discovers the frames of every directory in res. Directories without
// frames are allowed; the background image is not optional.
func Scan(fsys fs.FS, res []string) (*Catalog, error) {
	if _, err := fs.Stat(fsys, BackgroundFile); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingBackground, BackgroundFile, err)
	}
	c := &Catalog{frames: make(map[string][]string, len(res))}
	for _, dir := range res {
		if dir == "" {
			continue
		}
		if _, done := c.frames[dir]; done {
			continue
		}
		var files []string
		for i := 0; ; i++ {
			name := path.Join(dir, fmt.Sprintf("%d.png", i))
			if _, err := fs.Stat(fsys, name); err != nil {
				break
			}
			files = append(files, name)
		}
		c.frames[dir] = files
	}
	return c, nil
}

// FrameCount implements entity.FrameSource.
func (c *Catalog) FrameCount(res string) int {
	return len(c.frames[res])
}

// Files returns the frame paths of res in order.
func (c *Catalog) Files(res string) []string {
	return c.frames[res]
}

// Dirs returns the scanned directories, sorted.
func (c *Catalog) Dirs() []string {
	out := make([]string, 0, len(c.frames))
	for d := range c.frames {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// ResourceDirs lists every animation directory the library refers to.
func ResourceDirs(lib *defs.Library) []string {
	var out []string
	for _, d := range lib.Attackers {
		out = append(out, d.Animation.Res)
	}
	for _, d := range lib.Defenders {
		out = append(out, d.Animation.Res)
	}
	for _, d := range lib.Projectiles {
		out = append(out, d.Animation.Res)
	}
	sort.Strings(out)
	return out
}

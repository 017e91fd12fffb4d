// internal/assets/manager.go
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"jungle-defense/internal/defs"
)

// Manager holds the decoded sprites of a session.
type Manager struct {
	*Catalog
	images     map[string][]*ebiten.Image
	Background *ebiten.Image
	ActionBar  *ebiten.Image
}

// Load scans dir for the sprites the library needs and decodes them.
func Load(dir string, lib *defs.Library, log *zap.Logger) (*Manager, error) {
	return LoadFS(os.DirFS(dir), lib, log)
}

func LoadFS(fsys fs.FS, lib *defs.Library, log *zap.Logger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cat, err := Scan(fsys, ResourceDirs(lib))
	if err != nil {
		return nil, err
	}
	m := &Manager{Catalog: cat, images: make(map[string][]*ebiten.Image)}

	if m.Background, err = decode(fsys, BackgroundFile); err != nil {
		return nil, err
	}
	if bar, err := decode(fsys, ActionBarFile); err == nil {
		m.ActionBar = bar
	}

	// Every broken frame is reported, not just the first.
	var errs error
	for _, res := range cat.Dirs() {
		files := cat.Files(res)
		if len(files) == 0 {
			log.Warn("no sprite frames, drawing placeholder", zap.String("res", res))
			continue
		}
		for _, f := range files {
			img, err := decode(fsys, f)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			m.images[res] = append(m.images[res], img)
		}
	}
	if errs != nil {
		return nil, errs
	}
	log.Info("assets loaded", zap.Int("animations", len(m.images)))
	return m, nil
}

// Frame returns frame i of res, or nil when none is loaded.
func (m *Manager) Frame(res string, i int) *ebiten.Image {
	frames := m.images[res]
	if len(frames) == 0 {
		return nil
	}
	if i < 0 || i >= len(frames) {
		i = 0
	}
	return frames[i]
}

func decode(fsys fs.FS, name string) (*ebiten.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

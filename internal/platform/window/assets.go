package window

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Assets holds everything the window presenter draws with.
// Loading is all-or-nothing: a missing image or font is a startup failure.
type Assets struct {
	Background *ebiten.Image
	Bird       *ebiten.Image
	Wall       *ebiten.Image
	Face       font.Face
}

// LoadAssets reads the images and font named in cfg.
// Relative paths resolve against the working directory.
func LoadAssets(cfg config.Settings) (*Assets, error) {
	bg, err := loadImage("background", cfg.Game.BackgroundPath)
	if err != nil {
		return nil, err
	}
	bird, err := loadImage("bird", cfg.Bird.ImagePath)
	if err != nil {
		return nil, err
	}
	wall, err := loadImage("wall", cfg.Wall.ImagePath)
	if err != nil {
		return nil, err
	}
	face, err := LoadFace(cfg.Game.FontName, cfg.Game.FontSize)
	if err != nil {
		return nil, err
	}

	return &Assets{
		Background: bg,
		Bird:       bird,
		Wall:       wall,
		Face:       face,
	}, nil
}

func loadImage(kind, path string) (*ebiten.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("window: load %s image %q: %w", kind, path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: decode %s image %q: %w", kind, path, err)
	}
	return img, nil
}

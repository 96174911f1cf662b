// sheets previews the animated frames of every sprite category.
//
// Left/Right switch category, Up/Down switch variant.
package main

import (
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/koopa/assets"
	"github.com/spf13/cobra"
)

const screenSize = 512

type viewer struct {
	provider    assets.Provider
	logger      *log.Logger
	categories  []string
	category    int
	variant     int
	frames      []*ebiten.Image
	current     int
	tick        int
	ticksPerFrm int
}

func (v *viewer) load() {
	name := v.categories[v.category]
	frames, err := v.provider.Frames(name, assets.Variants[v.variant])
	if err != nil {
		v.logger.Error("load frames", "category", name, "error", err)
		frames = nil
	}
	v.frames = frames
	v.current = 0
	v.tick = 0
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.category = (v.category + 1) % len(v.categories)
		v.load()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.category = (v.category + len(v.categories) - 1) % len(v.categories)
		v.load()
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		v.variant = (v.variant + 1) % len(assets.Variants)
		v.load()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		v.variant = (v.variant + len(assets.Variants) - 1) % len(assets.Variants)
		v.load()
	}

	if len(v.frames) <= 1 {
		return nil
	}
	v.tick++
	if v.tick >= v.ticksPerFrm {
		v.tick = 0
		v.current = (v.current + 1) % len(v.frames)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s / %s  frame %d/%d",
		v.categories[v.category], assets.Variants[v.variant], v.current+1, len(v.frames)))
	if len(v.frames) == 0 {
		return
	}
	frame := v.frames[v.current]
	fw := frame.Bounds().Dx()
	fh := frame.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(4, 4)
	op.GeoM.Translate(float64(screenSize-4*fw)/2, float64(screenSize-4*fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	var dir string
	var fps int

	cmd := &cobra.Command{
		Use:          "sheets",
		Short:        "Preview sprite sheet animations",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "sheets"})

			var sprites fs.FS = assets.Embedded()
			if dir != "" {
				sprites = os.DirFS(dir)
			}
			provider, err := assets.NewSheetProvider(sprites)
			if err != nil {
				return fmt.Errorf("load sprites: %w", err)
			}

			ticks := 1
			if fps > 0 {
				ticks = max(1, 60/fps)
			}
			v := &viewer{
				provider:    provider,
				logger:      logger,
				categories:  assets.Categories(),
				ticksPerFrm: ticks,
			}
			v.load()

			ebiten.SetWindowSize(screenSize, screenSize)
			ebiten.SetWindowTitle("Sprite Sheets")
			return ebiten.RunGame(v)
		},
	}
	cmd.Flags().StringVar(&dir, "sprites", "", "directory of sprite sheets to use instead of the embedded ones")
	cmd.Flags().IntVar(&fps, "fps", 6, "animation frames per second")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

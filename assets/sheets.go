package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrUnknownCategory = errors.New("assets: unknown sprite category")
	ErrUnknownVariant  = errors.New("assets: unknown sprite variant")
)

// Variants are the world palettes; each is one row of the enemy, item and
// tile sheets.
var Variants = []string{"normal", "underground", "castle", "underwater"}

// VariantRow returns the sheet row for variant. The empty variant is
// "normal".
func VariantRow(variant string) (int, bool) {
	if variant == "" {
		return 0, true
	}
	for i, v := range Variants {
		if v == variant {
			return i, true
		}
	}
	return 0, false
}

// Layout describes where a category's frames live on a sheet. Frames are
// taken from Columns in order, from the variant's row or, when Row is set,
// from that fixed row.
type Layout struct {
	Sheet   string
	Cols    int
	Rows    int
	Columns []int
	Row     *int
}

func fixedRow(r int) *int { return &r }

var layouts = map[string]Layout{
	"goomba":          {Sheet: "Goomba.png", Cols: 3, Rows: 4, Columns: []int{0, 1, 2}},
	"koopa":           {Sheet: "Koopa.png", Cols: 6, Rows: 4, Columns: []int{0, 1, 4, 5}},
	"jumping_koopa":   {Sheet: "Koopa.png", Cols: 6, Rows: 4, Columns: []int{2, 3, 4, 5}},
	"mushroom_grow":   {Sheet: "Items.png", Cols: 19, Rows: 4, Columns: []int{0}},
	"mushroom_life":   {Sheet: "Items.png", Cols: 19, Rows: 4, Columns: []int{1}},
	"mushroom_poison": {Sheet: "Items.png", Cols: 19, Rows: 4, Columns: []int{2}},
	"fire_flower":     {Sheet: "Items.png", Cols: 19, Rows: 4, Columns: []int{3, 4, 5, 6}},
	"star":            {Sheet: "Items.png", Cols: 19, Rows: 4, Columns: []int{7, 8, 9, 10}},
	"coin_static":     {Sheet: "Items.png", Cols: 19, Rows: 4, Columns: []int{11, 12, 13, 14}},
	"coin_rising":     {Sheet: "Items.png", Cols: 19, Rows: 4, Columns: []int{15, 16, 17, 18}},
	"ground":          {Sheet: "Tiles.png", Cols: 4, Rows: 4, Columns: []int{0}},
	"brick":           {Sheet: "Tiles.png", Cols: 4, Rows: 4, Columns: []int{1}},
	"block":           {Sheet: "Tiles.png", Cols: 4, Rows: 4, Columns: []int{2, 3}},
	"goal":            {Sheet: "Tiles.png", Cols: 4, Rows: 4, Columns: []int{3}},
	"player_small":    {Sheet: "Player.png", Cols: 2, Rows: 4, Columns: []int{0, 1}, Row: fixedRow(0)},
	"player_big":      {Sheet: "Player.png", Cols: 2, Rows: 4, Columns: []int{0, 1}, Row: fixedRow(1)},
	"player_fire":     {Sheet: "Player.png", Cols: 2, Rows: 4, Columns: []int{0, 1}, Row: fixedRow(2)},
	"player_dead":     {Sheet: "Player.png", Cols: 2, Rows: 4, Columns: []int{0}, Row: fixedRow(3)},
}

// LayoutFor returns the layout of category.
func LayoutFor(category string) (Layout, bool) {
	l, ok := layouts[category]
	return l, ok
}

// FrameRect returns cell (col, row) of a w x h sheet cut into cols x rows
// equal cells.
func FrameRect(w, h, cols, rows, col, row int) image.Rectangle {
	cw, ch := w/cols, h/rows
	return image.Rect(col*cw, row*ch, (col+1)*cw, (row+1)*ch)
}

// FrameRects returns the source rects for category/variant on a sheet of
// the given size.
func FrameRects(category, variant string, w, h int) ([]image.Rectangle, error) {
	l, ok := layouts[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	row := 0
	if l.Row != nil {
		row = *l.Row
	} else if row, ok = VariantRow(variant); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
	out := make([]image.Rectangle, 0, len(l.Columns))
	for _, col := range l.Columns {
		out = append(out, FrameRect(w, h, l.Cols, l.Rows, col, row))
	}
	return out, nil
}

// Categories lists every sprite category in name order.
func Categories() []string {
	out := make([]string, 0, len(layouts))
	for name := range layouts {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Provider hands out the ordered frames of a sprite category.
type Provider interface {
	Frames(category, variant string) ([]*ebiten.Image, error)
}

type frameKey struct {
	category string
	variant  string
}

// SheetProvider cuts frames out of sprite sheets and caches them.
type SheetProvider struct {
	sheets map[string]*ebiten.Image
	cache  map[frameKey][]*ebiten.Image
}

// NewSheetProvider loads every sheet named by the layouts from fsys. A
// missing or undecodable sheet is an error; callers treat it as fatal.
func NewSheetProvider(fsys fs.FS) (*SheetProvider, error) {
	p := &SheetProvider{
		sheets: make(map[string]*ebiten.Image),
		cache:  make(map[frameKey][]*ebiten.Image),
	}
	for _, l := range layouts {
		if _, ok := p.sheets[l.Sheet]; ok {
			continue
		}
		img, err := LoadImageFS(fsys, l.Sheet)
		if err != nil {
			return nil, fmt.Errorf("load sheet %s: %w", l.Sheet, err)
		}
		p.sheets[l.Sheet] = img
	}
	return p, nil
}

func (p *SheetProvider) Frames(category, variant string) ([]*ebiten.Image, error) {
	key := frameKey{category, variant}
	if frames, ok := p.cache[key]; ok {
		return frames, nil
	}

	l, ok := layouts[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	sheet := p.sheets[l.Sheet]
	b := sheet.Bounds()
	rects, err := FrameRects(category, variant, b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	frames := make([]*ebiten.Image, 0, len(rects))
	for _, r := range rects {
		frames = append(frames, sheet.SubImage(r.Add(b.Min)).(*ebiten.Image))
	}
	p.cache[key] = frames
	return frames, nil
}

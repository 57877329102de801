package arkanoid

import (
	"github.com/arcadekit/arkanoid/internal/arena"
	"github.com/arcadekit/arkanoid/internal/config"
	"github.com/arcadekit/arkanoid/internal/geom"
)

// buildBricks registers the brick grid. Cell (ix, iy) is centered at
// x = offsetX + (ix+startCol)*(w+spacing), y = (iy+startRow)*(h+spacing),
// and takes 1 + ((ix*iy) mod 3) hits, so the grid mixes one-, two- and
// three-hit bricks in a fixed pattern.
func buildBricks(reg *arena.Registry, cfg config.BrickConfig) {
	for iy := range cfg.Rows {
		for ix := range cfg.Columns {
			pos := geom.Vec2{
				X: cfg.OffsetX + float64(ix+cfg.StartCol)*(cfg.Width+cfg.Spacing),
				Y: float64(iy+cfg.StartRow) * (cfg.Height + cfg.Spacing),
			}
			hits := 1 + (ix*iy)%3
			reg.Create(arena.NewBrick(pos, cfg.Width, cfg.Height, hits))
		}
	}
}

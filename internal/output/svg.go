package output

import (
	"fmt"
	"image/color"
	"io"
	"sort"

	"rotlab/internal/raster"
	"rotlab/internal/scene"

	svg "github.com/ajstarks/svgo"
)

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

type svgFace struct {
	xs, ys []int
	depth  float64
	col    color.NRGBA
}

// EncodeSVG draws g as flat polygons, far faces first, using the same camera
// as raster.RenderGeometry. Supersample is ignored.
func EncodeSVG(w io.Writer, g scene.Geometry, opts raster.Options) error {
	mvp := opts.ModelViewProjection(g.Offset)

	faces := make([]svgFace, 0, len(g.Triangles))
	for _, tri := range g.Triangles {
		pts, ok := raster.ProjectTriangle(mvp, tri.V, opts.Width, opts.Height)
		if !ok {
			continue
		}
		f := svgFace{xs: make([]int, 3), ys: make([]int, 3), col: tri.Color}
		for k, p := range pts {
			f.xs[k] = int(p.X + 0.5)
			f.ys[k] = int(p.Y + 0.5)
			f.depth += p.Depth / 3
		}
		faces = append(faces, f)
	}
	sort.SliceStable(faces, func(i, j int) bool { return faces[i].depth < faces[j].depth })

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(opts.Width, opts.Height)
	canvas.Title(fmt.Sprintf("angle %.2f", g.Angle))
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:"+rgb(opts.Background))
	for _, f := range faces {
		canvas.Polygon(f.xs, f.ys, "fill:"+rgb(f.col)+";stroke:"+rgb(f.col))
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("output: svg: %w", ew.err)
	}
	return nil
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

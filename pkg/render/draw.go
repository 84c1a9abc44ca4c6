// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/consensys/go-dagalloc/pkg/dag"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// TITLE is drawn across the top of every image.
const TITLE = "Three-Address Code DAG"

// Options controls the appearance of a rendered graph.
type Options struct {
	Width  int
	Height int
	// Radius of each node.
	Radius float64
	// Fill colour for nodes.
	NodeColour color.Color
	// Colour for edges, outlines and text.
	InkColour color.Color
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Width:      1000,
		Height:     700,
		Radius:     40,
		NodeColour: color.RGBA{0x90, 0xee, 0x90, 0xff},
		InkColour:  color.Black,
	}
}

// Draw renders a graph into an image.  Each node is drawn as a filled circle
// containing its operator (if any), its names and its register label, with an
// arrow to each of its children.
func Draw(g *dag.Graph, opts Options) (*image.RGBA, error) {
	positions, err := Layout(g)
	if err != nil {
		return nil, err
	}
	//
	var (
		img     = image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
		cv      = &canvas{img, vector.NewRasterizer(opts.Width, opts.Height)}
		centres = project(positions, opts)
		ink     = image.NewUniform(opts.InkColour)
	)
	// Background
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	//
	cv.text(TITLE, float64(opts.Width)/2, 20, ink)
	// Edges go underneath nodes
	for i := range g.Nodes() {
		for _, child := range g.Node(uint(i)).Children() {
			cv.arrow(centres[i], centres[child], opts.Radius, ink)
		}
	}
	//
	for i := range g.Nodes() {
		centre := centres[i]
		cv.circle(centre, opts.Radius, ink)
		cv.circle(centre, opts.Radius-1.5, image.NewUniform(opts.NodeColour))
		//
		lines := caption(g.Node(uint(i)))
		top := centre.y - float64(len(lines)-1)*7
		//
		for j, line := range lines {
			cv.text(line, centre.x, top+float64(j)*14, ink)
		}
	}
	//
	return img, nil
}

// EncodePNG writes an image in PNG format.
func EncodePNG(img image.Image, w io.Writer) error {
	return png.Encode(w, img)
}

// EncodeBase64 encodes an image as a base64 PNG string, suitable for embedding
// in a "data:image/png;base64," URL.
func EncodeBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	//
	if err := EncodePNG(img, &buf); err != nil {
		return "", err
	}
	//
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Text drawn inside a node.
func caption(node *dag.Node) []string {
	var (
		lines  []string
		labels = strings.Join(node.Labels, ", ")
		label  = ""
	)
	//
	if node.Registers.HasValue() {
		label = node.Registers.String()
	}
	//
	if node.Operator.HasValue() {
		lines = append(lines, node.Operator.Unwrap(), "("+labels+")")
	} else {
		lines = append(lines, labels)
	}
	//
	return append(lines, "Label: "+label)
}

type point struct {
	x, y float64
}

// Map layout positions onto pixel coordinates, leaving room for the title and
// for the nodes themselves.
func project(positions []Position, opts Options) []point {
	var (
		points = make([]point, len(positions))
		depth  = Depth(positions)
		top    = 40 + opts.Radius
		bottom = float64(opts.Height) - opts.Radius - 10
	)
	//
	for i, p := range positions {
		y := (top + bottom) / 2
		//
		if depth > 1 {
			y = top + (-p.Y)*(bottom-top)/float64(depth-1)
		}
		//
		points[i] = point{p.X * float64(opts.Width), y}
	}
	//
	return points
}

type canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

func (c *canvas) fill(src image.Image) {
	c.ras.Draw(c.img, c.img.Bounds(), src, image.Point{})
	c.ras.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
}

func (c *canvas) circle(centre point, radius float64, src image.Image) {
	const segments = 48
	//
	for i := 0; i < segments+1; i++ {
		theta := 2 * math.Pi * float64(i) / segments
		x := float32(centre.x + radius*math.Cos(theta))
		y := float32(centre.y + radius*math.Sin(theta))
		//
		if i == 0 {
			c.ras.MoveTo(x, y)
		} else {
			c.ras.LineTo(x, y)
		}
	}
	//
	c.ras.ClosePath()
	c.fill(src)
}

// Draw an arrow between the boundaries of two nodes.
func (c *canvas) arrow(from point, to point, radius float64, src image.Image) {
	dx, dy := to.x-from.x, to.y-from.y
	length := math.Hypot(dx, dy)
	//
	if length <= 2*radius {
		return
	}
	// Unit direction and its normal
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux
	start := point{from.x + ux*radius, from.y + uy*radius}
	tip := point{to.x - ux*radius, to.y - uy*radius}
	base := point{tip.x - ux*10, tip.y - uy*10}
	// Shaft
	c.polygon(src,
		point{start.x + nx, start.y + ny}, point{base.x + nx, base.y + ny},
		point{base.x - nx, base.y - ny}, point{start.x - nx, start.y - ny})
	// Head
	c.polygon(src, tip, point{base.x + nx*5, base.y + ny*5}, point{base.x - nx*5, base.y - ny*5})
}

func (c *canvas) polygon(src image.Image, points ...point) {
	c.ras.MoveTo(float32(points[0].x), float32(points[0].y))
	//
	for _, p := range points[1:] {
		c.ras.LineTo(float32(p.x), float32(p.y))
	}
	//
	c.ras.ClosePath()
	c.fill(src)
}

// Draw a line of text centred horizontally on x, with its baseline just below y.
func (c *canvas) text(s string, x float64, y float64, src image.Image) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, s).Ceil()
	//
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  src,
		Face: face,
		Dot:  fixed.P(int(x)-width/2, int(y)+5),
	}
	//
	drawer.DrawString(s)
}

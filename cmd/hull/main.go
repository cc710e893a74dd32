package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/hull"
)

// Demo of hull construction. Input on stdin should be newline separated
// points in the form "x y" (or "x y z" with --three). Blank lines are
// skipped. The hull vertices are printed one per line, along with the
// enclosed area or volume when the input isn't degenerate.

var (
	epsilon   = kingpin.Flag("epsilon", "Comparison tolerance.").Default("1e-10").Float64()
	collinear = kingpin.Flag("collinear", "Keep collinear points on 2D hull edges.").Bool()
	three     = kingpin.Flag("three", "Read 3D points and compute a 3D hull.").Bool()
	render    = kingpin.Flag("render", "Render the 2D hull to this PNG file.").String()
	cat       = kingpin.Flag("cat", "Cat the rendered PNG inline after rendering.").Bool()
	scale     = kingpin.Flag("scale", "Render scale in pixels per unit.").Default("1").Float64()
)

func main() {
	kingpin.Parse()
	if *three {
		run3D()
	} else {
		run2D()
	}
}

func run2D() {
	rows := readRows(os.Stdin, 2)
	points := make([]hull.Vec2, len(rows))
	for i, row := range rows {
		points[i] = hull.Vec2{X: row[0], Y: row[1]}
	}

	h, err := hull.ConvexHull2D(points, *epsilon, *collinear)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}

	fmt.Printf("%v points in, %v hull vertices\n", aurora.Cyan(len(points)), aurora.Green(len(h.Vertices())))
	for _, v := range h.Vertices() {
		fmt.Printf("%g %g\n", v.X, v.Y)
	}
	if h.Degenerate() {
		fmt.Println(aurora.Yellow("degenerate input: the hull bounds no region"))
	} else {
		fmt.Printf("area: %v\n", aurora.Green(h.Region().Area()))
	}

	if *render != "" {
		if err := h.DrawPNG(*render, points, *scale); err != nil {
			kingpin.Fatalf("rendering %s: %v", *render, err)
		}
		if *cat {
			imgcat.CatFile(*render, os.Stdout)
		}
	}
}

func run3D() {
	rows := readRows(os.Stdin, 3)
	points := make([]hull.Vec3, len(rows))
	for i, row := range rows {
		points[i] = hull.Vec3{X: row[0], Y: row[1], Z: row[2]}
	}

	h, err := hull.ConvexHull3D(points, *epsilon)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}

	fmt.Printf("%v points in, %v hull vertices, %v facets\n",
		aurora.Cyan(len(points)), aurora.Green(len(h.Vertices())), aurora.Green(len(h.Facets())))
	for _, f := range h.Facets() {
		fmt.Printf("%d %d %d\n", f.Vertices[0], f.Vertices[1], f.Vertices[2])
	}
	if h.Degenerate() {
		fmt.Println(aurora.Yellow("degenerate input: the hull bounds no region"))
	} else {
		fmt.Printf("volume: %v\n", aurora.Green(h.Region().Volume()))
	}
}

func readRows(in *os.File, width int) [][]float64 {
	var rows [][]float64
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != width {
			kingpin.Fatalf("expected %d coordinates, got %q", width, line)
		}
		row := make([]float64, width)
		for i, part := range parts {
			value, err := strconv.ParseFloat(part, 64)
			if err != nil {
				kingpin.Fatalf("invalid coordinate %q: %v", part, err)
			}
			row[i] = value
		}
		rows = append(rows, row)
	}
	return rows
}

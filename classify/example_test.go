package classify_test

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/katalvlaran/mazeforge/classify"
)

// ExampleClassify reads a blank 170×170 floor image as an open 17×17 room.
func ExampleClassify() {
	img := image.NewRGBA(image.Rect(0, 0, 170, 170))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 140, G: 136, B: 117, A: 255}}, image.Point{}, draw.Src)

	c, err := classify.Classify(img)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.Grid.Width, c.Entrance, c.Exit, c.Grid.InteriorWalls())
	// Output:
	// 17 (0,8) (16,8) 0
}

// Command vectorize converts raster images to SVG line drawings.
//
// Usage:
//
//	vectorize [flags] <input_image> <output_svg>
//	vectorize serve [--addr :8080]
//	vectorize version
package main

func main() {
	Execute()
}

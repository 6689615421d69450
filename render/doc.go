// Package render is the raster boundary of mazeforge: it paints grids,
// overlays solutions and reads/writes PNG files.
//
// What:
//
//   - FitCellSize shrinks the cell size proportionally when a raster side
//     would exceed MaxSide (16000 px by default) instead of failing. Grids
//     wider or taller than MaxSide cells are painted at 1 px and downscaled.
//   - Rasterize paints walls and paths as solid square blocks, strokes wall
//     edges that face open cells and optionally jitters every channel.
//   - Overlay greys out a source image and fills solved cells with the route
//     color; Markers adds entrance/exit arrows.
//   - LoadPNG, SavePNG, DecodePNG and EncodePNG wrap image/png;
//     DecodePNGLimit checks the header against a pixel budget first.
//
// Outlines darken wall blocks. When a raster is going to be classified back
// into a grid, render it with WithOutlineWidth(0).
//
// Errors:
//
//   - ErrNilGrid, ErrNilImage, ErrOptionViolation, ErrImageTooLarge.
package render

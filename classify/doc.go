// Package classify turns a raster (typically a rendered, possibly
// hand-annotated maze) into a coarse passable/blocked grid for package
// solver.
//
// What:
//
//   - Layout splits the image into N×N blocks by integer division; the last
//     row and column absorb any remainder.
//   - Sample computes each block's mean color.
//   - Classify applies a Strategy per block and forces the border ring,
//     leaving one entrance (left) and one exit (right) on PortalRow.
//
// Strategies:
//
//   - GreenObstacle: green-dominant or near-black blocks are obstacles
//     (reference thresholds 15/10/100/200).
//   - LabObstacle: the same idea in CIE-L*a*b* via go-colorful.
//   - StrategyFunc: any func(RGB) bool.
//
// Errors:
//
//   - ErrNilImage, ErrImageTooSmall, ErrOptionViolation.
package classify

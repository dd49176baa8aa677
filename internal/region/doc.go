// Package region groups foreground pixels of a raster grid into point
// sequences.
//
// Extraction scans rows top to bottom. For every row that no earlier
// traversal has touched with a foreground pixel, a depth-first traversal
// is seeded at column 0 of that row. The traversal uses an explicit stack
// and 4-connectivity (down, right, up, left are pushed in that order, so
// left is explored first). Every foreground pixel it reaches is appended
// to the traversal's sequence and marks its row as processed.
//
// Two properties of this scan are deliberate:
//
//   - A traversal seeded on a background pixel stops immediately. Foreground
//     that is not connected to column 0 of some unprocessed row through
//     other foreground pixels is therefore never collected.
//   - Points are in traversal order and cover the whole region, interior
//     included. They are not an ordered boundary.
//
// Each pixel belongs to at most one sequence.
package region

/*
Package surface provides drawing areas for histogram overlays: a raster image
that can be saved as PNG, a grid of terminal cells, and a recorder that keeps
the drawing operations for inspection.
*/
package surface

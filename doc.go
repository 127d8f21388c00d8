/*
Package histcompare computes the brightness and colour channel histograms of
two images and draws them on top of each other, using one shared vertical
scale, so that differences in exposure and colour between the two (for
example a picture taken with and without flash) become visible.

Histograms have a fixed 256 buckets, one per 8-bit channel value. The
brightness histogram counts every channel of every pixel, so each pixel casts
three votes into it.

Drawing goes through the small Surface interface. The surface subpackage
provides raster and terminal implementations.
*/
package histcompare

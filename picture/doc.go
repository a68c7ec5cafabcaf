// Package picture loads raster images and resizes them to a fixed number of
// rows for sonification.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP inputs are accepted. The resized width
// keeps the original aspect ratio.
package picture

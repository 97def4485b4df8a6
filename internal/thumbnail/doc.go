// Package thumbnail loads row images for the catalogue list.
//
// A Loader fetches an image URL, center-crops it to a square and resizes
// it to a fixed edge (256 pixels by default). Concurrent requests for the
// same URL share one download, and finished thumbnails are kept in a
// bounded FIFO cache. Failed loads are not cached.
//
// Render turns a thumbnail into terminal cells using upper half blocks,
// two pixel rows per text row.
package thumbnail

// Package inspect derives metadata from image files: size, content hash,
// MIME type, pixel dimensions, color characteristics, and an EXIF subset.
//
// Non-image files are handled safely: inspection fills the basic fields
// (size, hash, MIME) and leaves the decode-derived fields empty rather than
// returning an error.
package inspect

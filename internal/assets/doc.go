// Package assets reads local image files and encodes them for inline embedding.
//
// Every call reads from disk. There is no cache: a page rendered after an image
// changes always shows the new bytes. A file that cannot be read for any reason
// yields an absent Image instead of an error, so one bad image never stops a page.
package assets

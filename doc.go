// Package pageslots computes the page slots of a numbered pagination control.
//
// Overview
//
// A pagination control shows a row of page numbers. When there are more pages
// than fit, only a window of them is shown, optionally framed by the first and
// last page numbers and ellipsis markers:
//
//	[1, ..., 5, 6, 7, ..., 10]
//
// Key concepts
//   - Compute: pure function turning a Config and a requested page into Pages
//     (page count, clamped page and ordered slots).
//   - Window: the contiguous block of pages kept visible when MaxSize limits the
//     control. Chosen either by rotation (current page centered) or by block
//     pagination (fixed MaxSize chunks).
//   - Pager: a single control instance. Holds the current page, notifies on
//     page changes and applies the selected page to GORM queries.
//   - Links: the rendering view model (first/previous/pages/next/last items).
package pageslots

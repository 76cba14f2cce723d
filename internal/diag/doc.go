// Package diag defines structured compiler diagnostics.
//
// Phases never print anything themselves: they push diagnostics through a
// Reporter, typically into a Bag, and the calling driver decides how (and
// whether) to render them. Codes are ranged by pipeline stage so a
// diagnostic always knows which stage produced it.
package diag

// Package stats computes text and token statistics over workbook sheets and
// extracted image payloads.
//
// Token counting delegates to a tiktoken encoding when one is requested and
// otherwise uses a fixed-ratio heuristic of roughly four characters per
// token. Chunk counts estimate how many fixed-size overlapping segments a
// sheet's text splits into.
package stats

// Package pipeline orchestrates a full run: fingerprint the input, reuse or
// produce the token and sentence layers through the two-tier cache, enrich
// sentences with translations and synthesized speech, assemble the bilingual
// timeline, and export the artifacts.
//
// The two cache tiers have different keys on purpose. Tokens depend only on
// the input bytes, so a recording transcribed once is never transcribed
// again. Sentences additionally depend on the translator, subtitle mode, and
// voice, so each distinct setting combination is enriched once and then
// replayed from the cache.
package pipeline

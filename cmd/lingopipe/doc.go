// Command lingopipe turns a spoken recording into bilingual study
// material: spliced source/target audio, subtitles, a still-frame video,
// and JSON dumps of the token and sentence layers.
package main

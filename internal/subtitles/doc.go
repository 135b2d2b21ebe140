// Package subtitles renders timeline events to SRT and ASS files.
//
// SRT is written for players and for the standalone subtitle artifact; ASS
// carries explicit top and bottom styles and is what gets burned into video,
// so simultaneous-mode event pairs land on separate lines of the frame.
package subtitles

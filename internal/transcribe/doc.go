// Package transcribe turns source audio into the ordered token sequence the
// rest of the pipeline consumes.
//
// The Recognizer contract wraps an external speech-to-text capability that
// reports word-level timestamps. The CLI implementation shells out to a
// whisper-compatible command that writes its result as JSON. BuildTokens then
// splits each recognized word into typed tokens; every token split from one
// word shares that word's audio span, an accepted approximation of sub-word
// timing.
package transcribe

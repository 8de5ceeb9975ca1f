// Package chunker splits text lists into batches that fit one service call.
package chunker

import "unicode/utf8"

// DefaultMaxTexts is the most q parameters the service accepts in one call.
const DefaultMaxTexts = 128

// Size returns the character count the service limits are measured in.
func Size(text string) int {
	return utf8.RuneCountInString(text)
}

// ChunkBySize splits texts into chunks whose combined size stays at or under
// maxChars and which hold at most maxTexts texts.
// Each text is kept whole - never split mid-text. A text larger than maxChars
// gets a chunk of its own and is left for the caller to reject.
func ChunkBySize(texts []string, maxChars, maxTexts int) [][]string {
	if len(texts) == 0 {
		return nil
	}

	if maxTexts <= 0 {
		maxTexts = DefaultMaxTexts
	}

	var chunks [][]string
	var currentChunk []string
	currentSize := 0

	for _, text := range texts {
		textSize := Size(text)

		if textSize > maxChars {
			if len(currentChunk) > 0 {
				chunks = append(chunks, currentChunk)
				currentChunk = nil
				currentSize = 0
			}
			chunks = append(chunks, []string{text})
			continue
		}

		if len(currentChunk) > 0 && (currentSize+textSize > maxChars || len(currentChunk) == maxTexts) {
			chunks = append(chunks, currentChunk)
			currentChunk = nil
			currentSize = 0
		}

		currentChunk = append(currentChunk, text)
		currentSize += textSize
	}

	if len(currentChunk) > 0 {
		chunks = append(chunks, currentChunk)
	}

	return chunks
}

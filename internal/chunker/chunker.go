// Package chunker splits narrative prose into speech-synthesis-safe segments
// without breaking sentences or words.
package chunker

import "strings"

// MaxSynthesisChars is the request size limit imposed by the speech-synthesis
// provider. Callers chunking for synthesis must pass exactly this budget.
const MaxSynthesisChars = 5000

const sentenceDelimiter = ". "

// Chunk partitions text into an ordered sequence of segments of at most
// maxChars characters each. Input whitespace is normalized first; if the
// normalized text fits the budget it is returned as a single segment.
// Otherwise the text is split on sentence boundaries and sentences are
// accumulated greedily. A single sentence over the budget is further split at
// word boundaries, never inside a word; emitted sub-segments get a trailing
// period to preserve prosody cues downstream, omitted when the period itself
// would push the segment past the budget.
//
// Chunk never emits an empty segment and never exceeds maxChars, except for
// the pathological case of a single word longer than the budget, which is
// emitted as-is.
func Chunk(text string, maxChars int) []string {
	normalized := normalize(text)
	if normalized == "" {
		return nil
	}
	if maxChars <= 0 || len(normalized) <= maxChars {
		return []string{normalized}
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		chunks = append(chunks, current.String())
		current.Reset()
	}

	for _, sentence := range splitSentences(normalized) {
		if len(sentence) > maxChars {
			flush()
			chunks = append(chunks, splitWords(sentence, maxChars)...)
			continue
		}

		if current.Len() == 0 {
			current.WriteString(sentence)
			continue
		}
		if current.Len()+1+len(sentence) > maxChars {
			flush()
			current.WriteString(sentence)
			continue
		}
		current.WriteByte(' ')
		current.WriteString(sentence)
	}
	flush()

	return chunks
}

// normalize trims the text and collapses internal runs of whitespace
// (newlines, double spaces) to single spaces.
func normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// splitSentences breaks on the period-plus-space delimiter and re-terminates
// every sentence with a period, including a final sentence that lacked one.
func splitSentences(text string) []string {
	parts := strings.Split(text, sentenceDelimiter)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.HasSuffix(part, ".") {
			part += "."
		}
		sentences = append(sentences, part)
	}
	return sentences
}

// splitWords partitions an oversized sentence at word boundaries, appending a
// trailing period to each piece. A lone word that leaves no room for the
// period is emitted bare so the budget holds; a word longer than the budget
// itself is emitted unsplit.
func splitWords(sentence string, maxChars int) []string {
	words := strings.Fields(strings.TrimSuffix(sentence, "."))

	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		chunks = append(chunks, current.String()+".")
		current.Reset()
	}

	for _, word := range words {
		switch {
		case current.Len() == 0:
			// The +1 accounts for the period appended on flush.
			if len(word)+1 > maxChars {
				chunks = append(chunks, word)
				continue
			}
			current.WriteString(word)
		case current.Len()+1+len(word)+1 > maxChars:
			flush()
			if len(word)+1 > maxChars {
				chunks = append(chunks, word)
				continue
			}
			current.WriteString(word)
		default:
			current.WriteByte(' ')
			current.WriteString(word)
		}
	}
	flush()

	return chunks
}

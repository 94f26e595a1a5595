package features

import "strings"

// fleschReadingEase scores text readability: 206.835 − 1.015·(words/sentences)
// − 84.6·(syllables/words). Empty text scores 0.
func fleschReadingEase(raw string, words []string) float64 {
	if len(words) == 0 {
		return 0
	}

	sentences := countSentences(raw)
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))
	return 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
}

func countSentences(raw string) int {
	n := 0
	inTerminator := false
	for _, r := range raw {
		switch r {
		case '.', '!', '?':
			if !inTerminator {
				n++
				inTerminator = true
			}
		default:
			inTerminator = false
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// countSyllables approximates English syllables as vowel groups, with a
// minimum of one per word.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	n := 0
	inVowelGroup := false
	for _, r := range word {
		if strings.ContainsRune("aeiouy", r) {
			if !inVowelGroup {
				n++
				inVowelGroup = true
			}
		} else {
			inVowelGroup = false
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

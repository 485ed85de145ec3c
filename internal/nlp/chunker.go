package nlp

import "strings"

// taggedToken is a surface form with its Penn Treebank tag.
type taggedToken struct {
	Text string
	Tag  string
}

// nounChunks groups base noun phrases: an optional determiner, possessive or
// number, then adjectives and nouns, ending on a noun.
func nounChunks(tokens []taggedToken) []string {
	var chunks []string

	for i := 0; i < len(tokens); {
		j := i
		if isDeterminer(tokens[j].Tag) {
			j++
		}
		for j < len(tokens) && (isAdjective(tokens[j].Tag) || isNoun(tokens[j].Tag)) {
			j++
		}

		last := -1
		for k := j - 1; k >= i; k-- {
			if isNoun(tokens[k].Tag) {
				last = k
				break
			}
		}

		if last < 0 {
			i++
			continue
		}

		words := make([]string, 0, last-i+1)
		for _, tok := range tokens[i : last+1] {
			words = append(words, tok.Text)
		}
		chunks = append(chunks, strings.Join(words, " "))
		i = last + 1
	}

	return chunks
}

func isDeterminer(tag string) bool {
	return tag == "DT" || tag == "PRP$" || tag == "CD" || tag == "PDT"
}

func isAdjective(tag string) bool {
	return strings.HasPrefix(tag, "JJ")
}

func isNoun(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

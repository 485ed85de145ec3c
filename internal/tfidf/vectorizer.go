// Package tfidf implements a term-frequency / inverse-document-frequency
// vectorizer with smoothed idf and L2-normalized rows.
package tfidf

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

var ErrInvalidState = errors.New("tfidf: invalid vectorizer state")

type Options struct {
	MaxFeatures int  `json:"max_features"` // 0 keeps every term
	NGramMin    int  `json:"ngram_min"`
	NGramMax    int  `json:"ngram_max"`
	StopWords   bool `json:"stop_words"`
}

func DefaultOptions() Options {
	return Options{
		MaxFeatures: 1000,
		NGramMin:    1,
		NGramMax:    2,
		StopWords:   true,
	}
}

// State is the serializable form of a fitted vectorizer.
type State struct {
	Options    Options        `json:"options"`
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// Vectorizer is immutable after Fit and safe for concurrent Transform calls.
type Vectorizer struct {
	opts       Options
	vocabulary map[string]int
	idf        []float64
}

// Fit learns the vocabulary and idf weights of docs. When MaxFeatures is set,
// the terms with the highest corpus frequency are kept, ties broken
// alphabetically. Feature indices follow alphabetical term order.
func Fit(docs []string, opts Options) *Vectorizer {
	opts = normalizeOptions(opts)

	termFreq := make(map[string]int)
	docTerms := make([]map[string]int, len(docs))
	for i, doc := range docs {
		counts := countTerms(analyze(doc, opts))
		docTerms[i] = counts
		for term, c := range counts {
			termFreq[term] += c
		}
	}

	terms := make([]string, 0, len(termFreq))
	for term := range termFreq {
		terms = append(terms, term)
	}

	if opts.MaxFeatures > 0 && len(terms) > opts.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if termFreq[terms[i]] != termFreq[terms[j]] {
				return termFreq[terms[i]] > termFreq[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:opts.MaxFeatures]
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
	}

	docFreq := make([]int, len(terms))
	for _, counts := range docTerms {
		for term := range counts {
			if idx, ok := vocabulary[term]; ok {
				docFreq[idx]++
			}
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, df := range docFreq {
		idf[i] = math.Log((1+n)/(1+float64(df))) + 1
	}

	return &Vectorizer{
		opts:       opts,
		vocabulary: vocabulary,
		idf:        idf,
	}
}

// FromState rebuilds a fitted vectorizer, e.g. one shipped with a model artifact.
func FromState(s State) (*Vectorizer, error) {
	if len(s.Vocabulary) != len(s.IDF) {
		return nil, fmt.Errorf("%w: %d terms but %d idf weights", ErrInvalidState, len(s.Vocabulary), len(s.IDF))
	}
	for term, idx := range s.Vocabulary {
		if idx < 0 || idx >= len(s.IDF) {
			return nil, fmt.Errorf("%w: term %q has index %d", ErrInvalidState, term, idx)
		}
	}

	vocabulary := make(map[string]int, len(s.Vocabulary))
	for term, idx := range s.Vocabulary {
		vocabulary[term] = idx
	}

	return &Vectorizer{
		opts:       normalizeOptions(s.Options),
		vocabulary: vocabulary,
		idf:        append([]float64(nil), s.IDF...),
	}, nil
}

func (v *Vectorizer) State() State {
	vocabulary := make(map[string]int, len(v.vocabulary))
	for term, idx := range v.vocabulary {
		vocabulary[term] = idx
	}
	return State{
		Options:    v.opts,
		Vocabulary: vocabulary,
		IDF:        append([]float64(nil), v.idf...),
	}
}

// Transform maps text into the fitted feature space. Out-of-vocabulary terms
// are ignored; the result is L2-normalized or empty.
func (v *Vectorizer) Transform(text string) Vector {
	vec := make(Vector)
	for term, count := range countTerms(analyze(text, v.opts)) {
		idx, ok := v.vocabulary[term]
		if !ok {
			continue
		}
		vec[idx] = float64(count) * v.idf[idx]
	}
	return vec.normalize()
}

func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// Dimension returns the width of the feature space.
func (v *Vectorizer) Dimension() int {
	return len(v.idf)
}

// Analyze returns the terms (unigrams and n-grams) text contributes under the
// vectorizer options.
func (v *Vectorizer) Analyze(text string) []string {
	return analyze(text, v.opts)
}

func analyze(text string, opts Options) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)

	tokens := raw[:0]
	for _, tok := range raw {
		if opts.StopWords && IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	var terms []string
	for n := opts.NGramMin; n <= opts.NGramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

func countTerms(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return counts
}

func normalizeOptions(opts Options) Options {
	if opts.NGramMin < 1 {
		opts.NGramMin = 1
	}
	if opts.NGramMax < opts.NGramMin {
		opts.NGramMax = opts.NGramMin
	}
	return opts
}

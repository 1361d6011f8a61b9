// Package lorem provides generators for "lorem ipsum" placeholder text,
// from single words up to multi-paragraph blocks. All generators share the
// faux.Generator contract: pass a seeded source, receive a string.
package lorem

import (
	_ "embed"

	"github.com/solitonlab/faux/pkg/faux"
)

//go:embed data/words.txt
var wordsData string

// Word generates a single lowercase lorem ipsum word.
var Word = faux.MustCorpus(wordsData)

// firstWord is Word with its first letter capitalized, used to open
// sentences.
var firstWord = faux.Capitalize(Word)

// Sentence generates a lorem ipsum sentence of three to seven words,
// capitalized and terminated with a period.
var Sentence = faux.MustTemplateSet(
	faux.MustTemplate("{} {} {}.", firstWord, Word, Word),
	faux.MustTemplate("{} {} {} {}.", firstWord, Word, Word, Word),
	faux.MustTemplate("{} {} {} {} {}.", firstWord, Word, Word, Word, Word),
	faux.MustTemplate("{} {} {} {} {} {}.", firstWord, Word, Word, Word, Word, Word),
	faux.MustTemplate("{} {} {} {} {} {} {}.", firstWord, Word, Word, Word, Word, Word, Word),
)

// Paragraph generates a lorem ipsum paragraph of three to five sentences.
var Paragraph = faux.MustTemplateSet(
	faux.MustTemplate("{} {} {}", Sentence, Sentence, Sentence),
	faux.MustTemplate("{} {} {} {}", Sentence, Sentence, Sentence, Sentence),
	faux.MustTemplate("{} {} {} {} {}", Sentence, Sentence, Sentence, Sentence, Sentence),
)

// Paragraphs generates three to five newline-terminated lorem ipsum
// paragraphs.
var Paragraphs = faux.MustTemplateSet(
	faux.MustTemplate("{}\n{}\n{}\n", Paragraph, Paragraph, Paragraph),
	faux.MustTemplate("{}\n{}\n{}\n{}\n", Paragraph, Paragraph, Paragraph, Paragraph),
	faux.MustTemplate("{}\n{}\n{}\n{}\n{}\n", Paragraph, Paragraph, Paragraph, Paragraph, Paragraph),
)

/*
Package faux provides composable generators for randomized, human-plausible
strings such as names, words, and identifiers.

Every generator implements the single capability Sample(Source) string: the
caller supplies the randomness source and receives a finished string. Three
generator kinds can be composed freely: Enum samples from a fixed in-memory
list, Corpus samples from a line-delimited text resource loaded once at
construction, and TemplateSet picks one pattern uniformly and fills its slots
by invoking nested generators.

All validation happens at construction time. A successfully constructed
generator is immutable, safe for concurrent use, and its Sample method never
fails. For ready-made generator families, see the lorem, enus, and frfr
packages.
*/
package faux

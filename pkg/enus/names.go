package enus

import (
	_ "embed"

	"github.com/solitonlab/faux/pkg/faux"
)

var (
	//go:embed data/first_names.txt
	firstNamesData string
	//go:embed data/last_names.txt
	lastNamesData string
	//go:embed data/name_prefixes.txt
	namePrefixesData string
	//go:embed data/name_suffixes.txt
	nameSuffixesData string
)

// FirstName generates a first name.
var FirstName = faux.MustCorpus(firstNamesData)

// LastName generates a last name.
var LastName = faux.MustCorpus(lastNamesData)

// NamePrefix generates a name prefix such as "Mr." or "Dr.".
var NamePrefix = faux.MustCorpus(namePrefixesData)

// NameSuffix generates a name suffix such as "Jr." or "III".
var NameSuffix = faux.MustCorpus(nameSuffixesData)

// FullName generates a full name, including possibly a prefix, suffix, or
// both.
var FullName = faux.MustTemplateSet(
	faux.MustTemplate("{} {}", FirstName, LastName),
	faux.MustTemplate("{} {} {}", NamePrefix, FirstName, LastName),
	faux.MustTemplate("{} {} {}", FirstName, LastName, NameSuffix),
	faux.MustTemplate("{} {} {} {}", NamePrefix, FirstName, LastName, NameSuffix),
)

package frfr

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
)

// FirstName generates a first name.
var FirstName = faux.MustCorpus(firstNamesData)

// LastName generates a last name. Following French postal convention, last
// names are fully uppercased in the corpus.
var LastName = faux.MustCorpus(lastNamesData)

// NamePrefix generates a name prefix such as "Mme" or "Dr".
var NamePrefix = faux.MustCorpus(namePrefixesData)

// FullName generates a full name, including possibly a prefix.
var FullName = faux.MustTemplateSet(
	faux.MustTemplate("{} {}", FirstName, LastName),
	faux.MustTemplate("{} {} {}", NamePrefix, FirstName, LastName),
)

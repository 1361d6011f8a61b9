package enus

import (
	_ "embed"

	"github.com/solitonlab/faux/pkg/faux"
)

var (
	//go:embed data/company_suffixes.txt
	companySuffixesData string
	//go:embed data/slogan_adjectives.txt
	sloganAdjectivesData string
	//go:embed data/slogan_descriptors.txt
	sloganDescriptorsData string
	//go:embed data/slogan_nouns.txt
	sloganNounsData string
)

var companySuffix = faux.MustCorpus(companySuffixesData)

// CompanyName generates a company name such as "Konopelski, Price, and
// Beier".
var CompanyName = faux.MustTemplateSet(
	faux.MustTemplate("{} {}", FirstName, companySuffix),
	faux.MustTemplate("{}-{}", LastName, LastName),
	faux.MustTemplate("{}, {}, and {}", LastName, LastName, LastName),
)

var (
	sloganAdjective  = faux.MustCorpus(sloganAdjectivesData)
	sloganDescriptor = faux.MustCorpus(sloganDescriptorsData)
	sloganNoun       = faux.MustCorpus(sloganNounsData)
)

// Slogan generates a company slogan such as "Business-focused intermediate
// applications".
var Slogan = faux.MustTemplateSet(
	faux.MustTemplate("{} {} {}", sloganAdjective, sloganDescriptor, sloganNoun),
)

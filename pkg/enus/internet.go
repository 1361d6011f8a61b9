package enus

import (
	_ "embed"

	"github.com/solitonlab/faux/pkg/faux"
)

//go:embed data/domain_tlds.txt
var domainTLDsData string

var (
	domainWord = faux.Lowercase(LastName)
	domainTLD  = faux.MustCorpus(domainTLDsData)
)

// Domain generates a domain name such as "thiel.name".
var Domain = faux.MustTemplateSet(
	faux.MustTemplate("{}.{}", domainWord, domainTLD),
)

// Username generates a username such as "odietrich48".
var Username = faux.MustTemplateSet(
	faux.MustTemplate("{}{}", faux.AsciiLowercase, faux.Lowercase(LastName)),
	faux.MustTemplate("{}{}{}", faux.AsciiLowercase, faux.Lowercase(LastName), faux.AsciiDigit),
	faux.MustTemplate("{}{}{}{}", faux.AsciiLowercase, faux.Lowercase(LastName), faux.AsciiDigit, faux.AsciiDigit),
	faux.MustTemplate("{}{}", faux.Lowercase(FirstName), faux.Lowercase(LastName)),
)

// Email generates an email address such as "odietrich48@thompson.net".
var Email = faux.MustTemplateSet(
	faux.MustTemplate("{}@{}", Username, Domain),
)

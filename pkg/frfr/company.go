package frfr

import (
	_ "embed"

	"github.com/solitonlab/faux/pkg/faux"
)

//go:embed data/company_suffixes.txt
var companySuffixesData string

var companySuffix = faux.MustCorpus(companySuffixesData)

// CompanyName generates a company name such as "Lucille SARL".
var CompanyName = faux.MustTemplateSet(
	faux.MustTemplate("{} {}", FirstName, companySuffix),
)

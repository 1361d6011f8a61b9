package frfr

import (
	_ "embed"

	"github.com/solitonlab/faux/pkg/faux"
)

var (
	//go:embed data/city_names.txt
	cityNamesData string
	//go:embed data/street_prefixes.txt
	streetPrefixesData string
	//go:embed data/street_suffixes.txt
	streetSuffixesData string
	//go:embed data/divisions.txt
	divisionsData string
)

// CityName generates a French city name such as "Levallois-Perret".
var CityName = faux.MustCorpus(cityNamesData)

var (
	streetPrefix = faux.MustCorpus(streetPrefixesData)
	streetSuffix = faux.MustCorpus(streetSuffixesData)
)

// StreetName generates a street name such as "Passage de Seine".
var StreetName = faux.MustTemplateSet(
	faux.MustTemplate("{} {}", streetPrefix, streetSuffix),
)

// buildingNumber generates a one- to three-digit building number.
var buildingNumber = faux.MustTemplateSet(
	faux.MustTemplate("{}", faux.AsciiDigit),
	faux.MustTemplate("{}{}", faux.AsciiDigit, faux.AsciiDigit),
	faux.MustTemplate("{}{}{}", faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit),
)

// StreetAddress generates a street address such as "54 Place de
// Montmorency".
var StreetAddress = faux.MustTemplateSet(
	faux.MustTemplate("{} {}", buildingNumber, StreetName),
)

// SecondaryAddress generates a secondary address line, e.g. an apartment or
// floor number.
var SecondaryAddress = faux.MustTemplateSet(
	faux.MustTemplate("Apt. {}{}{}", faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit),
	faux.MustTemplate("{} étage", faux.AsciiDigit),
)

// Division generates a first-level administrative division (one of the 13
// metropolitan régions of France). Overseas regions are not included in
// this list.
var Division = faux.MustCorpus(divisionsData)

// PostalCode generates a five-digit postal code. No guarantee is made that
// the first two digits correspond to a real department.
var PostalCode = faux.MustTemplateSet(
	faux.MustTemplate("{}{}{}{}{}",
		faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit),
)

// Address generates a full postal address in French layout, terminated by a
// "FRANCE" country line.
var Address = faux.MustTemplateSet(
	faux.MustTemplate("{}\n{}\n{} {}\nFRANCE\n",
		FullName, StreetAddress, PostalCode, CityName),
	faux.MustTemplate("{}\n{}\n{}\n{} {}\nFRANCE\n",
		FullName, SecondaryAddress, StreetAddress, PostalCode, CityName),
)

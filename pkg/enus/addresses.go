package enus

import (
	_ "embed"

	"github.com/solitonlab/faux/pkg/faux"
)

var (
	//go:embed data/city_prefixes.txt
	cityPrefixesData string
	//go:embed data/city_suffixes.txt
	citySuffixesData string
	//go:embed data/street_suffixes.txt
	streetSuffixesData string
	//go:embed data/divisions.txt
	divisionsData string
	//go:embed data/division_abbreviations.txt
	divisionAbbreviationsData string
)

var (
	cityPrefix   = faux.MustCorpus(cityPrefixesData)
	citySuffix   = faux.MustCorpus(citySuffixesData)
	streetSuffix = faux.MustCorpus(streetSuffixesData)
)

// CityName generates a city name such as "Cletastad" or "North Renner".
var CityName = faux.MustTemplateSet(
	faux.MustTemplate("{} {}{}", cityPrefix, FirstName, citySuffix),
	faux.MustTemplate("{} {}", cityPrefix, FirstName),
	faux.MustTemplate("{}{}", FirstName, citySuffix),
	faux.MustTemplate("{}{}", LastName, citySuffix),
)

// StreetName generates a street name such as "Renner Mission".
var StreetName = faux.MustTemplateSet(
	faux.MustTemplate("{} {}", FirstName, streetSuffix),
	faux.MustTemplate("{} {}", LastName, streetSuffix),
)

// buildingNumber generates a three- to five-digit building number.
var buildingNumber = faux.MustTemplateSet(
	faux.MustTemplate("{}{}{}", faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit),
	faux.MustTemplate("{}{}{}{}", faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit),
	faux.MustTemplate("{}{}{}{}{}", faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit),
)

// StreetAddress generates a street address such as "5489 Shanie Springs".
var StreetAddress = faux.MustTemplateSet(
	faux.MustTemplate("{} {}", buildingNumber, StreetName),
)

// SecondaryAddress generates a secondary address line, e.g. an apartment or
// suite number.
var SecondaryAddress = faux.MustTemplateSet(
	faux.MustTemplate("Apt. {}{}{}", faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit),
	faux.MustTemplate("Suite {}{}{}", faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit),
)

// Division generates a first-level administrative division (one of the 50
// states). Other top-level divisions, such as the District of Columbia or
// the unincorporated organized territories, are not included in this list.
var Division = faux.MustCorpus(divisionsData)

// DivisionAbbreviation generates the two-letter abbreviation of a division.
// See the note on Division about which entities are included.
var DivisionAbbreviation = faux.MustCorpus(divisionAbbreviationsData)

// PostalCode generates a postal code (a.k.a. a ZIP Code), in either the
// five-digit or ZIP+4 form.
var PostalCode = faux.MustTemplateSet(
	faux.MustTemplate("{}{}{}{}{}",
		faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit),
	faux.MustTemplate("{}{}{}{}{}-{}{}{}{}",
		faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit,
		faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit),
)

// Address generates a full postal address: recipient, street line with an
// optional secondary address, then city, division, and postal code.
var Address = faux.MustTemplateSet(
	faux.MustTemplate("{}\n{}\n{}, {} {}\n",
		FullName, StreetAddress, CityName, DivisionAbbreviation, PostalCode),
	faux.MustTemplate("{}\n{} {}\n{}, {} {}\n",
		FullName, StreetAddress, SecondaryAddress, CityName, DivisionAbbreviation, PostalCode),
)

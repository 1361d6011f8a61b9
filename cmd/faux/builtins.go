package main

import (
	"github.com/solitonlab/faux/pkg/enus"
	"github.com/solitonlab/faux/pkg/faux"
	"github.com/solitonlab/faux/pkg/frfr"
	"github.com/solitonlab/faux/pkg/lorem"
)

// builtins returns a registry pre-populated with every generator the
// library ships. User definitions and wordstore corpora are layered on top,
// so they may reference any of these names as template parts.
func builtins() *faux.Registry {
	reg := faux.NewRegistry()

	named := []struct {
		name string
		gen  faux.Generator
	}{
		{"ascii_digit", faux.AsciiDigit},
		{"ascii_lowercase", faux.AsciiLowercase},

		{"lorem.word", lorem.Word},
		{"lorem.sentence", lorem.Sentence},
		{"lorem.paragraph", lorem.Paragraph},
		{"lorem.paragraphs", lorem.Paragraphs},

		{"enus.first_name", enus.FirstName},
		{"enus.last_name", enus.LastName},
		{"enus.name_prefix", enus.NamePrefix},
		{"enus.name_suffix", enus.NameSuffix},
		{"enus.full_name", enus.FullName},
		{"enus.city_name", enus.CityName},
		{"enus.street_name", enus.StreetName},
		{"enus.street_address", enus.StreetAddress},
		{"enus.secondary_address", enus.SecondaryAddress},
		{"enus.division", enus.Division},
		{"enus.division_abbreviation", enus.DivisionAbbreviation},
		{"enus.postal_code", enus.PostalCode},
		{"enus.address", enus.Address},
		{"enus.company_name", enus.CompanyName},
		{"enus.slogan", enus.Slogan},
		{"enus.domain", enus.Domain},
		{"enus.username", enus.Username},
		{"enus.email", enus.Email},
		{"enus.phone_number", enus.PhoneNumber},

		{"frfr.first_name", frfr.FirstName},
		{"frfr.last_name", frfr.LastName},
		{"frfr.name_prefix", frfr.NamePrefix},
		{"frfr.full_name", frfr.FullName},
		{"frfr.city_name", frfr.CityName},
		{"frfr.street_name", frfr.StreetName},
		{"frfr.street_address", frfr.StreetAddress},
		{"frfr.secondary_address", frfr.SecondaryAddress},
		{"frfr.division", frfr.Division},
		{"frfr.postal_code", frfr.PostalCode},
		{"frfr.address", frfr.Address},
		{"frfr.company_name", frfr.CompanyName},
		{"frfr.domain", frfr.Domain},
		{"frfr.username", frfr.Username},
		{"frfr.email", frfr.Email},
		{"frfr.phone_number", frfr.PhoneNumber},
	}

	for _, b := range named {
		// Built-in names are unique by construction.
		_ = reg.Register(b.name, b.gen)
	}
	return reg
}

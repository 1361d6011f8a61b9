package enus

import "github.com/solitonlab/faux/pkg/faux"

// PhoneNumber generates a phone number in the form "(058) 981-5364".
var PhoneNumber = faux.MustTemplateSet(
	faux.MustTemplate("({}{}{}) {}{}{}-{}{}{}{}",
		faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit,
		faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit,
		faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit, faux.AsciiDigit),
)

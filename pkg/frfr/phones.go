package frfr

import "github.com/solitonlab/faux/pkg/faux"

// PhoneNumber generates a phone number in the form "00 58 98 15 36".
var PhoneNumber = faux.MustTemplateSet(
	faux.MustTemplate("0{} {}{} {}{} {}{} {}{}",
		faux.AsciiDigit,
		faux.AsciiDigit, faux.AsciiDigit,
		faux.AsciiDigit, faux.AsciiDigit,
		faux.AsciiDigit, faux.AsciiDigit,
		faux.AsciiDigit, faux.AsciiDigit),
)

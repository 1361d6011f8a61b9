/*
Package frfr provides localized generators for French as spoken in France
(fr-FR): personal names, postal addresses, company names, internet
identifiers, and phone numbers.

All generators are package-level values built over embedded corpora and are
safe for concurrent use. They share the faux.Generator contract: pass a
seeded source, receive a string.
*/
package frfr

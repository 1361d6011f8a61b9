/*
Package enus provides localized generators for English as spoken in the
United States (en-US): personal names, postal addresses, company names and
slogans, internet identifiers, and phone numbers.

All generators are package-level values built over embedded corpora and are
safe for concurrent use. They share the faux.Generator contract: pass a
seeded source, receive a string.
*/
package enus

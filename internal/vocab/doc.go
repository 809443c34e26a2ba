// Package vocab reads vocabulary lists. It fetches the raw semicolon-delimited
// text from a file or an http(s) URL and turns it into domain entries.
//
// Parsing favors a usable partial list over a hard failure: rows with a
// missing or blank field are dropped and recorded in the ParseReport. Only a
// list that yields no entries at all is an error.
package vocab

// Package testutil holds fixtures and container helpers shared by tests.
package testutil

// Published ABA routing numbers with correct check digits.
var ValidRoutingNumbers = []string{
	"011000015", // Federal Reserve Bank, district 1
	"021000021", // JPMorgan Chase, New York
	"026009593", // Bank of America, New York
	"121000248", // Wells Fargo, San Francisco
	"322271627", // JPMorgan Chase, California
	"000000000", // degenerate all-zero payload
}

// Well-formed routing numbers whose check digit does not match the payload.
var ChecksumMismatchRoutingNumbers = []string{
	"011000016",
	"021000022",
	"123456789",
}

// Package exercise defines the fixed catalog of exercise kinds and the answer
// equivalence rule shared by all of them.
//
// Every kind is a tag plus three pure functions of a vocabulary entry
// (question, expected answer, checker). The functions hold no state and
// perform no I/O, so a kind can be evaluated against any entry at any time.
package exercise

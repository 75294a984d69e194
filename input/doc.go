// Package input reads maze dimensions from a console.
//
// A dimension is valid when it is made only of ASCII digits and is odd
// (which also rules out zero). Prompter asks repeatedly until a valid value
// arrives or input ends.
package input

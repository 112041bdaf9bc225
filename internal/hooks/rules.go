// Package hooks patches React source files whose named-import declaration
// from "react" is missing the useCallback symbol. Matching is purely textual:
// two fixed import shapes are recognized (useEffect/useState in either order)
// and the symbol is appended after them. The presence check is a plain
// substring search, so an occurrence of the symbol anywhere in the file,
// comments and strings included, suppresses the insertion.
package hooks

import (
	"regexp"

	"github.com/harborgrid-justin/lithic/internal/patch"
)

// Symbol is the named import the fixer inserts.
const Symbol = "useCallback"

// ImportRules returns the live rule set. The replacement template reproduces
// the historical insertion shape verbatim, trailing bracket included:
//
//	import { useEffect, useState } from "react";
//
// becomes
//
//	import { useEffect, useState }, useCallback} from "react";
func ImportRules() patch.RuleSet {
	return patch.RuleSet{
		Guard: Symbol,
		Rules: []patch.Rule{
			{
				Name:        "effect-state-import",
				Pattern:     regexp.MustCompile(`(import\s+\{\s*useEffect,\s*useState\s*\})`),
				Replacement: "${1}, useCallback}",
			},
			{
				Name:        "state-effect-import",
				Pattern:     regexp.MustCompile(`(import\s+\{\s*useState,\s*useEffect\s*\})`),
				Replacement: "${1}, useCallback}",
			},
		},
	}
}

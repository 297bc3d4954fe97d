// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package loader

import (
	"fmt"
	"strconv"
	"strings"
)

// attribute is one parsed index:value token from an SV line.
type attribute struct {
	index uint32
	value float32
}

// supportVectorLine is one SV row split into its coefficient floats and
// its ordered attribute pairs, in file order.
type supportVectorLine struct {
	coefs      []float64
	attributes []attribute
}

// tokenizeSVLine splits a single SV line into coefficients (plain tokens)
// and attributes (tokens containing ':'), per spec: the loader partitions
// tokens into (a) tokens containing ':' -> (index, value) pairs, (b) the
// remaining tokens -> coefficients.
func tokenizeSVLine(line string) (supportVectorLine, error) {
	fields := strings.Fields(line)
	var sv supportVectorLine
	for _, f := range fields {
		if idx := strings.IndexByte(f, ':'); idx >= 0 {
			indexPart, valuePart := f[:idx], f[idx+1:]
			index, err := strconv.ParseUint(indexPart, 10, 32)
			if err != nil {
				return supportVectorLine{}, fmt.Errorf("invalid attribute index %q: %w", indexPart, err)
			}
			value, err := strconv.ParseFloat(valuePart, 32)
			if err != nil {
				return supportVectorLine{}, fmt.Errorf("invalid attribute value %q: %w", valuePart, err)
			}
			sv.attributes = append(sv.attributes, attribute{index: uint32(index), value: float32(value)})
		} else {
			value, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return supportVectorLine{}, fmt.Errorf("invalid coefficient %q: %w", f, err)
			}
			sv.coefs = append(sv.coefs, value)
		}
	}
	return sv, nil
}

// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package loader parses the libSVM text model format into a validated
// pkg/types.SVM, enforcing the structural invariants the classifier core
// relies on (strictly increasing dense attribute indices, required kernel
// parameters, consistent class/support-vector counts).
package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitjungle/svmrt/pkg/types"
)

// header is the raw, as-parsed header block, before it is validated and
// turned into types.KernelParams/types.SVMType.
type header struct {
	svmType    string
	kernelType string
	gamma      *float64
	coef0      *float64
	degree     *int
	nrClass    *uint32
	totalSV    *uint32
	rho        []float64
	label      []int32
	probA      []float64
	probB      []float64
	nrSV       []uint32
}

// parseHeader consumes header lines (everything up to and including the
// bare "SV" line) and returns the parsed header plus the remaining lines.
func parseHeader(lines []string) (header, []string, error) {
	var h header
	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if line == "SV" {
			i++
			break
		}

		fields := strings.Fields(line)
		if len(fields) < 1 {
			continue
		}
		key := fields[0]
		rest := fields[1:]

		switch key {
		case "svm_type":
			if len(rest) > 0 {
				h.svmType = rest[0]
			}
		case "kernel_type":
			if len(rest) > 0 {
				h.kernelType = rest[0]
			}
		case "gamma":
			v, err := parseFloatField(rest, key)
			if err != nil {
				return header{}, nil, err
			}
			h.gamma = &v
		case "coef0":
			v, err := parseFloatField(rest, key)
			if err != nil {
				return header{}, nil, err
			}
			h.coef0 = &v
		case "degree":
			v, err := parseIntField(rest, key)
			if err != nil {
				return header{}, nil, err
			}
			iv := int(v)
			h.degree = &iv
		case "nr_class":
			v, err := parseUintField(rest, key)
			if err != nil {
				return header{}, nil, err
			}
			h.nrClass = &v
		case "total_sv":
			v, err := parseUintField(rest, key)
			if err != nil {
				return header{}, nil, err
			}
			h.totalSV = &v
		case "rho":
			vs, err := parseFloatSlice(rest, key)
			if err != nil {
				return header{}, nil, err
			}
			h.rho = vs
		case "label":
			vs, err := parseIntSlice(rest, key)
			if err != nil {
				return header{}, nil, err
			}
			h.label = vs
		case "probA":
			vs, err := parseFloatSlice(rest, key)
			if err != nil {
				return header{}, nil, err
			}
			h.probA = vs
		case "probB":
			vs, err := parseFloatSlice(rest, key)
			if err != nil {
				return header{}, nil, err
			}
			h.probB = vs
		case "nr_sv":
			vs, err := parseUintSlice(rest, key)
			if err != nil {
				return header{}, nil, err
			}
			h.nrSV = vs
		default:
			// Unknown header keys are ignored, matching libSVM's own
			// forward-compatible header handling.
		}
	}
	return h, lines[i:], nil
}

func parseFloatField(fields []string, key string) (float64, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("header key %q has no value", key)
	}
	return strconv.ParseFloat(fields[0], 64)
}

func parseIntField(fields []string, key string) (int64, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("header key %q has no value", key)
	}
	return strconv.ParseInt(fields[0], 10, 64)
}

func parseUintField(fields []string, key string) (uint32, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("header key %q has no value", key)
	}
	v, err := strconv.ParseUint(fields[0], 10, 32)
	return uint32(v), err
}

func parseFloatSlice(fields []string, key string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("header key %q: %w", key, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseIntSlice(fields []string, key string) ([]int32, error) {
	out := make([]int32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("header key %q: %w", key, err)
		}
		out[i] = int32(v)
	}
	return out, nil
}

func parseUintSlice(fields []string, key string) ([]uint32, error) {
	out := make([]uint32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("header key %q: %w", key, err)
		}
		out[i] = uint32(v)
	}
	return out, nil
}

func svmTypeFromString(s string) (types.SVMType, bool) {
	switch s {
	case "c_svc":
		return types.CSvc, true
	case "nu_svc":
		return types.NuSvc, true
	case "epsilon_svr":
		return types.ESvr, true
	case "nu_svr":
		return types.NuSvr, true
	default:
		return 0, false
	}
}

func kernelTypeFromString(s string) (types.KernelType, bool) {
	switch s {
	case "linear":
		return types.KernelLinear, true
	case "polynomial", "poly":
		return types.KernelPoly, true
	case "rbf":
		return types.KernelRBF, true
	case "sigmoid":
		return types.KernelSigmoid, true
	default:
		return 0, false
	}
}

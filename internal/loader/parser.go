// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package loader

import (
	"strings"

	"github.com/bitjungle/svmrt/internal/simd"
	"github.com/bitjungle/svmrt/pkg/types"
)

// rawModel is the parsed-but-not-yet-validated libSVM text model: a header
// plus one supportVectorLine per SV row, in file order.
type rawModel struct {
	header  header
	vectors []supportVectorLine
}

// parseModel splits model text into a header and its SV rows.
func parseModel(text string) (rawModel, error) {
	lines := strings.Split(text, "\n")
	h, rest, err := parseHeader(lines)
	if err != nil {
		return rawModel{}, types.NewValidationError("malformed header", err)
	}

	var vectors []supportVectorLine
	for _, line := range rest {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		sv, err := tokenizeSVLine(trimmed)
		if err != nil {
			return rawModel{}, types.NewValidationError("malformed support vector line", err)
		}
		vectors = append(vectors, sv)
	}
	return rawModel{header: h, vectors: vectors}, nil
}

// classLayout describes how many classes the model has, their labels, and
// how many support vectors belong to each — derived once, the same way
// for both the dense and sparse builders.
type classLayout struct {
	svmType    types.SVMType
	numClasses int
	labels     []int32
	nrSV       []uint32
	totalSV    int
}

func resolveLayout(h header) (classLayout, error) {
	if h.svmType == "" {
		return classLayout{}, types.NewMissingAttributeError("svm_type")
	}
	if h.kernelType == "" {
		return classLayout{}, types.NewMissingAttributeError("kernel_type")
	}
	if h.nrClass == nil {
		return classLayout{}, types.NewMissingAttributeError("nr_class")
	}
	if h.totalSV == nil {
		return classLayout{}, types.NewMissingAttributeError("total_sv")
	}

	svmType, ok := svmTypeFromString(h.svmType)
	if !ok {
		return classLayout{}, types.ErrUnsupportedKernel
	}

	totalSV := int(*h.totalSV)

	if svmType.IsClassification() {
		numClasses := int(*h.nrClass)
		labels := h.label
		nrSV := h.nrSV
		if len(labels) != numClasses || len(nrSV) != numClasses {
			return classLayout{}, types.NewValidationError("label/nr_sv length does not match nr_class", nil)
		}
		return classLayout{svmType: svmType, numClasses: numClasses, labels: labels, nrSV: nrSV, totalSV: totalSV}, nil
	}

	// Regression: collapse to a single synthetic class of label 0 holding
	// every support vector, regardless of what nr_class/label/nr_sv said.
	return classLayout{
		svmType:    svmType,
		numClasses: 1,
		labels:     []int32{0},
		nrSV:       []uint32{uint32(totalSV)},
		totalSV:    totalSV,
	}, nil
}

func resolveKernel(h header) (types.KernelParams, error) {
	kt, ok := kernelTypeFromString(h.kernelType)
	if !ok {
		return types.KernelParams{}, types.ErrUnsupportedKernel
	}

	params := types.KernelParams{Type: kt}

	needsGamma := kt == types.KernelRBF || kt == types.KernelPoly || kt == types.KernelSigmoid
	needsCoef0 := kt == types.KernelPoly || kt == types.KernelSigmoid
	needsDegree := kt == types.KernelPoly

	if needsGamma {
		if h.gamma == nil {
			return types.KernelParams{}, types.ErrNoGamma
		}
		params.Gamma = *h.gamma
	}
	if needsCoef0 {
		if h.coef0 == nil {
			return types.KernelParams{}, types.ErrNoCoef0
		}
		params.Coef0 = *h.coef0
	}
	if needsDegree {
		if h.degree == nil {
			return types.KernelParams{}, types.ErrNoDegree
		}
		params.Degree = *h.degree
	}

	return params, nil
}

func resolveProbabilities(h header, layout classLayout) *types.Probabilities {
	if !layout.svmType.IsClassification() {
		return nil
	}
	if h.probA == nil || h.probB == nil {
		return nil
	}
	n := layout.numClasses
	a := simd.NewTriangular[float64](n)
	b := simd.NewTriangular[float64](n)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if k < len(h.probA) {
				a.Set(i, j, h.probA[k])
			}
			if k < len(h.probB) {
				b.Set(i, j, h.probB[k])
			}
			k++
		}
	}
	return &types.Probabilities{A: a, B: b}
}

func resolveRho(h header, layout classLayout) *simd.Triangular[float64] {
	if !layout.svmType.IsClassification() {
		return nil
	}
	n := layout.numClasses
	rho := simd.NewTriangular[float64](n)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if k < len(h.rho) {
				rho.Set(i, j, h.rho[k])
			}
			k++
		}
	}
	return rho
}

func resolveRegressionRho(h header) float64 {
	if len(h.rho) == 0 {
		return 0
	}
	return h.rho[0]
}

// LoadDense parses libSVM model text into an SVM with dense support vector
// storage, enforcing that every row's attribute indices are the strictly
// increasing sequence 0, 1, 2, … with no gaps.
func LoadDense(text string) (*types.SVM, error) {
	raw, err := parseModel(text)
	if err != nil {
		return nil, err
	}
	layout, err := resolveLayout(raw.header)
	if err != nil {
		return nil, err
	}
	kernelParams, err := resolveKernel(raw.header)
	if err != nil {
		return nil, err
	}
	if len(raw.vectors) == 0 {
		return nil, types.NewValidationError("model has no support vectors", nil)
	}

	numAttributes := len(raw.vectors[0].attributes)

	classes := make([]types.Class, layout.numClasses)
	for c := 0; c < layout.numClasses; c++ {
		classes[c] = types.Class{
			Label:             layout.labels[c],
			NumSupportVectors: int(layout.nrSV[c]),
			Dense:             simd.NewMatrix(int(layout.nrSV[c]), numAttributes),
			Coefficients:      allocCoefficients(layout.numClasses, int(layout.nrSV[c])),
		}
	}

	start := 0
	for c := 0; c < layout.numClasses; c++ {
		count := int(layout.nrSV[c])
		for row := 0; row < count; row++ {
			sv := raw.vectors[start+row]

			lastIndex := int64(-1)
			for col, a := range sv.attributes {
				if int64(a.index) != lastIndex+1 {
					return nil, &types.AttributesUnorderedError{Index: a.index, Value: a.value, LastIndex: lastIndex}
				}
				classes[c].Dense.Set(row, col, a.value)
				lastIndex = int64(a.index)
			}

			for r, coef := range sv.coefs {
				if r < len(classes[c].Coefficients) {
					classes[c].Coefficients[r][row] = coef
				}
			}
		}
		start += count
	}

	return finishSVM(layout, kernelParams, raw.header, numAttributes, classes), nil
}

// LoadSparse parses libSVM model text into an SVM with ordered-sparse
// support vector storage, enforcing only that indices within a row are
// strictly increasing (gaps are permitted and simply omitted).
func LoadSparse(text string) (*types.SVM, error) {
	raw, err := parseModel(text)
	if err != nil {
		return nil, err
	}
	layout, err := resolveLayout(raw.header)
	if err != nil {
		return nil, err
	}
	kernelParams, err := resolveKernel(raw.header)
	if err != nil {
		return nil, err
	}
	if len(raw.vectors) == 0 {
		return nil, types.NewValidationError("model has no support vectors", nil)
	}

	numAttributes := 0
	for _, v := range raw.vectors {
		for _, a := range v.attributes {
			if int(a.index)+1 > numAttributes {
				numAttributes = int(a.index) + 1
			}
		}
	}

	classes := make([]types.Class, layout.numClasses)
	for c := 0; c < layout.numClasses; c++ {
		classes[c] = types.Class{
			Label:             layout.labels[c],
			NumSupportVectors: int(layout.nrSV[c]),
			Sparse:            simd.NewSparseMatrix(int(layout.nrSV[c])),
			Coefficients:      allocCoefficients(layout.numClasses, int(layout.nrSV[c])),
		}
	}

	start := 0
	for c := 0; c < layout.numClasses; c++ {
		count := int(layout.nrSV[c])
		for row := 0; row < count; row++ {
			sv := raw.vectors[start+row]

			lastIndex := int64(-1)
			entries := make(simd.SparseVector, 0, len(sv.attributes))
			for _, a := range sv.attributes {
				if int64(a.index) <= lastIndex {
					return nil, &types.AttributesUnorderedError{Index: a.index, Value: a.value, LastIndex: lastIndex}
				}
				entries = append(entries, simd.SparseEntry{Index: a.index, Value: a.value})
				lastIndex = int64(a.index)
			}
			classes[c].Sparse.Rows[row] = entries

			for r, coef := range sv.coefs {
				if r < len(classes[c].Coefficients) {
					classes[c].Coefficients[r][row] = coef
				}
			}
		}
		start += count
	}

	return finishSVM(layout, kernelParams, raw.header, numAttributes, classes), nil
}

func allocCoefficients(numClasses, numSV int) [][]float64 {
	rows := numClasses - 1
	if rows < 1 {
		rows = 1
	}
	coefs := make([][]float64, rows)
	for r := range coefs {
		coefs[r] = make([]float64, numSV)
	}
	return coefs
}

func finishSVM(layout classLayout, kernelParams types.KernelParams, h header, numAttributes int, classes []types.Class) *types.SVM {
	m := &types.SVM{
		Type:          layout.svmType,
		Kernel:        kernelParams,
		NumAttributes: numAttributes,
		NumTotalSV:    layout.totalSV,
		Classes:       classes,
		Probabilities: resolveProbabilities(h, layout),
	}
	if layout.svmType.IsClassification() {
		m.Rho = resolveRho(h, layout)
	} else {
		m.RegressionRho = resolveRegressionRho(h)
	}
	return m
}

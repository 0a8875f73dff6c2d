// Package scheme encodes per-set numeric targets (reps, weights, RIR) into the
// flat JSON array representation persisted by the stores.
package scheme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrMalformed = errors.New("malformed scheme")

// Encode renders values as a JSON array of numbers. Every finite float64
// survives a Decode round trip unchanged.
func Encode(values []float64) (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("%w: value at index %d is not finite", ErrMalformed, i)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	buf.WriteByte(']')
	return buf.String(), nil
}

// EncodeInts is Encode for reps and RIR sequences.
func EncodeInts(values []int) string {
	// ints are always finite
	encoded, _ := Encode(intsToFloats(values))
	return encoded
}

// Decode parses an encoded sequence. The empty string decodes to an empty
// sequence, so rows written before a target was set stay readable.
func Decode(text string) ([]float64, error) {
	trimmed := bytes.TrimSpace([]byte(text))
	if len(trimmed) == 0 {
		return []float64{}, nil
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: not an array", ErrMalformed)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	values := make([]float64, 0, len(raw))
	for i, elem := range raw {
		v, err := strconv.ParseFloat(string(bytes.TrimSpace(elem)), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d is not a number", ErrMalformed, i)
		}
		values = append(values, v)
	}
	return values, nil
}

// DecodeInts decodes a sequence that must hold whole numbers only.
func DecodeInts(text string) ([]int, error) {
	values, err := Decode(text)
	if err != nil {
		return nil, err
	}
	ints := make([]int, len(values))
	for i, v := range values {
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return nil, fmt.Errorf("%w: element %d is not an integer", ErrMalformed, i)
		}
		ints[i] = int(v)
	}
	return ints, nil
}

// DecodePair decodes index-aligned target reps and weights. When both are
// present they must hold one entry per prescribed set.
func DecodePair(repsText, weightsText string) ([]int, []float64, error) {
	reps, err := DecodeInts(repsText)
	if err != nil {
		return nil, nil, fmt.Errorf("reps: %w", err)
	}
	weights, err := Decode(weightsText)
	if err != nil {
		return nil, nil, fmt.Errorf("weights: %w", err)
	}
	if len(reps) > 0 && len(weights) > 0 && len(reps) != len(weights) {
		return nil, nil, fmt.Errorf(
			"%w: %d target reps vs %d target weights",
			ErrMalformed, len(reps), len(weights),
		)
	}
	return reps, weights, nil
}

func intsToFloats(values []int) []float64 {
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = float64(v)
	}
	return floats
}

package request

import (
	"bytes"
	"encoding/json"
	"strconv"

	"crm_cotizador/internal/domain/pricing"
)

// The quote form posts whatever the user typed, so numeric and boolean fields
// accept JSON numbers, booleans, strings or null.

// FlexNumber is a money or percent amount.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	s, err := rawText(b)
	if err != nil {
		return err
	}
	*n = FlexNumber(pricing.ParseAmount(s))
	return nil
}

// FlexCount is a non-negative whole number.
type FlexCount int

func (n *FlexCount) UnmarshalJSON(b []byte) error {
	s, err := rawText(b)
	if err != nil {
		return err
	}
	*n = FlexCount(pricing.ParseCount(s))
	return nil
}

// FlexBool is a yes/no flag.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	s, err := rawText(b)
	if err != nil {
		return err
	}
	*f = FlexBool(pricing.ParseFlag(s))
	return nil
}

// FlexText keeps the raw text of a scalar value.
type FlexText string

func (t *FlexText) UnmarshalJSON(b []byte) error {
	s, err := rawText(b)
	if err != nil {
		return err
	}
	*t = FlexText(s)
	return nil
}

func rawText(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		return "", nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return s, nil
	case bytes.Equal(b, []byte("true")), bytes.Equal(b, []byte("false")):
		return string(b), nil
	default:
		var f json.Number
		if err := json.Unmarshal(b, &f); err != nil {
			return "", err
		}
		if _, err := strconv.ParseFloat(f.String(), 64); err != nil {
			return "", err
		}
		return f.String(), nil
	}
}

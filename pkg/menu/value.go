package menu

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	Text Kind = iota
	Integer
	Float
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Parse converts raw input into a value of kind k. Text keeps everything but
// the line ending; numbers are parsed after trimming surrounding whitespace.
func (k Kind) Parse(input string) (Value, error) {
	switch k {
	case Text:
		return TextValue(strings.TrimRight(input, "\r\n")), nil
	case Integer:
		i, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return IntValue(i), nil
	case Float:
		trimmed := strings.TrimSpace(input)
		if hasHexPrefix(trimmed) {
			return nil, fmt.Errorf("%w: hexadecimal %q", ErrParse, trimmed)
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return FloatValue(f), nil
	}
	return nil, fmt.Errorf("%w: unknown kind %s", ErrParse, k)
}

// hasHexPrefix reports whether s is a hexadecimal literal such as 0x1p3.
func hasHexPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

type Optionality int

const (
	Required Optionality = iota
	Optional
)

func (o Optionality) String() string {
	if o == Optional {
		return "Optional"
	}
	return "Required"
}

// Value is one of TextValue, IntValue or FloatValue.
type Value interface {
	Kind() Kind
	String() string
}

type TextValue string

func (TextValue) Kind() Kind       { return Text }
func (v TextValue) String() string { return string(v) }

type IntValue int64

func (IntValue) Kind() Kind       { return Integer }
func (v IntValue) String() string { return strconv.FormatInt(int64(v), 10) }

type FloatValue float64

func (FloatValue) Kind() Kind       { return Float }
func (v FloatValue) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

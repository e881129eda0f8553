package menu

import (
	"strings"

	"gopkg.in/guregu/null.v4"
)

// Field is one question in a menu. Value starts out as the default, if any,
// and holds the resolved answer once the menu has been displayed.
type Field struct {
	Label       string
	Kind        Kind
	Optionality Optionality
	Value       Value
}

// NewField builds a field. def may be nil.
func NewField(label string, kind Kind, optionality Optionality, def Value) Field {
	return Field{Label: label, Kind: kind, Optionality: optionality, Value: def}
}

func (f Field) IsOptional() bool {
	return f.Optionality == Optional
}

func (f Field) HasValue() bool {
	return f.Value != nil
}

// Set parses input as the field's kind and stores it.
func (f *Field) Set(input string) error {
	v, err := f.Kind.Parse(input)
	if err != nil {
		return err
	}

	f.Value = v
	return nil
}

// accept applies one line of input. Blank input keeps the current value,
// which is only allowed when there is one or the field is optional.
func (f *Field) accept(input string) error {
	if strings.TrimSpace(input) == "" {
		if !f.IsOptional() && !f.HasValue() {
			return ErrRequired
		}
		return nil
	}

	return f.Set(input)
}

func (f Field) check() error {
	if f.Value != nil && f.Value.Kind() != f.Kind {
		return &MismatchError{Label: f.Label, Want: f.Kind, Have: f.Value.Kind()}
	}
	return nil
}

func (f Field) expect(kind Kind) error {
	if f.Kind != kind {
		return &MismatchError{Label: f.Label, Want: kind, Have: f.Kind}
	}
	return nil
}

// Text returns the field's text. The result is invalid when no value was set.
func (f Field) Text() (null.String, error) {
	if err := f.expect(Text); err != nil {
		return null.String{}, err
	}

	if v, ok := f.Value.(TextValue); ok {
		return null.StringFrom(string(v)), nil
	}
	return null.String{}, nil
}

// Int returns the field's integer. The result is invalid when no value was set.
func (f Field) Int() (null.Int, error) {
	if err := f.expect(Integer); err != nil {
		return null.Int{}, err
	}

	if v, ok := f.Value.(IntValue); ok {
		return null.IntFrom(int64(v)), nil
	}
	return null.Int{}, nil
}

// Float returns the field's float. The result is invalid when no value was set.
func (f Field) Float() (null.Float, error) {
	if err := f.expect(Float); err != nil {
		return null.Float{}, err
	}

	if v, ok := f.Value.(FloatValue); ok {
		return null.FloatFrom(float64(v)), nil
	}
	return null.Float{}, nil
}

// MustText is like Text but panics on a kind mismatch.
func (f Field) MustText() null.String {
	v, err := f.Text()
	if err != nil {
		panic(err)
	}
	return v
}

// MustInt is like Int but panics on a kind mismatch.
func (f Field) MustInt() null.Int {
	v, err := f.Int()
	if err != nil {
		panic(err)
	}
	return v
}

// MustFloat is like Float but panics on a kind mismatch.
func (f Field) MustFloat() null.Float {
	v, err := f.Float()
	if err != nil {
		panic(err)
	}
	return v
}

// Results is the resolved field list returned by Menu.Display, in the order
// the fields were given.
type Results []Field

// Get finds a field by label.
func (r Results) Get(label string) (Field, bool) {
	for _, f := range r {
		if f.Label == label {
			return f, true
		}
	}
	return Field{}, false
}

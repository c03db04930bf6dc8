package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// intValue is a pflag.Value that runs a validator on the raw flag text, so a
// bad value is rejected while the arguments are parsed.
type intValue struct {
	value int
	parse func(string) (int, error)
	typ   string
}

var _ pflag.Value = (*intValue)(nil)

func newIntValue(typ string, parse func(string) (int, error)) *intValue {
	return &intValue{parse: parse, typ: typ}
}

func (v *intValue) String() string {
	if v.value == 0 {
		return ""
	}
	return strconv.Itoa(v.value)
}

func (v *intValue) Set(s string) error {
	n, err := v.parse(s)
	if err != nil {
		return err
	}
	v.value = n
	return nil
}

func (v *intValue) Type() string { return v.typ }

// choiceValue is a pflag.Value restricted to a fixed set of strings.
type choiceValue struct {
	value   string
	choices []string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoiceValue(choices ...string) *choiceValue {
	return &choiceValue{choices: choices}
}

func (v *choiceValue) String() string { return v.value }

func (v *choiceValue) Set(s string) error {
	if !slices.Contains(v.choices, s) {
		return fmt.Errorf("invalid choice %q (choose from %s)", s, strings.Join(v.choices, ", "))
	}
	v.value = s
	return nil
}

func (v *choiceValue) Type() string { return "{" + strings.Join(v.choices, ",") + "}" }

// yesNo maps "yes" and "no" to a boolean. An unset flag reports ok=false.
func (v *choiceValue) yesNo() (value, ok bool) {
	switch v.value {
	case "yes":
		return true, true
	case "no":
		return false, true
	}
	return false, false
}

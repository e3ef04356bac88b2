package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue  = "true"
	toggleFalseCanonicalValue = "false"
	toggleUnsetValue          = ""
	toggleParseErrorTemplate  = "invalid toggle value %q"
	toggleUsagePlaceholder    = "<yes|no>"
	toggleValueType           = "toggle"
)

var toggleLiterals = map[string]bool{
	"true":  true,
	"yes":   true,
	"on":    true,
	"1":     true,
	"t":     true,
	"y":     true,
	"false": false,
	"no":    false,
	"off":   false,
	"0":     false,
	"f":     false,
	"n":     false,
}

// Toggle is a yes/no flag that remembers whether it was supplied at all.
type Toggle struct {
	value   bool
	present bool
}

// AddToggleFlag registers a toggle accepting yes/no style values. A bare
// --name means yes. Use --name=no to pass a negative value.
func AddToggleFlag(flagSet *pflag.FlagSet, name string, usage string) *Toggle {
	toggle := &Toggle{}
	if flagSet == nil || len(name) == 0 {
		return toggle
	}

	flagSet.Var(toggle, name, fmt.Sprintf(choiceUsageFullTemplate, toggleUsagePlaceholder, strings.TrimSpace(usage)))
	if registeredFlag := flagSet.Lookup(name); registeredFlag != nil {
		registeredFlag.NoOptDefVal = toggleTrueCanonicalValue
	}
	return toggle
}

// Value returns the parsed value and whether the flag was supplied.
func (toggle *Toggle) Value() (bool, bool) {
	if toggle == nil {
		return false, false
	}
	return toggle.value, toggle.present
}

// Set implements pflag.Value.
func (toggle *Toggle) Set(rawValue string) error {
	trimmedValue := strings.ToLower(strings.TrimSpace(rawValue))
	if len(trimmedValue) == 0 {
		trimmedValue = toggleTrueCanonicalValue
	}
	parsedValue, recognized := toggleLiterals[trimmedValue]
	if !recognized {
		return fmt.Errorf(toggleParseErrorTemplate, rawValue)
	}
	toggle.value = parsedValue
	toggle.present = true
	return nil
}

// String implements pflag.Value.
func (toggle *Toggle) String() string {
	switch {
	case toggle == nil || !toggle.present:
		return toggleUnsetValue
	case toggle.value:
		return toggleTrueCanonicalValue
	default:
		return toggleFalseCanonicalValue
	}
}

// Type implements pflag.Value.
func (toggle *Toggle) Type() string {
	return toggleValueType
}

package flags

import "github.com/spf13/pflag"

// OptionalStringFlagDefinition describes a string flag whose absence differs from an empty value.
type OptionalStringFlagDefinition struct {
	Name  string
	Usage string
}

// OptionalStrings reads string flags and reports which of them were supplied.
type OptionalStrings struct {
	flagSet *pflag.FlagSet
	values  map[string]*string
}

// BindOptionalStringFlags attaches one string flag per definition to flagSet.
func BindOptionalStringFlags(flagSet *pflag.FlagSet, definitions ...OptionalStringFlagDefinition) *OptionalStrings {
	optionalStrings := &OptionalStrings{flagSet: flagSet, values: make(map[string]*string, len(definitions))}
	if flagSet == nil {
		return optionalStrings
	}
	for _, definition := range definitions {
		if len(definition.Name) == 0 || flagSet.Lookup(definition.Name) != nil {
			continue
		}
		value := new(string)
		flagSet.StringVar(value, definition.Name, "", definition.Usage)
		optionalStrings.values[definition.Name] = value
	}
	return optionalStrings
}

// Value returns the flag value and whether the flag was supplied, even as an empty string.
func (optionalStrings *OptionalStrings) Value(flagName string) (string, bool) {
	if optionalStrings == nil || optionalStrings.flagSet == nil {
		return "", false
	}
	value, bound := optionalStrings.values[flagName]
	if !bound || !optionalStrings.flagSet.Changed(flagName) {
		return "", false
	}
	return *value, true
}

// Supplied reports whether any bound flag was supplied.
func (optionalStrings *OptionalStrings) Supplied() bool {
	if optionalStrings == nil {
		return false
	}
	for flagName := range optionalStrings.values {
		if _, supplied := optionalStrings.Value(flagName); supplied {
			return true
		}
	}
	return false
}

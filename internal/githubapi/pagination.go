package githubapi

import "strings"

const (
	linkEntrySeparatorConstant     = ","
	linkParameterSeparatorConstant = ";"
	linkTargetPrefixConstant       = "<"
	linkTargetSuffixConstant       = ">"
	linkRelationParameterConstant  = "rel="
	linkRelationNextConstant       = "next"
	linkRelationQuoteConstant      = "\""
)

// parseNextLink extracts the rel="next" target from an RFC 8288 Link header.
func parseNextLink(linkHeader string) string {
	for _, linkEntry := range strings.Split(linkHeader, linkEntrySeparatorConstant) {
		entryParts := strings.Split(linkEntry, linkParameterSeparatorConstant)
		if len(entryParts) < 2 {
			continue
		}

		target := strings.TrimSpace(entryParts[0])
		if !strings.HasPrefix(target, linkTargetPrefixConstant) || !strings.HasSuffix(target, linkTargetSuffixConstant) {
			continue
		}
		target = strings.TrimSuffix(strings.TrimPrefix(target, linkTargetPrefixConstant), linkTargetSuffixConstant)

		for _, parameter := range entryParts[1:] {
			trimmedParameter := strings.TrimSpace(parameter)
			if !strings.HasPrefix(trimmedParameter, linkRelationParameterConstant) {
				continue
			}
			relations := strings.Trim(strings.TrimPrefix(trimmedParameter, linkRelationParameterConstant), linkRelationQuoteConstant)
			for _, relation := range strings.Fields(relations) {
				if strings.EqualFold(relation, linkRelationNextConstant) {
					return target
				}
			}
		}
	}
	return ""
}

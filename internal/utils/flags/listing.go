package flags

import "github.com/spf13/pflag"

const (
	// PerPageFlagName exposes the shared page size flag name.
	PerPageFlagName = "per-page"
	// PerPageFlagUsage describes the shared page size flag purpose.
	PerPageFlagUsage = "Items requested per page (1-100)"
	// PageFlagName exposes the shared starting page flag name.
	PageFlagName = "page"
	// PageFlagUsage describes the shared page selection flag purpose.
	PageFlagUsage = "Fetch only this page of results instead of every page"
)

// ListFlagValues reads the pagination flags bound to a flag set.
type ListFlagValues struct {
	flagSet *pflag.FlagSet
	perPage int
	page    int
}

// BindListFlags attaches the pagination flags to flagSet.
func BindListFlags(flagSet *pflag.FlagSet) *ListFlagValues {
	values := &ListFlagValues{flagSet: flagSet}
	if flagSet == nil {
		return values
	}
	if flagSet.Lookup(PerPageFlagName) == nil {
		flagSet.IntVar(&values.perPage, PerPageFlagName, 0, PerPageFlagUsage)
	}
	if flagSet.Lookup(PageFlagName) == nil {
		flagSet.IntVar(&values.page, PageFlagName, 0, PageFlagUsage)
	}
	return values
}

// PerPage returns the page size and whether it was supplied.
func (values *ListFlagValues) PerPage() (int, bool) {
	return values.read(PerPageFlagName, values.perPage)
}

// Page returns the starting page and whether it was supplied.
func (values *ListFlagValues) Page() (int, bool) {
	return values.read(PageFlagName, values.page)
}

func (values *ListFlagValues) read(flagName string, value int) (int, bool) {
	if values == nil || values.flagSet == nil || !values.flagSet.Changed(flagName) {
		return 0, false
	}
	return value, true
}

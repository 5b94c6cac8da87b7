package resource

const (
	flagCursor      = "cursor"
	flagCursorUsage = "resume listing from a pagination cursor"

	flagLimit      = "limit"
	flagLimitUsage = "number of results per page"

	flagAll      = "all"
	flagAllUsage = "fetch every page and combine the results"
)

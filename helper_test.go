package stocks

// USD is a helper for tests to create money from a const.
func USD(v float64) Money { return M(v) }

// day is a helper for tests to create a date from its ISO form.
func day(s string) Date { return MustParseDate(s) }

package bulkparse

import (
	"strconv"
	"strings"

	"dinnerpoll/store"
)

// Parse splits bulk roster text into (emp_id, name) pairs. Entries are
// separated by newlines or commas, each in the form "ID:Name". Malformed
// entries are reported individually and never abort the rest:
//
//	1001:John Doe
//	1002:Jane Smith
//
// and "1001:John Doe, 1002:Jane Smith" parse identically.
func Parse(input string) (entries []store.Participant, errs []string) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == '\n' || r == ','
	})

	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		idPart, namePart, found := strings.Cut(field, ":")
		if !found {
			errs = append(errs, field+" (missing ':' separator)")
			continue
		}

		empID, err := strconv.Atoi(strings.TrimSpace(idPart))
		if err != nil {
			errs = append(errs, field+" (invalid format)")
			continue
		}

		name := strings.TrimSpace(namePart)
		if name == "" {
			errs = append(errs, field+" (empty name)")
			continue
		}

		entries = append(entries, store.Participant{EmpID: empID, Name: name})
	}

	return entries, errs
}

/*
Package bulkparse validates bulk roster import text.

Each entry is "ID:Name"; entries are separated by newlines or commas, so
both of the formats admins actually paste work:

	1001:John Doe
	1002:Jane Smith

	1001:John Doe, 1002:Jane Smith

Malformed entries (missing separator, non-numeric id, empty name) are
reported per entry with the offending text, and parsing continues. The
valid pairs are fed to the roster store's bulk add.
*/
package bulkparse

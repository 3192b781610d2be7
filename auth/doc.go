/*
Package auth provides admin authentication: credential checking and
session tokens.

# Credential Check

The admin password is a single shared secret stored in the settings row.
Comparison is constant-time:

	err := auth.CheckPassword(supplied, stored)

# Session Tokens

A successful login issues a signed HS256 JWT so the password isn't resent
on every admin action:

	token, err := auth.IssueToken(secret, now, 12*time.Hour)
	err = auth.VerifyToken(secret, token)

Tokens carry only the "admin" subject and an expiry; there are no
per-user identities beyond the one shared credential.
*/
package auth

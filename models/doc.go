/*
Package models defines request and response types for the API.

Domain rows (Participant, StatusRow, the report views) live with the
packages that produce them; this package only shapes the JSON envelope
around them. Expected failures are returned as ErrorResponse with an
HTTP status, never as 500s.
*/
package models

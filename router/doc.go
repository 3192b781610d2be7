/*
Package router defines the route table using Go 1.22+ method routing.

Public routes (status, submit, self reset, roster listing) are wrapped
with request logging only; admin routes additionally require a Bearer
session token from POST /api/admin/login.
*/
package router

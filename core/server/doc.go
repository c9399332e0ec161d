// Package server holds the HTTP server configuration.
//
// Besides the listen port it carries the timezone that session ids and
// scan timestamps are expressed in.
package server

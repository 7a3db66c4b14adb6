// Package delimited reads and writes delimiter-separated tables (TSV/CSV).
//
// Readers keep every cell as text; coercion happens in core services.
package delimited

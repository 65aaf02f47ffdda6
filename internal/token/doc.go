// Package token defines the token vocabulary shared by the JavaScript and
// Java lexers. Both languages draw from one C-family Kind space; which
// identifiers are keywords is decided per dialect by LookupKeyword.
package token

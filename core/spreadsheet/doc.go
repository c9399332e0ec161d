// Package spreadsheet reads asset registers from xlsx or csv files and
// writes session reports as xlsx workbooks.
//
// Every exported text cell is sanitized: values starting with =, +, - or @
// are prefixed with a single quote so spreadsheet applications treat them
// as text instead of formulas.
package spreadsheet

// Package utils provides common utility functions for the stock-check application.
// It includes helpers for converting loosely typed spreadsheet and JSON cells,
// and for deriving lookup keys from identifiers that may have been stored as numbers.
package utils

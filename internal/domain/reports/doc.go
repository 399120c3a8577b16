// Package reports contains the generated weekly report entity and the
// contracts for building, storing and emailing report workbooks.
package reports

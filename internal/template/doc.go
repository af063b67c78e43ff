// Package template owns the canonical decision-record template and the file
// it is written to inside the records directory.
package template

// Package record creates and enumerates numbered decision records. Each record
// is a folder and a markdown file sharing the name <NNNN>-<slug>, where NNNN is
// one greater than the highest number already present in the records
// directory. New records are rendered from the template kept by package
// template, with placeholders resolved by package placeholder.
package record

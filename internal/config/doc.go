// Package config manages project settings stored in .decisions.yaml at the
// project root, overridable through DECISIONS_* environment variables. The
// file is checked against an embedded JSON Schema before it is used, and an
// optional require_version key pins the range of tool versions allowed to
// operate on the project.
package config

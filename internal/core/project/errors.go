// Package project holds the project configuration collected by the wizard:
// the free-text project metadata and the catalog ids chosen for build system,
// packaging, Java version, Spring Boot version and dependencies.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrIncomplete indicates a required field was left empty when finalizing.
	ErrIncomplete = errors.New("project: configuration incomplete")

	// ErrUnknownID indicates a selected id is not declared by the catalog.
	ErrUnknownID = errors.New("project: id not declared by catalog")
)

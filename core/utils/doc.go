// Package utils provides common utility functions for the thermodb
// application. It includes unit conversion helpers and lenient numeric
// parsing shared across domain packages.
package utils

// Package version defines the version of ts-status-helper.
package version

// Version of ts-status-helper.
const Version = "0.1.0"

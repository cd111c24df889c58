// Package file provides a DataSource which reads lines from a file on disk
package file

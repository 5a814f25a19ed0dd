// Package connectors provides implementations of the DocumentSource
// interface. Each connector knows how to fetch documents from a
// specific source type.
package connectors

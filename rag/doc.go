// Package rag composes the course store, tools, session tracking and the
// round engine into a single question-answering system.
package rag

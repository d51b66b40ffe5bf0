// Package session provides in-memory conversation tracking.
//
// Model:
//   - Only text messages are stored (role + text). Tool blocks are transient.
//   - Each session keeps the newest messages up to a cap; the rendered
//     history feeds the next query's system content.
package session

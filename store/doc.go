// Package store models indexed course material and provides the search
// surface the course tools consume.
//
// Includes:
//   - Course / Lesson / Chunk: the indexed data model.
//   - MemoryStore: keyword search with fuzzy course-name resolution and a
//     per-search hit cap.
package store

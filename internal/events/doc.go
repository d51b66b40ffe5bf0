// Package events provides lightweight JSONL observability for query runs.
//
// Emission is opt-in via RAGCHAT_OBSERVE_JSON=1 and appends to
// .ragchat/events.jsonl in the working directory. A query ID can be carried
// in context so round and tool events from one run correlate.
package events

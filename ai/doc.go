// Package ai defines the interfaces for language-model services used to
// summarize search results into field-ready answers.
//
// The interfaces are intentionally narrow so implementations can be
// swapped: the openai subpackage talks to any OpenAI-compatible chat API,
// and the mock subpackage provides deterministic implementations for
// testing. Answer generation is an optional layer on top of retrieval;
// search works without a provider.
package ai

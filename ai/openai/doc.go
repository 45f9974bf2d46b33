// Package openai implements the ai interfaces against any
// OpenAI-compatible chat completion API.
package openai

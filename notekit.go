// Package notekit provides a small notebook-support toolkit. It fetches web
// pages, extracts their text, counts tokens, summarizes content and
// provisions locally cached GGUF models from the Hugging Face hub.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package notekit

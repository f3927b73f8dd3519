// Package pointer implements JSON Pointer (RFC 6901) path algebra that is
// independent of the tree being addressed.
//
// A Token is one path segment and keeps both its raw (decoded) and cooked
// (escaped) text. A Resolver binds a Token to a one-level lookup for a given
// tree shape T, and a Tree is an immutable sequence of resolvers that can be
// folded over a root node:
//
//	tokens, err := pointer.ParseTokens("/a~1b/0")
//	// tokens[0].Raw() == "a/b", tokens[1].Raw() == "0"
//
// Concrete tree shapes live in their own packages (jsonptr, yamlptr) and only
// need to implement Resolver.
package pointer

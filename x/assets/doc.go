/*
Package assets keeps a registry of non-fungible tokens.

Every token lives in a collection and is identified inside that
collection by an opaque asset id. A token records its current owner
and at most one approved address. The approved address is allowed to
move the token on behalf of the owner, which is how escrow style
extensions gain custody without taking ownership.

Other extensions should interact with tokens through the Registry
interface rather than touching the bucket directly.
*/
package assets

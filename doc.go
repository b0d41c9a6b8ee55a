/*
Package mart defines the common interfaces that tie the marketplace
modules together: transactions and messages, handlers, the key-value
store with transactional cache-wraps, addresses and conditions, and
the check/deliver result types.

We pass context through context.Context between the application,
middleware, and handlers. For every value XYZ of type T stored in the
context there are two functions:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)
*/
package mart

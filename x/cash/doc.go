/*
Package cash defines a simple implementation of sending coins
between multi-signature wallets.

There is no logic in the coins, just controlled
by permissions, so all the business logic in the
handler is responsible for maintaining all invariants.

There is a Controller interface exposed to manipulate wallets
from other extensions. Sending between accounts requires
proper authentication, while escrow-style extensions may move
coins held by their module accounts directly.
*/
package cash

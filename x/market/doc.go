/*
Package market implements an escrow based marketplace for
non-fungible tokens.

A seller lists an asset with a minimum bid. Buyers outbid each other
with payments that are held in a per listing escrow account. Losing
bidders are refunded the moment they are outbid, so at any time the
escrow holds exactly the standing bid. When the seller accepts, the
standing bid is released to the seller and the asset moves to the
bidder in the same transaction.

The market moves assets through the assets.Registry as an approved
party, so sellers must approve the listing escrow account for their
token before the sale can settle.
*/
package market

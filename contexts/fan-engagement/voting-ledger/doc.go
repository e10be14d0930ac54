// Package votingledger implements the campaign voting ledger inside the
// fan-engagement context.
//
// The module owns campaign/contestant/voter record lifecycle, the atomic
// vote-casting protocol with checked fee-split arithmetic and token
// transfers, the per-campaign top-3 voter leaderboard, and treasury fee
// withdrawal. Business rules live in application/domain layers; storage and
// the token ledger sit behind ports and adapters.
package votingledger

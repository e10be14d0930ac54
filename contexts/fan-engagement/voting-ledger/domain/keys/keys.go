// Package keys derives the deterministic record and authority keys of the
// voting ledger. The same inputs always map to the same key, so records can
// be addressed without a central id allocator.
package keys

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

const (
	campaignNamespace   = "campaign"
	contestantNamespace = "contestant"
	voterNamespace      = "voter"
	treasuryNamespace   = "treasury"
)

// Campaign derives the record key for a campaign title. Two campaigns with
// the same title collide by design; creation treats that as a duplicate.
func Campaign(title string) string {
	return derive(campaignNamespace, strings.TrimSpace(title))
}

// Contestant derives the record key for a contestant inside a campaign.
func Contestant(campaignKey string, contestantID uint32) string {
	return derive(contestantNamespace, campaignKey, strconv.FormatUint(uint64(contestantID), 10))
}

// Voter derives the record key for one principal's contribution record in a
// campaign.
func Voter(campaignKey string, principal string) string {
	return derive(voterNamespace, campaignKey, strings.TrimSpace(principal))
}

// TreasuryAuthority is the program-wide key that authorizes transfers out of
// the treasury sink. It is derived from a fixed namespace and held by no
// human signer.
func TreasuryAuthority() string {
	return derive(treasuryNamespace, "authority")
}

// TreasurySink is the token account that accumulates platform fees.
func TreasurySink() string {
	return derive(treasuryNamespace, "sink")
}

func derive(namespace string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(namespace))
	for _, part := range parts {
		h.Write([]byte{0})
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

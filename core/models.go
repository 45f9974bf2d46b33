package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Tier is a user's subscription level. It determines the daily query
// quota and the per-response result ceiling.
type Tier int

const (
	// TierFree is the default tier for new users.
	TierFree Tier = iota + 1
	// TierPro is the paid individual tier.
	TierPro
	// TierEnterprise is the agency-wide tier.
	TierEnterprise
)

// ParseTier maps a stored tier name to a Tier. Unknown names fall back
// to TierFree.
func ParseTier(name string) Tier {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pro":
		return TierPro
	case "enterprise":
		return TierEnterprise
	default:
		return TierFree
	}
}

// String returns the stored name of the tier.
func (t Tier) String() string {
	switch t {
	case TierPro:
		return "pro"
	case TierEnterprise:
		return "enterprise"
	default:
		return "free"
	}
}

// DailyQueryLimit returns the number of searches the tier may run per
// calendar day.
func (t Tier) DailyQueryLimit() DailyLimit {
	switch t {
	case TierPro:
		return FiniteLimit(200)
	case TierEnterprise:
		return Unlimited()
	default:
		return FiniteLimit(10)
	}
}

// MaxResults returns the per-response result ceiling for the tier.
func (t Tier) MaxResults() int {
	switch t {
	case TierPro:
		return 25
	case TierEnterprise:
		return 50
	default:
		return 5
	}
}

// DailyLimit is a daily query ceiling: either a finite count or unlimited.
// Unlimited is an explicit variant rather than a numeric sentinel so that
// comparison and serialization never depend on infinity behavior.
type DailyLimit struct {
	n         int
	unlimited bool
}

// FiniteLimit returns a limit of n queries per day.
func FiniteLimit(n int) DailyLimit {
	return DailyLimit{n: n}
}

// Unlimited returns a limit that admits every query.
func Unlimited() DailyLimit {
	return DailyLimit{unlimited: true}
}

// IsUnlimited reports whether the limit admits every query.
func (l DailyLimit) IsUnlimited() bool {
	return l.unlimited
}

// Allows reports whether a counter value is within the limit.
func (l DailyLimit) Allows(count int64) bool {
	return l.unlimited || count <= int64(l.n)
}

// Value returns the finite ceiling. The second return is false for
// unlimited limits.
func (l DailyLimit) Value() (int, bool) {
	return l.n, !l.unlimited
}

// Agency is a registry store entry: one organization publishing operating
// procedures for a region. Agency ids live in the registry id-space and are
// never reused after deletion.
type Agency struct {
	Id         ID
	Name       string
	RegionCode string // 2-letter region code
	RegionName string
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// OrgDescriptor describes an organization as known to the content store.
// OrgId is the content-store id-space, which is independent of Agency ids;
// the resolver joins the two by normalized name matching.
type OrgDescriptor struct {
	OrgId      ID
	Name       string
	RegionCode string
}

// ProtocolChunk is one searchable section of an operating procedure in the
// content store. Chunks are immutable once published; re-ingestion produces
// new rows.
type ProtocolChunk struct {
	Id             ID
	OrgId          ID // content-store org id, NOT an Agency id
	DocumentNumber string
	Title          string
	Section        string // optional
	Body           string
	Vector         []float32 // optional embedding, opaque to this module
	RegionCode     string
	InsertedAt     time.Time
}

// RankedDocument is a scored search hit returned to callers.
type RankedDocument struct {
	Id             ID
	OrgId          ID
	AgencyName     string
	RegionCode     string
	DocumentNumber string
	Title          string
	Section        string
	Preview        string
	Body           string
	Score          float64
}

// ResultSet is a ranked result page plus the metadata needed to serve it
// from cache.
type ResultSet struct {
	Results         []RankedDocument
	TotalFound      int64
	NormalizedQuery string
}

// User is a registry store account row. QueryCountToday and LastQueryDate
// back the usage limiter; the counter resets lazily when LastQueryDate
// falls behind the current date.
type User struct {
	Id               ID
	OpenId           string
	Name             string
	Email            string
	Tier             Tier
	QueryCountToday  int64
	LastQueryDate    string // "2006-01-02", empty before first query
	SelectedAgencyId ID     // 0 when no agency is selected
	InsertedAt       time.Time
	UpdatedAt        time.Time
}

// ImportCheckpoint records import pipeline progress so interrupted imports
// can resume.
type ImportCheckpoint struct {
	Source      string
	ChunksDone  int64
	CompletedAt time.Time
}

// PreviewLength is the number of body bytes included in a result preview.
const PreviewLength = 200

// Preview returns a truncated body preview, cut at a rune boundary.
func Preview(body string) string {
	if len(body) <= PreviewLength {
		return body
	}
	cut := PreviewLength
	for cut > 0 && !isRuneStart(body[cut]) {
		cut--
	}
	return body[:cut] + "…"
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

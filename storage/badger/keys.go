package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/resqnet/protosearch/core"
)

// Key prefixes for different data types
const (
	agencyRecordPrefix   = "agyrec"
	agencyIDSeq          = "agyrecseq"
	userRecordPrefix     = "usrrec"
	userOpenIdPrefix     = "usropn"
	userIDSeq            = "usrrecseq"
	orgRecordPrefix      = "orgrec"
	chunkRecordPrefix    = "chkrec"
	chunkOrgPrefix       = "chkreco"
	chunkRegionPrefix    = "chkrecr"
	chunkIDSeq           = "chkrecseq"
	cacheEntryPrefix     = "cacent"
	checkpointKeyPrefix  = "impchk"
)

// makeAgencyKey generates a key for an agency by ID.
func makeAgencyKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", agencyRecordPrefix, id))
}

// makeUserKey generates a key for a user by ID.
func makeUserKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", userRecordPrefix, id))
}

// makeUserOpenIdKey generates an index key for user lookup by open id.
func makeUserOpenIdKey(openId string) []byte {
	return []byte(fmt.Sprintf("%s:%s", userOpenIdPrefix, openId))
}

// makeOrgKey generates a key for an org descriptor by content-store org id.
func makeOrgKey(orgId core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", orgRecordPrefix, orgId))
}

// makeChunkKey generates a key for a protocol chunk by ID.
// The ID is written in BigEndian order so lexicographic iteration visits
// chunks in insertion order (sequence IDs are monotonic).
func makeChunkKey(id core.ID) []byte {
	prefix := chunkRecordPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeChunkOrgKey generates a composite key for the org index.
// Format: prefix:orgID:chunkID
func makeChunkOrgKey(orgId, chunkId core.ID) []byte {
	prefix := chunkOrgPrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(orgId))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(chunkId))
	return buf
}

// makePartialChunkOrgKey generates a partial key for org index scans.
// Format: prefix:orgID
func makePartialChunkOrgKey(orgId core.ID) []byte {
	prefix := chunkOrgPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(orgId))
	return buf
}

// makeChunkRegionKey generates a composite key for the region index.
// Format: prefix:regionCode:chunkID
func makeChunkRegionKey(regionCode string, chunkId core.ID) []byte {
	prefix := chunkRegionPrefix + ":" + regionCode + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(chunkId))
	return buf
}

// makePartialChunkRegionKey generates a partial key for region index scans.
func makePartialChunkRegionKey(regionCode string) []byte {
	return []byte(chunkRegionPrefix + ":" + regionCode + ":")
}

// chunkIdFromIndexKey extracts the chunk ID from the tail of an index key.
// All chunk index keys end with the 8-byte BigEndian chunk ID.
func chunkIdFromIndexKey(key []byte) core.ID {
	return core.ID(binary.BigEndian.Uint64(key[len(key)-8:]))
}

// makeCacheKey generates a key for a cache entry by caller-derived string key.
func makeCacheKey(key string) []byte {
	return []byte(fmt.Sprintf("%s:%s", cacheEntryPrefix, key))
}

// makeCheckpointKey generates a key for import checkpoints.
func makeCheckpointKey(source string) []byte {
	return []byte(fmt.Sprintf("%s:%s", checkpointKeyPrefix, source))
}

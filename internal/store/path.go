package store

import "path"

// Logical top-level directories every [Backend] is organized under. These
// are slash-separated logical paths, not necessarily filesystem paths — the
// SQLite backend treats them as an opaque key prefix.
const (
	channelsDir = "channels"
	blocksDir   = "blocks"
)

// ChannelDir returns the directory holding every event for the volume whose
// id (hex-encoded public key) is volumeID.
func ChannelDir(volumeID string) string {
	return path.Join(channelsDir, volumeID)
}

// EventPath returns the path at which the signed event eventID of volume
// volumeID is stored.
func EventPath(volumeID, eventID string) string {
	return path.Join(ChannelDir(volumeID), eventID+".json")
}

// BlockPath returns the path at which the encrypted blob content-addressed
// by hash (a lowercase hex SHA-256 digest) is stored. This layout is part
// of the external contract: two clients sharing only the secret must agree
// on where a given hash lives without ever communicating out of band, so
// the path is a flat function of hash alone — no sharding prefix.
func BlockPath(hash string) string {
	return path.Join(blocksDir, hash+".bin")
}

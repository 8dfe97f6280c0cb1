package domain

import "time"

// CommitInfo is one entry of a panel's revision history.
type CommitInfo struct {
	Hash    string
	Author  string
	When    time.Time
	Subject string
}

// ShortHash returns the abbreviated commit hash used in changelog output.
func (c CommitInfo) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// internal/daily/daily.go
//
// Deterministic puzzle of the day.
//
// Responsibilities:
//   - Map a calendar date (UTC) to a stable key "YYYY-MM-DD".
//   - Map (date, salt) to an index into a solution pool via HMAC-SHA256,
//     so every player gets the same word without shared state.
//
// Notes:
//   - Changing the salt reshuffles every day; changing the pool size
//     reshuffles too. Both are configuration, not code.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordsmith/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns HMAC(salt, DateKey(date)) mod poolSize.
func WordIndex(date time.Time, salt string, poolSize int) int {
	if poolSize <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes are plenty for an even spread over a few thousand words
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(poolSize))
}

// Solution returns the day's word from wl's solution pool.
func Solution(wl *words.WordList, date time.Time, salt string) words.Word {
	sols := wl.Solutions()
	return sols[WordIndex(date, salt, len(sols))]
}

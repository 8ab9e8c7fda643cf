package repository

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPageNum = 10
	PageMaxNum     = 50

	cursorTimeFormat = time.RFC3339Nano
)

var errMalformedCursor = errors.New("malformed cursor")

// EncodeCursor packs the sort key of the last row of a page.
func EncodeCursor(t time.Time, id int64) string {
	raw := t.UTC().Format(cursorTimeFormat) + "," + strconv.FormatInt(id, 10)
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor reverses EncodeCursor.
func DecodeCursor(encoded string) (time.Time, int64, error) {
	byt, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return time.Time{}, 0, err
	}

	ts, idStr, ok := strings.Cut(string(byt), ",")
	if !ok {
		return time.Time{}, 0, errMalformedCursor
	}
	t, err := time.Parse(cursorTimeFormat, ts)
	if err != nil {
		return time.Time{}, 0, err
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return time.Time{}, 0, err
	}
	return t, id, nil
}

// PageVerify clamps num into [1, PageMaxNum], falling back to DefaultPageNum.
func PageVerify(num *int64) {
	if *num <= 0 || *num > PageMaxNum {
		*num = DefaultPageNum
	}
}

// NextCursor returns the cursor for the page after one of size got, or "" when it was the last.
func NextCursor(got int, num int64, lastCreatedAt time.Time, lastID int64) string {
	if got == 0 || int64(got) < num {
		return ""
	}
	return EncodeCursor(lastCreatedAt, lastID)
}

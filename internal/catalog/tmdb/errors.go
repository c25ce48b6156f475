// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package tmdb

import (
	"errors"
	"fmt"
)

// MissError means TMDB does not know the requested resource. The importer
// treats a miss differently from an outage: a missing person is skipped, a
// missing movie aborts the import.
type MissError struct {
	Resource string
	TMDBID   int64
}

func (e *MissError) Error() string {
	return fmt.Sprintf("tmdb: %s %d not found", e.Resource, e.TMDBID)
}

// UpstreamError means TMDB could not be reached or misbehaved.
type UpstreamError struct {
	Operation string
	Cause     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("tmdb: %s failed: %v", e.Operation, e.Cause)
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

// IsMiss reports whether err is a TMDB miss.
func IsMiss(err error) bool {
	var miss *MissError
	return errors.As(err, &miss)
}

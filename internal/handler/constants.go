package handler

import "time"

// TimeFormat is the timestamp format for post and user payloads (RFC3339).
const TimeFormat = time.RFC3339

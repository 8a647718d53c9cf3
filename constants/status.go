package constants

// JobStatus is the canonical status for rows in print_metadata.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // metadata extracted and stored
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)

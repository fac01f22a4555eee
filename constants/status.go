package constants

// JobStatus is the canonical status for rows in ingest_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "PENDING"     // registered, waiting for a worker
	JobStatusInProgress JobStatus = "IN_PROGRESS" // claimed by exactly one worker
	JobStatusDone       JobStatus = "DONE"        // terminal success, chunks persisted
	JobStatusError      JobStatus = "ERROR"       // terminal failure, cause recorded
)

// JobStatuses lists the stable values, for schema validation.
func JobStatuses() []string {
	return []string{
		string(JobStatusPending),
		string(JobStatusInProgress),
		string(JobStatusDone),
		string(JobStatusError),
	}
}

// Stage names the pipeline step a failed job died in. Stored next to the
// error message on ERROR rows.
type Stage string

const (
	StageFetch   Stage = "FETCH"
	StageExtract Stage = "EXTRACT"
	StageChunk   Stage = "CHUNK"
	StageEmbed   Stage = "EMBED"
	StagePersist Stage = "PERSIST"
)

// Stages lists the stable values, for schema validation.
func Stages() []string {
	return []string{
		string(StageFetch),
		string(StageExtract),
		string(StageChunk),
		string(StageEmbed),
		string(StagePersist),
	}
}

package entity

// Group names a set of workers for selection shortcuts and certificates.
type Group struct {
	Name      string `json:"name"`
	WorkerIDs []ID   `json:"workerIds"`
}

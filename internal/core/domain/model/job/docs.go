// Package job implements the Job aggregate: the dispatch system's record of a
// single transport task. It owns the job status state machine, the ordered
// stop list, and the vehicle/driver assignment fields.
//
// The aggregate holds only the job's own state. Remote vehicle and driver
// state lives in the registries; the orchestration layer is responsible for
// keeping the registries consistent with the assignments recorded here.
package job

// Package procdup duplicates the running process.
//
// Go cannot fork without exec, so a duplicate is produced by re-executing the
// current binary with the same arguments, stdio and environment, plus a marker
// variable. The re-executed program runs up to the same Duplicate call, sees
// the marker and receives a Child result. The original receives Parent with the
// new pid. If the OS refuses to start the process, the caller receives Failed
// and no second process exists.
//
// Code before the duplication point runs twice, once in each process, so it
// must be deterministic and free of external side effects.
package procdup

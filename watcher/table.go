package watcher

// Entry is a process in the operating system's process table.
type Entry struct {
	PID  int
	Name string
}

// Table provides access to the operating system's process table.
type Table interface {
	// All returns every process currently running.
	All() ([]Entry, error)

	// Lookup returns the executable name of the process with the given ID and
	// whether it is still alive. An error means the process could not be
	// queried, for instance because it has exited or access was denied.
	Lookup(pid int) (name string, alive bool, err error)
}

package engine

// Container is the summary the engine reports when listing containers.
type Container struct {
	ID     string
	Names  []string
	State  string // e.g. "running", "exited"
	Labels map[string]string
}

// Detail is the subset of an inspect response the classifier reads. Every level is optional.
type Detail struct {
	State *State
}

type State struct {
	Status string
	Health *Health
}

type Health struct {
	Status string
}

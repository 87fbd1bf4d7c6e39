package domain

// BackdropSelection is the outcome of the backdrop heuristic: an opaque
// backdrop reference plus the detected vibe label.
// swagger:model BackdropSelection
type BackdropSelection struct {
	Backdrop string `json:"backdrop"`
	Vibe     string `json:"vibe"`
}

// BackdropSelector picks a backdrop reference from event text. It is a pure
// function from text to one of a fixed small set of categories; the core
// stores only the opaque Backdrop value and never interprets it.
type BackdropSelector interface {
	Select(title, description, location string) BackdropSelection
}

package model

// Session is what a resumable build stores: the step and the chosen
// components. Prices and delivery are always recomputed on resume.
type Session struct {
	Step      int
	Selection Selection
}

package tui

import "github.com/dmitrijs2005/contentdesk/internal/client/models"

// Every data message carries the navigation epoch it was issued under.
// Update drops messages from an older epoch so a response can never land in
// a view the user has already left.

type errMsg struct {
	epoch int
	err   error
}

type loginDoneMsg struct {
	epoch int
	token string
}

type signupDoneMsg struct {
	epoch int
}

type ownLoadedMsg struct {
	epoch   int
	records []models.ContentRecord
}

type allLoadedMsg struct {
	epoch   int
	records []models.ContentRecord
}

type recentLoadedMsg struct {
	epoch   int
	records []models.ContentRecord
}

type statsLoadedMsg struct {
	epoch int
	stats models.AggregateStats
}

type queueLoadedMsg struct {
	epoch   int
	records []models.ContentRecord
}

type submitDoneMsg struct {
	epoch  int
	record models.ContentRecord
}

type transitionDoneMsg struct {
	epoch int
}

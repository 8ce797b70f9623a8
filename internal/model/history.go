package model

import "time"

// HistoryVideo is a watched video plus the timestamp of that particular
// watch. The same video appears once per watch event.
type HistoryVideo struct {
	VideoResponse
	ViewedAt time.Time `json:"viewedAt"`
}

// HistoryPage is the paginated watch-history response. totalPages is always
// ceil(totalItems / limit) for the limit the page was served with.
type HistoryPage struct {
	History     []HistoryVideo `json:"history"`
	TotalItems  int            `json:"totalItems"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

package model

// StatsResponse is the aggregate platform statistics payload.
type StatsResponse struct {
	TotalVideos    int   `json:"totalVideos"`
	TotalUsers     int   `json:"totalUsers"`
	TotalChannels  int   `json:"totalChannels"`
	TotalPlaylists int   `json:"totalPlaylists"`
	TotalViews     int64 `json:"totalViews"`
	TotalLikes     int   `json:"totalLikes"`
	TotalDislikes  int   `json:"totalDislikes"`
}

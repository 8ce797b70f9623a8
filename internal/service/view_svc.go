package service

import (
	"context"
	"fmt"
	"log"

	"github.com/openreel/openreel-go/internal/repository"
	"github.com/openreel/openreel-go/pkg/hash"
)

// ViewService decides, per video fetch, whether the request is a first view
// (count it) or a repeat (don't), and appends the watch-history entry for
// identified viewers.
type ViewService struct {
	videos  *repository.VideoRepo
	history *repository.HistoryRepo
	marker  ViewMarker
	ipSalt  string
}

func NewViewService(videos *repository.VideoRepo, history *repository.HistoryRepo, marker ViewMarker, ipSalt string) *ViewService {
	return &ViewService{videos: videos, history: history, marker: marker, ipSalt: ipSalt}
}

// RecordView applies the view-accounting side effects for a fetch of videoID.
// userID is empty for anonymous viewers, in which case the client IP scopes
// the dedup key. The caller has already confirmed the video exists. Returns
// whether the view counter was incremented.
func (s *ViewService) RecordView(ctx context.Context, videoID, userID, ip string) (bool, error) {
	if userID == "" {
		return s.recordAnonymous(ctx, videoID, ip)
	}
	return s.recordIdentified(ctx, videoID, userID)
}

// recordIdentified counts at most one view per (video, user), durably. The
// history entry is appended on every fetch, repeat or not, and is best-effort:
// a failed append is logged but does not fail the fetch, since the counted
// view has already committed independently.
func (s *ViewService) recordIdentified(ctx context.Context, videoID, userID string) (bool, error) {
	counted, err := s.videos.CountIdentifiedView(ctx, videoID, userID)
	if err != nil {
		return false, err
	}

	if err := s.history.Append(ctx, userID, videoID); err != nil {
		log.Printf("view: history append failed for user %s: %v", hash.ShortHex(userID, 12), err)
	}
	return counted, nil
}

// recordAnonymous counts at most one view per (video, salted-IP) within the
// marker's TTL. Once the marker expires the same client counts again.
func (s *ViewService) recordAnonymous(ctx context.Context, videoID, ip string) (bool, error) {
	key := AnonViewKey(videoID, ip, s.ipSalt)

	first, err := s.marker.Mark(ctx, key)
	if err != nil {
		// A broken marker store must not break video playback; skip the
		// count rather than risk double-counting on retries.
		log.Printf("view: marker error for video %s: %v", videoID, err)
		return false, nil
	}
	if !first {
		return false, nil
	}

	if err := s.videos.IncrementViews(ctx, videoID); err != nil {
		return false, err
	}
	return true, nil
}

// AnonViewKey derives the dedup key for an anonymous viewer. The IP is
// salted and hashed so the raw address never reaches the marker store.
func AnonViewKey(videoID, ip, salt string) string {
	return fmt.Sprintf("view:%s:ip:%s", videoID, hash.HashIP(ip, salt))
}

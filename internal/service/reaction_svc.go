package service

import (
	"context"

	"github.com/openreel/openreel-go/internal/model"
	"github.com/openreel/openreel-go/internal/repository"
)

// Reaction states. The empty string means the user has no mark on the video.
const (
	ReactionNone    = ""
	ReactionLike    = repository.ReactionLike
	ReactionDislike = repository.ReactionDislike
)

// Transition computes the next reaction state for an action on the current
// state, plus the response message. The table:
//
//	like on liked       -> none     (toggle off)
//	like on disliked    -> liked    (switch)
//	like on none        -> liked
//
// and the mirror for dislike. After any transition the user is in at most one
// of the two sets.
func Transition(current, action string) (next, message string) {
	if current == action {
		if action == ReactionLike {
			return ReactionNone, "Like removed"
		}
		return ReactionNone, "Dislike removed"
	}
	switch {
	case action == ReactionLike && current == ReactionDislike:
		return ReactionLike, "Dislike removed and like added"
	case action == ReactionDislike && current == ReactionLike:
		return ReactionDislike, "Like removed and dislike added"
	case action == ReactionLike:
		return ReactionLike, "Video liked"
	default:
		return ReactionDislike, "Video disliked"
	}
}

type ReactionService struct {
	videos    *repository.VideoRepo
	reactions *repository.ReactionRepo
}

func NewReactionService(videos *repository.VideoRepo, reactions *repository.ReactionRepo) *ReactionService {
	return &ReactionService{videos: videos, reactions: reactions}
}

// Toggle applies one like/dislike transition and returns the resulting sets.
// The repository applies the transition under a row lock, so the prior state
// it reports is the one the transition actually acted on.
func (s *ReactionService) Toggle(ctx context.Context, videoID, userID, kind string) (*model.ReactionResponse, error) {
	// Existence check first: reacting to a missing video is 404, not a
	// silently ignored write.
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		return nil, err
	}

	prior, err := s.reactions.Apply(ctx, videoID, userID, kind)
	if err != nil {
		return nil, err
	}
	_, message := Transition(prior, kind)

	likes, dislikes, err := s.reactions.Sets(ctx, videoID)
	if err != nil {
		return nil, err
	}

	return &model.ReactionResponse{
		Message:  message,
		Likes:    likes,
		Dislikes: dislikes,
	}, nil
}

package service

import "testing"

func TestTransition(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		action      string
		wantNext    string
		wantMessage string
	}{
		{"like on none", ReactionNone, ReactionLike, ReactionLike, "Video liked"},
		{"like on liked toggles off", ReactionLike, ReactionLike, ReactionNone, "Like removed"},
		{"like on disliked switches", ReactionDislike, ReactionLike, ReactionLike, "Dislike removed and like added"},
		{"dislike on none", ReactionNone, ReactionDislike, ReactionDislike, "Video disliked"},
		{"dislike on disliked toggles off", ReactionDislike, ReactionDislike, ReactionNone, "Dislike removed"},
		{"dislike on liked switches", ReactionLike, ReactionDislike, ReactionDislike, "Like removed and dislike added"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, message := Transition(tt.current, tt.action)
			if next != tt.wantNext {
				t.Errorf("next = %q, want %q", next, tt.wantNext)
			}
			if message != tt.wantMessage {
				t.Errorf("message = %q, want %q", message, tt.wantMessage)
			}
		})
	}
}

func TestTransition_DoubleLikeEndsAtNone(t *testing.T) {
	state := ReactionNone
	state, _ = Transition(state, ReactionLike)
	state, _ = Transition(state, ReactionLike)
	if state != ReactionNone {
		t.Errorf("like twice from none = %q, want none", state)
	}
}

func TestTransition_LikeThenDislikeEndsAtDisliked(t *testing.T) {
	state := ReactionNone
	state, _ = Transition(state, ReactionLike)
	state, _ = Transition(state, ReactionDislike)
	if state != ReactionDislike {
		t.Errorf("like then dislike = %q, want dislike", state)
	}
}

func TestTransition_FullScenario(t *testing.T) {
	// like -> dislike -> dislike walks liked -> disliked -> none.
	state := ReactionNone

	state, msg := Transition(state, ReactionLike)
	if state != ReactionLike || msg != "Video liked" {
		t.Fatalf("step 1: state=%q msg=%q", state, msg)
	}

	state, msg = Transition(state, ReactionDislike)
	if state != ReactionDislike || msg != "Like removed and dislike added" {
		t.Fatalf("step 2: state=%q msg=%q", state, msg)
	}

	state, msg = Transition(state, ReactionDislike)
	if state != ReactionNone || msg != "Dislike removed" {
		t.Fatalf("step 3: state=%q msg=%q", state, msg)
	}
}

func TestTransition_NeverInBothSets(t *testing.T) {
	// The state space is a single value, so "in both sets" is unrepresentable;
	// verify every transition lands on a legal state.
	states := []string{ReactionNone, ReactionLike, ReactionDislike}
	actions := []string{ReactionLike, ReactionDislike}

	for _, s := range states {
		for _, a := range actions {
			next, _ := Transition(s, a)
			if next != ReactionNone && next != ReactionLike && next != ReactionDislike {
				t.Errorf("Transition(%q, %q) = %q, not a legal state", s, a, next)
			}
		}
	}
}
